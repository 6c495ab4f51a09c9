package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/subfinder-client/internal/notify"
	"github.com/MKhiriev/subfinder-client/internal/service"
	"github.com/MKhiriev/subfinder-client/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

const toastExpiryGrace = 50 * time.Millisecond

var writeClipboard = clipboard.WriteAll

func navigate(page string, payload tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return NavigateTo{Page: page, Payload: payload}
	}
}

func submitJob(ctx context.Context, jobs service.JobService, domain string, config models.SubfinderConfig) tea.Cmd {
	return func() tea.Msg {
		resp, err := jobs.SubmitJob(ctx, domain, config).Wait(ctx)
		return jobSubmittedMsg{resp: resp, err: err}
	}
}

func loadJobs(ctx context.Context, jobs service.JobService) tea.Cmd {
	return func() tea.Msg {
		list, err := jobs.GetAllJobs(ctx).Wait(ctx)
		return jobsLoadedMsg{list: list, err: err}
	}
}

func loadJob(ctx context.Context, jobs service.JobService, jobID string) tea.Cmd {
	return func() tea.Msg {
		job, err := jobs.GetJob(ctx, jobID).Wait(ctx)
		return jobLoadedMsg{jobID: jobID, job: job, err: err}
	}
}

func scheduleJobRefresh(jobID string, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return jobRefreshMsg{jobID: jobID}
	})
}

func loadStatus(ctx context.Context, jobs service.JobService) tea.Cmd {
	return func() tea.Msg {
		status, err := jobs.GetServiceStatus(ctx).Wait(ctx)
		return serviceStatusMsg{status: status, err: err}
	}
}

func loadHealth(ctx context.Context, jobs service.JobService) tea.Cmd {
	return func() tea.Msg {
		health, err := jobs.GetHealthStatus(ctx).Wait(ctx)
		return healthLoadedMsg{health: health, err: err}
	}
}

func waitForToast(ch <-chan notify.Notification) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		n, ok := <-ch
		if !ok {
			return toastsClosedMsg{}
		}
		return toastAddedMsg{n: n}
	}
}

// expireToast re-renders the UI shortly after n is dismissed by the toaster.
func expireToast(n notify.Notification) tea.Cmd {
	if n.Timeout <= 0 {
		return nil
	}
	return tea.Tick(n.Timeout+toastExpiryGrace, func(time.Time) tea.Msg {
		return toastExpiredMsg{}
	})
}

func waitForStatus(ctx context.Context, ch <-chan models.ServiceStatus) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case status := <-ch:
			return serviceStatusMsg{status: status, polled: true}
		case <-ctx.Done():
			return nil
		}
	}
}

func copyToClipboard(what, text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{what: what, err: writeClipboard(text)}
	}
}
