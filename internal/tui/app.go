package tui

import (
	"context"

	"github.com/MKhiriev/subfinder-client/internal/notify"
	"github.com/MKhiriev/subfinder-client/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type toastSource interface {
	Active() []notify.Notification
	Subscribe() <-chan notify.Notification
}

type rootDeps struct {
	toasts        toastSource
	statusUpdates <-chan models.ServiceStatus
	buildInfo     models.AppBuildInfo
	apiBaseURL    string
}

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit and the build info window
// 3) handles NavigateTo messages
// 4) renders notifications and feeds poller snapshots to the status page
// 5) delegates all other messages to the active page
type RootModel struct {
	ctx         context.Context
	pages       map[string]tea.Model
	current     tea.Model
	currentPage string

	toasts   toastSource
	toastCh  <-chan notify.Notification
	statusCh <-chan models.ServiceStatus

	buildInfo     models.AppBuildInfo
	apiBaseURL    string
	showBuildInfo bool
	quitByUser    bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(ctx context.Context, pages map[string]tea.Model, startPage string, deps rootDeps) RootModel {
	r := RootModel{
		ctx:         ctx,
		pages:       pages,
		current:     pages[startPage],
		currentPage: startPage,
		toasts:      deps.toasts,
		statusCh:    deps.statusUpdates,
		buildInfo:   deps.buildInfo,
		apiBaseURL:  deps.apiBaseURL,
	}
	if r.toasts != nil {
		r.toastCh = r.toasts.Subscribe()
	}
	return r
}

func (r RootModel) Init() tea.Cmd {
	cmds := []tea.Cmd{
		waitForToast(r.toastCh),
		waitForStatus(r.ctx, r.statusCh),
	}
	if r.current != nil {
		cmds = append(cmds, r.current.Init())
	}
	return tea.Batch(cmds...)
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Global hotkeys for every page.
		switch {
		case key.Matches(msg, keys.quit):
			r.quitByUser = true
			return r, tea.Quit
		case key.Matches(msg, keys.buildInfo) && r.currentPage == pageMenu:
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case key.Matches(msg, keys.esc) && r.showBuildInfo:
			r.showBuildInfo = false
			return r, nil
		}

		if r.showBuildInfo {
			return r, nil
		}

	case NavigateTo:
		next, exists := r.pages[msg.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = next
		r.currentPage = msg.Page

		if msg.Payload != nil {
			payload := msg.Payload
			return r, func() tea.Msg { return payload }
		}
		return r, r.current.Init()

	case toastAddedMsg:
		// View reads Active() on every render, so only schedule the next wait
		// and a re-render once the notification expires.
		return r, tea.Batch(waitForToast(r.toastCh), expireToast(msg.n))

	case toastExpiredMsg:
		return r, nil

	case toastsClosedMsg:
		r.toastCh = nil
		return r, nil

	case serviceStatusMsg:
		if msg.polled {
			var cmd tea.Cmd
			if page, ok := r.pages[pageStatus]; ok {
				var updated tea.Model
				updated, cmd = page.Update(msg)
				r.pages[pageStatus] = updated
				if r.currentPage == pageStatus {
					r.current = updated
				}
			}
			return r, tea.Batch(cmd, waitForStatus(r.ctx, r.statusCh))
		}
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	r.pages[r.currentPage] = updated
	return r, cmd
}

func (r RootModel) View() string {
	var page string
	switch {
	case r.showBuildInfo:
		page = renderBuildInfoWindow(r.buildInfo, r.apiBaseURL)
	case r.current == nil:
		page = renderPage("SUBFINDER", "", "")
	default:
		page = r.current.View()
	}

	if r.toasts != nil {
		if toasts := renderToasts(r.toasts.Active()); toasts != "" {
			page = lipgloss.JoinVertical(lipgloss.Left, page, "", toasts)
		}
	}

	return appStyle.Render(page)
}
