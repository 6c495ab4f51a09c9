package tui

import (
	"github.com/MKhiriev/subfinder-client/internal/notify"
	"github.com/MKhiriev/subfinder-client/models"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	pageMenu   = "menu"
	pageSubmit = "submit"
	pageJobs   = "jobs"
	pageDetail = "detail"
	pageStatus = "status"
	pageHealth = "health"
)

// NavigateTo switches the active page. When Payload is set it is delivered to
// the new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

type openJobMsg struct {
	jobID string
}

type jobSubmittedMsg struct {
	resp models.JobResponse
	err  error
}

type jobsLoadedMsg struct {
	list models.JobList
	err  error
}

type jobLoadedMsg struct {
	jobID string
	job   models.Job
	err   error
}

type jobRefreshMsg struct {
	jobID string
}

type serviceStatusMsg struct {
	status models.ServiceStatus
	err    error
	// polled is set for snapshots coming from the background poller.
	polled bool
}

type healthLoadedMsg struct {
	health models.HealthStatus
	err    error
}

type toastAddedMsg struct {
	n notify.Notification
}

type toastExpiredMsg struct{}

type toastsClosedMsg struct{}

type copiedMsg struct {
	what string
	err  error
}
