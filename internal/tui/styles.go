package tui

import (
	"github.com/MKhiriev/subfinder-client/internal/notify"
	"github.com/MKhiriev/subfinder-client/models"
	"github.com/charmbracelet/lipgloss"
)

const toastWidth = 52

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	toastStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(toastWidth)
	toastTitleStyle = lipgloss.NewStyle().Bold(true)
)

var toastColors = map[notify.Color]lipgloss.Color{
	notify.ColorRed:    lipgloss.Color("9"),
	notify.ColorYellow: lipgloss.Color("11"),
	notify.ColorGreen:  lipgloss.Color("10"),
	notify.ColorBlue:   lipgloss.Color("12"),
}

var jobStatusColors = map[models.JobStatus]lipgloss.Color{
	models.JobStatusQueued:    lipgloss.Color("12"),
	models.JobStatusRunning:   lipgloss.Color("11"),
	models.JobStatusCompleted: lipgloss.Color("10"),
	models.JobStatusFailed:    lipgloss.Color("9"),
}

func renderJobStatus(s models.JobStatus) string {
	color, ok := jobStatusColors[s]
	if !ok {
		return string(s)
	}
	return lipgloss.NewStyle().Foreground(color).Render(string(s))
}
