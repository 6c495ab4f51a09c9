package tui

import (
	"github.com/MKhiriev/subfinder-client/internal/notify"
	"github.com/charmbracelet/lipgloss"
)

func renderToasts(items []notify.Notification) string {
	if len(items) == 0 {
		return ""
	}

	boxes := make([]string, 0, len(items))
	for _, n := range items {
		color, ok := toastColors[n.Color]
		if !ok {
			color = toastColors[notify.ColorBlue]
		}

		header := toastTitleStyle.Foreground(color).Render(toastIcon(n.Icon) + " " + n.Title)
		body := header
		if n.Description != "" {
			body += "\n" + n.Description
		}
		boxes = append(boxes, toastStyle.BorderForeground(color).Render(body))
	}

	return lipgloss.JoinVertical(lipgloss.Left, boxes...)
}

func toastIcon(icon string) string {
	switch icon {
	case "i-lucide-alert-circle":
		return "(!)"
	case "i-lucide-check-circle":
		return "(v)"
	default:
		return "(i)"
	}
}
