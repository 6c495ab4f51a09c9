package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/subfinder-client/internal/service"
	"github.com/MKhiriev/subfinder-client/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	submitFieldDomain = iota
	submitFieldSources
)

type submitModel struct {
	ctx  context.Context
	jobs service.JobService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newSubmitModel(ctx context.Context, jobs service.JobService) *submitModel {
	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 50
	}
	inputs[submitFieldDomain].Placeholder = "example.com"
	inputs[submitFieldSources].Placeholder = "crtsh, virustotal (пусто = все)"
	inputs[submitFieldDomain].Focus()

	return &submitModel{ctx: ctx, jobs: jobs, inputs: inputs}
}

func (m *submitModel) Init() tea.Cmd {
	m.errMsg = ""
	m.setFocus(submitFieldDomain)
	return textinput.Blink
}

func (m *submitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case jobSubmittedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = describeError(msg.err)
			return m, nil
		}

		m.errMsg = ""
		for i := range m.inputs {
			m.inputs[i].Reset()
		}
		return m, navigate(pageDetail, openJobMsg{jobID: msg.resp.JobID})

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate(pageMenu, nil)
		case key.Matches(msg, keys.tab), msg.Type == tea.KeyDown:
			m.setFocus((m.focus + 1) % len(m.inputs))
			return m, nil
		case key.Matches(msg, keys.backtab), msg.Type == tea.KeyUp:
			m.setFocus((m.focus + len(m.inputs) - 1) % len(m.inputs))
			return m, nil
		case key.Matches(msg, keys.enter):
			if m.submitting {
				return m, nil
			}
			m.submitting = true
			m.errMsg = ""
			domain := strings.TrimSpace(m.inputs[submitFieldDomain].Value())
			config := models.SubfinderConfig{Sources: parseSources(m.inputs[submitFieldSources].Value())}
			return m, submitJob(m.ctx, m.jobs, domain, config)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *submitModel) setFocus(idx int) {
	m.focus = idx
	for i := range m.inputs {
		if i == idx {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

func (m *submitModel) View() string {
	var b strings.Builder
	b.WriteString("Домен:     [" + m.inputs[submitFieldDomain].View() + "]\n")
	b.WriteString("Источники: [" + m.inputs[submitFieldSources].View() + "]\n")

	if m.submitting {
		b.WriteString("\nОтправка...\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Ошибка: "+m.errMsg) + "\n")
	}

	return renderPage("НОВАЯ ЗАДАЧА", strings.TrimRight(b.String(), "\n"), "enter: отправить │ tab: следующее поле │ esc: назад")
}

// parseSources splits a comma-separated list of source names, dropping empty
// entries.
func parseSources(raw string) []string {
	var sources []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			sources = append(sources, s)
		}
	}
	return sources
}
