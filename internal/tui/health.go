package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/subfinder-client/internal/service"
	"github.com/MKhiriev/subfinder-client/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type healthModel struct {
	ctx  context.Context
	jobs service.JobService

	health  *models.HealthStatus
	loading bool
	errMsg  string
}

func newHealthModel(ctx context.Context, jobs service.JobService) *healthModel {
	return &healthModel{ctx: ctx, jobs: jobs}
}

func (m *healthModel) Init() tea.Cmd {
	m.loading = true
	return loadHealth(m.ctx, m.jobs)
}

func (m *healthModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case healthLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.health = nil
			m.errMsg = describeError(msg.err)
			return m, nil
		}
		health := msg.health
		m.health = &health
		m.errMsg = ""
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.refresh):
			if !m.loading {
				return m, m.Init()
			}
		case key.Matches(msg, keys.esc):
			return m, navigate(pageMenu, nil)
		}
	}

	return m, nil
}

func (m *healthModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Проверка...")
	case m.errMsg != "":
		b.WriteString(errorStyle.Render("Сервис недоступен: " + m.errMsg))
	case m.health != nil:
		fmt.Fprintf(&b, "Состояние: %s\n", valueOrDash(m.health.Status))
		fmt.Fprintf(&b, "Время:     %s", formatTime(&m.health.Time))
	}

	return renderPage("ПРОВЕРКА ДОСТУПНОСТИ", b.String(), "r: повторить │ esc: назад")
}
