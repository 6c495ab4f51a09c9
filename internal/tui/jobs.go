package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/subfinder-client/internal/service"
	"github.com/MKhiriev/subfinder-client/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type jobsModel struct {
	ctx  context.Context
	jobs service.JobService

	items   []models.JobSummary
	idx     int
	loading bool
	spinner spinner.Model
	errMsg  string
}

func newJobsModel(ctx context.Context, jobs service.JobService) *jobsModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return &jobsModel{ctx: ctx, jobs: jobs, spinner: s}
}

func (m *jobsModel) Init() tea.Cmd {
	return m.reload()
}

func (m *jobsModel) reload() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	return tea.Batch(loadJobs(m.ctx, m.jobs), m.spinner.Tick)
}

func (m *jobsModel) current() (models.JobSummary, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.JobSummary{}, false
	}
	return m.items[m.idx], true
}

func (m *jobsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case jobsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = describeError(msg.err)
			return m, nil
		}
		m.items = msg.list.Jobs
		if m.idx >= len(m.items) {
			m.idx = len(m.items) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
			}
		case key.Matches(msg, keys.down):
			if m.idx < len(m.items)-1 {
				m.idx++
			}
		case key.Matches(msg, keys.enter):
			if job, ok := m.current(); ok {
				return m, navigate(pageDetail, openJobMsg{jobID: job.JobID})
			}
		case key.Matches(msg, keys.refresh):
			if !m.loading {
				return m, m.reload()
			}
		case key.Matches(msg, keys.esc):
			return m, navigate(pageMenu, nil)
		}
	}

	return m, nil
}

func (m *jobsModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString(m.spinner.View() + " Загрузка...")
	case m.errMsg != "":
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
	case len(m.items) == 0:
		b.WriteString("Нет задач")
	default:
		b.WriteString(fmt.Sprintf("  %-36s  %-28s  %-10s  %s\n", "ID", "Домен", "Статус", "Создана"))
		for i, job := range m.items {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			created := job.CreatedAt
			b.WriteString(fmt.Sprintf("%s%-36s  %-28s  %-10s  %s\n",
				cursor,
				fitText(job.JobID, 36),
				fitText(job.Domain, 28),
				renderJobStatus(job.Status),
				formatTime(&created),
			))
		}
	}

	return renderPage("ЗАДАЧИ", strings.TrimRight(b.String(), "\n"), "enter: открыть │ r: обновить │ esc: назад")
}
