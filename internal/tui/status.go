package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/subfinder-client/internal/service"
	"github.com/MKhiriev/subfinder-client/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const maxShownStatusJobs = 10

type statusModel struct {
	ctx  context.Context
	jobs service.JobService

	status    *models.ServiceStatus
	polled    bool
	updatedAt time.Time
	loading   bool
	errMsg    string

	now func() time.Time
}

func newStatusModel(ctx context.Context, jobs service.JobService) *statusModel {
	return &statusModel{ctx: ctx, jobs: jobs, now: time.Now}
}

func (m *statusModel) Init() tea.Cmd {
	m.loading = true
	return loadStatus(m.ctx, m.jobs)
}

func (m *statusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case serviceStatusMsg:
		if !msg.polled {
			m.loading = false
		}
		if msg.err != nil {
			m.errMsg = describeError(msg.err)
			return m, nil
		}
		status := msg.status
		m.status = &status
		m.polled = msg.polled
		m.updatedAt = m.now()
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

func (m *statusModel) View() string {
	var b strings.Builder

	if m.status == nil {
		if m.loading {
			b.WriteString("Загрузка...")
		}
	} else {
		s := m.status
		fmt.Fprintf(&b, "Сервис:       %s\n", valueOrDash(s.Status))
		fmt.Fprintf(&b, "Всего задач:  %d\n", s.Jobs.Total)
		fmt.Fprintf(&b, "В очереди:    %d\n", s.Jobs.Queued)
		fmt.Fprintf(&b, "Выполняются:  %d\n", s.Jobs.Running)
		fmt.Fprintf(&b, "Завершены:    %d\n", s.Jobs.Completed)
		fmt.Fprintf(&b, "С ошибкой:    %d\n", s.Jobs.Failed)
		fmt.Fprintf(&b, "Время сервера: %s\n", formatTime(&s.Time))

		source := "по запросу"
		if m.polled {
			source = "автообновление"
		}
		fmt.Fprintf(&b, "Обновлено:    %s (%s)\n", m.updatedAt.Format(timeLayout), source)

		if len(s.Jobs.List) > 0 {
			b.WriteString("\n")
			for i, job := range s.Jobs.List {
				if i == maxShownStatusJobs {
					fmt.Fprintf(&b, "... и ещё %d\n", len(s.Jobs.List)-maxShownStatusJobs)
					break
				}
				fmt.Fprintf(&b, "%-36s  %-28s  %s\n", fitText(job.JobID, 36), fitText(job.Domain, 28), renderJobStatus(job.Status))
			}
		}
	}

	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Ошибка: "+m.errMsg))
	}

	return renderPage("СТАТУС СЕРВИСА", strings.TrimRight(b.String(), "\n"), "r: обновить │ esc: назад")
}
