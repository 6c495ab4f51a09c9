package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/subfinder-client/internal/service"
	"github.com/MKhiriev/subfinder-client/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	jobRefreshInterval = 2 * time.Second
	maxShownSubdomains = 20
)

type detailModel struct {
	ctx  context.Context
	jobs service.JobService

	jobID   string
	job     *models.Job
	loading bool
	spinner spinner.Model
	status  string
	errMsg  string

	refreshInterval time.Duration
}

func newDetailModel(ctx context.Context, jobs service.JobService) *detailModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return &detailModel{
		ctx:             ctx,
		jobs:            jobs,
		spinner:         s,
		refreshInterval: jobRefreshInterval,
	}
}

// Init is a no-op: the page is always opened with an openJobMsg payload.
func (m *detailModel) Init() tea.Cmd {
	return nil
}

func (m *detailModel) open(jobID string) tea.Cmd {
	m.jobID = jobID
	m.job = nil
	m.status = ""
	return m.reload()
}

func (m *detailModel) reload() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	return tea.Batch(loadJob(m.ctx, m.jobs, m.jobID), m.spinner.Tick)
}

func (m *detailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openJobMsg:
		return m, m.open(msg.jobID)

	case jobLoadedMsg:
		if msg.jobID != m.jobID {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.errMsg = describeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		job := msg.job
		m.job = &job
		if !job.Status.IsTerminal() {
			return m, scheduleJobRefresh(m.jobID, m.refreshInterval)
		}
		return m, nil

	case jobRefreshMsg:
		if msg.jobID != m.jobID {
			return m, nil
		}
		return m, loadJob(m.ctx, m.jobs, m.jobID)

	case copiedMsg:
		if msg.err != nil {
			m.status = "Не удалось скопировать: " + msg.err.Error()
		} else {
			m.status = "Скопировано: " + msg.what
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
		case key.Matches(msg, keys.esc):
			m.jobID = ""
			return m, navigate(pageJobs, nil)
		case key.Matches(msg, keys.refresh):
			if !m.loading && m.jobID != "" {
				return m, m.reload()
			}
		case key.Matches(msg, keys.copyID):
			if m.jobID != "" {
				return m, copyToClipboard("ID задачи", m.jobID)
			}
		case key.Matches(msg, keys.copySubdomains):
			if m.job == nil || len(m.job.Subdomains) == 0 {
				m.status = "Нет поддоменов для копирования"
				return m, nil
			}
			return m, copyToClipboard(fmt.Sprintf("%d поддоменов", len(m.job.Subdomains)), strings.Join(m.job.Subdomains, "\n"))
		}
	}

	return m, nil
}

func (m *detailModel) View() string {
	var b strings.Builder

	switch {
	case m.job == nil && m.loading:
		b.WriteString(m.spinner.View() + " Загрузка " + m.jobID + "...")
	case m.job == nil && m.errMsg != "":
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
	case m.job != nil:
		m.writeJob(&b)
		if m.errMsg != "" {
			b.WriteString("\n" + errorStyle.Render("Ошибка: "+m.errMsg))
		}
	}

	if m.status != "" {
		b.WriteString("\n\n" + m.status)
	}

	return renderPage("ЗАДАЧА", strings.TrimRight(b.String(), "\n"), "r: обновить │ c: копир. ID │ y: копир. поддомены │ esc: назад")
}

func (m *detailModel) writeJob(b *strings.Builder) {
	job := m.job
	created := job.CreatedAt

	status := renderJobStatus(job.Status)
	if !job.Status.IsTerminal() {
		status += " " + m.spinner.View()
	}

	fmt.Fprintf(b, "ID:         %s\n", job.ID)
	fmt.Fprintf(b, "Домен:      %s\n", valueOrDash(job.Domain))
	fmt.Fprintf(b, "Статус:     %s\n", status)
	fmt.Fprintf(b, "Создана:    %s\n", formatTime(&created))
	fmt.Fprintf(b, "Начата:     %s\n", formatTime(job.StartedAt))
	fmt.Fprintf(b, "Завершена:  %s\n", formatTime(job.CompletedAt))
	if job.EstimatedCompletionTime != nil && !job.Status.IsTerminal() {
		fmt.Fprintf(b, "Ожидается:  %s\n", formatTime(job.EstimatedCompletionTime))
	}
	if job.Error != "" {
		b.WriteString(errorStyle.Render("Ошибка:     "+job.Error) + "\n")
	}

	if job.Stats != nil {
		fmt.Fprintf(b, "\nНайдено:    %d\n", job.Stats.TotalFound)
		fmt.Fprintf(b, "Время:      %s\n", valueOrDash(job.Stats.ExecutionTime))
		fmt.Fprintf(b, "Источники:  %s\n", valueOrDash(strings.Join(job.Stats.SourcesUsed, ", ")))
	}

	if len(job.Subdomains) > 0 {
		fmt.Fprintf(b, "\nПоддомены (%d):\n", len(job.Subdomains))
		for i, sub := range job.Subdomains {
			if i == maxShownSubdomains {
				fmt.Fprintf(b, "  ... и ещё %d (y: скопировать все)\n", len(job.Subdomains)-maxShownSubdomains)
				break
			}
			b.WriteString("  " + sub + "\n")
		}
	}
}
