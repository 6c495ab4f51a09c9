// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the interactive terminal interface of the Subfinder
// client on top of bubbletea.
//
// RootModel routes between pages (menu, job submission, job list, job
// detail, service status, health) and renders active notifications from the
// toaster under the current page.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/subfinder-client/internal/logger"
	"github.com/MKhiriev/subfinder-client/internal/notify"
	"github.com/MKhiriev/subfinder-client/internal/service"
	"github.com/MKhiriev/subfinder-client/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrNoServices = errors.New("client services are not provided")

type TUI struct {
	services      *service.ClientServices
	toasts        toastSource
	statusUpdates <-chan models.ServiceStatus

	logger *logger.Logger
}

// New creates the terminal UI. toaster and statusUpdates are optional: without
// them no notifications are rendered and the status page only refreshes on
// demand.
func New(services *service.ClientServices, toaster *notify.Toaster, statusUpdates <-chan models.ServiceStatus, log *logger.Logger) (*TUI, error) {
	if services == nil || services.JobService == nil {
		return nil, ErrNoServices
	}

	t := &TUI{
		services:      services,
		statusUpdates: statusUpdates,
		logger:        log.WithComponent("tui"),
	}
	if toaster != nil {
		t.toasts = toaster
	}

	return t, nil
}

// Run shows the UI and blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	root := t.newRootModel(ctx)

	t.logger.Info().Msg("tui started")
	_, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && ctx.Err() != nil {
		// остановка через контекст штатная
		return nil
	}
	if err != nil {
		t.logger.Error().Err(err).Msg("tui stopped with error")
		return err
	}

	t.logger.Info().Msg("tui stopped")
	return nil
}

func (t *TUI) newRootModel(ctx context.Context) RootModel {
	jobs := t.services.JobService

	pages := map[string]tea.Model{
		pageMenu:   NewMenuModel(),
		pageSubmit: newSubmitModel(ctx, jobs),
		pageJobs:   newJobsModel(ctx, jobs),
		pageDetail: newDetailModel(ctx, jobs),
		pageStatus: newStatusModel(ctx, jobs),
		pageHealth: newHealthModel(ctx, jobs),
	}

	var buildInfo models.AppBuildInfo
	if t.services.AppInfoService != nil {
		buildInfo = t.services.AppInfoService.BuildInfo()
	}

	return NewRootModel(ctx, pages, pageMenu, rootDeps{
		toasts:        t.toasts,
		statusUpdates: t.statusUpdates,
		buildInfo:     buildInfo,
		apiBaseURL:    jobs.BaseURL(),
	})
}
