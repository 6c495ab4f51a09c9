package client

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/subfinder-client/internal/logger"
)

var ErrNoUI = errors.New("ui is not provided")

type App struct {
	ui      uiRunner
	workers backgroundRunner
	toaster closer
	logger  *logger.Logger
}

// NewApp assembles the client lifecycle. workers and toaster are optional.
func NewApp(ui uiRunner, workers backgroundRunner, toaster closer, log *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, ErrNoUI
	}

	return &App{
		ui:      ui,
		workers: workers,
		toaster: toaster,
		logger:  log.WithComponent("app"),
	}, nil
}

// Run starts the background workers, runs the UI until it exits and then
// stops the workers and closes the toaster.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	if a.workers != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a.workers.Run(ctx)
		}()
	}

	a.logger.Info().Msg("client started")
	err := a.ui.Run(ctx)

	cancel()
	wg.Wait()
	if a.toaster != nil {
		a.toaster.Close()
	}

	if err != nil {
		a.logger.Error().Err(err).Msg("client stopped with error")
		return err
	}
	a.logger.Info().Msg("client stopped")
	return nil
}
