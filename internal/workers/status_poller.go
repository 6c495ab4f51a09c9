// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/subfinder-client/internal/config"
	"github.com/MKhiriev/subfinder-client/internal/logger"
	"github.com/MKhiriev/subfinder-client/internal/service"
	"github.com/MKhiriev/subfinder-client/models"
)

const defaultPollInterval = 10 * time.Second

// StatusPoller periodically fetches the backend queue snapshot and publishes
// it on Updates. Only the most recent snapshot is kept when the consumer
// falls behind.
type StatusPoller struct {
	jobs     service.JobService
	interval time.Duration
	updates  chan models.ServiceStatus

	logger *logger.Logger
}

// NewStatusPoller creates a poller. A non-positive cfg.PollInterval falls
// back to 10s.
func NewStatusPoller(jobs service.JobService, cfg config.ClientWorkers, log *logger.Logger) *StatusPoller {
	interval := cfg.PollInterval
	if interval <= 0 {
		interval = defaultPollInterval
	}

	return &StatusPoller{
		jobs:     jobs,
		interval: interval,
		updates:  make(chan models.ServiceStatus, 1),
		logger:   log.WithComponent("status-poller"),
	}
}

// Updates returns the channel of successful snapshots. It is never closed.
func (p *StatusPoller) Updates() <-chan models.ServiceStatus {
	return p.updates
}

// Run implements [Worker]. It polls once immediately and then on every tick
// until ctx is cancelled. A failed poll is already surfaced by the job
// service; the next tick simply starts a new call.
func (p *StatusPoller) Run(ctx context.Context) {
	p.logger.Info().Dur("interval", p.interval).Msg("status poller started")
	defer p.logger.Info().Msg("status poller stopped")

	p.poll(ctx)

	t := time.NewTicker(p.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			p.poll(ctx)
		}
	}
}

func (p *StatusPoller) poll(ctx context.Context) {
	status, err := p.jobs.GetServiceStatus(ctx).Wait(ctx)
	if err != nil {
		p.logger.Debug().Err(err).Msg("status poll failed")
		return
	}

	p.publish(status)
}

func (p *StatusPoller) publish(status models.ServiceStatus) {
	for {
		select {
		case p.updates <- status:
			return
		default:
		}

		// drop the stale snapshot and retry
		select {
		case <-p.updates:
		default:
		}
	}
}
