// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/subfinder-client/internal/adapter"
	"github.com/MKhiriev/subfinder-client/internal/config"
	"github.com/MKhiriev/subfinder-client/internal/logger"
	"github.com/MKhiriev/subfinder-client/internal/notify"
	"github.com/MKhiriev/subfinder-client/models"
)

const (
	ErrorNotificationTitle = "API Error"
	ErrorNotificationIcon  = "i-lucide-alert-circle"

	defaultNotifyTimeout = 5 * time.Second
)

type jobService struct {
	adapter       adapter.SubfinderAdapter
	notifier      notify.Notifier
	notifyTimeout time.Duration

	logger *logger.Logger
}

// NewJobService creates the [JobService] wrapper. Error notifications are
// emitted through notifier and dismissed after notifyCfg.Timeout (5s when
// unset).
func NewJobService(subfinderAdapter adapter.SubfinderAdapter, notifier notify.Notifier, notifyCfg config.ClientNotify, log *logger.Logger) (JobService, error) {
	if subfinderAdapter == nil {
		return nil, ErrNoAdapter
	}
	if notifier == nil {
		return nil, ErrNoNotifier
	}

	timeout := notifyCfg.Timeout
	if timeout <= 0 {
		timeout = defaultNotifyTimeout
	}

	return &jobService{
		adapter:       subfinderAdapter,
		notifier:      notifier,
		notifyTimeout: timeout,
		logger:        log.WithComponent("job-service"),
	}, nil
}

func (s *jobService) BaseURL() string {
	return s.adapter.BaseURL()
}

func (s *jobService) SubmitJob(ctx context.Context, domain string, jobConfig any, opts ...FetchOption) *Fetch[models.JobResponse] {
	return start(ctx, s, "submit job", opts, func(ctx context.Context) (models.JobResponse, error) {
		return s.adapter.SubmitJob(ctx, domain, jobConfig)
	})
}

func (s *jobService) GetJob(ctx context.Context, jobID string, opts ...FetchOption) *Fetch[models.Job] {
	return start(ctx, s, "get job", opts, func(ctx context.Context) (models.Job, error) {
		return s.adapter.GetJob(ctx, jobID)
	})
}

func (s *jobService) GetServiceStatus(ctx context.Context, opts ...FetchOption) *Fetch[models.ServiceStatus] {
	return start(ctx, s, "get service status", opts, s.adapter.GetServiceStatus)
}

func (s *jobService) GetAllJobs(ctx context.Context, opts ...FetchOption) *Fetch[models.JobList] {
	return start(ctx, s, "get all jobs", opts, s.adapter.GetAllJobs)
}

func (s *jobService) GetHealthStatus(ctx context.Context, opts ...FetchOption) *Fetch[models.HealthStatus] {
	return start(ctx, s, "get health status", opts, s.adapter.GetHealthStatus)
}

// start runs call in its own goroutine and resolves the returned handle once
// the call and, on failure, the error interception have completed.
func start[T any](ctx context.Context, s *jobService, op string, opts []FetchOption, call func(context.Context) (T, error)) *Fetch[T] {
	o := collectOptions(opts)
	f := newFetch[T]()

	go func() {
		data, err := call(ctx)
		if err == nil {
			f.resolve(data, nil)
			return
		}

		respErr := adapter.AsResponseError(err)
		s.logger.Debug().Err(err).Str("op", op).Msg("api call failed")
		s.intercept(respErr, o)

		var zero T
		f.resolve(zero, respErr)
	}()

	return f
}

// intercept emits the error notification and then hands respErr to the
// caller's handler, if any.
func (s *jobService) intercept(respErr *adapter.ResponseError, o fetchOptions) {
	message := respErr.Message
	if message == "" {
		message = adapter.DefaultErrorMessage
	}

	s.notifier.Add(notify.Notification{
		Title:       ErrorNotificationTitle,
		Description: message,
		Color:       notify.ColorRed,
		Icon:        ErrorNotificationIcon,
		Timeout:     s.notifyTimeout,
	})

	if o.onResponseError != nil {
		o.onResponseError(respErr)
	}
}
