// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the client-side API wrapper on top of
// [adapter.SubfinderAdapter].
//
// Every operation starts the request in the background and immediately
// returns a [Fetch] handle exposing data, error and loading state. Failed
// calls are intercepted: the user always gets an "API Error" notification,
// and a handler passed with [WithOnResponseError] runs afterwards.
package service

import (
	"context"

	"github.com/MKhiriev/subfinder-client/models"
)

// JobService is the wrapper around the five Subfinder endpoints. Calls are
// independent of each other and may complete in any order.
type JobService interface {
	// SubmitJob starts POST /subfinder for domain. config is opaque and sent
	// as given.
	SubmitJob(ctx context.Context, domain string, config any, opts ...FetchOption) *Fetch[models.JobResponse]

	// GetJob starts GET /subfinder/{jobID}. jobID is not escaped.
	GetJob(ctx context.Context, jobID string, opts ...FetchOption) *Fetch[models.Job]

	// GetServiceStatus starts GET /subfinder/status.
	GetServiceStatus(ctx context.Context, opts ...FetchOption) *Fetch[models.ServiceStatus]

	// GetAllJobs starts GET /subfinder/jobs.
	GetAllJobs(ctx context.Context, opts ...FetchOption) *Fetch[models.JobList]

	// GetHealthStatus starts GET /health.
	GetHealthStatus(ctx context.Context, opts ...FetchOption) *Fetch[models.HealthStatus]

	// BaseURL returns the API root the calls are made against.
	BaseURL() string
}

// AppInfoService exposes build metadata of the running binary.
type AppInfoService interface {
	BuildInfo() models.AppBuildInfo
	// Version returns the build version, e.g. "v1.2.0".
	Version() string
}
