// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for communicating with the
// Subfinder backend API.
//
// The primary abstraction is [SubfinderAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPSubfinderAdapter]) built on resty.
//
// Every failure (network error, non-2xx response, undecodable body) is
// returned as a [*ResponseError]. Its Message field carries the text meant for
// the user: the "error" field of the response body, or [DefaultErrorMessage]
// when the body has none. Status sentinels defined in errors.go are wrapped so
// that callers can use [errors.Is] (e.g. [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/subfinder-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/subfinder_adapter_mock.go -package=mock

// SubfinderAdapter defines communication with the Subfinder backend. Each
// method performs exactly one HTTP request against BaseURL()+path. There is no
// retry and no caching.
type SubfinderAdapter interface {
	// BaseURL returns the normalised API root all paths are appended to.
	BaseURL() string

	// SubmitJob sends POST /subfinder with body {"domain": domain, "config":
	// config}. config is opaque and serialised as given.
	SubmitJob(ctx context.Context, domain string, config any) (models.JobResponse, error)

	// GetJob fetches GET /subfinder/{jobID}. jobID is inserted verbatim,
	// without escaping.
	GetJob(ctx context.Context, jobID string) (models.Job, error)

	// GetServiceStatus fetches GET /subfinder/status.
	GetServiceStatus(ctx context.Context) (models.ServiceStatus, error)

	// GetAllJobs fetches GET /subfinder/jobs.
	GetAllJobs(ctx context.Context) (models.JobList, error)

	// GetHealthStatus fetches GET /health.
	GetHealthStatus(ctx context.Context) (models.HealthStatus, error)
}
