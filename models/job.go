// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// JobStatus is the lifecycle state of an enumeration job as reported by the
// backend.
type JobStatus string

const (
	JobStatusQueued    JobStatus = "queued"
	JobStatusRunning   JobStatus = "running"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
)

// IsTerminal reports whether the job has finished and will not change anymore.
func (s JobStatus) IsTerminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

// SubfinderConfig is a typed helper for building the enumeration options sent
// with a job submission. The backend owns the schema; every field is omitted
// when unset so that the backend defaults apply.
type SubfinderConfig struct {
	// Sources restricts enumeration to the named passive sources
	// (e.g. "crtsh", "virustotal"). Empty means all sources.
	Sources []string `json:"sources,omitempty"`

	// MaxDepth limits how many labels below the target domain are kept.
	MaxDepth int `json:"max_depth,omitempty"`

	// IncludeIPs asks the backend to resolve and return IP addresses.
	IncludeIPs bool `json:"include_ips,omitempty"`

	// Timeout is the enumeration timeout in seconds.
	Timeout int `json:"timeout,omitempty"`

	// RateLimit is the maximum number of requests per second.
	RateLimit int `json:"rate_limit,omitempty"`

	IncludeWildcards    bool `json:"include_wildcards,omitempty"`
	ExcludeUnresolvable bool `json:"exclude_unresolvable,omitempty"`
	ExcludeWww          bool `json:"exclude_www,omitempty"`
}

// JobRequest is the body of POST /subfinder.
type JobRequest struct {
	// Domain is the target domain to enumerate.
	Domain string `json:"domain"`

	// Config is an opaque configuration object. It is serialised as given and
	// never validated on the client side.
	Config any `json:"config"`
}

// JobResponse is returned by the backend after a job has been accepted.
type JobResponse struct {
	JobID                   string     `json:"job_id"`
	Status                  JobStatus  `json:"status"`
	EstimatedCompletionTime *time.Time `json:"estimated_completion_time,omitempty"`
}

// Job is the full job record returned by GET /subfinder/{jobId}.
type Job struct {
	ID     string          `json:"job_id"`
	Domain string          `json:"domain"`
	Config json.RawMessage `json:"config,omitempty"`
	Status JobStatus       `json:"status"`

	CreatedAt               time.Time  `json:"created_at"`
	StartedAt               *time.Time `json:"started_at,omitempty"`
	CompletedAt             *time.Time `json:"completed_at,omitempty"`
	EstimatedCompletionTime *time.Time `json:"estimated_completion_time,omitempty"`

	// Error holds the backend failure reason when Status is failed.
	Error string `json:"error,omitempty"`

	Subdomains []string  `json:"subdomains,omitempty"`
	Stats      *JobStats `json:"stats,omitempty"`
}

// JobStats summarises a completed job.
type JobStats struct {
	TotalFound    int      `json:"total_found"`
	ExecutionTime string   `json:"execution_time"`
	SourcesUsed   []string `json:"sources_used"`
}

// JobSummary is the short job descriptor used by list endpoints.
type JobSummary struct {
	JobID     string    `json:"job_id"`
	Domain    string    `json:"domain"`
	Status    JobStatus `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// JobList is the body of GET /subfinder/jobs.
type JobList struct {
	Jobs []JobSummary `json:"jobs"`
}
