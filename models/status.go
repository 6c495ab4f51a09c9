package models

import "time"

// ServiceStatus is a read-only snapshot of the backend job queue returned by
// GET /subfinder/status.
type ServiceStatus struct {
	Status string       `json:"status"`
	Jobs   JobsOverview `json:"jobs"`
	Time   time.Time    `json:"time"`
}

// JobsOverview counts jobs per status and lists them.
type JobsOverview struct {
	Total     int          `json:"total"`
	Queued    int          `json:"queued"`
	Running   int          `json:"running"`
	Completed int          `json:"completed"`
	Failed    int          `json:"failed"`
	List      []JobSummary `json:"list"`
}

// HealthStatus is the body of GET /health.
type HealthStatus struct {
	Status string    `json:"status"`
	Time   time.Time `json:"time"`
}

// ErrorBody is the optional JSON body of a non-2xx backend response.
type ErrorBody struct {
	Error string `json:"error"`
}
