package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/subfinder-client/internal/config"
	"github.com/MKhiriev/subfinder-client/internal/logger"
	"github.com/MKhiriev/subfinder-client/internal/utils"
	"github.com/MKhiriev/subfinder-client/models"
)

const (
	pathSubfinder = "/subfinder"
	pathStatus    = "/subfinder/status"
	pathJobs      = "/subfinder/jobs"
	pathHealth    = "/health"
)

type httpSubfinderAdapter struct {
	client  *utils.HTTPClient
	baseURL string

	logger *logger.Logger
}

// NewHTTPSubfinderAdapter constructs an HTTP/REST implementation of
// [SubfinderAdapter]. It normalises and validates adapterCfg.BaseURL and
// configures the underlying HTTP client with the resolved base URL and
// request timeout.
//
// Returns an error if adapterCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPSubfinderAdapter(adapterCfg config.ClientAdapter, log *logger.Logger) (SubfinderAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)
	client.OnBeforeRequest(withTraceID)

	return &httpSubfinderAdapter{
		client:  client,
		baseURL: baseURL,
		logger:  log.WithComponent("adapter"),
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// BaseURL implements [SubfinderAdapter].
func (h *httpSubfinderAdapter) BaseURL() string {
	return h.baseURL
}

// SubmitJob implements [SubfinderAdapter]. It POSTs {domain, config} to
// POST /subfinder and decodes the accepted job descriptor.
func (h *httpSubfinderAdapter) SubmitJob(ctx context.Context, domain string, jobConfig any) (models.JobResponse, error) {
	var resp models.JobResponse
	err := h.do(ctx, http.MethodPost, pathSubfinder, models.JobRequest{Domain: domain, Config: jobConfig}, &resp)
	return resp, err
}

// GetJob implements [SubfinderAdapter]. The identifier is appended to the
// path as is.
func (h *httpSubfinderAdapter) GetJob(ctx context.Context, jobID string) (models.Job, error) {
	var job models.Job
	err := h.do(ctx, http.MethodGet, pathSubfinder+"/"+jobID, nil, &job)
	return job, err
}

// GetServiceStatus implements [SubfinderAdapter].
func (h *httpSubfinderAdapter) GetServiceStatus(ctx context.Context) (models.ServiceStatus, error) {
	var status models.ServiceStatus
	err := h.do(ctx, http.MethodGet, pathStatus, nil, &status)
	return status, err
}

// GetAllJobs implements [SubfinderAdapter].
func (h *httpSubfinderAdapter) GetAllJobs(ctx context.Context) (models.JobList, error) {
	var list models.JobList
	err := h.do(ctx, http.MethodGet, pathJobs, nil, &list)
	return list, err
}

// GetHealthStatus implements [SubfinderAdapter].
func (h *httpSubfinderAdapter) GetHealthStatus(ctx context.Context) (models.HealthStatus, error) {
	var health models.HealthStatus
	err := h.do(ctx, http.MethodGet, pathHealth, nil, &health)
	return health, err
}

// do performs a single request against baseURL+path and decodes a 2xx body
// into result. Every failure is returned as *ResponseError.
func (h *httpSubfinderAdapter) do(ctx context.Context, method, path string, body, result any) error {
	fullURL := h.baseURL + path

	req := h.client.R().SetContext(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, path)
	log := h.logger.With().Str("trace_id", req.Header.Get(traceIDHeader)).Logger()
	if err != nil {
		respErr := &ResponseError{
			Method:  method,
			URL:     fullURL,
			Message: DefaultErrorMessage,
			Err:     fmt.Errorf("%w: %w", ErrTransport, err),
		}
		log.Warn().Err(respErr).Str("method", method).Str("url", fullURL).Msg("api request failed")
		return respErr
	}

	if respErr := mapHTTPError(resp); respErr != nil {
		respErr.Method = method
		respErr.URL = fullURL
		log.Warn().Err(respErr).
			Str("method", method).
			Str("url", fullURL).
			Int("status", resp.StatusCode()).
			Msg("api error response")
		return respErr
	}

	log.Debug().
		Str("method", method).
		Str("url", fullURL).
		Int("status", resp.StatusCode()).
		Dur("elapsed", resp.Time()).
		Msg("api request")

	if result == nil {
		return nil
	}

	if err = json.Unmarshal(resp.Body(), result); err != nil {
		respErr := &ResponseError{
			StatusCode: resp.StatusCode(),
			Method:     method,
			URL:        fullURL,
			Body:       resp.Body(),
			Message:    DefaultErrorMessage,
			Err:        fmt.Errorf("%w: %w", ErrDecodeResponse, err),
		}
		log.Warn().Err(respErr).Str("url", fullURL).Msg("decode api response")
		return respErr
	}

	return nil
}
