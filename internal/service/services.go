package service

import (
	"fmt"

	"github.com/MKhiriev/subfinder-client/internal/adapter"
	"github.com/MKhiriev/subfinder-client/internal/config"
	"github.com/MKhiriev/subfinder-client/internal/logger"
	"github.com/MKhiriev/subfinder-client/internal/notify"
	"github.com/MKhiriev/subfinder-client/models"
)

type ClientServices struct {
	JobService     JobService
	AppInfoService AppInfoService
}

func NewClientServices(subfinderAdapter adapter.SubfinderAdapter, notifier notify.Notifier, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*ClientServices, error) {
	jobSvc, err := NewJobService(subfinderAdapter, notifier, cfg.Notify, log)
	if err != nil {
		return nil, fmt.Errorf("create job service: %w", err)
	}

	appInfoSvc, err := NewAppInfoService(buildInfo)
	if err != nil {
		return nil, fmt.Errorf("create app info service: %w", err)
	}

	return &ClientServices{
		JobService:     jobSvc,
		AppInfoService: appInfoSvc,
	}, nil
}
