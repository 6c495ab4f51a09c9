package service

import (
	"github.com/MKhiriev/subfinder-client/models"
)

type appInfoService struct {
	info models.AppBuildInfo
}

func NewAppInfoService(info models.AppBuildInfo) (AppInfoService, error) {
	if info.BuildVersion() == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{info: info}, nil
}

func (s *appInfoService) BuildInfo() models.AppBuildInfo {
	return s.info
}

func (s *appInfoService) Version() string {
	return s.info.BuildVersion()
}
