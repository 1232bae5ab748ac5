package service

import "github.com/returnlens/Annualized-Return-Backend/internal/model"

// AppVersion is the application version reported by the version endpoint.
const AppVersion = "1.0.0"

// SystemService handles system-level operations like health and version checks.
type SystemService struct{}

// NewSystemService creates a new SystemService
func NewSystemService() *SystemService {
	return &SystemService{}
}

// CheckHealth reports whether the service can serve requests. The
// calculator has no external dependencies, so this only confirms the
// process is responsive.
func (s *SystemService) CheckHealth() error {
	return nil
}

// Version returns application version information and feature availability.
func (s *SystemService) Version() model.VersionInfo {
	return model.VersionInfo{
		AppVersion: AppVersion,
		Features: map[string]bool{
			"chart":    true,
			"sessions": true,
		},
	}
}
