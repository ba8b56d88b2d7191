package service

import (
	"phonegate/internal/domain"

	"go.uber.org/zap"
)

// ProfileService reads the cached profile for the dashboard
type ProfileService struct {
	logger *zap.Logger
}

// NewProfileService creates a new profile service
func NewProfileService(logger *zap.Logger) *ProfileService {
	return &ProfileService{logger: logger}
}

// Cached returns the stored profile. Missing, unreadable or malformed data
// yields an empty profile so the dashboard renders placeholders.
func (s *ProfileService) Cached(storage Storage) domain.Profile {
	data, ok, err := storage.GetItem(domain.KeyUser)
	if err != nil {
		s.logger.Error("Failed to read cached profile", zap.Error(err))
		return domain.Profile{}
	}
	if !ok {
		return domain.Profile{}
	}

	profile, err := domain.ParseProfile([]byte(data))
	if err != nil {
		s.logger.Warn("Cached profile is malformed", zap.Error(err))
		return domain.Profile{}
	}

	return *profile
}
