package service

import (
	"context"
	"log"

	"pastelaria/domain"
)

type SettingsService struct {
	repo SettingsRepository
}

func NewSettingsService(repo SettingsRepository) *SettingsService {
	return &SettingsService{repo: repo}
}

// GetAll always returns the complete key set; stored values win over defaults.
func (s *SettingsService) GetAll(ctx context.Context) (map[string]string, error) {
	settings, err := s.repo.GetAllSettings(ctx)
	if err != nil {
		log.Printf("[admin-svc] WARNING: settings unavailable, using defaults: %v", err)
		return domain.MergeDefaults(nil), nil
	}
	return domain.MergeDefaults(settings), nil
}

func (s *SettingsService) Save(ctx context.Context, key, value string) (string, error) {
	normalized, err := domain.NormalizeSetting(key, value)
	if err != nil {
		return "", err
	}
	return s.repo.SaveSetting(ctx, key, normalized)
}

type AlertService struct {
	feed AlertFeed
}

func NewAlertService(feed AlertFeed) *AlertService {
	return &AlertService{feed: feed}
}

func (s *AlertService) Drain(ctx context.Context) ([]domain.Alert, error) {
	return s.feed.Drain(ctx)
}
