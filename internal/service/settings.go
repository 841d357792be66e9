package service

import (
	"context"
	"errors"

	"fleetrent-backend/internal/booking"
	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/repository"
)

type settingsService struct {
	settingsRepo repository.SettingsRepository
	defaults     domain.Settings
}

// NewSettingsService wires the agency settings row with configured defaults
// for a fresh database that has no row yet.
func NewSettingsService(settingsRepo repository.SettingsRepository, defaults domain.Settings) SettingsService {
	return &settingsService{settingsRepo: settingsRepo, defaults: defaults}
}

func (s *settingsService) Get(ctx context.Context) (*domain.Settings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		fallback := s.defaults
		return &fallback, nil
	}
	if err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *settingsService) Update(ctx context.Context, settings *domain.Settings) error {
	return s.settingsRepo.Update(ctx, settings)
}

func (s *settingsService) DepositPolicy(ctx context.Context) (booking.DepositPolicy, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return booking.DepositPolicy{}, err
	}
	return booking.DepositPolicy{
		Kind:       settings.DepositPolicy,
		FixedCents: settings.DepositFixedCents,
		Percent:    settings.DepositPercent,
	}, nil
}
