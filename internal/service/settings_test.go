package service_test

import (
	"context"
	"testing"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/repository"
	"fleetrent-backend/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestSettingsService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("FromDatabase", func(t *testing.T) {
		settingsRepo := new(MockSettingsRepo)
		svc := service.NewSettingsService(settingsRepo, domain.Settings{DepositPolicy: domain.DepositPolicyPercent, DepositPercent: 30})

		settingsRepo.On("Get", ctx).Return(testSettings(), nil)

		settings, err := svc.Get(ctx)
		assert.NoError(t, err)
		assert.Equal(t, domain.DepositPolicyFixed, settings.DepositPolicy)
	})

	t.Run("FallsBackToDefaults", func(t *testing.T) {
		settingsRepo := new(MockSettingsRepo)
		defaults := domain.Settings{DepositPolicy: domain.DepositPolicyPercent, DepositPercent: 30, VATPercent: 20}
		svc := service.NewSettingsService(settingsRepo, defaults)

		settingsRepo.On("Get", ctx).Return(nil, repository.ErrNotFound)

		settings, err := svc.Get(ctx)
		assert.NoError(t, err)
		assert.Equal(t, domain.DepositPolicyPercent, settings.DepositPolicy)
		assert.Equal(t, 30, settings.DepositPercent)
	})
}

func TestSettingsService_DepositPolicy(t *testing.T) {
	ctx := context.Background()
	settingsRepo := new(MockSettingsRepo)
	svc := service.NewSettingsService(settingsRepo, domain.Settings{})

	settingsRepo.On("Get", ctx).Return(testSettings(), nil)

	policy, err := svc.DepositPolicy(ctx)
	assert.NoError(t, err)
	assert.Equal(t, domain.DepositPolicyFixed, policy.Kind)
	assert.Equal(t, int64(20000), policy.FixedCents)
}
