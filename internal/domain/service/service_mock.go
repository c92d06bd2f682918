package service

import (
	"context"
	"testing"
	"time"

	"github.com/diegoclair/discord-timezone-bot/internal/domain/contract"
	"github.com/diegoclair/discord-timezone-bot/internal/timezone"
	"github.com/diegoclair/discord-timezone-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager    *mocks.MockDataManager
	mockRegistryRepo   *mocks.MockRegistryRepo
	mockPreferenceRepo *mocks.MockPreferenceRepo
	mockRoleClient     *mocks.MockRoleClient
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	registryRepo := mocks.NewMockRegistryRepo(ctrl)
	dm.EXPECT().Registry().Return(registryRepo).AnyTimes()

	preferenceRepo := mocks.NewMockPreferenceRepo(ctrl)
	dm.EXPECT().Preference().Return(preferenceRepo).AnyTimes()

	// Transactions run the callback against the same mocked repositories.
	dm.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(contract.DataManager) error) error {
			return fn(dm)
		},
	).AnyTimes()

	roleClient := mocks.NewMockRoleClient(ctrl)

	m = allMocks{
		mockDataManager:    dm,
		mockRegistryRepo:   registryRepo,
		mockPreferenceRepo: preferenceRepo,
		mockRoleClient:     roleClient,
	}

	// validate service creation
	registry := newRegistry(dm, roleClient, testClassIndex(t))
	require.NotNil(t, registry)

	return
}

// testClassIndex builds a small synthetic catalog: two interchangeable UTC
// zones and one UTC+1 zone.
func testClassIndex(t *testing.T) *timezone.ClassIndex {
	t.Helper()

	catalog := []timezone.Descriptor{
		{ID: "Atlantic/Reykjavik", BaseOffset: 0, Location: time.UTC},
		{ID: "Africa/Abidjan", BaseOffset: 0, Location: time.UTC},
		{ID: "Europe/Paris", BaseOffset: 3600, Location: time.FixedZone("UTC+1", 3600)},
	}
	return timezone.BuildClasses(catalog, time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
}

// testNow is 19:47 UTC, which rounds to the "08:00 PM" label.
func testNow() time.Time {
	return time.Date(2024, 6, 1, 19, 47, 0, 0, time.UTC)
}
