package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/diegoclair/discord-timezone-bot/internal/domain"
	"github.com/diegoclair/discord-timezone-bot/internal/domain/entity"
	"github.com/diegoclair/discord-timezone-bot/internal/timezone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRegistry(t *testing.T, m allMocks) *registryService {
	t.Helper()

	registry := newRegistry(m.mockDataManager, m.mockRoleClient, testClassIndex(t))
	registry.now = testNow
	return registry
}

func TestRegistryService_GetOrCreateRole_CreatesWhenMissing(t *testing.T) {
	ctx := context.Background()
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	registry := newTestRegistry(t, m)

	m.mockRegistryRepo.EXPECT().GetByGuild("guild-1").Return(nil, nil)
	m.mockRoleClient.EXPECT().GuildRoles(ctx, "guild-1").Return(nil, nil)
	m.mockPreferenceRepo.EXPECT().Get("guild-1").Return(nil, nil)

	// 19:47 UTC rounds up to the next full hour.
	m.mockRoleClient.EXPECT().
		CreateRole(ctx, "guild-1", "08:00 PM", gomock.Nil()).
		Return(entity.Role{ID: "role-1", Name: "08:00 PM"}, nil)

	m.mockRegistryRepo.EXPECT().Replace("guild-1", gomock.Any()).DoAndReturn(
		func(guildID string, records []entity.RoleRecord) error {
			require.Len(t, records, 1)
			assert.Equal(t, "role-1", records[0].RoleID)
			// The record binds to the class representative, not the asked zone.
			assert.Equal(t, "Atlantic/Reykjavik", records[0].ZoneID)
			return nil
		},
	)

	roleID, err := registry.GetOrCreateRole(ctx, "guild-1", "Africa/Abidjan")
	require.NoError(t, err)
	assert.Equal(t, "role-1", roleID)
}

func TestRegistryService_GetOrCreateRole_ReusesEquivalentZoneRole(t *testing.T) {
	ctx := context.Background()
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	registry := newTestRegistry(t, m)

	m.mockRegistryRepo.EXPECT().GetByGuild("guild-1").Return(nil, nil)
	m.mockPreferenceRepo.EXPECT().Get("guild-1").Return(nil, nil)

	gomock.InOrder(
		m.mockRoleClient.EXPECT().GuildRoles(ctx, "guild-1").Return(nil, nil),
		m.mockRoleClient.EXPECT().
			CreateRole(ctx, "guild-1", "08:00 PM", gomock.Nil()).
			Return(entity.Role{ID: "role-1", Name: "08:00 PM"}, nil),
		m.mockRoleClient.EXPECT().GuildRoles(ctx, "guild-1").
			Return([]entity.Role{{ID: "role-1", Name: "08:00 PM"}}, nil),
	)
	m.mockRegistryRepo.EXPECT().Replace("guild-1", gomock.Any()).Return(nil)

	first, err := registry.GetOrCreateRole(ctx, "guild-1", "Atlantic/Reykjavik")
	require.NoError(t, err)

	// A different member of the same class must resolve to the same role
	// without a second create.
	second, err := registry.GetOrCreateRole(ctx, "guild-1", "Africa/Abidjan")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRegistryService_GetOrCreateRole_PrunesDeletedRole(t *testing.T) {
	ctx := context.Background()
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	registry := newTestRegistry(t, m)

	stale := []entity.RoleRecord{
		{GuildID: "guild-1", RoleID: "role-gone", ZoneID: "Atlantic/Reykjavik"},
	}
	m.mockRegistryRepo.EXPECT().GetByGuild("guild-1").Return(stale, nil)

	// The bound role was deleted out of band.
	m.mockRoleClient.EXPECT().GuildRoles(ctx, "guild-1").Return(nil, nil)
	m.mockPreferenceRepo.EXPECT().Get("guild-1").Return(nil, nil)
	m.mockRoleClient.EXPECT().
		CreateRole(ctx, "guild-1", "08:00 PM", gomock.Nil()).
		Return(entity.Role{ID: "role-new", Name: "08:00 PM"}, nil)

	m.mockRegistryRepo.EXPECT().Replace("guild-1", gomock.Any()).DoAndReturn(
		func(guildID string, records []entity.RoleRecord) error {
			require.Len(t, records, 1)
			assert.Equal(t, "role-new", records[0].RoleID)
			return nil
		},
	)

	roleID, err := registry.GetOrCreateRole(ctx, "guild-1", "Atlantic/Reykjavik")
	require.NoError(t, err)
	assert.Equal(t, "role-new", roleID)
}

func TestRegistryService_GetOrCreateRole_UnknownZone(t *testing.T) {
	ctx := context.Background()
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	registry := newTestRegistry(t, m)

	_, err := registry.GetOrCreateRole(ctx, "guild-1", "Mars/Olympus_Mons")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidZone)
}

func TestRegistryService_GetOrCreateRole_ColorsEnabled(t *testing.T) {
	ctx := context.Background()
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	registry := newTestRegistry(t, m)

	m.mockRegistryRepo.EXPECT().GetByGuild("guild-1").Return(nil, nil)
	m.mockRoleClient.EXPECT().GuildRoles(ctx, "guild-1").Return(nil, nil)
	m.mockPreferenceRepo.EXPECT().Get("guild-1").
		Return(&entity.GuildPreference{GuildID: "guild-1", ColorsEnabled: true}, nil)

	_, local := timezone.LocalTimeLabel(testNow(), time.UTC)
	wantColor := timezone.ColorFor(local)

	m.mockRoleClient.EXPECT().
		CreateRole(ctx, "guild-1", "08:00 PM", gomock.Any()).
		DoAndReturn(func(ctx context.Context, guildID, name string, color *int) (entity.Role, error) {
			require.NotNil(t, color)
			assert.Equal(t, wantColor, *color)
			return entity.Role{ID: "role-1", Name: name}, nil
		})
	m.mockRegistryRepo.EXPECT().Replace("guild-1", gomock.Any()).Return(nil)

	_, err := registry.GetOrCreateRole(ctx, "guild-1", "Atlantic/Reykjavik")
	require.NoError(t, err)
}

func TestRegistryService_GetOrCreateRole_CreateFailure(t *testing.T) {
	ctx := context.Background()
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	registry := newTestRegistry(t, m)

	m.mockRegistryRepo.EXPECT().GetByGuild("guild-1").Return(nil, nil)
	m.mockRoleClient.EXPECT().GuildRoles(ctx, "guild-1").Return(nil, nil)
	m.mockPreferenceRepo.EXPECT().Get("guild-1").Return(nil, nil)
	m.mockRoleClient.EXPECT().
		CreateRole(ctx, "guild-1", "08:00 PM", gomock.Nil()).
		Return(entity.Role{}, errors.New("missing permissions"))

	_, err := registry.GetOrCreateRole(ctx, "guild-1", "Atlantic/Reykjavik")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing permissions")
}

func TestRegistryService_GetOrCreateRole_ConcurrentEquivalentZones(t *testing.T) {
	ctx := context.Background()
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	registry := newTestRegistry(t, m)

	var liveMu sync.Mutex
	var live []entity.Role

	m.mockRegistryRepo.EXPECT().GetByGuild("guild-1").Return(nil, nil)
	m.mockPreferenceRepo.EXPECT().Get("guild-1").Return(nil, nil).AnyTimes()

	m.mockRoleClient.EXPECT().GuildRoles(ctx, "guild-1").DoAndReturn(
		func(ctx context.Context, guildID string) ([]entity.Role, error) {
			liveMu.Lock()
			defer liveMu.Unlock()
			return append([]entity.Role(nil), live...), nil
		},
	).Times(2)

	// Exactly one create, no matter the interleaving.
	m.mockRoleClient.EXPECT().
		CreateRole(ctx, "guild-1", "08:00 PM", gomock.Nil()).
		DoAndReturn(func(ctx context.Context, guildID, name string, color *int) (entity.Role, error) {
			role := entity.Role{ID: "role-1", Name: name}
			liveMu.Lock()
			live = append(live, role)
			liveMu.Unlock()
			return role, nil
		}).Times(1)

	m.mockRegistryRepo.EXPECT().Replace("guild-1", gomock.Any()).Return(nil).Times(1)

	var wg sync.WaitGroup
	results := make([]string, 2)
	for i, zoneID := range []string{"Atlantic/Reykjavik", "Africa/Abidjan"} {
		wg.Add(1)
		go func(i int, zoneID string) {
			defer wg.Done()
			roleID, err := registry.GetOrCreateRole(ctx, "guild-1", zoneID)
			assert.NoError(t, err)
			results[i] = roleID
		}(i, zoneID)
	}
	wg.Wait()

	assert.Equal(t, results[0], results[1])
}

func TestRegistryService_EraseTimeRoles(t *testing.T) {
	ctx := context.Background()
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	registry := newTestRegistry(t, m)

	records := []entity.RoleRecord{
		{GuildID: "guild-1", RoleID: "role-1", ZoneID: "Atlantic/Reykjavik"},
	}
	m.mockRegistryRepo.EXPECT().GetByGuild("guild-1").Return(records, nil)

	m.mockRoleClient.EXPECT().GuildRoles(ctx, "guild-1").Return([]entity.Role{
		{ID: "role-1", Name: "08:00 PM"},
		{ID: "role-2", Name: "Admins"},
		{ID: "role-3", Name: "11:30 AM"},
	}, nil)

	// Only the time-shaped names go, tracked or not.
	m.mockRoleClient.EXPECT().DeleteRole(ctx, "guild-1", "role-1").Return(nil)
	m.mockRoleClient.EXPECT().DeleteRole(ctx, "guild-1", "role-3").Return(nil)

	m.mockRegistryRepo.EXPECT().Replace("guild-1", gomock.Any()).DoAndReturn(
		func(guildID string, records []entity.RoleRecord) error {
			assert.Empty(t, records)
			return nil
		},
	)

	deleted, err := registry.EraseTimeRoles(ctx, "guild-1")
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)
}

func TestRegistryService_EraseTimeRoles_NothingToDo(t *testing.T) {
	ctx := context.Background()
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	registry := newTestRegistry(t, m)

	m.mockRegistryRepo.EXPECT().GetByGuild("guild-1").Return(nil, nil)
	m.mockRoleClient.EXPECT().GuildRoles(ctx, "guild-1").Return([]entity.Role{
		{ID: "role-2", Name: "Admins"},
	}, nil)

	deleted, err := registry.EraseTimeRoles(ctx, "guild-1")
	require.NoError(t, err)
	assert.Zero(t, deleted)
}

func TestRegistryService_LoadAll(t *testing.T) {
	ctx := context.Background()
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	registry := newTestRegistry(t, m)

	m.mockRegistryRepo.EXPECT().ListGuildIDs().Return([]string{"guild-1", "guild-2"}, nil)
	m.mockRegistryRepo.EXPECT().GetByGuild("guild-1").Return(nil, nil)
	m.mockRegistryRepo.EXPECT().GetByGuild("guild-2").Return(nil, nil)

	require.NoError(t, registry.LoadAll(ctx))
	assert.Equal(t, []string{"guild-1", "guild-2"}, registry.guildIDs())
}
