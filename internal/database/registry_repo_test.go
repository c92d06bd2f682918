package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/diegoclair/discord-timezone-bot/internal/domain/contract"
	"github.com/diegoclair/discord-timezone-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryRepository_ReplaceAndGetByGuild(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	dm := NewInstance(db)

	createdAt := time.Date(2024, 6, 1, 19, 47, 0, 0, time.UTC)
	records := []entity.RoleRecord{
		{GuildID: "guild-1", RoleID: "role-1", ZoneID: "America/New_York", CreatedAt: createdAt},
		{GuildID: "guild-1", RoleID: "role-2", ZoneID: "Europe/Paris", CreatedAt: createdAt},
	}

	require.NoError(t, dm.Registry().Replace("guild-1", records))

	got, err := dm.Registry().GetByGuild("guild-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "role-1", got[0].RoleID)
	assert.Equal(t, "America/New_York", got[0].ZoneID)
	assert.Equal(t, "role-2", got[1].RoleID)
	assert.True(t, createdAt.Equal(got[0].CreatedAt))
}

func TestRegistryRepository_GetByGuild_EmptyGuild(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	dm := NewInstance(db)

	got, err := dm.Registry().GetByGuild("unknown-guild")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRegistryRepository_Replace_OverwritesSnapshot(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	dm := NewInstance(db)

	first := []entity.RoleRecord{
		{GuildID: "guild-1", RoleID: "role-1", ZoneID: "America/New_York", CreatedAt: time.Now().UTC()},
		{GuildID: "guild-1", RoleID: "role-2", ZoneID: "Europe/Paris", CreatedAt: time.Now().UTC()},
	}
	require.NoError(t, dm.Registry().Replace("guild-1", first))

	second := []entity.RoleRecord{
		{GuildID: "guild-1", RoleID: "role-3", ZoneID: "Asia/Tokyo", CreatedAt: time.Now().UTC()},
	}
	require.NoError(t, dm.Registry().Replace("guild-1", second))

	got, err := dm.Registry().GetByGuild("guild-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "role-3", got[0].RoleID)
}

func TestRegistryRepository_Replace_DoesNotTouchOtherGuilds(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	dm := NewInstance(db)

	require.NoError(t, dm.Registry().Replace("guild-1", []entity.RoleRecord{
		{GuildID: "guild-1", RoleID: "role-1", ZoneID: "America/New_York", CreatedAt: time.Now().UTC()},
	}))
	require.NoError(t, dm.Registry().Replace("guild-2", []entity.RoleRecord{
		{GuildID: "guild-2", RoleID: "role-2", ZoneID: "Europe/Paris", CreatedAt: time.Now().UTC()},
	}))

	require.NoError(t, dm.Registry().Replace("guild-1", nil))

	got, err := dm.Registry().GetByGuild("guild-2")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "role-2", got[0].RoleID)
}

func TestRegistryRepository_ListGuildIDs(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	dm := NewInstance(db)

	require.NoError(t, dm.Registry().Replace("guild-b", []entity.RoleRecord{
		{GuildID: "guild-b", RoleID: "role-1", ZoneID: "America/New_York", CreatedAt: time.Now().UTC()},
		{GuildID: "guild-b", RoleID: "role-2", ZoneID: "Europe/Paris", CreatedAt: time.Now().UTC()},
	}))
	require.NoError(t, dm.Registry().Replace("guild-a", []entity.RoleRecord{
		{GuildID: "guild-a", RoleID: "role-3", ZoneID: "Asia/Tokyo", CreatedAt: time.Now().UTC()},
	}))

	guildIDs, err := dm.Registry().ListGuildIDs()
	require.NoError(t, err)
	assert.Equal(t, []string{"guild-a", "guild-b"}, guildIDs)
}

func TestInstance_WithTransaction_RollsBackOnError(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	dm := NewInstance(db)
	ctx := context.Background()

	err := dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		if err := tx.Registry().Replace("guild-1", []entity.RoleRecord{
			{GuildID: "guild-1", RoleID: "role-1", ZoneID: "America/New_York", CreatedAt: time.Now().UTC()},
		}); err != nil {
			return err
		}
		return errors.New("abort")
	})
	require.Error(t, err)

	got, err := dm.Registry().GetByGuild("guild-1")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestInstance_WithTransaction_Commits(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	dm := NewInstance(db)
	ctx := context.Background()

	err := dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		return tx.Registry().Replace("guild-1", []entity.RoleRecord{
			{GuildID: "guild-1", RoleID: "role-1", ZoneID: "America/New_York", CreatedAt: time.Now().UTC()},
		})
	})
	require.NoError(t, err)

	got, err := dm.Registry().GetByGuild("guild-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
}
