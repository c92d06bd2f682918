package contract

import (
	"context"

	"github.com/diegoclair/discord-timezone-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Registry() RegistryRepo
	Preference() PreferenceRepo
}

// RegistryRepo persists the per-guild role records. The registry is saved as
// a whole snapshot: in-memory state is the source of truth while the process
// lives, storage is a restart snapshot.
type RegistryRepo interface {
	GetByGuild(guildID string) ([]entity.RoleRecord, error)
	Replace(guildID string, records []entity.RoleRecord) error
	ListGuildIDs() ([]string, error)
}

// PreferenceRepo stores the per-guild settings the core reads.
type PreferenceRepo interface {
	Get(guildID string) (*entity.GuildPreference, error)
	Upsert(pref *entity.GuildPreference) error
}
