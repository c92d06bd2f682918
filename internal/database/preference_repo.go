package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/diegoclair/discord-timezone-bot/internal/domain/contract"
	"github.com/diegoclair/discord-timezone-bot/internal/domain/entity"
)

type preferenceRepository struct {
	db dbConn
}

func newPreferenceRepository(db dbConn) contract.PreferenceRepo {
	return &preferenceRepository{db: db}
}

func (r *preferenceRepository) Get(guildID string) (*entity.GuildPreference, error) {
	pref := &entity.GuildPreference{}
	query := `
		SELECT guild_id, colors_enabled, updated_at
		FROM guild_preferences
		WHERE guild_id = ?
	`

	err := r.db.QueryRow(query, guildID).Scan(
		&pref.GuildID,
		&pref.ColorsEnabled,
		&pref.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get guild preference: %w", err)
	}

	return pref, nil
}

func (r *preferenceRepository) Upsert(pref *entity.GuildPreference) error {
	query := `
		INSERT INTO guild_preferences (guild_id, colors_enabled, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(guild_id) DO UPDATE SET
			colors_enabled = excluded.colors_enabled,
			updated_at = excluded.updated_at
	`

	pref.UpdatedAt = time.Now().UTC()
	if _, err := r.db.Exec(query, pref.GuildID, pref.ColorsEnabled, pref.UpdatedAt); err != nil {
		return fmt.Errorf("failed to upsert guild preference: %w", err)
	}

	return nil
}
