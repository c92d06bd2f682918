package database

import (
	"fmt"

	"github.com/diegoclair/discord-timezone-bot/internal/domain/contract"
	"github.com/diegoclair/discord-timezone-bot/internal/domain/entity"
)

type registryRepository struct {
	db dbConn
}

func newRegistryRepository(db dbConn) contract.RegistryRepo {
	return &registryRepository{db: db}
}

func (r *registryRepository) GetByGuild(guildID string) ([]entity.RoleRecord, error) {
	query := `
		SELECT guild_id, role_id, zone_id, created_at
		FROM role_records
		WHERE guild_id = ?
		ORDER BY id
	`

	rows, err := r.db.Query(query, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to get role records: %w", err)
	}
	defer rows.Close()

	var records []entity.RoleRecord
	for rows.Next() {
		var record entity.RoleRecord
		err := rows.Scan(
			&record.GuildID,
			&record.RoleID,
			&record.ZoneID,
			&record.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan role record: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate role records: %w", err)
	}

	return records, nil
}

// Replace rewrites a guild's registry snapshot. Callers run it inside
// WithTransaction so a failed insert never leaves the guild half-saved.
func (r *registryRepository) Replace(guildID string, records []entity.RoleRecord) error {
	if _, err := r.db.Exec(`DELETE FROM role_records WHERE guild_id = ?`, guildID); err != nil {
		return fmt.Errorf("failed to clear role records: %w", err)
	}

	query := `
		INSERT INTO role_records (guild_id, role_id, zone_id, created_at)
		VALUES (?, ?, ?, ?)
	`

	for _, record := range records {
		_, err := r.db.Exec(query,
			guildID,
			record.RoleID,
			record.ZoneID,
			record.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert role record: %w", err)
		}
	}

	return nil
}

func (r *registryRepository) ListGuildIDs() ([]string, error) {
	rows, err := r.db.Query(`SELECT DISTINCT guild_id FROM role_records ORDER BY guild_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list guilds: %w", err)
	}
	defer rows.Close()

	var guildIDs []string
	for rows.Next() {
		var guildID string
		if err := rows.Scan(&guildID); err != nil {
			return nil, fmt.Errorf("failed to scan guild id: %w", err)
		}
		guildIDs = append(guildIDs, guildID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate guilds: %w", err)
	}

	return guildIDs, nil
}
