package entity

import "time"

// RoleRecord binds one Discord role to a time zone. The bound zone is any
// single member of an equivalence class; the record stands for the whole
// class within its guild.
type RoleRecord struct {
	GuildID   string    `json:"guild_id" db:"guild_id"`
	RoleID    string    `json:"role_id" db:"role_id"`
	ZoneID    string    `json:"zone_id" db:"zone_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Role is the external label as the Discord boundary reports it.
type Role struct {
	ID    string
	Name  string
	Color int
}

// GuildPreference holds the per-guild settings this core reads.
type GuildPreference struct {
	GuildID       string    `json:"guild_id" db:"guild_id"`
	ColorsEnabled bool      `json:"colors_enabled" db:"colors_enabled"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}
