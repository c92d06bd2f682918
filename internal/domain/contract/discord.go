package contract

import (
	"context"

	"github.com/diegoclair/discord-timezone-bot/internal/domain/entity"
)

// RoleClient defines the interface for the Discord role operations this bot
// needs. This allows mocking in tests while keeping the real implementation
// simple. Every call takes a context so a single unresponsive request cannot
// stall a whole synchronization pass.
type RoleClient interface {
	// GuildRoles lists the guild's live roles.
	GuildRoles(ctx context.Context, guildID string) ([]entity.Role, error)

	// CreateRole creates a role; a nil color leaves the role uncolored.
	CreateRole(ctx context.Context, guildID, name string, color *int) (entity.Role, error)

	// RenameRole changes only the role name.
	RenameRole(ctx context.Context, guildID, roleID, name string) error

	// RecolorRole changes only the role color.
	RecolorRole(ctx context.Context, guildID, roleID string, color int) error

	// DeleteRole removes the role from the guild.
	DeleteRole(ctx context.Context, guildID, roleID string) error

	// GrantRole adds the role to a member.
	GrantRole(ctx context.Context, guildID, userID, roleID string) error

	// RevokeRole removes the role from a member.
	RevokeRole(ctx context.Context, guildID, userID, roleID string) error

	// MemberRoles lists the roles a member currently holds, with names.
	MemberRoles(ctx context.Context, guildID, userID string) ([]entity.Role, error)
}
