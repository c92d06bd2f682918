package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/diegoclair/discord-timezone-bot/internal/domain/contract"
	"github.com/diegoclair/discord-timezone-bot/internal/domain/entity"
)

// Client implements contract.RoleClient on top of a discordgo session.
type Client struct {
	session *discordgo.Session
}

func NewClient(session *discordgo.Session) contract.RoleClient {
	return &Client{session: session}
}

func (c *Client) GuildRoles(ctx context.Context, guildID string) ([]entity.Role, error) {
	roles, err := c.session.GuildRoles(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to list guild roles: %w", err)
	}

	result := make([]entity.Role, 0, len(roles))
	for _, role := range roles {
		result = append(result, entity.Role{
			ID:    role.ID,
			Name:  role.Name,
			Color: role.Color,
		})
	}
	return result, nil
}

func (c *Client) CreateRole(ctx context.Context, guildID, name string, color *int) (entity.Role, error) {
	mentionable := false
	params := &discordgo.RoleParams{
		Name:        name,
		Color:       color,
		Mentionable: &mentionable,
	}

	role, err := c.session.GuildRoleCreate(guildID, params, discordgo.WithContext(ctx))
	if err != nil {
		return entity.Role{}, fmt.Errorf("failed to create role: %w", err)
	}

	return entity.Role{ID: role.ID, Name: role.Name, Color: role.Color}, nil
}

func (c *Client) RenameRole(ctx context.Context, guildID, roleID, name string) error {
	params := &discordgo.RoleParams{Name: name}
	if _, err := c.session.GuildRoleEdit(guildID, roleID, params, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to rename role: %w", err)
	}
	return nil
}

func (c *Client) RecolorRole(ctx context.Context, guildID, roleID string, color int) error {
	params := &discordgo.RoleParams{Color: &color}
	if _, err := c.session.GuildRoleEdit(guildID, roleID, params, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to recolor role: %w", err)
	}
	return nil
}

func (c *Client) DeleteRole(ctx context.Context, guildID, roleID string) error {
	if err := c.session.GuildRoleDelete(guildID, roleID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to delete role: %w", err)
	}
	return nil
}

func (c *Client) GrantRole(ctx context.Context, guildID, userID, roleID string) error {
	if err := c.session.GuildMemberRoleAdd(guildID, userID, roleID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to grant role: %w", err)
	}
	return nil
}

func (c *Client) RevokeRole(ctx context.Context, guildID, userID, roleID string) error {
	if err := c.session.GuildMemberRoleRemove(guildID, userID, roleID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to revoke role: %w", err)
	}
	return nil
}

func (c *Client) MemberRoles(ctx context.Context, guildID, userID string) ([]entity.Role, error) {
	member, err := c.session.GuildMember(guildID, userID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to get guild member: %w", err)
	}

	guildRoles, err := c.GuildRoles(ctx, guildID)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]entity.Role, len(guildRoles))
	for _, role := range guildRoles {
		byID[role.ID] = role
	}

	var result []entity.Role
	for _, roleID := range member.Roles {
		if role, ok := byID[roleID]; ok {
			result = append(result, role)
		}
	}
	return result, nil
}
