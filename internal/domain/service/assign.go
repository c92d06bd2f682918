package service

import (
	"context"
	"fmt"
	"log"

	"github.com/diegoclair/discord-timezone-bot/internal/domain"
	"github.com/diegoclair/discord-timezone-bot/internal/domain/contract"
	"github.com/diegoclair/discord-timezone-bot/internal/domain/entity"
	"github.com/diegoclair/discord-timezone-bot/internal/timezone"
)

type timeZoneService struct {
	dm           contract.DataManager
	registry     *registryService
	roleClient   contract.RoleClient
	index        *timezone.ClassIndex
	synchronizer *synchronizer
}

func newTimeZone(dm contract.DataManager, registry *registryService, roleClient contract.RoleClient, index *timezone.ClassIndex) *timeZoneService {
	return &timeZoneService{
		dm:           dm,
		registry:     registry,
		roleClient:   roleClient,
		index:        index,
		synchronizer: nil, // Will be set later to avoid circular dependency
	}
}

func (s *timeZoneService) SetSynchronizer(synchronizer *synchronizer) {
	s.synchronizer = synchronizer
}

// AssignTimeZone resolves the role for the member's chosen zone and grants
// it, first revoking every time-shaped role the member holds so stale labels
// from earlier zone changes never stack up. Partial failure is not rolled
// back; a later assignment repairs the member's state.
func (s *timeZoneService) AssignTimeZone(ctx context.Context, guildID, memberID, zoneID string) error {
	_, support := s.index.Validate(zoneID)
	switch support {
	case timezone.SupportInvalid:
		return fmt.Errorf("%w: %q", domain.ErrInvalidZone, zoneID)
	case timezone.SupportCustom:
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedZone, zoneID)
	}

	roleID, err := s.registry.GetOrCreateRole(ctx, guildID, zoneID)
	if err != nil {
		return err
	}

	held, err := s.roleClient.MemberRoles(ctx, guildID, memberID)
	if err != nil {
		return fmt.Errorf("failed to list member roles: %w", err)
	}

	for _, role := range held {
		if !domain.TimeLabelRegex.MatchString(role.Name) {
			continue
		}
		if err := s.roleClient.RevokeRole(ctx, guildID, memberID, role.ID); err != nil {
			return fmt.Errorf("failed to revoke role %s: %w", role.ID, err)
		}
		log.Printf("Revoked time role %q from member %s", role.Name, memberID)
	}

	if err := s.roleClient.GrantRole(ctx, guildID, memberID, roleID); err != nil {
		return fmt.Errorf("failed to grant role %s: %w", roleID, err)
	}

	log.Printf("Assigned member %s the time role %s in guild %s", memberID, roleID, guildID)
	return nil
}

// EraseTimeRoles deletes every time-shaped role in the guild.
func (s *timeZoneService) EraseTimeRoles(ctx context.Context, guildID string) (int, error) {
	return s.registry.EraseTimeRoles(ctx, guildID)
}

// SetColorsEnabled persists the guild's color preference and immediately
// resynchronizes its roles, independent of the main cadence.
func (s *timeZoneService) SetColorsEnabled(ctx context.Context, guildID string, enabled bool) error {
	pref := &entity.GuildPreference{
		GuildID:       guildID,
		ColorsEnabled: enabled,
	}
	if err := s.dm.Preference().Upsert(pref); err != nil {
		return fmt.Errorf("failed to save preference: %w", err)
	}

	if s.synchronizer != nil {
		if err := s.synchronizer.SyncGuildColors(ctx, guildID); err != nil {
			// Preference is saved; the next pass re-applies colors anyway.
			log.Printf("Failed to resync colors for guild %s: %v", guildID, err)
		}
	}
	return nil
}
