package contract

import "context"

// TimeZoneService is the entry point the interaction layer calls with an
// already-selected zone id.
type TimeZoneService interface {
	AssignTimeZone(ctx context.Context, guildID, memberID, zoneID string) error
	EraseTimeRoles(ctx context.Context, guildID string) (int, error)
	SetColorsEnabled(ctx context.Context, guildID string, enabled bool) error
}
