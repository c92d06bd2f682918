package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/diegoclair/discord-timezone-bot/internal/domain/contract"
	"github.com/diegoclair/discord-timezone-bot/internal/timezone"
)

// synchronizer owns the single recurring job of this bot: on every quarter
// hour boundary it recomputes the display text of every guild's time roles
// and pushes renames (and recolors) to Discord.
type synchronizer struct {
	registry   *registryService
	roleClient contract.RoleClient
	index      *timezone.ClassIndex
	stopChan   chan struct{}
	running    bool
	now        func() time.Time
}

func newSynchronizer(registry *registryService, roleClient contract.RoleClient, index *timezone.ClassIndex) *synchronizer {
	return &synchronizer{
		registry:   registry,
		roleClient: roleClient,
		index:      index,
		stopChan:   make(chan struct{}),
		running:    false,
		now:        time.Now,
	}
}

func (s *synchronizer) Start() {
	if s.running {
		return
	}
	s.running = true
	log.Println("Synchronizer starting...")
	go s.mainLoop()
}

func (s *synchronizer) Stop() {
	if !s.running {
		return
	}
	log.Println("Synchronizer stopping...")
	close(s.stopChan)
	s.running = false
}

func (s *synchronizer) mainLoop() {
	now := s.now()
	delay := timezone.NextBoundaryDelay(now)

	// If the next boundary is over 15 minutes away, update once right now.
	if delay > 15*time.Minute {
		if err := s.runPass(context.Background(), now, true); err != nil {
			log.Printf("Initial pass failed: %v", err)
		}
	}

	for {
		timer := time.NewTimer(delay)
		select {
		case <-timer.C:
		case <-s.stopChan:
			timer.Stop()
			return
		}

		now = s.now()
		delay = timezone.NextBoundaryDelay(now)
		log.Printf("Updating time roles at %s", now.Format(time.RFC3339))
		if err := s.runPass(context.Background(), now, false); err != nil {
			// Try again in a minute, then fall back to the normal cadence.
			log.Printf("Pass failed, retrying in 1 minute: %v", err)
			delay = time.Minute
		}
	}
}

// runPass updates every known guild. The first failing guild aborts the
// remainder of the pass; the loop's fast retry picks the rest up.
func (s *synchronizer) runPass(ctx context.Context, now time.Time, force bool) error {
	for _, guildID := range s.registry.guildIDs() {
		if err := s.RunGuildPass(ctx, guildID, now, force); err != nil {
			return fmt.Errorf("guild %s: %w", guildID, err)
		}
	}
	return nil
}

// RunGuildPass renames every time role in one guild to its current label.
// Unchanged names are skipped unless force is set. Updates are issued with no
// throttling toward Discord's own rate limits.
func (s *synchronizer) RunGuildPass(ctx context.Context, guildID string, now time.Time, force bool) error {
	return s.registry.withGuild(guildID, func(g *guildRegistry) error {
		if len(g.records) == 0 {
			return nil
		}

		colors := s.registry.colorsEnabled(guildID)
		live, err := s.registry.liveRoles(ctx, guildID)
		if err != nil {
			return err
		}

		for i := range g.records {
			rec := g.records[i]
			role, ok := live[rec.RoleID]
			if !ok {
				// Deleted out of band; the next assignment prunes the record.
				continue
			}
			desc, ok := s.index.DescriptorOf(rec.ZoneID)
			if !ok {
				continue
			}

			label, local := timezone.LocalTimeLabel(now, desc.Location)
			if !force && role.Name == label {
				continue
			}

			if err := s.roleClient.RenameRole(ctx, guildID, rec.RoleID, label); err != nil {
				return fmt.Errorf("failed to rename role %s: %w", rec.RoleID, err)
			}
			if colors {
				if err := s.roleClient.RecolorRole(ctx, guildID, rec.RoleID, timezone.ColorFor(local)); err != nil {
					return fmt.Errorf("failed to recolor role %s: %w", rec.RoleID, err)
				}
			}
		}
		return nil
	})
}

// OnGuildAvailable runs a forced pass for a guild that just became reachable,
// unless a scheduled boundary is close anyway. Keeps a rejoined guild from
// showing stale labels for up to 15 minutes.
func (s *synchronizer) OnGuildAvailable(guildID string) {
	now := s.now()
	if timezone.NextBoundaryDelay(now) <= 5*time.Minute {
		return
	}
	if err := s.RunGuildPass(context.Background(), guildID, now, true); err != nil {
		log.Printf("Guild-available pass for %s failed: %v", guildID, err)
	}
}

// SyncGuildColors reapplies colors after the guild's preference changed:
// every live role is recolored (cleared when colors were turned off), names
// only when the computed text actually differs.
func (s *synchronizer) SyncGuildColors(ctx context.Context, guildID string) error {
	now := s.now()
	return s.registry.withGuild(guildID, func(g *guildRegistry) error {
		if len(g.records) == 0 {
			return nil
		}

		enabled := s.registry.colorsEnabled(guildID)
		live, err := s.registry.liveRoles(ctx, guildID)
		if err != nil {
			return err
		}

		for i := range g.records {
			rec := g.records[i]
			role, ok := live[rec.RoleID]
			if !ok {
				continue
			}
			desc, ok := s.index.DescriptorOf(rec.ZoneID)
			if !ok {
				continue
			}

			label, local := timezone.LocalTimeLabel(now, desc.Location)
			if role.Name != label {
				if err := s.roleClient.RenameRole(ctx, guildID, rec.RoleID, label); err != nil {
					return fmt.Errorf("failed to rename role %s: %w", rec.RoleID, err)
				}
			}

			color := 0
			if enabled {
				color = timezone.ColorFor(local)
			}
			if err := s.roleClient.RecolorRole(ctx, guildID, rec.RoleID, color); err != nil {
				return fmt.Errorf("failed to recolor role %s: %w", rec.RoleID, err)
			}
		}
		return nil
	})
}
