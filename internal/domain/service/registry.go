package service

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/diegoclair/discord-timezone-bot/internal/domain"
	"github.com/diegoclair/discord-timezone-bot/internal/domain/contract"
	"github.com/diegoclair/discord-timezone-bot/internal/domain/entity"
	"github.com/diegoclair/discord-timezone-bot/internal/timezone"
)

// guildRegistry is the in-memory registry of one guild's time roles. The two
// lookup maps are derived from records and rebuilt on every structural
// change, never patched incrementally.
type guildRegistry struct {
	records []entity.RoleRecord
	byZone  map[string]*entity.RoleRecord
	byRole  map[string]*entity.RoleRecord
}

// rebuildIndices rebuilds the lookup maps. byZone is expanded across every
// member of each record's equivalence class, so any equivalent zone id
// resolves to the same record.
func (g *guildRegistry) rebuildIndices(index *timezone.ClassIndex) {
	g.byZone = make(map[string]*entity.RoleRecord, len(g.records))
	g.byRole = make(map[string]*entity.RoleRecord, len(g.records))

	for i := range g.records {
		rec := &g.records[i]
		g.byRole[rec.RoleID] = rec
		if _, ok := g.byZone[rec.ZoneID]; !ok {
			g.byZone[rec.ZoneID] = rec
		}
	}

	for i := range g.records {
		rec := &g.records[i]
		class, err := index.ClassOf(rec.ZoneID)
		if err != nil {
			continue
		}
		for _, member := range class.Members {
			if _, ok := g.byZone[member]; !ok {
				g.byZone[member] = rec
			}
		}
	}
}

// heal points every class member without a binding at the surviving record.
// Covers zones a loaded snapshot did not expand to, e.g. after the host's
// zone database changed between runs.
func (g *guildRegistry) heal(class *timezone.EquivalenceClass, rec *entity.RoleRecord) bool {
	healed := false
	for _, member := range class.Members {
		if _, ok := g.byZone[member]; !ok {
			g.byZone[member] = rec
			healed = true
		}
	}
	return healed
}

func (g *guildRegistry) remove(roleID string) {
	for i := range g.records {
		if g.records[i].RoleID == roleID {
			g.records = append(g.records[:i], g.records[i+1:]...)
			return
		}
	}
}

// guildGuard serializes all access to one guild's registry.
type guildGuard struct {
	mu       sync.Mutex
	registry *guildRegistry
}

type registryService struct {
	dm         contract.DataManager
	roleClient contract.RoleClient
	index      *timezone.ClassIndex
	guards     sync.Map // guild id -> *guildGuard
	now        func() time.Time
}

func newRegistry(dm contract.DataManager, roleClient contract.RoleClient, index *timezone.ClassIndex) *registryService {
	return &registryService{
		dm:         dm,
		roleClient: roleClient,
		index:      index,
		now:        time.Now,
	}
}

// GetOrCreateRole resolves the role standing for zoneID's equivalence class,
// creating it if no live one exists. For a given guild at most one role is
// ever created per class, even under concurrent calls for equivalent zone
// ids: the guild guard is held across the whole lookup-create-persist
// sequence.
func (s *registryService) GetOrCreateRole(ctx context.Context, guildID, zoneID string) (string, error) {
	class, err := s.index.ClassOf(zoneID)
	if err != nil {
		return "", err
	}

	var roleID string
	err = s.withGuild(guildID, func(g *guildRegistry) error {
		dirty := false
		defer func() {
			if dirty {
				s.save(ctx, guildID, g)
			}
		}()

		live, err := s.liveRoles(ctx, guildID)
		if err != nil {
			return err
		}

		for {
			rec := findClassRecord(g, class)
			if rec == nil {
				break
			}
			if _, alive := live[rec.RoleID]; alive {
				if g.heal(class, rec) {
					dirty = true
				}
				roleID = rec.RoleID
				return nil
			}
			// Bound role was deleted out of band, drop the stale record.
			log.Printf("Role %s for zone %q in guild %s no longer exists, pruning", rec.RoleID, rec.ZoneID, guildID)
			g.remove(rec.RoleID)
			g.rebuildIndices(s.index)
			dirty = true
		}

		// No live role anywhere in the class, create one bound to the
		// representative zone.
		rep := class.RepresentativeID
		desc, ok := s.index.DescriptorOf(rep)
		if !ok {
			return fmt.Errorf("no descriptor for representative zone %q", rep)
		}

		label, local := timezone.LocalTimeLabel(s.now(), desc.Location)
		var color *int
		if s.colorsEnabled(guildID) {
			c := timezone.ColorFor(local)
			color = &c
		}

		role, err := s.roleClient.CreateRole(ctx, guildID, label, color)
		if err != nil {
			return fmt.Errorf("failed to create role for zone %q: %w", rep, err)
		}

		g.records = append(g.records, entity.RoleRecord{
			GuildID:   guildID,
			RoleID:    role.ID,
			ZoneID:    rep,
			CreatedAt: s.now().UTC(),
		})
		g.rebuildIndices(s.index)
		dirty = true
		roleID = role.ID
		log.Printf("Created role %s (%q) for zone %q in guild %s", role.ID, label, rep, guildID)
		return nil
	})

	return roleID, err
}

// EraseTimeRoles deletes every role in the guild whose name looks like a time
// label and clears the registry. Returns how many roles were deleted.
func (s *registryService) EraseTimeRoles(ctx context.Context, guildID string) (int, error) {
	deleted := 0
	err := s.withGuild(guildID, func(g *guildRegistry) error {
		roles, err := s.roleClient.GuildRoles(ctx, guildID)
		if err != nil {
			return err
		}

		for _, role := range roles {
			if !domain.TimeLabelRegex.MatchString(role.Name) {
				continue
			}
			if err := s.roleClient.DeleteRole(ctx, guildID, role.ID); err != nil {
				return fmt.Errorf("failed to delete role %s: %w", role.ID, err)
			}
			deleted++
		}

		if len(g.records) > 0 {
			g.records = nil
			g.rebuildIndices(s.index)
			s.save(ctx, guildID, g)
		}
		return nil
	})
	return deleted, err
}

// LoadAll preloads the registry of every guild known to storage.
func (s *registryService) LoadAll(ctx context.Context) error {
	guildIDs, err := s.dm.Registry().ListGuildIDs()
	if err != nil {
		return fmt.Errorf("failed to list guilds: %w", err)
	}
	for _, guildID := range guildIDs {
		if err := s.withGuild(guildID, func(*guildRegistry) error { return nil }); err != nil {
			return err
		}
	}
	return nil
}

// withGuild runs fn with exclusive access to the guild's registry, loading it
// on first reference. Assignment and the synchronizer both come through
// here, which is what serializes them per guild.
func (s *registryService) withGuild(guildID string, fn func(g *guildRegistry) error) error {
	guard := s.guard(guildID)
	guard.mu.Lock()
	defer guard.mu.Unlock()

	if guard.registry == nil {
		records, err := s.dm.Registry().GetByGuild(guildID)
		if err != nil {
			// First-use semantics: start empty, storage remains a snapshot.
			log.Printf("Failed to load registry for guild %s, starting empty: %v", guildID, err)
			records = nil
		}
		guard.registry = &guildRegistry{records: records}
		guard.registry.rebuildIndices(s.index)
	}

	return fn(guard.registry)
}

func (s *registryService) guard(guildID string) *guildGuard {
	g, _ := s.guards.LoadOrStore(guildID, &guildGuard{})
	return g.(*guildGuard)
}

// guildIDs snapshots every guild referenced so far, in stable order.
func (s *registryService) guildIDs() []string {
	var ids []string
	s.guards.Range(func(key, _ any) bool {
		ids = append(ids, key.(string))
		return true
	})
	sort.Strings(ids)
	return ids
}

func (s *registryService) liveRoles(ctx context.Context, guildID string) (map[string]entity.Role, error) {
	roles, err := s.roleClient.GuildRoles(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to list live roles: %w", err)
	}
	live := make(map[string]entity.Role, len(roles))
	for _, role := range roles {
		live[role.ID] = role
	}
	return live, nil
}

// save writes the guild's registry snapshot. Failure is logged and non-fatal:
// the in-memory registry stays authoritative until the next successful save.
func (s *registryService) save(ctx context.Context, guildID string, g *guildRegistry) {
	err := s.dm.WithTransaction(ctx, func(dm contract.DataManager) error {
		return dm.Registry().Replace(guildID, g.records)
	})
	if err != nil {
		log.Printf("Failed to save registry for guild %s: %v", guildID, err)
	}
}

func (s *registryService) colorsEnabled(guildID string) bool {
	pref, err := s.dm.Preference().Get(guildID)
	if err != nil {
		log.Printf("Failed to read preferences for guild %s: %v", guildID, err)
		return false
	}
	return pref != nil && pref.ColorsEnabled
}

func findClassRecord(g *guildRegistry, class *timezone.EquivalenceClass) *entity.RoleRecord {
	for _, member := range class.Members {
		if rec, ok := g.byZone[member]; ok {
			return rec
		}
	}
	return nil
}
