// Package tracker implements the application lifecycle service: ingestion
// with URL deduplication, partial updates with derived date stamps,
// archiving, deletion, and statistics aggregation. Every operation runs a
// full load, mutates in memory, and saves wholesale; nothing blocks on a
// concurrent request and the last writer wins.
package tracker

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jobdeck/jobdeck/internal/store"
	"github.com/jobdeck/jobdeck/pkg/types"
)

// recentWindow is the trailing window counted by Stats.RecentCount.
const recentWindow = 7 * 24 * time.Hour

// Service holds the lifecycle business rules on top of the record store.
type Service struct {
	store *store.Store
	log   zerolog.Logger

	// now is stubbed in tests for deterministic timestamps.
	now func() time.Time
}

// New returns a Service backed by the given record store.
func New(st *store.Store, log zerolog.Logger) *Service {
	return &Service{store: st, log: log, now: time.Now}
}

// List loads all records, self-heals duplicate URLs, seeds the store on
// first use, and returns the records passing the filter. The self-heal and
// the seed are persisted immediately, so a second List with no intervening
// mutation returns the same set.
func (s *Service) List(filter types.Filter) ([]types.Application, error) {
	records, err := s.loadHealed()
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		seed := seedApplication(newID(), s.now())
		if err := s.store.SaveAll([]types.Application{seed}); err != nil {
			return nil, fmt.Errorf("seeding empty store: %w", err)
		}
		records = []types.Application{seed}
	}

	out := make([]types.Application, 0, len(records))
	for _, a := range records {
		if filter.Matches(a) {
			out = append(out, a)
		}
	}
	return out, nil
}

// IngestLinks parses raw entries ("Title|URL" or freeform text containing a
// URL), skips unparsable entries and duplicates, and persists the surviving
// ones as new TODO records. Returns only the newly created records, in
// input order. An empty batch is rejected before any store access.
func (s *Service) IngestLinks(rawEntries []string) ([]types.Application, error) {
	if len(rawEntries) == 0 {
		return nil, fmt.Errorf("%w: empty batch", types.ErrInvalidInput)
	}

	records, err := s.store.LoadAll()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(records))
	for _, a := range records {
		if key := NormalizeURL(a.URL); key != "" {
			seen[key] = true
		}
	}

	now := s.now()
	var created []types.Application
	for _, raw := range rawEntries {
		title, url, ok := parseEntry(raw)
		if !ok {
			continue
		}
		key := NormalizeURL(url)
		if seen[key] {
			continue
		}
		seen[key] = true
		created = append(created, types.Application{
			ID:        newID(),
			URL:       WithScheme(url),
			LinkTitle: title,
			Status:    types.StatusTodo,
			Priority:  types.PriorityMedium,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	if len(created) == 0 {
		return []types.Application{}, nil
	}
	if err := s.store.SaveAll(append(records, created...)); err != nil {
		return nil, err
	}
	s.log.Info().Int("created", len(created)).Int("skipped", len(rawEntries)-len(created)).
		Msg("ingested links")
	return created, nil
}

// Update merges a partial patch onto the record with the given id. The
// update is applied in full or rejected in full: a URL collision with any
// other record fails with ErrDuplicateURL before anything is changed.
// Status changes stamp the matching derived date the first time only;
// UpdatedAt is always refreshed.
func (s *Service) Update(id string, patch types.Patch) (types.Application, error) {
	records, err := s.store.LoadAll()
	if err != nil {
		return types.Application{}, err
	}

	idx := indexByID(records, id)
	if idx < 0 {
		return types.Application{}, fmt.Errorf("update %s: %w", id, types.ErrNotFound)
	}

	if patch.Status != nil && !types.ValidStatus(*patch.Status) {
		return types.Application{}, fmt.Errorf("%w: unknown status %q", types.ErrInvalidInput, *patch.Status)
	}
	if patch.Priority != nil && !types.ValidPriority(*patch.Priority) {
		return types.Application{}, fmt.Errorf("%w: unknown priority %q", types.ErrInvalidInput, *patch.Priority)
	}

	if patch.URL != nil && *patch.URL != "" {
		key := NormalizeURL(*patch.URL)
		for i, other := range records {
			if i != idx && NormalizeURL(other.URL) == key && other.URL != "" {
				return types.Application{}, fmt.Errorf("url %s: %w", *patch.URL, types.ErrDuplicateURL)
			}
		}
	}

	rec := &records[idx]
	if patch.URL != nil {
		rec.URL = WithScheme(*patch.URL)
	}
	if patch.LinkTitle != nil {
		rec.LinkTitle = *patch.LinkTitle
	}
	if patch.Company != nil {
		rec.Company = *patch.Company
	}
	if patch.RoleTitle != nil {
		rec.RoleTitle = *patch.RoleTitle
	}
	if patch.Location != nil {
		rec.Location = *patch.Location
	}
	if patch.Notes != nil {
		rec.Notes = *patch.Notes
	}
	if patch.Priority != nil {
		rec.Priority = *patch.Priority
	}
	if patch.Status != nil {
		rec.MarkStatus(*patch.Status, s.now())
	}
	rec.UpdatedAt = s.now()

	if err := s.store.SaveAll(records); err != nil {
		return types.Application{}, err
	}
	return records[idx], nil
}

// Archive soft-deletes the record by transitioning it to ARCHIVED. The
// record persists and keeps its history.
func (s *Service) Archive(id string) (types.Application, error) {
	status := types.StatusArchived
	return s.Update(id, types.Patch{Status: &status})
}

// ClearLink removes the record's URL and link title. An empty URL is exempt
// from the uniqueness rule, so this never collides.
func (s *Service) ClearLink(id string) (types.Application, error) {
	empty := ""
	return s.Update(id, types.Patch{URL: &empty, LinkTitle: &empty})
}

// Delete removes the record permanently and persists the remaining list.
func (s *Service) Delete(id string) error {
	records, err := s.store.LoadAll()
	if err != nil {
		return err
	}

	idx := indexByID(records, id)
	if idx < 0 {
		return fmt.Errorf("delete %s: %w", id, types.ErrNotFound)
	}
	return s.store.SaveAll(append(records[:idx], records[idx+1:]...))
}

// Stats aggregates the current record set. Statistics are advisory: any
// internal failure yields zero-valued stats, never an error, so a storage
// blip cannot take the rest of the UI down with it.
func (s *Service) Stats() types.Stats {
	stats := types.Stats{
		ByStatus:   make(map[string]int),
		ByPriority: make(map[string]int),
	}

	records, err := s.store.LoadAll()
	if err != nil {
		s.log.Warn().Err(err).Msg("stats unavailable, returning zero counts")
		return stats
	}

	cutoff := s.now().Add(-recentWindow)
	for _, a := range records {
		stats.Total++
		stats.ByStatus[a.Status]++
		stats.ByPriority[a.Priority]++
		if a.CreatedAt.After(cutoff) {
			stats.RecentCount++
		}
	}
	return stats
}

// Export returns the raw table blob for backup.
func (s *Service) Export() ([]byte, error) {
	return s.store.Export()
}

// Restore replaces the store content with an uploaded table blob and
// returns the resulting records.
func (s *Service) Restore(data []byte) ([]types.Application, error) {
	return s.store.RestoreFrom(data)
}

// loadHealed loads all records and collapses duplicate normalized URLs,
// keeping the first occurrence. Records with an empty URL are exempt. When
// duplicates were dropped the reduced set is persisted immediately so the
// store converges instead of healing the same rows on every read.
func (s *Service) loadHealed() ([]types.Application, error) {
	records, err := s.store.LoadAll()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(records))
	healed := records[:0]
	for _, a := range records {
		key := NormalizeURL(a.URL)
		if key != "" {
			if seen[key] {
				continue
			}
			seen[key] = true
		}
		healed = append(healed, a)
	}

	if len(healed) < len(records) {
		s.log.Warn().Int("removed", len(records)-len(healed)).
			Msg("removed duplicate applications during load")
		if err := s.store.SaveAll(healed); err != nil {
			return nil, err
		}
	}
	return healed, nil
}

// indexByID returns the position of the record with the given id, or -1.
func indexByID(records []types.Application, id string) int {
	for i, a := range records {
		if a.ID == id {
			return i
		}
	}
	return -1
}

// newID generates a UUID v7 record ID, falling back to v4 when the
// monotonic source fails.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
