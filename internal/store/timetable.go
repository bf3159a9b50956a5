package store

import (
	"context"
	"encoding/json"
	"sync"

	"nexus/internal/middleware"
	"nexus/internal/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// timetableKey is the well-known Redis key holding the timetable snapshot.
const timetableKey = "nexus_timetable"

// TimetableStore holds the weekly class schedule, persisted like the post
// collection: one JSON array, rewritten on every mutation.
type TimetableStore struct {
	mu      sync.RWMutex
	rdb     *redis.Client
	entries []models.ClassEntry
}

// NewTimetableStore creates a TimetableStore hydrated from Redis, if possible.
func NewTimetableStore(ctx context.Context, rdb *redis.Client) *TimetableStore {
	s := &TimetableStore{rdb: rdb}
	s.hydrate(ctx)
	return s
}

func (s *TimetableStore) hydrate(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	data, err := s.rdb.Get(ctx, timetableKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			middleware.Logger.WarnContext(ctx, "failed to load timetable snapshot", "key", timetableKey, "err", err)
		}
		return
	}
	var entries []models.ClassEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		middleware.Logger.WarnContext(ctx, "corrupt timetable snapshot, starting empty", "key", timetableKey, "err", err)
		return
	}
	s.entries = entries
}

func (s *TimetableStore) persistLocked(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	data, err := json.Marshal(s.entries)
	if err != nil {
		middleware.Logger.ErrorContext(ctx, "failed to marshal timetable snapshot", "err", err)
		return
	}
	if err := s.rdb.Set(ctx, timetableKey, data, 0).Err(); err != nil {
		middleware.Logger.WarnContext(ctx, "failed to persist timetable snapshot", "key", timetableKey, "err", err)
	}
}

// Add appends a new class entry, assigning its identifier.
func (s *TimetableStore) Add(ctx context.Context, entry models.ClassEntry) models.ClassEntry {
	entry.ID = uuid.NewString()

	s.mu.Lock()
	s.entries = append(s.entries, entry)
	s.persistLocked(ctx)
	s.mu.Unlock()

	return entry
}

// Remove deletes the entry with the given id. Unknown ids are ignored.
func (s *TimetableStore) Remove(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.entries {
		if e.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			s.persistLocked(ctx)
			return
		}
	}
}

// All returns a copy of the schedule in insertion order.
func (s *TimetableStore) All() []models.ClassEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.ClassEntry, len(s.entries))
	copy(out, s.entries)
	return out
}
