package store

import (
	"context"
	"testing"

	"nexus/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(subject string) models.ClassEntry {
	return models.ClassEntry{
		Subject: subject,
		Time:    "09:00 - 10:00",
		Room:    "LH-1",
		Day:     "Monday",
		Type:    models.ClassLecture,
	}
}

func TestTimetableAddAssignsID(t *testing.T) {
	ctx := context.Background()
	s := NewTimetableStore(ctx, newTestRedis(t))

	first := s.Add(ctx, entry("DSA"))
	second := s.Add(ctx, entry("OS"))

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)

	all := s.All()
	require.Len(t, all, 2)
	assert.Equal(t, "DSA", all[0].Subject)
	assert.Equal(t, "OS", all[1].Subject)
}

func TestTimetableRemove(t *testing.T) {
	ctx := context.Background()
	s := NewTimetableStore(ctx, newTestRedis(t))

	keep := s.Add(ctx, entry("Keep"))
	drop := s.Add(ctx, entry("Drop"))

	s.Remove(ctx, drop.ID)

	all := s.All()
	require.Len(t, all, 1)
	assert.Equal(t, keep.ID, all[0].ID)
}

func TestTimetableRemoveUnknownIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	s := NewTimetableStore(ctx, newTestRedis(t))

	s.Add(ctx, entry("Only"))
	before := s.All()

	s.Remove(ctx, "no-such-id")

	assert.Equal(t, before, s.All())
}

func TestTimetableHydrateFromSnapshot(t *testing.T) {
	ctx := context.Background()
	rdb := newTestRedis(t)

	s := NewTimetableStore(ctx, rdb)
	added := s.Add(ctx, entry("Persisted"))

	reloaded := NewTimetableStore(ctx, rdb)
	require.Len(t, reloaded.All(), 1)
	assert.Equal(t, added, reloaded.All()[0])
}
