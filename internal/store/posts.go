// Package store holds the authoritative in-process state for moderatable
// posts and timetable entries, persisted as JSON snapshots in Redis.
package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"nexus/internal/middleware"
	"nexus/internal/models"
	"nexus/internal/observability"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// postsKey is the well-known Redis key holding the full post collection.
const postsKey = "nexus_posts"

// PostStore is the single authoritative collection of posts. All mutations go
// through it; reads return copies. A nil Redis client degrades to memory-only
// operation with the same contract.
type PostStore struct {
	mu    sync.RWMutex
	rdb   *redis.Client
	posts []models.Post // newest first
}

// NewPostStore creates a PostStore hydrated from the Redis snapshot, if any.
func NewPostStore(ctx context.Context, rdb *redis.Client) *PostStore {
	s := &PostStore{rdb: rdb}
	s.hydrate(ctx)
	return s
}

func (s *PostStore) hydrate(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	data, err := s.rdb.Get(ctx, postsKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			middleware.Logger.WarnContext(ctx, "failed to load post snapshot", "key", postsKey, "err", err)
		}
		return
	}
	var posts []models.Post
	if err := json.Unmarshal(data, &posts); err != nil {
		middleware.Logger.WarnContext(ctx, "corrupt post snapshot, starting empty", "key", postsKey, "err", err)
		return
	}
	s.posts = posts
}

// persistLocked writes the whole collection back to Redis. Callers must hold
// the write lock. Persistence failures are logged, not surfaced: the in-memory
// state is the source of truth and the snapshot is last-writer-wins.
func (s *PostStore) persistLocked(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	data, err := json.Marshal(s.posts)
	if err != nil {
		middleware.Logger.ErrorContext(ctx, "failed to marshal post snapshot", "err", err)
		return
	}
	if err := s.rdb.Set(ctx, postsKey, data, 0).Err(); err != nil {
		middleware.Logger.WarnContext(ctx, "failed to persist post snapshot", "key", postsKey, "err", err)
	}
}

// Create assigns a fresh identifier, the current UTC timestamp, and the
// unverified status to the draft, prepends it to the collection, and persists.
// It always succeeds.
func (s *PostStore) Create(ctx context.Context, draft models.PostDraft) models.Post {
	ctx, span := observability.TraceStoreOperation(ctx, "posts.create")
	defer span.End()

	post := models.Post{
		ID:           uuid.NewString(),
		Kind:         draft.Kind,
		Status:       models.StatusUnverified,
		Title:        draft.Title,
		Description:  draft.Description,
		Category:     draft.Category,
		SubType:      draft.SubType,
		Image:        draft.Image,
		Price:        draft.Price,
		Location:     draft.Location,
		Date:         draft.Date,
		Time:         draft.Time,
		Seats:        draft.Seats,
		Route:        draft.Route,
		SkillOffered: draft.SkillOffered,
		SkillWanted:  draft.SkillWanted,
		ContactInfo:  draft.ContactInfo,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
		CreatedBy:    draft.CreatedBy,
	}

	s.mu.Lock()
	s.posts = append([]models.Post{post}, s.posts...)
	s.persistLocked(ctx)
	s.mu.Unlock()

	observability.PostsCreated.WithLabelValues(string(post.Kind)).Inc()
	return post
}

// SetStatus moves the post with the given id to the requested status. Only the
// two forward edges (unverified to verified, unverified to rejected) are
// applied; an unknown id, an invalid target status, or a transition out of a
// terminal state leaves the collection untouched.
func (s *PostStore) SetStatus(ctx context.Context, id string, status models.ModerationStatus) {
	ctx, span := observability.TraceStoreOperation(ctx, "posts.set_status")
	defer span.End()

	if status != models.StatusVerified && status != models.StatusRejected {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID != id {
			continue
		}
		if !s.posts[i].Status.CanTransitionTo(status) {
			return
		}
		s.posts[i].Status = status
		s.persistLocked(ctx)
		observability.ModerationDecisions.WithLabelValues(string(status)).Inc()
		return
	}
}

// ByKind returns the posts of the given kind in collection order.
func (s *PostStore) ByKind(kind models.PostKind) []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Post, 0)
	for _, p := range s.posts {
		if p.Kind == kind {
			out = append(out, p)
		}
	}
	return out
}

// ByStatus returns the posts with the given moderation status in collection order.
func (s *PostStore) ByStatus(status models.ModerationStatus) []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Post, 0)
	for _, p := range s.posts {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out
}

// All returns a copy of the whole collection, newest first.
func (s *PostStore) All() []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Post, len(s.posts))
	copy(out, s.posts)
	return out
}

// Stats returns the aggregate moderation counters. Every post carries exactly
// one status, so the three buckets always partition the total.
func (s *PostStore) Stats() models.PostStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var stats models.PostStats
	for _, p := range s.posts {
		switch p.Status {
		case models.StatusUnverified:
			stats.Pending++
		case models.StatusVerified:
			stats.Approved++
		case models.StatusRejected:
			stats.Rejected++
		}
	}
	stats.Total = len(s.posts)
	return stats
}
