package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"karigarstop/models"

	"github.com/go-redis/redis/v8"
)

// ErrDraftNotFound is returned when a session has expired or never existed.
var ErrDraftNotFound = fmt.Errorf("booking session not found or expired")

// DraftStore mirrors draft snapshots so the API can read session state
// between workflow operations. Drafts are transient: cancelling or
// confirming deletes them and nothing is ever persisted durably.
type DraftStore interface {
	Save(ctx context.Context, draft models.BookingDraft, ttl time.Duration) error
	Get(ctx context.Context, sessionID string) (*models.BookingDraft, error)
	Delete(ctx context.Context, sessionID string) error
}

// RedisDraftStore keeps draft snapshots in Redis as JSON with a TTL.
type RedisDraftStore struct {
	Client *redis.Client
}

func draftKey(sessionID string) string {
	return "booking-draft:" + sessionID
}

func (s *RedisDraftStore) Save(ctx context.Context, draft models.BookingDraft, ttl time.Duration) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal booking draft: %w", err)
	}
	if err := s.Client.Set(ctx, draftKey(draft.SessionID), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store booking draft: %w", err)
	}
	return nil
}

func (s *RedisDraftStore) Get(ctx context.Context, sessionID string) (*models.BookingDraft, error) {
	data, err := s.Client.Get(ctx, draftKey(sessionID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrDraftNotFound
		}
		return nil, fmt.Errorf("failed to retrieve booking draft: %w", err)
	}
	var draft models.BookingDraft
	if err := json.Unmarshal([]byte(data), &draft); err != nil {
		return nil, fmt.Errorf("failed to parse booking draft: %w", err)
	}
	return &draft, nil
}

func (s *RedisDraftStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.Client.Del(ctx, draftKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete booking draft: %w", err)
	}
	return nil
}

// MemoryDraftStore is an in-process store used in tests and single-node
// development setups. TTLs are ignored.
type MemoryDraftStore struct {
	mu     sync.RWMutex
	drafts map[string]models.BookingDraft
}

func NewMemoryDraftStore() *MemoryDraftStore {
	return &MemoryDraftStore{drafts: make(map[string]models.BookingDraft)}
}

func (s *MemoryDraftStore) Save(_ context.Context, draft models.BookingDraft, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[draft.SessionID] = draft
	return nil
}

func (s *MemoryDraftStore) Get(_ context.Context, sessionID string) (*models.BookingDraft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	draft, ok := s.drafts[sessionID]
	if !ok {
		return nil, ErrDraftNotFound
	}
	return &draft, nil
}

func (s *MemoryDraftStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, sessionID)
	return nil
}
