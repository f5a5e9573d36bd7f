package user

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"karigarstop/models"

	"github.com/go-redis/redis/v8"
)

// ProfileStore is the persistent key-value store holding user profile
// records, addressable by ID, email, or mobile number.
type ProfileStore interface {
	Save(ctx context.Context, profile models.UserProfile) error
	GetByID(ctx context.Context, id string) (*models.UserProfile, error)
	GetByEmail(ctx context.Context, email string) (*models.UserProfile, error)
	GetByMobile(ctx context.Context, mobile string) (*models.UserProfile, error)
}

// RedisProfileStore keeps each profile as JSON under "user:<id>" with
// email and mobile index keys pointing at the ID.
type RedisProfileStore struct {
	Client *redis.Client
}

func profileKey(id string) string    { return "user:" + id }
func emailKey(email string) string   { return "user-email:" + email }
func mobileKey(mobile string) string { return "user-mobile:" + mobile }

func (s *RedisProfileStore) Save(ctx context.Context, profile models.UserProfile) error {
	data, err := json.Marshal(struct {
		models.UserProfile
		PasswordHash string `json:"passwordHash"`
	}{profile, profile.PasswordHash})
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	if err := s.Client.Set(ctx, profileKey(profile.ID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to store profile: %w", err)
	}
	if err := s.Client.Set(ctx, emailKey(profile.Email), profile.ID, 0).Err(); err != nil {
		return fmt.Errorf("failed to index profile email: %w", err)
	}
	if err := s.Client.Set(ctx, mobileKey(profile.Mobile), profile.ID, 0).Err(); err != nil {
		return fmt.Errorf("failed to index profile mobile: %w", err)
	}
	return nil
}

func (s *RedisProfileStore) GetByID(ctx context.Context, id string) (*models.UserProfile, error) {
	data, err := s.Client.Get(ctx, profileKey(id)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to retrieve profile: %w", err)
	}
	var rec struct {
		models.UserProfile
		PasswordHash string `json:"passwordHash"`
	}
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	profile := rec.UserProfile
	profile.PasswordHash = rec.PasswordHash
	return &profile, nil
}

func (s *RedisProfileStore) getByIndex(ctx context.Context, key string) (*models.UserProfile, error) {
	id, err := s.Client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to resolve profile index: %w", err)
	}
	return s.GetByID(ctx, id)
}

func (s *RedisProfileStore) GetByEmail(ctx context.Context, email string) (*models.UserProfile, error) {
	return s.getByIndex(ctx, emailKey(email))
}

func (s *RedisProfileStore) GetByMobile(ctx context.Context, mobile string) (*models.UserProfile, error) {
	return s.getByIndex(ctx, mobileKey(mobile))
}

// MemoryProfileStore is an in-process store for tests.
type MemoryProfileStore struct {
	mu       sync.RWMutex
	profiles map[string]models.UserProfile
}

func NewMemoryProfileStore() *MemoryProfileStore {
	return &MemoryProfileStore{profiles: make(map[string]models.UserProfile)}
}

func (s *MemoryProfileStore) Save(_ context.Context, profile models.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[profile.ID] = profile
	return nil
}

func (s *MemoryProfileStore) GetByID(_ context.Context, id string) (*models.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &p, nil
}

func (s *MemoryProfileStore) GetByEmail(_ context.Context, email string) (*models.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.profiles {
		if p.Email == email {
			out := p
			return &out, nil
		}
	}
	return nil, ErrUserNotFound
}

func (s *MemoryProfileStore) GetByMobile(_ context.Context, mobile string) (*models.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.profiles {
		if p.Mobile == mobile {
			out := p
			return &out, nil
		}
	}
	return nil, ErrUserNotFound
}
