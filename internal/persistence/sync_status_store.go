package persistence

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/ticket-board/internal/domain"
)

// DefaultSyncStatusKey is the Redis hash holding the sync status.
const DefaultSyncStatusKey = "ticketboard:sync"

const (
	fieldLastSuccessAt = "last_success_at"
	fieldActiveCount   = "active_count"
	fieldLastFailureAt = "last_failure_at"
	fieldLastError     = "last_error"
)

// RedisSyncStatusStore keeps the sync status in a Redis hash so that every
// replica reports the same readiness details.
type RedisSyncStatusStore struct {
	client redis.Cmdable
	key    string
}

// NewRedisSyncStatusStore builds a store on client under key.
func NewRedisSyncStatusStore(client redis.Cmdable, key string) *RedisSyncStatusStore {
	if key == "" {
		key = DefaultSyncStatusKey
	}
	return &RedisSyncStatusStore{client: client, key: key}
}

// RecordSuccess stores the time and size of a successful fetch.
func (s *RedisSyncStatusStore) RecordSuccess(ctx context.Context, at time.Time, active int) error {
	return s.client.HSet(ctx, s.key,
		fieldLastSuccessAt, at.UTC().Format(time.RFC3339Nano),
		fieldActiveCount, active,
	).Err()
}

// RecordFailure stores the time and message of a failed fetch.
func (s *RedisSyncStatusStore) RecordFailure(ctx context.Context, at time.Time, message string) error {
	return s.client.HSet(ctx, s.key,
		fieldLastFailureAt, at.UTC().Format(time.RFC3339Nano),
		fieldLastError, message,
	).Err()
}

// Status reads the stored status. A missing hash yields the zero status.
func (s *RedisSyncStatusStore) Status(ctx context.Context) (domain.SyncStatus, error) {
	values, err := s.client.HGetAll(ctx, s.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.SyncStatus{}, nil
		}
		return domain.SyncStatus{}, err
	}
	return statusFromHash(values), nil
}

func statusFromHash(values map[string]string) domain.SyncStatus {
	var status domain.SyncStatus
	if t, err := time.Parse(time.RFC3339Nano, values[fieldLastSuccessAt]); err == nil {
		status.LastSuccessAt = &t
	}
	if t, err := time.Parse(time.RFC3339Nano, values[fieldLastFailureAt]); err == nil {
		status.LastFailureAt = &t
	}
	status.ActiveCount, _ = strconv.Atoi(values[fieldActiveCount])
	status.LastError = values[fieldLastError]
	return status
}

// MemorySyncStatusStore is the single-process fallback when Redis is not configured.
type MemorySyncStatusStore struct {
	mu     sync.RWMutex
	status domain.SyncStatus
}

// NewMemorySyncStatusStore creates an empty store.
func NewMemorySyncStatusStore() *MemorySyncStatusStore {
	return &MemorySyncStatusStore{}
}

func (s *MemorySyncStatusStore) RecordSuccess(_ context.Context, at time.Time, active int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status.LastSuccessAt = &at
	s.status.ActiveCount = active
	return nil
}

func (s *MemorySyncStatusStore) RecordFailure(_ context.Context, at time.Time, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status.LastFailureAt = &at
	s.status.LastError = message
	return nil
}

func (s *MemorySyncStatusStore) Status(_ context.Context) (domain.SyncStatus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status, nil
}
