package session

import (
	"context"
	"time"

	"github.com/tcc-console/internal/cache"
	"github.com/tcc-console/internal/models"
	"github.com/tcc-console/internal/repository"
)

// Record 持久化的会话记录
type Record struct {
	ID        string
	Payload   []byte
	ExpiresAt time.Time
}

// Store 会话持久化接口
type Store interface {
	Save(ctx context.Context, record Record) error
	Load(ctx context.Context, id string) (*Record, error)
	Delete(ctx context.Context, id string) error
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}

// DBStore 基于数据库的会话存储
type DBStore struct {
	repo repository.SessionRepository
	now  func() time.Time
}

// NewDBStore 创建数据库会话存储
func NewDBStore(repo repository.SessionRepository) *DBStore {
	return &DBStore{repo: repo, now: time.Now}
}

// Save 写入会话
func (s *DBStore) Save(ctx context.Context, record Record) error {
	return s.repo.Create(ctx, &models.Session{
		ID:        record.ID,
		Payload:   string(record.Payload),
		ExpiresAt: record.ExpiresAt,
	})
}

// Load 读取会话，过期记录视为不存在
func (s *DBStore) Load(ctx context.Context, id string) (*Record, error) {
	row, err := s.repo.GetByID(ctx, id)
	if err != nil || row == nil {
		return nil, err
	}
	if row.Expired(s.now()) {
		return nil, nil
	}
	return &Record{ID: row.ID, Payload: []byte(row.Payload), ExpiresAt: row.ExpiresAt}, nil
}

// Delete 删除会话
func (s *DBStore) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// PurgeExpired 清理过期会话
func (s *DBStore) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	return s.repo.DeleteExpired(ctx, now)
}

// RedisStore 基于 Redis 的会话存储，过期由 TTL 负责
type RedisStore struct{}

// NewRedisStore 创建 Redis 会话存储
func NewRedisStore() *RedisStore {
	return &RedisStore{}
}

func redisSessionKey(id string) string {
	return "session:" + id
}

// Save 写入会话
func (s *RedisStore) Save(ctx context.Context, record Record) error {
	ttl := time.Until(record.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	return cache.SetString(ctx, redisSessionKey(record.ID), string(record.Payload), ttl)
}

// Load 读取会话
func (s *RedisStore) Load(ctx context.Context, id string) (*Record, error) {
	payload, ok, err := cache.GetString(ctx, redisSessionKey(id))
	if err != nil || !ok {
		return nil, err
	}
	return &Record{ID: id, Payload: []byte(payload)}, nil
}

// Delete 删除会话
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return cache.Del(ctx, redisSessionKey(id))
}

// PurgeExpired Redis 依赖 key 过期，无需手动清理
func (s *RedisStore) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	return 0, nil
}
