package cache

import (
	"Noted/types"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const sessionCacheKey = "noted:session:%s"

var ErrSessionNotFound = errors.New("session not found")

type SessionStorage struct {
	redis *redis.Client
}

func NewSessionStorage(rds *redis.Client) *SessionStorage {
	return &SessionStorage{rds}
}

// Get returns ErrSessionNotFound for unknown or expired ids.
func (s *SessionStorage) Get(ctx context.Context, sid string) (*types.Session, error) {
	res, err := s.redis.Get(ctx, s.name(sid)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	sess := &types.Session{}
	if err := json.Unmarshal([]byte(res), sess); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", sid, err)
	}
	sess.ID = sid
	return sess, nil
}

func (s *SessionStorage) Set(ctx context.Context, sess *types.Session, ttl time.Duration) error {
	text, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, s.name(sess.ID), text, ttl).Err()
}

func (s *SessionStorage) Del(ctx context.Context, sid string) error {
	return s.redis.Del(ctx, s.name(sid)).Err()
}

func (s *SessionStorage) name(sid string) string {
	return fmt.Sprintf(sessionCacheKey, sid)
}
