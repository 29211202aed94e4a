package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"

	"github.com/RiegL/ostia-visitas-report/internal/model"
	"github.com/RiegL/ostia-visitas-report/pkg/metrics"
)

// Store persists the authenticated minister record per session: written on
// login, removed on logout, read back on each authenticated request.
type Store interface {
	Save(ctx context.Context, session *model.Session) error
	// Get returns (nil, nil) when the session does not exist or has expired.
	Get(ctx context.Context, id string) (*model.Session, error)
	Delete(ctx context.Context, id string) error
}

type Config struct {
	URL string
	TTL time.Duration
}

type redisStore struct {
	client  *redis.Client
	local   *gocache.Cache
	ttl     time.Duration
	metrics *metrics.Metrics
}

func NewRedisStore(cfg Config, m *metrics.Metrics) (Store, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &redisStore{
		client:  client,
		local:   gocache.New(5*time.Minute, 15*time.Minute),
		ttl:     ttl,
		metrics: m,
	}, nil
}

func (s *redisStore) Save(ctx context.Context, session *model.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := s.client.Set(ctx, sessionKey(session.ID), payload, s.ttl).Err(); err != nil {
		s.count("save", "error")
		return fmt.Errorf("failed to save session: %w", err)
	}

	cached := *session
	s.local.SetDefault(session.ID, &cached)
	if s.metrics != nil {
		s.metrics.ActiveSessions.Set(float64(s.local.ItemCount()))
	}
	s.count("save", "ok")
	return nil
}

func (s *redisStore) Get(ctx context.Context, id string) (*model.Session, error) {
	if cached, ok := s.local.Get(id); ok {
		s.count("get", "hit")
		// Copy so concurrent requests holding the same session id never
		// share a mutable record.
		out := *cached.(*model.Session)
		return &out, nil
	}

	payload, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		s.count("get", "miss")
		return nil, nil
	}
	if err != nil {
		s.count("get", "error")
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var session model.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	s.local.SetDefault(id, &session)
	s.count("get", "hit")
	out := session
	return &out, nil
}

func (s *redisStore) Delete(ctx context.Context, id string) error {
	s.local.Delete(id)
	if s.metrics != nil {
		s.metrics.ActiveSessions.Set(float64(s.local.ItemCount()))
	}
	if err := s.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		s.count("delete", "error")
		return fmt.Errorf("failed to delete session: %w", err)
	}
	s.count("delete", "ok")
	return nil
}

func (s *redisStore) count(op, result string) {
	if s.metrics != nil {
		s.metrics.SessionOperations.WithLabelValues(op, result).Inc()
	}
}

func sessionKey(id string) string {
	return "session:" + id
}
