// internal/store/redis.go
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"bizplan-engine/internal/common/config"
	"bizplan-engine/internal/models"
)

const (
	templateKeyPrefix = "bizplan:templates:"
	scenarioKeyPrefix = "bizplan:scenarios:"
	selectionKey      = "bizplan:session:selection"
)

// Store is the flat key-value persistence used for user-defined templates,
// saved scenarios and the UI selection state. Values are JSON-encoded;
// writes carry no transactional guarantee across keys.
type Store interface {
	SaveTemplate(ctx context.Context, schema *models.ProjectTypeSchema) error
	GetTemplate(ctx context.Context, id string) (*models.ProjectTypeSchema, error)
	ListTemplates(ctx context.Context) ([]*models.ProjectTypeSchema, error)
	DeleteTemplate(ctx context.Context, id string) error

	SaveScenario(ctx context.Context, sc *models.Scenario) error
	GetScenario(ctx context.Context, id string) (*models.Scenario, error)
	ListScenarios(ctx context.Context) ([]*models.Scenario, error)
	DeleteScenario(ctx context.Context, id string) error

	SaveSelection(ctx context.Context, sel models.SelectionState) error
	GetSelection(ctx context.Context) (models.SelectionState, error)

	Ping(ctx context.Context) error
	Close() error
}

// RedisStore implements Store on a single Redis database.
type RedisStore struct {
	client *redis.Client
}

// NewRedis creates a Redis-backed store.
func NewRedis(cfg config.RedisConfig) *RedisStore {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})
	return &RedisStore{client: rdb}
}

// NewRedisWithClient wraps an existing client, used by tests with miniredis.
func NewRedisWithClient(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}

func (s *RedisStore) SaveTemplate(ctx context.Context, schema *models.ProjectTypeSchema) error {
	return s.setJSON(ctx, templateKeyPrefix+schema.ID, schema)
}

func (s *RedisStore) GetTemplate(ctx context.Context, id string) (*models.ProjectTypeSchema, error) {
	var schema models.ProjectTypeSchema
	ok, err := s.getJSON(ctx, templateKeyPrefix+id, &schema)
	if err != nil || !ok {
		return nil, err
	}
	return &schema, nil
}

func (s *RedisStore) ListTemplates(ctx context.Context) ([]*models.ProjectTypeSchema, error) {
	keys, err := s.scanKeys(ctx, templateKeyPrefix+"*")
	if err != nil {
		return nil, err
	}
	out := make([]*models.ProjectTypeSchema, 0, len(keys))
	for _, key := range keys {
		var schema models.ProjectTypeSchema
		ok, err := s.getJSON(ctx, key, &schema)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, &schema)
		}
	}
	return out, nil
}

func (s *RedisStore) DeleteTemplate(ctx context.Context, id string) error {
	return s.client.Del(ctx, templateKeyPrefix+id).Err()
}

func (s *RedisStore) SaveScenario(ctx context.Context, sc *models.Scenario) error {
	return s.setJSON(ctx, scenarioKeyPrefix+sc.ID, sc)
}

func (s *RedisStore) GetScenario(ctx context.Context, id string) (*models.Scenario, error) {
	var sc models.Scenario
	ok, err := s.getJSON(ctx, scenarioKeyPrefix+id, &sc)
	if err != nil || !ok {
		return nil, err
	}
	return &sc, nil
}

func (s *RedisStore) ListScenarios(ctx context.Context) ([]*models.Scenario, error) {
	keys, err := s.scanKeys(ctx, scenarioKeyPrefix+"*")
	if err != nil {
		return nil, err
	}
	out := make([]*models.Scenario, 0, len(keys))
	for _, key := range keys {
		var sc models.Scenario
		ok, err := s.getJSON(ctx, key, &sc)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, &sc)
		}
	}
	return out, nil
}

func (s *RedisStore) DeleteScenario(ctx context.Context, id string) error {
	return s.client.Del(ctx, scenarioKeyPrefix+id).Err()
}

func (s *RedisStore) SaveSelection(ctx context.Context, sel models.SelectionState) error {
	return s.setJSON(ctx, selectionKey, sel)
}

func (s *RedisStore) GetSelection(ctx context.Context) (models.SelectionState, error) {
	var sel models.SelectionState
	if _, err := s.getJSON(ctx, selectionKey, &sel); err != nil {
		return models.SelectionState{}, err
	}
	return sel, nil
}

func (s *RedisStore) setJSON(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.client.Set(ctx, key, data, 0).Err()
}

// getJSON reports whether the key existed. Absent keys are not errors.
func (s *RedisStore) getJSON(ctx context.Context, key string, v interface{}) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (s *RedisStore) scanKeys(ctx context.Context, pattern string) ([]string, error) {
	var keys []string
	iter := s.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return keys, nil
}
