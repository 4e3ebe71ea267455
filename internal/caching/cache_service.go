package caching

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Thur2312/remix-of-finance-manager-sub000/internal/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const keyPrefix = "finance"

type CacheService interface {
	SetDiagnostics(ctx context.Context, ownerID uuid.UUID, result *models.ImportResult) error
	// GetLatestDiagnostics returns nil, nil on a cache miss.
	GetLatestDiagnostics(ctx context.Context, ownerID uuid.UUID) (*models.ImportResult, error)
	InvalidateOwner(ctx context.Context, ownerID uuid.UUID) error
	Ping(ctx context.Context) error
}

type redisCacheService struct {
	client redis.UniversalClient
	ttl    time.Duration
	log    zerolog.Logger
}

// NewRedisClient accepts a bare host:port or a redis:// URL.
func NewRedisClient(addr, password string, db int) *redis.Client {
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		if opts, err := redis.ParseURL(addr); err == nil {
			if password != "" {
				opts.Password = password
			}
			opts.DB = db
			return redis.NewClient(opts)
		}
	}
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

func NewRedisCacheService(client redis.UniversalClient, ttl time.Duration, log zerolog.Logger) CacheService {
	l := log.With().Str("service", "cache").Logger()
	if err := client.Ping(context.Background()).Err(); err != nil {
		l.Warn().Err(err).Msg("Redis ping failed on initialization")
	}
	return &redisCacheService{client: client, ttl: ttl, log: l}
}

// DiagnosticsKey is the key of the last import result of an owner.
func DiagnosticsKey(ownerID uuid.UUID) string {
	return fmt.Sprintf("%s:diagnostics:%s:latest", keyPrefix, ownerID.String())
}

func ownerPattern(ownerID uuid.UUID) string {
	return fmt.Sprintf("%s:*:%s:*", keyPrefix, ownerID.String())
}

func (r *redisCacheService) SetDiagnostics(ctx context.Context, ownerID uuid.UUID, result *models.ImportResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, DiagnosticsKey(ownerID), data, r.ttl).Err()
}

func (r *redisCacheService) GetLatestDiagnostics(ctx context.Context, ownerID uuid.UUID) (*models.ImportResult, error) {
	data, err := r.client.Get(ctx, DiagnosticsKey(ownerID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil // cache miss
		}
		return nil, err
	}

	var result models.ImportResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *redisCacheService) InvalidateOwner(ctx context.Context, ownerID uuid.UUID) error {
	var keys []string
	iter := r.client.Scan(ctx, 0, ownerPattern(ownerID), 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}

	if len(keys) > 0 {
		return r.client.Del(ctx, keys...).Err()
	}
	return nil
}

func (r *redisCacheService) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
