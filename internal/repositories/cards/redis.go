package cards

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"cardsim/internal/logger"
	"cardsim/internal/models"

	"github.com/redis/go-redis/v9"
)

const KeyPrefix = "cardsim:card:"

// Lookup resolves a card id into its definition.
type Lookup interface {
	Definition(ctx context.Context, id models.CardID) (models.CardDefinition, error)
}

// O que o cache precisa do cliente redis.
// *redis.Client, *redis.ClusterClient e redis.UniversalClient servem
type CacheClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// Cache read-through na frente de outro Lookup.
// Se o redis falhar só loga e pergunta pro lookup de baixo.
// Erro do lookup de baixo volta do jeito que veio
type RedisCache struct {
	rdb  CacheClient
	next Lookup
	ttl  time.Duration
}

func NewRedisCache(rdb CacheClient, next Lookup, ttl time.Duration) *RedisCache {
	return &RedisCache{rdb: rdb, next: next, ttl: ttl}
}

func cacheKey(id models.CardID) string {
	return fmt.Sprintf("%s%d", KeyPrefix, id)
}

func (r *RedisCache) Definition(ctx context.Context, id models.CardID) (models.CardDefinition, error) {
	key := cacheKey(id)
	log := logger.Log.WithField("cardID", id)

	raw, err := r.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var def models.CardDefinition
		decodeErr := json.Unmarshal(raw, &def)
		if decodeErr == nil {
			return def, nil
		}
		log.WithError(decodeErr).Warn("discarding undecodable cached card")
	case !errors.Is(err, redis.Nil):
		log.WithError(err).Warn("redis read failed, falling back")
	}

	// cache miss (ou redis fora)
	def, err := r.next.Definition(ctx, id)
	if err != nil {
		return models.CardDefinition{}, err
	}

	data, err := json.Marshal(def)
	if err != nil {
		log.WithError(err).Warn("couldn't encode card for cache")
		return def, nil
	}
	if err := r.rdb.Set(ctx, key, data, r.ttl).Err(); err != nil {
		log.WithError(err).Warn("redis write failed")
	}

	return def, nil
}
