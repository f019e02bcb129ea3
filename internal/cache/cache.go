// cache — response-кэш directory-сервиса поверх Redis.
//
// Кэшируются готовые (уже спроецированные и отфильтрованные) ответы
// get-by-id и search, ключ — операция + идентификатор вызывающего +
// нормализованные параметры запроса. Кэш best-effort: записи живут до
// истечения TTL и никогда не инвалидируются мутациями профилей или графа
// блокировок — несвежесть ограничена только TTL. Вытеснение сверх лимита
// памяти выполняет сам Redis по своей политике.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache — минимальный контракт response-кэша.
// Реализация обязана быть безопасной для конкурентного использования.
type Cache interface {
	// Get возвращает полезную нагрузку и признак её наличия в кэше.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set сохраняет полезную нагрузку с TTL.
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error
	// Close закрывает клиент Redis.
	Close() error
}

type redisCache struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisCache создаёт клиент Redis из URL (например, redis://:pass@host:6379/0).
// Если prefix пустой — используется "directory:".
func NewRedisCache(redisURL, prefix string) (Cache, error) {
	if prefix == "" {
		prefix = "directory:"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opt)

	// Fail-fast на старте.
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &redisCache{rdb: rdb, prefix: prefix}, nil
}

func (c *redisCache) key(k string) string { return c.prefix + k }

func (c *redisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	payload, err := c.rdb.Get(ctx, c.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}

		return nil, false, err
	}

	return payload, true, nil
}

func (c *redisCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	return c.rdb.Set(ctx, c.key(key), payload, ttl).Err()
}

func (c *redisCache) Close() error { return c.rdb.Close() }
