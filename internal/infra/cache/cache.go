// Package cache кеш отчета загрузки на redis. Сервис полностью
// работоспособен без него: при недоступном redis конструктор возвращает
// nil, а все методы nil-получателя ведут себя как промах кеша.
package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix  = "fcp:utilization:"
	versionKey = keyPrefix + "version"

	connectTimeout = 2 * time.Second
)

// ReportCache кеш готовых отчетов загрузки с версионной инвалидацией:
// каждый путь записи повышает версию, ключи кеша включают её, поэтому
// устаревшие отчеты просто перестают находиться и вытесняются по TTL.
type ReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New подключается к redis и возвращает кеш. При ошибке подключения
// возвращает nil: вызывающий код продолжает работать без кеширования.
func New(addr, password string, db int, ttl time.Duration) *ReportCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil
	}

	return &ReportCache{client: client, ttl: ttl}
}

// Close закрывает соединение с redis
func (c *ReportCache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}

// Version возвращает текущую версию данных. Ошибки redis считаются
// промахом: отчет просто пересчитается.
func (c *ReportCache) Version(ctx context.Context) int64 {
	if c == nil {
		return 0
	}
	v, err := c.client.Get(ctx, versionKey).Int64()
	if err != nil {
		return 0
	}
	return v
}

// BumpVersion инвалидирует все закешированные отчеты, повышая версию.
// Вызывается после каждого успешного изменения сетки.
func (c *ReportCache) BumpVersion(ctx context.Context) {
	if c == nil {
		return
	}
	_ = c.client.Incr(ctx, versionKey).Err()
}

// Get возвращает закешированный отчет по ключу
func (c *ReportCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	payload, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		return nil, false
	}
	return payload, true
}

// Set сохраняет отчет с TTL
func (c *ReportCache) Set(ctx context.Context, key string, payload []byte) {
	if c == nil {
		return
	}
	_ = c.client.Set(ctx, keyPrefix+key, payload, c.ttl).Err()
}
