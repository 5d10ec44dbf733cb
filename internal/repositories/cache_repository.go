package repositories

import (
	"context"
	"time"
)

// CacheRepositoryInterface — узкий контракт кэша; используется сервисом
// аутентификации для счётчиков неудачных входов.
type CacheRepositoryInterface interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Incr(ctx context.Context, key string, ttl time.Duration) (int64, error)
	Delete(ctx context.Context, key string) error
}
