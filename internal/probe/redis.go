package probe

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type RedisChecker struct {
	kv KV
}

func NewRedisChecker(kv KV) *RedisChecker {
	return &RedisChecker{kv: kv}
}

// Check round-trips a uniquely named key through redis: set, read back,
// delete. The verdict is the read-back value being present.
func (r *RedisChecker) Check(ctx context.Context, prefix, key string) Result {
	params, err := r.kv.Get(ctx, prefix+"/"+key, map[string]string{})
	if err != nil {
		return fail(err)
	}

	host := param(params, "REDIS_HOST", "localhost")
	port := param(params, "REDIS_PORT", "6379")

	client := redis.NewClient(&redis.Options{
		Addr:         net.JoinHostPort(host, port),
		DB:           0,
		DialTimeout:  10 * time.Second,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})
	defer client.Close()

	// Unique per run so concurrent health checks cannot collide.
	uniqKey := "health-check-key-" + uuid.NewString()
	uniqValue := "health-check-value-" + uuid.NewString()

	if err := client.Set(ctx, uniqKey, uniqValue, 0).Err(); err != nil {
		return fail(err)
	}
	got, err := client.Get(ctx, uniqKey).Result()
	if err != nil {
		return fail(err)
	}
	if got == "" {
		return Result{Success: false, Message: fmt.Sprintf("Key %s Not Found.", uniqKey)}
	}
	if err := client.Del(ctx, uniqKey).Err(); err != nil {
		return fail(err)
	}

	return Result{Success: true, Message: fmt.Sprintf("host: %s on port: %s", host, port)}
}
