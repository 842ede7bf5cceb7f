package middleware

import (
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/quickcourt/QC-BookingService/internal/api/handlers"
)

const msgTooManyRequests = "too many requests, slow down"

// RateLimiter ограничивает частоту запросов по IP клиента.
// Счётчик живёт в redis, окно фиксированное.
type RateLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
	logger Logger
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// NewRateLimiter создает новый rate limiter
func NewRateLimiter(client *redis.Client, limit int, window time.Duration, logger Logger) *RateLimiter {
	return &RateLimiter{
		client: client,
		limit:  limit,
		window: window,
		logger: logger,
	}
}

// Middleware применяет лимит к каждому запросу.
// При недоступности redis запросы пропускаются, лимитер не должен
// ронять сервис вместе с кешом.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := fmt.Sprintf("ratelimit:%s", clientIP(r))

		count, err := rl.client.Incr(r.Context(), key).Result()
		if err != nil {
			rl.logger.Error("ratelimit: redis error, failing open: %v", err)
			next.ServeHTTP(w, r)
			return
		}

		if count == 1 {
			if err := rl.client.PExpire(r.Context(), key, rl.window).Err(); err != nil {
				rl.logger.Error("ratelimit: failed to set expiry for %s: %v", key, err)
			}
		}

		if count > int64(rl.limit) {
			rl.logger.Warn("ratelimit: limit exceeded for %s", key)
			handlers.RespondError(w, http.StatusTooManyRequests, msgTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
