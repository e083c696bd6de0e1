package middleware

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noah-isme/kalender-api/internal/service"
	appErrors "github.com/noah-isme/kalender-api/pkg/errors"
	"github.com/noah-isme/kalender-api/pkg/response"
)

// RateLimitStore counts hits for a key that expires after window.
type RateLimitStore interface {
	Hit(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RateLimit applies a fixed-window request limit per client.
type RateLimit struct {
	store     RateLimitStore
	limit     int64
	window    time.Duration
	keyGetter func(c *gin.Context) string
	now       func() time.Time
	metrics   *service.MetricsService
	logger    *zap.Logger
}

// NewRateLimit builds the limiter. A nil keyGetter keys clients by IP.
func NewRateLimit(store RateLimitStore, limit int, window time.Duration, keyGetter func(*gin.Context) string, metrics *service.MetricsService, logger *zap.Logger) *RateLimit {
	if keyGetter == nil {
		keyGetter = func(c *gin.Context) string { return c.ClientIP() }
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if window <= 0 {
		window = time.Minute
	}
	return &RateLimit{
		store:     store,
		limit:     int64(limit),
		window:    window,
		keyGetter: keyGetter,
		now:       time.Now,
		metrics:   metrics,
		logger:    logger,
	}
}

// Handle counts the request and rejects it with 429 once the window is spent.
// Store failures let the request through.
func (rl *RateLimit) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		windowIndex := rl.now().UnixNano() / int64(rl.window)
		key := fmt.Sprintf("ratelimit:%s:%d", rl.keyGetter(c), windowIndex)

		count, err := rl.store.Hit(c.Request.Context(), key, rl.window)
		if err != nil {
			rl.logger.Warn("rate limit store unavailable", zap.String("key", key), zap.Error(err))
			c.Next()
			return
		}

		remaining := rl.limit - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.FormatInt(rl.limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > rl.limit {
			rl.metrics.RecordRateLimited()
			response.Error(c, appErrors.ErrTooManyRequests)
			return
		}
		c.Next()
	}
}
