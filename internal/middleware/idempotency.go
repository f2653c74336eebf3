package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go-workboard/internal/shared/apperror"
	"go-workboard/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	IdempotencyCacheKey = "idempotency_cache_key"
	IdempotencyLockKey  = "idempotency_lock_key"

	idempotencyLockTTL = 30 * time.Second
	IdempotencyTTL     = 24 * time.Hour
)

// Idempotency replays the stored response of a POST carrying a seen Idempotency-Key and
// rejects a concurrent duplicate while the first request is still running. Handlers store
// the response with StoreIdempotentResponse; the lock is released once the handler returns.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		userID := c.GetString("user_id_validated")
		if userID == "" {
			userID = c.GetString("user_id")
		}

		if rdb == nil || idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), userID, idempKey)
		lockKey := cacheKey + ":lock"

		if val, err := rdb.Get(c.Request.Context(), cacheKey).Result(); err == nil {
			var cached idempotentResponse
			if json.Unmarshal([]byte(val), &cached) == nil {
				status := cached.Status
				if status == 0 {
					status = http.StatusOK
				}
				c.Header("Idempotent-Replayed", "true")
				c.AbortWithStatusJSON(status, response.ApiEnvelope{Ok: true, Data: cached.Data})
				return
			}
		}

		// expiring lock so a crashed request cannot block the key forever
		isNew, err := rdb.SetNX(c.Request.Context(), lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			// redis trouble should not block writes
			c.Next()
			return
		}
		if !isNew {
			response.Error(c, http.StatusConflict, apperror.CodeProcessing, "A request with this Idempotency-Key is still being processed", nil)
			c.Abort()
			return
		}

		c.Set(IdempotencyCacheKey, cacheKey)
		c.Set(IdempotencyLockKey, lockKey)

		c.Next()

		_ = rdb.Del(c.Request.Context(), lockKey).Err()
	}
}

type idempotentResponse struct {
	Status int             `json:"status"`
	Data   json.RawMessage `json:"data"`
}

// StoreIdempotentResponse caches status and payload under the key chosen by Idempotency, if any.
func StoreIdempotentResponse(c *gin.Context, rdb *redis.Client, status int, payload any) {
	if rdb == nil {
		return
	}
	cacheKey := c.GetString(IdempotencyCacheKey)
	if cacheKey == "" {
		return
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	if entry, err := json.Marshal(idempotentResponse{Status: status, Data: data}); err == nil {
		_ = rdb.Set(c.Request.Context(), cacheKey, entry, IdempotencyTTL).Err()
	}
}
