package cache

import (
	"context"
	"fmt"
	"memareh/config"
	"memareh/pkg/log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// releaseIfOwner deletes the lock only when it still holds the caller's token.
var releaseIfOwner = redis.NewScript(`
if redis.call('GET', KEYS[1]) == ARGV[1] then
	return redis.call('DEL', KEYS[1])
end
return 0
`)

// ActionLock 基于 SETNX 的短时互斥锁, used to reject double submissions.
type ActionLock struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewActionLock(rds *redis.Client, conf *config.Comment) *ActionLock {
	return &ActionLock{redis: rds, ttl: conf.LockTTL()}
}

// Acquire returns ok=false when the lock is already held. The token must be
// handed back to Release.
func (l *ActionLock) Acquire(ctx context.Context, key string) (string, bool, error) {
	token := uuid.NewString()
	ok, err := l.redis.SetNX(ctx, l.name(key), token, l.ttl).Result()
	if err != nil || !ok {
		return "", false, err
	}
	return token, true, nil
}

// Release frees the lock if it is still ours; an expired lock taken by
// another request is left alone.
func (l *ActionLock) Release(ctx context.Context, key, token string) {
	if err := releaseIfOwner.Run(ctx, l.redis, []string{l.name(key)}, token).Err(); err != nil {
		log.L.Warn("release lock failed", zap.String("key", key), zap.Error(err))
	}
}

func (l *ActionLock) name(key string) string {
	return fmt.Sprintf("lock:%s", key)
}

// SubmitLockKey lock:comment:submit:{userID}
func SubmitLockKey(userID uint64) string {
	return fmt.Sprintf("comment:submit:%d", userID)
}

// LikeLockKey lock:comment:like:{commentID}:{userID}
func LikeLockKey(commentID, userID uint64) string {
	return fmt.Sprintf("comment:like:%d:%d", commentID, userID)
}
