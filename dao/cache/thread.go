package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"memareh/config"
	"memareh/types"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// setIfVersion writes the tree only while the article's version is still the one
// the caller read before loading rows.
var setIfVersion = redis.NewScript(`
local current = redis.call('GET', KEYS[2]) or '0'
if current ~= ARGV[1] then
	return 0
end
redis.call('SET', KEYS[1], ARGV[2], 'PX', ARGV[3])
return 1
`)

// ThreadStorage 文章已审核评论树缓存.
// The cached tree never carries per-user flags; is_liked is applied after reading.
type ThreadStorage struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewThreadStorage(rds *redis.Client, conf *config.Comment) *ThreadStorage {
	return &ThreadStorage{redis: rds, ttl: conf.CacheTTL()}
}

// Get reports ok=false on a cache miss.
func (t *ThreadStorage) Get(ctx context.Context, articleID uint64) ([]*types.CommentNode, bool, error) {
	val, err := t.redis.Get(ctx, t.name(articleID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var nodes []*types.CommentNode
	if err := json.Unmarshal(val, &nodes); err != nil {
		// 缓存内容损坏, 当作未命中
		_ = t.redis.Del(ctx, t.name(articleID)).Err()
		return nil, false, nil
	}
	return nodes, true, nil
}

// Version 当前缓存代数, read before loading rows and passed back to Set.
func (t *ThreadStorage) Version(ctx context.Context, articleID uint64) (int64, error) {
	v, err := t.redis.Get(ctx, t.versionName(articleID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return v, err
}

// Set stores the tree unless Invalidate ran after version was read.
// It reports whether the entry was written.
func (t *ThreadStorage) Set(ctx context.Context, articleID uint64, version int64, nodes []*types.CommentNode) (bool, error) {
	if nodes == nil {
		nodes = []*types.CommentNode{}
	}
	text, err := json.Marshal(nodes)
	if err != nil {
		return false, err
	}

	keys := []string{t.name(articleID), t.versionName(articleID)}
	n, err := setIfVersion.Run(ctx, t.redis, keys, strconv.FormatInt(version, 10), text, t.ttl.Milliseconds()).Int()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// Invalidate 评论状态变化后删除缓存并推进代数
func (t *ThreadStorage) Invalidate(ctx context.Context, articleID uint64) error {
	_, err := t.redis.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, t.versionName(articleID))
		pipe.Del(ctx, t.name(articleID))
		return nil
	})
	return err
}

// article:thread:{articleID}
func (t *ThreadStorage) name(articleID uint64) string {
	return fmt.Sprintf("article:thread:%d", articleID)
}

// article:thread:ver:{articleID}
func (t *ThreadStorage) versionName(articleID uint64) string {
	return fmt.Sprintf("article:thread:ver:%d", articleID)
}
