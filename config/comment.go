package config

import "time"

// Comment 评论相关的可调参数
type Comment struct {
	MaxContentLength int `json:"max_content_length" yaml:"max_content_length"`
	// MaxReplyDepth replies are offered only to comments shallower than this
	MaxReplyDepth int `json:"max_reply_depth" yaml:"max_reply_depth"`
	// ThreadCacheTTL 秒
	ThreadCacheTTL int `json:"thread_cache_ttl" yaml:"thread_cache_ttl"`
	// SubmitLockTTL 秒
	SubmitLockTTL int `json:"submit_lock_ttl" yaml:"submit_lock_ttl"`
}

func (c *Comment) fill() {
	if c.MaxContentLength <= 0 {
		c.MaxContentLength = 1000
	}
	if c.MaxReplyDepth <= 0 {
		c.MaxReplyDepth = 2
	}
	if c.ThreadCacheTTL <= 0 {
		c.ThreadCacheTTL = 600
	}
	if c.SubmitLockTTL <= 0 {
		c.SubmitLockTTL = 5
	}
}

func (c *Comment) CacheTTL() time.Duration {
	return time.Duration(c.ThreadCacheTTL) * time.Second
}

func (c *Comment) LockTTL() time.Duration {
	return time.Duration(c.SubmitLockTTL) * time.Second
}

func ProvideCommentConfig(cfg *Config) *Comment {
	return cfg.Comment
}
