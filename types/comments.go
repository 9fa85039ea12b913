package types

import "time"

// 创建评论请求, content is validated by the service so blank input never reaches the store
type SubmitCommentRequest struct {
	ArticleID uint64  `json:"article_id,string" binding:"required"`
	Content   string  `json:"content"`
	ParentID  *uint64 `json:"parent_id,string,omitempty"`
}

// 点赞评论请求
type LikeCommentRequest struct {
	CommentID uint64 `json:"comment_id,string" binding:"required"`
}

type LikeResult struct {
	CommentID uint64 `json:"comment_id,string"`
	Liked     bool   `json:"liked"`
	LikeCount int    `json:"like_count"`
}

// CommentResponse 刚提交的评论
type CommentResponse struct {
	ID        uint64    `json:"id,string"`
	ArticleID uint64    `json:"article_id,string"`
	UserID    uint64    `json:"user_id,string"`
	ParentID  *uint64   `json:"parent_id,string,omitempty"`
	Depth     int       `json:"depth"`
	Content   string    `json:"content"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type SubmitCommentResponse struct {
	Comment *CommentResponse `json:"comment"`
	Notice  string           `json:"notice"`
}

// CommentNode 评论树节点
type CommentNode struct {
	ID        uint64         `json:"id,string"`
	ArticleID uint64         `json:"article_id,string"`
	UserID    uint64         `json:"user_id,string"`
	ParentID  *uint64        `json:"parent_id,string,omitempty"`
	Content   string         `json:"content"`
	LikeCount int            `json:"like_count"`
	IsPinned  bool           `json:"is_pinned"`
	IsLiked   bool           `json:"is_liked"`
	Depth     int            `json:"depth"`
	CanReply  bool           `json:"can_reply"`
	CreatedAt time.Time      `json:"created_at"`
	Replies   []*CommentNode `json:"replies"`
}

// Walk visits n and all of its replies depth first.
func (n *CommentNode) Walk(fn func(*CommentNode)) {
	fn(n)
	for _, r := range n.Replies {
		r.Walk(fn)
	}
}

type ThreadResponse struct {
	ArticleID     uint64         `json:"article_id,string"`
	AllowComments bool           `json:"allow_comments"`
	Total         int            `json:"total"`
	Comments      []*CommentNode `json:"comments"`
}
