package types

import "time"

type ModerationListRequest struct {
	Status   string `form:"status" binding:"required,oneof=pending approved rejected"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

type ArticleBrief struct {
	ID    uint64 `json:"id,string"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

type ParentBrief struct {
	ID      uint64 `json:"id,string"`
	UserID  uint64 `json:"user_id,string"`
	Content string `json:"content"`
}

type ModerationItem struct {
	ID              uint64        `json:"id,string"`
	ArticleID       uint64        `json:"article_id,string"`
	UserID          uint64        `json:"user_id,string"`
	Content         string        `json:"content"`
	Status          string        `json:"status"`
	RejectionReason *string       `json:"rejection_reason,omitempty"`
	IsPinned        bool          `json:"is_pinned"`
	LikeCount       int           `json:"like_count"`
	CreatedAt       time.Time     `json:"created_at"`
	Article         *ArticleBrief `json:"article,omitempty"`
	Parent          *ParentBrief  `json:"parent,omitempty"`
}

type ModerationListResponse struct {
	Status   string            `json:"status"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
	HasMore  bool              `json:"has_more"`
	Items    []*ModerationItem `json:"items"`
}

type ModerationStats struct {
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}

type ModerateCommentRequest struct {
	CommentID uint64 `json:"comment_id,string" binding:"required"`
}

type RejectCommentRequest struct {
	CommentID uint64  `json:"comment_id,string" binding:"required"`
	Reason    *string `json:"reason,omitempty"`
}

type PinResult struct {
	CommentID uint64 `json:"comment_id,string"`
	IsPinned  bool   `json:"is_pinned"`
}

// ModerationEvent is published after every moderation action.
type ModerationEvent struct {
	Action      string    `json:"action"`
	CommentID   uint64    `json:"comment_id,string"`
	ArticleID   uint64    `json:"article_id,string"`
	AuthorID    uint64    `json:"author_id,string"`
	ModeratorID uint64    `json:"moderator_id,string"`
	Reason      *string   `json:"reason,omitempty"`
	At          time.Time `json:"at"`
}
