package models

import (
	"time"
)

const (
	CommentStatusPending  = "pending"
	CommentStatusApproved = "approved"
	CommentStatusRejected = "rejected"
)

// ValidCommentStatus reports whether s is one of the three moderation states.
func ValidCommentStatus(s string) bool {
	switch s {
	case CommentStatusPending, CommentStatusApproved, CommentStatusRejected:
		return true
	}
	return false
}

// Comment 文章评论
type Comment struct {
	ID              uint64     `gorm:"column:id;primaryKey;autoIncrement:false" json:"id,string"`
	ArticleID       uint64     `gorm:"column:article_id;not null;index:idx_article_status" json:"article_id,string"`
	UserID          uint64     `gorm:"column:user_id;not null;index:idx_user_id" json:"user_id,string"`
	ParentID        *uint64    `gorm:"column:parent_id;index:idx_parent_id" json:"parent_id,string,omitempty"`
	Depth           int        `gorm:"column:depth;not null;default:0" json:"depth"`
	Content         string     `gorm:"column:content;type:text;not null" json:"content"`
	Status          string     `gorm:"column:status;type:varchar(16);not null;default:'pending';index:idx_article_status;index:idx_status_created" json:"status"`
	RejectionReason *string    `gorm:"column:rejection_reason;type:text" json:"rejection_reason,omitempty"`
	LikeCount       int        `gorm:"column:like_count;not null;default:0" json:"like_count"`
	IsPinned        bool       `gorm:"column:is_pinned;not null;default:false" json:"is_pinned"`
	ModeratedBy     *uint64    `gorm:"column:moderated_by" json:"moderated_by,string,omitempty"`
	ModeratedAt     *time.Time `gorm:"column:moderated_at" json:"moderated_at,omitempty"`
	CreatedAt       time.Time  `gorm:"column:created_at;index:idx_status_created" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"column:updated_at" json:"updated_at"`
}

func (Comment) TableName() string {
	return "article_comments"
}

// CommentLike 评论点赞表
type CommentLike struct {
	ID        uint64    `gorm:"column:id;primaryKey" json:"id"`
	CommentID uint64    `gorm:"column:comment_id;not null;uniqueIndex:idx_comment_user" json:"comment_id,string"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:idx_comment_user" json:"user_id,string"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (CommentLike) TableName() string {
	return "comment_likes"
}
