package service

import (
	"context"
	"memareh/models"
	"memareh/types"
)

// CommentStore is satisfied by *dao.Comment.
type CommentStore interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, commentID uint64) (*models.Comment, error)
	GetByIDs(ctx context.Context, ids []uint64) (map[uint64]*models.Comment, error)
	ListByArticle(ctx context.Context, articleID uint64, status string) ([]*models.Comment, error)
	ListByStatus(ctx context.Context, status string, offset, limit int) ([]*models.Comment, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
	Transition(ctx context.Context, commentID uint64, from string, updates map[string]any) (bool, error)
	SetPinned(ctx context.Context, commentID uint64, pinned bool) error
	DeleteTree(ctx context.Context, commentID uint64) ([]uint64, error)
	RecountLikes(ctx context.Context, commentID uint64) (int, error)
	RecountAllLikes(ctx context.Context) (int64, error)
}

// LikeStore is satisfied by *dao.CommentLike.
type LikeStore interface {
	Insert(ctx context.Context, commentID, userID uint64) error
	Delete(ctx context.Context, commentID, userID uint64) (bool, error)
	BatchCheckExists(ctx context.Context, commentIDs []uint64, userID uint64) (map[uint64]bool, error)
}

// ArticleStore is satisfied by *dao.Article.
type ArticleStore interface {
	GetPublishedBySlug(ctx context.Context, slug string) (*models.Article, error)
	GetByID(ctx context.Context, id uint64) (*models.Article, error)
	GetByIDs(ctx context.Context, ids []uint64) (map[uint64]*models.Article, error)
	IncrViewCount(ctx context.Context, id uint64) error
}

// RatingStore is satisfied by *dao.ArticleRating.
type RatingStore interface {
	Upsert(ctx context.Context, articleID, userID uint64, rating int) error
	Distribution(ctx context.Context, articleID uint64) (map[int]int64, error)
	GetUserRating(ctx context.Context, articleID, userID uint64) (int, error)
}

// ThreadCache is satisfied by *cache.ThreadStorage.
type ThreadCache interface {
	Get(ctx context.Context, articleID uint64) ([]*types.CommentNode, bool, error)
	Version(ctx context.Context, articleID uint64) (int64, error)
	Set(ctx context.Context, articleID uint64, version int64, nodes []*types.CommentNode) (bool, error)
	Invalidate(ctx context.Context, articleID uint64) error
}

// Locker is satisfied by *cache.ActionLock.
type Locker interface {
	Acquire(ctx context.Context, key string) (token string, ok bool, err error)
	Release(ctx context.Context, key, token string)
}
