package dao

import (
	"context"
	"errors"
	"memareh/models"

	"gorm.io/gorm"
)

// ErrLikeExists is returned by Insert when the (comment, user) pair is already stored.
var ErrLikeExists = errors.New("comment already liked")

type CommentLike struct {
	Repo[models.CommentLike]
}

func NewCommentLike(db *gorm.DB) *CommentLike {
	return &CommentLike{
		Repo: NewRepo[models.CommentLike](db),
	}
}

// Insert 创建点赞记录, relying on idx_comment_user for uniqueness
func (d *CommentLike) Insert(ctx context.Context, commentID, userID uint64) error {
	like := &models.CommentLike{CommentID: commentID, UserID: userID}
	err := d.Create(ctx, like)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrLikeExists
	}
	return err
}

// Delete 删除点赞记录, reports whether a row was removed
func (d *CommentLike) Delete(ctx context.Context, commentID, userID uint64) (bool, error) {
	res := d.Db.WithContext(ctx).
		Where("comment_id = ? AND user_id = ?", commentID, userID).
		Delete(&models.CommentLike{})
	return res.RowsAffected > 0, res.Error
}

// BatchCheckExists 批量检查点赞状态
func (d *CommentLike) BatchCheckExists(ctx context.Context, commentIDs []uint64, userID uint64) (map[uint64]bool, error) {
	result := make(map[uint64]bool)
	if len(commentIDs) == 0 || userID == 0 {
		return result, nil
	}

	var likedIDs []uint64
	err := d.Model(ctx).
		Where("comment_id IN ? AND user_id = ?", commentIDs, userID).
		Pluck("comment_id", &likedIDs).Error
	if err != nil {
		return nil, err
	}

	for _, id := range likedIDs {
		result[id] = true
	}

	return result, nil
}
