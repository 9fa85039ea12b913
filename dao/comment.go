package dao

import (
	"context"
	"memareh/models"
	"time"

	"gorm.io/gorm"
)

type Comment struct {
	Repo[models.Comment]
}

func NewComment(db *gorm.DB) *Comment {
	return &Comment{
		Repo: NewRepo[models.Comment](db),
	}
}

// GetByID 根据ID获取评论(任意状态)
func (d *Comment) GetByID(ctx context.Context, commentID uint64) (*models.Comment, error) {
	return d.FindById(ctx, commentID)
}

// GetByIDs 批量获取评论, keyed by id
func (d *Comment) GetByIDs(ctx context.Context, ids []uint64) (map[uint64]*models.Comment, error) {
	comments, err := d.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	result := make(map[uint64]*models.Comment, len(comments))
	for _, c := range comments {
		result[c.ID] = c
	}
	return result, nil
}

// ListByArticle 获取文章下指定状态的全部评论(平铺, 由 service 组装成树)
func (d *Comment) ListByArticle(ctx context.Context, articleID uint64, status string) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := d.Db.WithContext(ctx).
		Where("article_id = ? AND status = ?", articleID, status).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

// ListByStatus 审核列表, newest first
func (d *Comment) ListByStatus(ctx context.Context, status string, offset, limit int) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := d.Db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at DESC").
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&comments).Error
	return comments, err
}

// CountByStatus 每个状态的评论数
func (d *Comment) CountByStatus(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Status string
		Total  int64
	}
	err := d.Model(ctx).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := map[string]int64{
		models.CommentStatusPending:  0,
		models.CommentStatusApproved: 0,
		models.CommentStatusRejected: 0,
	}
	for _, row := range rows {
		result[row.Status] = row.Total
	}
	return result, nil
}

// Transition moves a comment out of status `from`. It reports false when the
// row is missing or no longer in `from`, leaving it untouched.
func (d *Comment) Transition(ctx context.Context, commentID uint64, from string, updates map[string]any) (bool, error) {
	updates["updated_at"] = time.Now().UTC()
	res := d.Model(ctx).
		Where("id = ? AND status = ?", commentID, from).
		Updates(updates)
	return res.RowsAffected > 0, res.Error
}

// SetPinned 置顶/取消置顶
func (d *Comment) SetPinned(ctx context.Context, commentID uint64, pinned bool) error {
	_, err := d.UpdateById(ctx, commentID, map[string]any{"is_pinned": pinned, "updated_at": time.Now().UTC()})
	return err
}

// DeleteTree 硬删除评论及其所有回复和点赞, returns the deleted comment ids
func (d *Comment) DeleteTree(ctx context.Context, commentID uint64) ([]uint64, error) {
	var deleted []uint64
	err := d.Transaction(ctx, func(tx *gorm.DB) error {
		ids := []uint64{commentID}
		frontier := []uint64{commentID}
		seen := map[uint64]bool{commentID: true}

		// 1. 逐层收集回复
		for len(frontier) > 0 {
			var children []uint64
			if err := tx.Model(&models.Comment{}).
				Where("parent_id IN ?", frontier).
				Pluck("id", &children).Error; err != nil {
				return err
			}
			frontier = frontier[:0]
			for _, id := range children {
				if seen[id] {
					continue
				}
				seen[id] = true
				ids = append(ids, id)
				frontier = append(frontier, id)
			}
		}

		// 2. 删除点赞
		if err := tx.Where("comment_id IN ?", ids).Delete(&models.CommentLike{}).Error; err != nil {
			return err
		}

		// 3. 删除评论
		res := tx.Where("id IN ?", ids).Delete(&models.Comment{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		deleted = ids
		return nil
	})
	return deleted, err
}

const recountLikesSQL = `UPDATE article_comments SET like_count = (
	SELECT COUNT(*) FROM comment_likes WHERE comment_likes.comment_id = article_comments.id
)`

// RecountLikes 以点赞表为准重算点赞数, returns the stored count
func (d *Comment) RecountLikes(ctx context.Context, commentID uint64) (int, error) {
	db := d.Db.WithContext(ctx)
	if err := db.Exec(recountLikesSQL+" WHERE id = ?", commentID).Error; err != nil {
		return 0, err
	}

	var count int
	err := db.Model(&models.Comment{}).
		Where("id = ?", commentID).
		Pluck("like_count", &count).Error
	return count, err
}

// RecountAllLikes repairs like_count for every comment.
func (d *Comment) RecountAllLikes(ctx context.Context) (int64, error) {
	res := d.Db.WithContext(ctx).Exec(recountLikesSQL)
	return res.RowsAffected, res.Error
}
