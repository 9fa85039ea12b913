package service

import (
	"context"
	"errors"
	"fmt"
	"memareh/dao"
	"memareh/dao/cache"
	"memareh/models"
	"memareh/pkg/log"
	"memareh/types"

	"go.uber.org/zap"
)

// ToggleLike 点赞或取消点赞.
// The returned count is read back from the like table after the write.
func (s *CommentsService) ToggleLike(ctx context.Context, commentID, userID uint64) (*types.LikeResult, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}

	// 1. 分布式锁, 防止同一用户并发点击
	lockKey := cache.LikeLockKey(commentID, userID)
	token, ok, err := s.Lock.Acquire(ctx, lockKey)
	if err != nil {
		return nil, fmt.Errorf("acquire like lock: %w", err)
	}
	if !ok {
		return nil, ErrTooFrequent
	}
	defer s.Lock.Release(ctx, lockKey, token)

	// 2. 只能给已审核的评论点赞
	comment, err := s.Comments.GetByID(ctx, commentID)
	if err != nil {
		if dao.IsNotFound(err) {
			return nil, ErrCommentNotFound
		}
		return nil, fmt.Errorf("get comment: %w", err)
	}
	if comment.Status != models.CommentStatusApproved {
		return nil, ErrCommentNotFound
	}

	// 3. 先插入, 唯一索引冲突说明已点赞, 改为删除
	liked := true
	err = s.Likes.Insert(ctx, commentID, userID)
	switch {
	case errors.Is(err, dao.ErrLikeExists):
		if _, err := s.Likes.Delete(ctx, commentID, userID); err != nil {
			return nil, fmt.Errorf("delete like: %w", err)
		}
		liked = false
	case err != nil:
		return nil, fmt.Errorf("insert like: %w", err)
	}

	// 4. 以点赞表为准回写计数
	count, err := s.Comments.RecountLikes(ctx, commentID)
	if err != nil {
		return nil, fmt.Errorf("recount likes: %w", err)
	}

	if err := s.Cache.Invalidate(ctx, comment.ArticleID); err != nil {
		log.L.Warn("invalidate thread cache failed", zap.Uint64("article_id", comment.ArticleID), zap.Error(err))
	}

	return &types.LikeResult{
		CommentID: commentID,
		Liked:     liked,
		LikeCount: count,
	}, nil
}
