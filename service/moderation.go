package service

import (
	"context"
	"encoding/json"
	"fmt"
	"memareh/config"
	"memareh/dao"
	"memareh/models"
	"memareh/pkg/log"
	"memareh/pkg/metrics"
	"memareh/pkg/rocketmq"
	"memareh/types"
	"strings"
	"time"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

const (
	ActionApprove = "approve"
	ActionReject  = "reject"
	ActionDelete  = "delete"
	ActionPin     = "pin"
	ActionUnpin   = "unpin"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

var _ IModerationService = (*ModerationService)(nil)

type IModerationService interface {
	ListByStatus(ctx context.Context, status string, page, pageSize int) (*types.ModerationListResponse, error)
	Counts(ctx context.Context) (*types.ModerationStats, error)
	Approve(ctx context.Context, commentID, moderatorID uint64) error
	Reject(ctx context.Context, commentID, moderatorID uint64, reason *string) error
	Delete(ctx context.Context, commentID, moderatorID uint64) error
	TogglePin(ctx context.Context, commentID, moderatorID uint64) (*types.PinResult, error)
}

type ModerationService struct {
	MQConf    *config.RocketMQConfig
	Comments  CommentStore
	Articles  ArticleStore
	Cache     ThreadCache
	Publisher rocketmq.Publisher
}

// ListByStatus 审核列表, newest first, with parent and article summaries
func (s *ModerationService) ListByStatus(ctx context.Context, status string, page, pageSize int) (*types.ModerationListResponse, error) {
	if !models.ValidCommentStatus(status) {
		return nil, ErrInvalidStatus
	}
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	// 多查一条判断是否还有下一页
	comments, err := s.Comments.ListByStatus(ctx, status, (page-1)*pageSize, pageSize+1)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	hasMore := len(comments) > pageSize
	if hasMore {
		comments = comments[:pageSize]
	}

	// 1. 收集父评论和文章ID
	parentIDs := make([]uint64, 0)
	articleIDs := make([]uint64, 0)
	seenParent := make(map[uint64]bool)
	seenArticle := make(map[uint64]bool)
	for _, c := range comments {
		if c.ParentID != nil && !seenParent[*c.ParentID] {
			seenParent[*c.ParentID] = true
			parentIDs = append(parentIDs, *c.ParentID)
		}
		if !seenArticle[c.ArticleID] {
			seenArticle[c.ArticleID] = true
			articleIDs = append(articleIDs, c.ArticleID)
		}
	}

	// 2. 并发获取关联数据
	var (
		parents  map[uint64]*models.Comment
		articles map[uint64]*models.Article
	)
	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		if len(parentIDs) == 0 {
			return nil
		}
		var err error
		parents, err = s.Comments.GetByIDs(ctx, parentIDs)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		articles, err = s.Articles.GetByIDs(ctx, articleIDs)
		return err
	})
	if err := p.Wait(); err != nil {
		return nil, fmt.Errorf("load moderation context: %w", err)
	}

	// 3. 组装
	items := make([]*types.ModerationItem, 0, len(comments))
	for _, c := range comments {
		item := &types.ModerationItem{
			ID:              c.ID,
			ArticleID:       c.ArticleID,
			UserID:          c.UserID,
			Content:         c.Content,
			Status:          c.Status,
			RejectionReason: c.RejectionReason,
			IsPinned:        c.IsPinned,
			LikeCount:       c.LikeCount,
			CreatedAt:       c.CreatedAt,
		}
		if a, ok := articles[c.ArticleID]; ok {
			item.Article = &types.ArticleBrief{ID: a.ID, Title: a.Title, Slug: a.Slug}
		}
		if c.ParentID != nil {
			if parent, ok := parents[*c.ParentID]; ok {
				item.Parent = &types.ParentBrief{ID: parent.ID, UserID: parent.UserID, Content: parent.Content}
			}
		}
		items = append(items, item)
	}

	return &types.ModerationListResponse{
		Status:   status,
		Page:     page,
		PageSize: pageSize,
		HasMore:  hasMore,
		Items:    items,
	}, nil
}

func (s *ModerationService) Counts(ctx context.Context) (*types.ModerationStats, error) {
	counts, err := s.Comments.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count comments: %w", err)
	}
	return &types.ModerationStats{
		Pending:  counts[models.CommentStatusPending],
		Approved: counts[models.CommentStatusApproved],
		Rejected: counts[models.CommentStatusRejected],
	}, nil
}

func (s *ModerationService) Approve(ctx context.Context, commentID, moderatorID uint64) error {
	comment, err := s.find(ctx, commentID)
	if err != nil {
		return err
	}

	err = s.transition(ctx, commentID, map[string]any{
		"status":           models.CommentStatusApproved,
		"rejection_reason": nil,
		"moderated_by":     moderatorID,
		"moderated_at":     time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	s.afterAction(ctx, ActionApprove, comment, moderatorID, nil)
	return nil
}

// Reject 拒绝评论, a blank reason is stored as NULL
func (s *ModerationService) Reject(ctx context.Context, commentID, moderatorID uint64, reason *string) error {
	comment, err := s.find(ctx, commentID)
	if err != nil {
		return err
	}

	var stored any
	if reason != nil {
		if trimmed := strings.TrimSpace(*reason); trimmed != "" {
			stored = trimmed
			reason = &trimmed
		} else {
			reason = nil
		}
	}

	err = s.transition(ctx, commentID, map[string]any{
		"status":           models.CommentStatusRejected,
		"rejection_reason": stored,
		"moderated_by":     moderatorID,
		"moderated_at":     time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	s.afterAction(ctx, ActionReject, comment, moderatorID, reason)
	return nil
}

// Delete 硬删除评论及其回复
func (s *ModerationService) Delete(ctx context.Context, commentID, moderatorID uint64) error {
	comment, err := s.find(ctx, commentID)
	if err != nil {
		return err
	}

	ids, err := s.Comments.DeleteTree(ctx, commentID)
	if err != nil {
		if dao.IsNotFound(err) {
			return ErrCommentNotFound
		}
		return fmt.Errorf("delete comment: %w", err)
	}
	log.L.Info("comment tree deleted", zap.Uint64("comment_id", commentID), zap.Int("removed", len(ids)))

	s.afterAction(ctx, ActionDelete, comment, moderatorID, nil)
	return nil
}

// TogglePin 置顶/取消置顶已审核的一级评论
func (s *ModerationService) TogglePin(ctx context.Context, commentID, moderatorID uint64) (*types.PinResult, error) {
	comment, err := s.find(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.Status != models.CommentStatusApproved || comment.ParentID != nil {
		return nil, ErrNotPinnable
	}

	pinned := !comment.IsPinned
	if err := s.Comments.SetPinned(ctx, commentID, pinned); err != nil {
		return nil, fmt.Errorf("pin comment: %w", err)
	}

	action := ActionPin
	if !pinned {
		action = ActionUnpin
	}
	s.afterAction(ctx, action, comment, moderatorID, nil)

	return &types.PinResult{CommentID: commentID, IsPinned: pinned}, nil
}

func (s *ModerationService) find(ctx context.Context, commentID uint64) (*models.Comment, error) {
	comment, err := s.Comments.GetByID(ctx, commentID)
	if err != nil {
		if dao.IsNotFound(err) {
			return nil, ErrCommentNotFound
		}
		return nil, fmt.Errorf("get comment: %w", err)
	}
	return comment, nil
}

// transition moves a pending comment; anything else is a conflict.
func (s *ModerationService) transition(ctx context.Context, commentID uint64, updates map[string]any) error {
	ok, err := s.Comments.Transition(ctx, commentID, models.CommentStatusPending, updates)
	if err != nil {
		return fmt.Errorf("update comment status: %w", err)
	}
	if !ok {
		return ErrInvalidTransition
	}
	return nil
}

// afterAction 清缓存, 计数, 发送审核事件. Failures here are logged only.
func (s *ModerationService) afterAction(ctx context.Context, action string, comment *models.Comment, moderatorID uint64, reason *string) {
	metrics.ModerationActions.WithLabelValues(action).Inc()

	if err := s.Cache.Invalidate(ctx, comment.ArticleID); err != nil {
		log.L.Warn("invalidate thread cache failed", zap.Uint64("article_id", comment.ArticleID), zap.Error(err))
	}

	event := &types.ModerationEvent{
		Action:      action,
		CommentID:   comment.ID,
		ArticleID:   comment.ArticleID,
		AuthorID:    comment.UserID,
		ModeratorID: moderatorID,
		Reason:      reason,
		At:          time.Now().UTC(),
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.L.Error("marshal moderation event", zap.Error(err))
		return
	}
	if err := s.Publisher.Publish(ctx, s.MQConf.Topic, body); err != nil {
		log.L.Warn("publish moderation event failed",
			zap.String("action", action),
			zap.Uint64("comment_id", comment.ID),
			zap.Error(err),
		)
	}

	log.L.Info("comment moderated",
		zap.String("action", action),
		zap.Uint64("comment_id", comment.ID),
		zap.Uint64("moderator_id", moderatorID),
	)
}
