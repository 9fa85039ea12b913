package service

import (
	"context"
	"fmt"
	"memareh/config"
	"memareh/dao"
	"memareh/dao/cache"
	"memareh/models"
	"memareh/pkg/log"
	"memareh/pkg/metrics"
	"memareh/pkg/snowflake"
	"memareh/types"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
)

// PendingNotice 提交成功后展示给用户的提示
const PendingNotice = "دیدگاه شما ثبت شد و پس از تأیید مدیر نمایش داده می‌شود."

var _ ICommentsService = (*CommentsService)(nil)

type ICommentsService interface {
	// Submit 提交评论, the new comment waits for moderation
	Submit(ctx context.Context, userID uint64, req *types.SubmitCommentRequest) (*types.SubmitCommentResponse, error)
	// Thread 文章已审核评论树
	Thread(ctx context.Context, slug string, userID uint64) (*types.ThreadResponse, error)
	// ToggleLike 点赞/取消点赞
	ToggleLike(ctx context.Context, commentID, userID uint64) (*types.LikeResult, error)
	// RecountAllLikes 以点赞表为准修复全部评论的点赞数
	RecountAllLikes(ctx context.Context) (int64, error)
}

type CommentsService struct {
	Conf     *config.Comment
	Comments CommentStore
	Likes    LikeStore
	Articles ArticleStore
	Cache    ThreadCache
	Lock     Locker
}

func (s *CommentsService) Submit(ctx context.Context, userID uint64, req *types.SubmitCommentRequest) (*types.SubmitCommentResponse, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}

	// 1. 内容校验, 不访问存储
	content, err := s.cleanContent(req.Content)
	if err != nil {
		metrics.CommentSubmissions.WithLabelValues("invalid").Inc()
		return nil, err
	}

	// 2. 防重复提交
	lockKey := cache.SubmitLockKey(userID)
	token, ok, err := s.Lock.Acquire(ctx, lockKey)
	if err != nil {
		return nil, fmt.Errorf("acquire submit lock: %w", err)
	}
	if !ok {
		return nil, ErrTooFrequent
	}
	defer s.Lock.Release(ctx, lockKey, token)

	// 3. 文章必须已发布且允许评论
	article, err := s.Articles.GetByID(ctx, req.ArticleID)
	if err != nil {
		if dao.IsNotFound(err) {
			return nil, ErrArticleNotFound
		}
		return nil, fmt.Errorf("get article: %w", err)
	}
	if !article.IsPublished() {
		return nil, ErrArticleNotFound
	}
	if !article.AllowComments {
		return nil, ErrCommentsDisabled
	}

	// 4. 回复校验
	depth := 0
	if req.ParentID != nil {
		parent, err := s.Comments.GetByID(ctx, *req.ParentID)
		if err != nil {
			if dao.IsNotFound(err) {
				return nil, ErrParentNotFound
			}
			return nil, fmt.Errorf("get parent comment: %w", err)
		}
		if parent.ArticleID != article.ID {
			return nil, ErrParentMismatch
		}
		if parent.Status != models.CommentStatusApproved {
			return nil, ErrParentNotFound
		}
		if parent.Depth >= s.Conf.MaxReplyDepth {
			return nil, ErrReplyTooDeep
		}
		depth = parent.Depth + 1
	}

	// 5. 入库, 状态为待审核
	now := time.Now().UTC()
	comment := &models.Comment{
		ID:        uint64(snowflake.GenID()),
		ArticleID: article.ID,
		UserID:    userID,
		ParentID:  req.ParentID,
		Depth:     depth,
		Content:   content,
		Status:    models.CommentStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Comments.Create(ctx, comment); err != nil {
		metrics.CommentSubmissions.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("create comment: %w", err)
	}
	metrics.CommentSubmissions.WithLabelValues("pending").Inc()

	log.L.Info("comment submitted",
		zap.Uint64("comment_id", comment.ID),
		zap.Uint64("article_id", comment.ArticleID),
		zap.Uint64("user_id", userID),
		zap.Int("depth", depth),
	)

	return &types.SubmitCommentResponse{
		Comment: &types.CommentResponse{
			ID:        comment.ID,
			ArticleID: comment.ArticleID,
			UserID:    comment.UserID,
			ParentID:  comment.ParentID,
			Depth:     comment.Depth,
			Content:   comment.Content,
			Status:    comment.Status,
			CreatedAt: comment.CreatedAt,
		},
		Notice: PendingNotice,
	}, nil
}

// cleanContent trims and bounds raw input. The text is stored as written and
// rendered as plain text by clients.
func (s *CommentsService) cleanContent(raw string) (string, error) {
	content := strings.TrimSpace(raw)
	if content == "" {
		return "", ErrEmptyContent
	}
	if utf8.RuneCountInString(content) > s.Conf.MaxContentLength {
		return "", ErrContentTooLong
	}
	return content, nil
}

func (s *CommentsService) Thread(ctx context.Context, slug string, userID uint64) (*types.ThreadResponse, error) {
	article, err := s.Articles.GetPublishedBySlug(ctx, slug)
	if err != nil {
		if dao.IsNotFound(err) {
			return nil, ErrArticleNotFound
		}
		return nil, fmt.Errorf("get article: %w", err)
	}

	nodes, err := s.approvedThread(ctx, article)
	if err != nil {
		return nil, err
	}

	// 当前用户的点赞状态不进缓存
	ids := make([]uint64, 0)
	for _, root := range nodes {
		root.Walk(func(n *types.CommentNode) {
			n.CanReply = article.AllowComments && n.Depth < s.Conf.MaxReplyDepth
			ids = append(ids, n.ID)
		})
	}
	if userID > 0 && len(ids) > 0 {
		liked, err := s.Likes.BatchCheckExists(ctx, ids, userID)
		if err != nil {
			log.L.Warn("check comment likes failed", zap.Uint64("article_id", article.ID), zap.Error(err))
		}
		for _, root := range nodes {
			root.Walk(func(n *types.CommentNode) {
				n.IsLiked = liked[n.ID]
			})
		}
	}

	return &types.ThreadResponse{
		ArticleID:     article.ID,
		AllowComments: article.AllowComments,
		Total:         len(ids),
		Comments:      nodes,
	}, nil
}

// approvedThread reads the cached tree, building and caching it on a miss.
// The cache version is read before the rows so a moderation action that lands
// in between keeps the rebuilt tree out of the cache.
func (s *CommentsService) approvedThread(ctx context.Context, article *models.Article) ([]*types.CommentNode, error) {
	nodes, ok, err := s.Cache.Get(ctx, article.ID)
	if err != nil {
		log.L.Warn("read thread cache failed", zap.Uint64("article_id", article.ID), zap.Error(err))
	}
	if ok {
		return nodes, nil
	}

	version, verErr := s.Cache.Version(ctx, article.ID)
	if verErr != nil {
		log.L.Warn("read thread cache version failed", zap.Uint64("article_id", article.ID), zap.Error(verErr))
	}

	comments, err := s.Comments.ListByArticle(ctx, article.ID, models.CommentStatusApproved)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	nodes = BuildThread(comments, article.AllowComments, s.Conf.MaxReplyDepth)

	if verErr != nil {
		return nodes, nil
	}
	written, err := s.Cache.Set(ctx, article.ID, version, nodes)
	if err != nil {
		log.L.Warn("write thread cache failed", zap.Uint64("article_id", article.ID), zap.Error(err))
	} else if !written {
		log.L.Debug("thread changed while loading, cache not written", zap.Uint64("article_id", article.ID))
	}
	return nodes, nil
}

func (s *CommentsService) RecountAllLikes(ctx context.Context) (int64, error) {
	n, err := s.Comments.RecountAllLikes(ctx)
	if err != nil {
		return 0, fmt.Errorf("recount likes: %w", err)
	}
	log.L.Info("like counts recomputed", zap.Int64("comments", n))
	return n, nil
}
