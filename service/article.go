package service

import (
	"context"
	"fmt"
	"math"
	"memareh/dao"
	"memareh/models"
	"memareh/pkg/log"
	"memareh/types"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

// articleHTML 文章正文是编辑撰写的 HTML, scripts and event handlers are removed before serving.
var articleHTML = bluemonday.UGCPolicy()

const (
	minRating = 1
	maxRating = 5
)

var _ IArticleService = (*ArticleService)(nil)

type IArticleService interface {
	// GetBySlug 已发布文章详情, counts a view
	GetBySlug(ctx context.Context, slug string, userID uint64) (*types.ArticleResponse, error)
	// Rate 评分, re-rating replaces the previous value
	Rate(ctx context.Context, slug string, userID uint64, rating int) (*types.RatingStats, error)
	Stats(ctx context.Context, articleID uint64) (*types.RatingStats, error)
}

type ArticleService struct {
	Articles ArticleStore
	Ratings  RatingStore
}

func (s *ArticleService) GetBySlug(ctx context.Context, slug string, userID uint64) (*types.ArticleResponse, error) {
	article, err := s.published(ctx, slug)
	if err != nil {
		return nil, err
	}

	// 浏览数失败不影响阅读
	if err := s.Articles.IncrViewCount(ctx, article.ID); err != nil {
		log.L.Warn("incr view count failed", zap.Uint64("article_id", article.ID), zap.Error(err))
	} else {
		article.ViewCount++
	}

	stats, err := s.Stats(ctx, article.ID)
	if err != nil {
		return nil, err
	}
	userRating, err := s.Ratings.GetUserRating(ctx, article.ID, userID)
	if err != nil {
		return nil, fmt.Errorf("get user rating: %w", err)
	}

	tags := []string(article.Tags)
	if tags == nil {
		tags = []string{}
	}

	return &types.ArticleResponse{
		ID:            article.ID,
		Slug:          article.Slug,
		Title:         article.Title,
		Excerpt:       article.Excerpt,
		Content:       articleHTML.Sanitize(article.Content),
		FeaturedImage: article.FeaturedImage,
		Category:      article.Category,
		Tags:          tags,
		AuthorName:    article.AuthorName,
		AllowComments: article.AllowComments,
		ViewCount:     article.ViewCount,
		ReadingTime:   article.ReadingTime,
		PublishedAt:   article.PublishedAt,
		Rating:        *stats,
		UserRating:    userRating,
	}, nil
}

func (s *ArticleService) Rate(ctx context.Context, slug string, userID uint64, rating int) (*types.RatingStats, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}
	if rating < minRating || rating > maxRating {
		return nil, ErrInvalidRating
	}

	article, err := s.published(ctx, slug)
	if err != nil {
		return nil, err
	}

	if err := s.Ratings.Upsert(ctx, article.ID, userID, rating); err != nil {
		return nil, fmt.Errorf("save rating: %w", err)
	}
	return s.Stats(ctx, article.ID)
}

// Stats 平均分保留一位小数, distribution always has keys 1..5
func (s *ArticleService) Stats(ctx context.Context, articleID uint64) (*types.RatingStats, error) {
	dist, err := s.Ratings.Distribution(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("rating distribution: %w", err)
	}

	stats := &types.RatingStats{Distribution: make(map[int]int64, maxRating)}
	var sum int64
	for r := minRating; r <= maxRating; r++ {
		n := dist[r]
		stats.Distribution[r] = n
		stats.Total += n
		sum += int64(r) * n
	}
	if stats.Total > 0 {
		stats.Average = math.Round(float64(sum)/float64(stats.Total)*10) / 10
	}
	return stats, nil
}

func (s *ArticleService) published(ctx context.Context, slug string) (*models.Article, error) {
	article, err := s.Articles.GetPublishedBySlug(ctx, slug)
	if err != nil {
		if dao.IsNotFound(err) {
			return nil, ErrArticleNotFound
		}
		return nil, fmt.Errorf("get article: %w", err)
	}
	return article, nil
}
