package dao

import (
	"context"
	"memareh/models"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ArticleRating struct {
	Repo[models.ArticleRating]
}

func NewArticleRating(db *gorm.DB) *ArticleRating {
	return &ArticleRating{Repo: NewRepo[models.ArticleRating](db)}
}

// Upsert 新增或更新用户对文章的评分
func (d *ArticleRating) Upsert(ctx context.Context, articleID, userID uint64, rating int) error {
	now := time.Now().UTC()
	row := &models.ArticleRating{
		ArticleID: articleID,
		UserID:    userID,
		Rating:    rating,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return d.Db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "article_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"rating", "updated_at"}),
	}).Create(row).Error
}

// Distribution returns rating value -> number of votes.
func (d *ArticleRating) Distribution(ctx context.Context, articleID uint64) (map[int]int64, error) {
	var rows []struct {
		Rating int
		Total  int64
	}
	err := d.Model(ctx).
		Select("rating, COUNT(*) AS total").
		Where("article_id = ?", articleID).
		Group("rating").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make(map[int]int64, len(rows))
	for _, row := range rows {
		result[row.Rating] = row.Total
	}
	return result, nil
}

// GetUserRating returns 0 when the user has not rated the article.
func (d *ArticleRating) GetUserRating(ctx context.Context, articleID, userID uint64) (int, error) {
	if userID == 0 {
		return 0, nil
	}
	var ratings []int
	err := d.Model(ctx).
		Where("article_id = ? AND user_id = ?", articleID, userID).
		Limit(1).
		Pluck("rating", &ratings).Error
	if err != nil || len(ratings) == 0 {
		return 0, err
	}
	return ratings[0], nil
}
