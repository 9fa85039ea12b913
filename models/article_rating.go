package models

import "time"

// ArticleRating 文章评分, one row per (article, user)
type ArticleRating struct {
	ID        uint64    `gorm:"column:id;primaryKey" json:"id"`
	ArticleID uint64    `gorm:"column:article_id;not null;uniqueIndex:idx_article_user" json:"article_id,string"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:idx_article_user" json:"user_id,string"`
	Rating    int       `gorm:"column:rating;not null" json:"rating"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (ArticleRating) TableName() string {
	return "article_ratings"
}
