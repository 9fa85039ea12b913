package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	ArticleStatusDraft     = "draft"
	ArticleStatusPublished = "published"
)

type Article struct {
	ID            uint64                      `gorm:"column:id;primaryKey;autoIncrement:false" json:"id,string"`
	Slug          string                      `gorm:"column:slug;type:varchar(191);not null;uniqueIndex" json:"slug"`
	Title         string                      `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Excerpt       string                      `gorm:"column:excerpt;type:text" json:"excerpt"`
	Content       string                      `gorm:"column:content;type:text" json:"content"`
	FeaturedImage string                      `gorm:"column:featured_image;type:varchar(512)" json:"featured_image,omitempty"`
	Category      string                      `gorm:"column:category;type:varchar(64);index" json:"category"`
	Tags          datatypes.JSONSlice[string] `gorm:"column:tags" json:"tags"`
	AuthorName    string                      `gorm:"column:author_name;type:varchar(128)" json:"author_name,omitempty"`
	Status        string                      `gorm:"column:status;type:varchar(16);not null;default:'draft';index" json:"status"`
	AllowComments bool                        `gorm:"column:allow_comments;not null;default:true" json:"allow_comments"`
	ViewCount     int64                       `gorm:"column:view_count;not null;default:0" json:"view_count"`
	ReadingTime   int                         `gorm:"column:reading_time;not null;default:0" json:"reading_time"`
	PublishedAt   *time.Time                  `gorm:"column:published_at" json:"published_at,omitempty"`
	CreatedAt     time.Time                   `gorm:"column:created_at" json:"created_at"`
	UpdatedAt     time.Time                   `gorm:"column:updated_at" json:"updated_at"`
}

func (Article) TableName() string {
	return "articles"
}

func (a *Article) IsPublished() bool {
	return a.Status == ArticleStatusPublished
}
