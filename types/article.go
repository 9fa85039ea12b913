package types

import "time"

type RatingStats struct {
	Average      float64       `json:"average"`
	Total        int64         `json:"total"`
	Distribution map[int]int64 `json:"distribution"`
}

type ArticleResponse struct {
	ID            uint64      `json:"id,string"`
	Slug          string      `json:"slug"`
	Title         string      `json:"title"`
	Excerpt       string      `json:"excerpt"`
	Content       string      `json:"content"`
	FeaturedImage string      `json:"featured_image,omitempty"`
	Category      string      `json:"category"`
	Tags          []string    `json:"tags"`
	AuthorName    string      `json:"author_name,omitempty"`
	AllowComments bool        `json:"allow_comments"`
	ViewCount     int64       `json:"view_count"`
	ReadingTime   int         `json:"reading_time"`
	PublishedAt   *time.Time  `json:"published_at,omitempty"`
	Rating        RatingStats `json:"rating"`
	UserRating    int         `json:"user_rating"`
}

type RateArticleRequest struct {
	Rating int `json:"rating" binding:"required,min=1,max=5"`
}
