package dao

import (
	"context"
	"memareh/models"

	"gorm.io/gorm"
)

type Article struct {
	Repo[models.Article]
}

func NewArticle(db *gorm.DB) *Article {
	return &Article{Repo: NewRepo[models.Article](db)}
}

// GetPublishedBySlug 只返回已发布的文章
func (d *Article) GetPublishedBySlug(ctx context.Context, slug string) (*models.Article, error) {
	return d.FindByWhere(ctx, "slug = ? AND status = ?", slug, models.ArticleStatusPublished)
}

func (d *Article) GetByID(ctx context.Context, id uint64) (*models.Article, error) {
	return d.FindById(ctx, id)
}

// GetByIDs 批量获取文章, keyed by id
func (d *Article) GetByIDs(ctx context.Context, ids []uint64) (map[uint64]*models.Article, error) {
	var articles []*models.Article
	result := make(map[uint64]*models.Article, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	err := d.Db.WithContext(ctx).
		Select("id, slug, title, status, allow_comments").
		Where("id IN ?", ids).
		Find(&articles).Error
	if err != nil {
		return nil, err
	}
	for _, a := range articles {
		result[a.ID] = a
	}
	return result, nil
}

// IncrViewCount 浏览数 +1
func (d *Article) IncrViewCount(ctx context.Context, id uint64) error {
	return d.Model(ctx).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).
		Error
}
