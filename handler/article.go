package handler

import (
	"memareh/config"
	"memareh/middleware"
	"memareh/pkg/context"
	"memareh/pkg/response"
	"memareh/service"
	"memareh/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	Config         *config.Config
	ArticleService service.IArticleService
}

func (ah *ArticleHandler) RegisterRouter(r gin.IRouter) {
	articles := r.Group("/v1/articles")
	articles.GET("/:slug", middleware.OptionalAuth(ah.Config.Jwt), context.Wrap(ah.Detail))
	articles.POST("/:slug/rating", middleware.Auth(ah.Config.Jwt), context.Wrap(ah.Rate))
}

// Detail 文章详情
func (ah *ArticleHandler) Detail(c *gin.Context) error {
	article, err := ah.ArticleService.GetBySlug(c.Request.Context(), c.Param("slug"), context.CurrentUserID(c))
	if err != nil {
		return bizError(err)
	}

	response.Success(c, article)
	return nil
}

// Rate 评分
func (ah *ArticleHandler) Rate(c *gin.Context) error {
	var req types.RateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "امتیاز باید بین ۱ تا ۵ باشد")
	}

	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "برای ادامه وارد حساب کاربری شوید")
	}

	stats, err := ah.ArticleService.Rate(c.Request.Context(), c.Param("slug"), userID, req.Rating)
	if err != nil {
		return bizError(err)
	}

	response.Success(c, stats)
	return nil
}
