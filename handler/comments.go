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

type CommentsHandler struct {
	Config          *config.Config
	CommentsService service.ICommentsService
}

func (ch *CommentsHandler) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth(ch.Config.Jwt)
	comments := r.Group("/v1/comments")
	comments.POST("/create", authorize, context.Wrap(ch.CreateComment)) // 提交评论
	comments.POST("/like", authorize, context.Wrap(ch.LikeComment))     // 点赞/取消点赞

	articles := r.Group("/v1/articles")
	articles.GET("/:slug/comments", middleware.OptionalAuth(ch.Config.Jwt), context.Wrap(ch.GetThread))
}

// CreateComment 提交评论, 进入待审核
func (ch *CommentsHandler) CreateComment(c *gin.Context) error {
	var req types.SubmitCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "درخواست نامعتبر است")
	}

	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "برای ادامه وارد حساب کاربری شوید")
	}

	resp, err := ch.CommentsService.Submit(c.Request.Context(), userID, &req)
	if err != nil {
		return bizError(err)
	}

	c.JSON(http.StatusCreated, response.Response{
		Code: 0,
		Msg:  resp.Notice,
		Data: resp,
	})
	return nil
}

// LikeComment 点赞, a second call removes the like
func (ch *CommentsHandler) LikeComment(c *gin.Context) error {
	var req types.LikeCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "درخواست نامعتبر است")
	}

	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "برای ادامه وارد حساب کاربری شوید")
	}

	result, err := ch.CommentsService.ToggleLike(c.Request.Context(), req.CommentID, userID)
	if err != nil {
		return bizError(err)
	}

	response.Success(c, result)
	return nil
}

// GetThread 文章评论树(仅已审核)
func (ch *CommentsHandler) GetThread(c *gin.Context) error {
	thread, err := ch.CommentsService.Thread(c.Request.Context(), c.Param("slug"), context.CurrentUserID(c))
	if err != nil {
		return bizError(err)
	}

	response.Success(c, thread)
	return nil
}
