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

type ModerationHandler struct {
	Config            *config.Config
	ModerationService service.IModerationService
}

func (mh *ModerationHandler) RegisterRouter(r gin.IRouter) {
	admin := r.Group("/v1/admin/comments", middleware.Auth(mh.Config.Jwt), middleware.RequireModerator())
	admin.GET("", context.Wrap(mh.List))
	admin.GET("/stats", context.Wrap(mh.Stats))
	admin.POST("/approve", context.Wrap(mh.Approve))
	admin.POST("/reject", context.Wrap(mh.Reject))
	admin.POST("/delete", context.Wrap(mh.Delete))
	admin.POST("/pin", context.Wrap(mh.TogglePin))
}

// List 按状态分页
func (mh *ModerationHandler) List(c *gin.Context) error {
	var req types.ModerationListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "وضعیت نامعتبر است")
	}

	list, err := mh.ModerationService.ListByStatus(c.Request.Context(), req.Status, req.Page, req.PageSize)
	if err != nil {
		return bizError(err)
	}

	response.Success(c, list)
	return nil
}

// Stats 各状态数量
func (mh *ModerationHandler) Stats(c *gin.Context) error {
	stats, err := mh.ModerationService.Counts(c.Request.Context())
	if err != nil {
		return bizError(err)
	}

	response.Success(c, stats)
	return nil
}

func (mh *ModerationHandler) Approve(c *gin.Context) error {
	var req types.ModerateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "درخواست نامعتبر است")
	}

	if err := mh.ModerationService.Approve(c.Request.Context(), req.CommentID, context.CurrentUserID(c)); err != nil {
		return bizError(err)
	}

	response.SuccessMsg(c, "دیدگاه تأیید شد", nil)
	return nil
}

func (mh *ModerationHandler) Reject(c *gin.Context) error {
	var req types.RejectCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "درخواست نامعتبر است")
	}

	if err := mh.ModerationService.Reject(c.Request.Context(), req.CommentID, context.CurrentUserID(c), req.Reason); err != nil {
		return bizError(err)
	}

	response.SuccessMsg(c, "دیدگاه رد شد", nil)
	return nil
}

// Delete 硬删除, replies go with it
func (mh *ModerationHandler) Delete(c *gin.Context) error {
	var req types.ModerateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "درخواست نامعتبر است")
	}

	if err := mh.ModerationService.Delete(c.Request.Context(), req.CommentID, context.CurrentUserID(c)); err != nil {
		return bizError(err)
	}

	response.SuccessMsg(c, "دیدگاه حذف شد", nil)
	return nil
}

func (mh *ModerationHandler) TogglePin(c *gin.Context) error {
	var req types.ModerateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "درخواست نامعتبر است")
	}

	result, err := mh.ModerationService.TogglePin(c.Request.Context(), req.CommentID, context.CurrentUserID(c))
	if err != nil {
		return bizError(err)
	}

	response.Success(c, result)
	return nil
}
