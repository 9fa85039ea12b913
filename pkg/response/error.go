package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type BizError struct {
	Code int
	Msg  string
}

func (e *BizError) Error() string {
	return e.Msg
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
	}
}

// StatusOf returns the http status a BizError carries, or 500.
func StatusOf(err error) int {
	var be *BizError
	if errors.As(err, &be) && be.Code >= 400 && be.Code < 600 {
		return be.Code
	}
	return http.StatusInternalServerError
}

func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, Response{
		Code: httpStatus,
		Msg:  msg,
		Data: nil,
	})
}
