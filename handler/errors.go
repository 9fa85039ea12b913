package handler

import (
	"errors"
	"memareh/pkg/response"
	"memareh/service"
	"net/http"
)

// bizError 把 service 错误映射为带状态码的业务错误; unknown errors fall through to a 500
func bizError(err error) error {
	switch {
	case errors.Is(err, service.ErrEmptyContent):
		return response.NewError(http.StatusBadRequest, "متن دیدگاه نمی‌تواند خالی باشد")
	case errors.Is(err, service.ErrContentTooLong):
		return response.NewError(http.StatusBadRequest, "متن دیدگاه طولانی‌تر از حد مجاز است")
	case errors.Is(err, service.ErrReplyTooDeep):
		return response.NewError(http.StatusBadRequest, "امکان پاسخ به این دیدگاه وجود ندارد")
	case errors.Is(err, service.ErrParentMismatch):
		return response.NewError(http.StatusBadRequest, "دیدگاه والد متعلق به این مقاله نیست")
	case errors.Is(err, service.ErrInvalidRating):
		return response.NewError(http.StatusBadRequest, "امتیاز باید بین ۱ تا ۵ باشد")
	case errors.Is(err, service.ErrInvalidStatus):
		return response.NewError(http.StatusBadRequest, "وضعیت نامعتبر است")
	case errors.Is(err, service.ErrUnauthenticated):
		return response.NewError(http.StatusUnauthorized, "برای ادامه وارد حساب کاربری شوید")
	case errors.Is(err, service.ErrCommentsDisabled):
		return response.NewError(http.StatusForbidden, "ارسال دیدگاه برای این مقاله بسته است")
	case errors.Is(err, service.ErrArticleNotFound):
		return response.NewError(http.StatusNotFound, "مقاله یافت نشد")
	case errors.Is(err, service.ErrCommentNotFound), errors.Is(err, service.ErrParentNotFound):
		return response.NewError(http.StatusNotFound, "دیدگاه یافت نشد")
	case errors.Is(err, service.ErrInvalidTransition):
		return response.NewError(http.StatusConflict, "این دیدگاه قبلاً بررسی شده است")
	case errors.Is(err, service.ErrNotPinnable):
		return response.NewError(http.StatusConflict, "فقط دیدگاه‌های تأییدشده اصلی قابل سنجاق هستند")
	case errors.Is(err, service.ErrTooFrequent):
		return response.NewError(http.StatusTooManyRequests, "درخواست تکراری است، لطفاً کمی صبر کنید")
	}
	return err
}
