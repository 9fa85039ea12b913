package service

import "errors"

var (
	ErrUnauthenticated   = errors.New("unauthenticated")
	ErrArticleNotFound   = errors.New("article not found")
	ErrCommentNotFound   = errors.New("comment not found")
	ErrParentNotFound    = errors.New("parent comment not found")
	ErrParentMismatch    = errors.New("parent comment belongs to another article")
	ErrCommentsDisabled  = errors.New("comments are disabled for this article")
	ErrEmptyContent      = errors.New("comment content is empty")
	ErrContentTooLong    = errors.New("comment content is too long")
	ErrReplyTooDeep      = errors.New("reply depth limit reached")
	ErrInvalidTransition = errors.New("comment has already been moderated")
	ErrInvalidStatus     = errors.New("unknown comment status")
	ErrNotPinnable       = errors.New("only approved top-level comments can be pinned")
	ErrInvalidRating     = errors.New("rating must be between 1 and 5")
	ErrTooFrequent       = errors.New("too many requests")
)
