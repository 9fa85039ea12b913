package server

import (
	"memareh/handler"
)

type Handlers struct {
	Health     *handler.Health
	Article    *handler.ArticleHandler
	Comments   *handler.CommentsHandler
	Moderation *handler.ModerationHandler
}
