package service

import (
	"memareh/dao"
	"memareh/dao/cache"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Bind(new(CommentStore), new(*dao.Comment)),
	wire.Bind(new(LikeStore), new(*dao.CommentLike)),
	wire.Bind(new(ArticleStore), new(*dao.Article)),
	wire.Bind(new(RatingStore), new(*dao.ArticleRating)),
	wire.Bind(new(ThreadCache), new(*cache.ThreadStorage)),
	wire.Bind(new(Locker), new(*cache.ActionLock)),

	wire.Struct(new(CommentsService), "*"),
	wire.Bind(new(ICommentsService), new(*CommentsService)),

	wire.Struct(new(ModerationService), "*"),
	wire.Bind(new(IModerationService), new(*ModerationService)),

	wire.Struct(new(ArticleService), "*"),
	wire.Bind(new(IArticleService), new(*ArticleService)),
)
