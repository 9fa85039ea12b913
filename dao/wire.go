package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewArticle,
	NewArticleRating,
	NewComment,
	NewCommentLike,
)
