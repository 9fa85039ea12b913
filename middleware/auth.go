package middleware

import (
	"memareh/config"
	"memareh/pkg/context"
	"memareh/pkg/jwt"
	"memareh/pkg/log"
	"memareh/pkg/response"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const HeaderNewAccessToken = "X-New-Access-Token"

// Auth 必须登录
func Auth(conf *config.Jwt) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "برای ادامه وارد حساب کاربری شوید")
			return
		}

		claims, ok := parseBearer(conf, authHeader)
		if !ok {
			response.Abort(c, http.StatusUnauthorized, "توکن نامعتبر است")
			return
		}

		setClaims(c, conf, claims)
		c.Next()
	}
}

// OptionalAuth 登录可选, an invalid token is treated as anonymous
func OptionalAuth(conf *config.Jwt) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			if claims, ok := parseBearer(conf, authHeader); ok {
				setClaims(c, conf, claims)
			}
		}
		c.Next()
	}
}

// RequireModerator must run after Auth.
func RequireModerator() gin.HandlerFunc {
	return func(c *gin.Context) {
		if context.GetRole(c) != jwt.RoleAdmin {
			response.Abort(c, http.StatusForbidden, "دسترسی به این بخش مجاز نیست")
			return
		}
		c.Next()
	}
}

func parseBearer(conf *config.Jwt, authHeader string) (*jwt.Claims, bool) {
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, false
	}

	claims, err := jwt.ParseToken([]byte(conf.Secret), jwt.TypeAccess, parts[1])
	if err != nil {
		log.L.Debug("parse token failed", zap.Error(err))
		return nil, false
	}
	return claims, true
}

func setClaims(c *gin.Context, conf *config.Jwt, claims *jwt.Claims) {
	// 快过期时下发新 token
	if conf.RefreshWindow > 0 && jwt.ShouldRotate(claims, time.Duration(conf.RefreshWindow)*time.Second) {
		newToken, err := jwt.GenerateToken(
			[]byte(conf.Secret),
			claims.UserID,
			claims.Role,
			jwt.TypeAccess,
			time.Duration(conf.ExpiresIn)*time.Second,
		)
		if err == nil {
			c.Header(HeaderNewAccessToken, newToken)
		}
	}

	c.Set(context.CtxUserID, claims.UserID)
	c.Set(context.CtxRole, claims.Role)
}
