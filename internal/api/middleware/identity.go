package middleware

import (
	"Inkstone/internal/pkg/response"
	"Inkstone/internal/store"
	"context"

	"github.com/gin-gonic/gin"
)

// 身份只是请求头里声明的用户 ID，不做凭据校验。
// gov_id_verified 等标记仅作为数据随用户记录流转。

// IdentityMiddleware 要求请求声明一个已存在的用户身份
func IdentityMiddleware(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-Id")
		if userID == "" {
			response.Fail(c, response.Unauthorized, "缺少用户身份")
			c.Abort()
			return
		}
		if _, ok := s.UserByID(userID); !ok {
			response.Fail(c, response.Unauthorized, "用户身份无效")
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		newCtx := context.WithValue(c.Request.Context(), "user_id", userID)
		c.Request = c.Request.WithContext(newCtx)

		c.Next()
	}
}

// IdentityOptionalMiddleware 可选身份：缺失或无效时 user_id 为空串
func IdentityOptionalMiddleware(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-Id")
		if userID != "" {
			if _, ok := s.UserByID(userID); !ok {
				userID = ""
			}
		}
		c.Set("user_id", userID)
		c.Next()
	}
}
