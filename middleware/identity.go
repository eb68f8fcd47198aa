package middleware

import (
	"net/http"

	"github.com/Xushengqwer/go-common/constants"
	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"
)

// RequireIdentity 要求上下文中存在调用方身份 (由 UserContextMiddleware 从网关头中提取)。
func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if ActorFrom(c) == "" {
			response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "无法获取有效的用户 ID")
			c.Abort()
			return
		}
		c.Next()
	}
}

// ActorFrom 返回当前请求的操作者 ID，不存在时返回空字符串。
func ActorFrom(c *gin.Context) string {
	v, exists := c.Get(string(constants.UserIDKey))
	if !exists {
		return ""
	}
	id, _ := v.(string)
	return id
}
