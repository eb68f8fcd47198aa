package middleware

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/comment_service/config"
)

const (
	defaultCSRFCookie = "csrf_token"
	defaultCSRFHeader = "X-CSRF-Token"
	csrfTokenBytes    = 32
)

// CSRFProtect 双重提交 Cookie 校验。
//   - 安全方法 (GET/HEAD/OPTIONS)：Cookie 不存在时下发新令牌，前端读取后放入请求头
//   - 写方法：Cookie 与请求头必须同时存在且相等，否则 401
func CSRFProtect(cfg config.CSRFConfig) gin.HandlerFunc {
	cookieName := cfg.CookieName
	if cookieName == "" {
		cookieName = defaultCSRFCookie
	}
	headerName := cfg.HeaderName
	if headerName == "" {
		headerName = defaultCSRFHeader
	}

	return func(c *gin.Context) {
		if !cfg.Enabled {
			c.Next()
			return
		}

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			if cookie, err := c.Cookie(cookieName); err != nil || cookie == "" {
				c.SetSameSite(http.SameSiteStrictMode)
				// 前端脚本需要读取该 Cookie，因此不能是 HttpOnly
				c.SetCookie(cookieName, generateToken(), 0, "/", "", false, false)
			}
			c.Next()
			return
		}

		if !validCSRF(c, cookieName, headerName) {
			response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "缺少或无效的 CSRF 令牌")
			c.Abort()
			return
		}
		c.Next()
	}
}

func validCSRF(c *gin.Context, cookieName, headerName string) bool {
	cookie, err := c.Cookie(cookieName)
	if err != nil || cookie == "" {
		return false
	}
	token := c.GetHeader(headerName)
	return token != "" && subtle.ConstantTimeCompare([]byte(token), []byte(cookie)) == 1
}

func generateToken() string {
	b := make([]byte, csrfTokenBytes)
	if _, err := rand.Read(b); err != nil {
		panic("csrf: 生成随机令牌失败: " + err.Error())
	}
	return hex.EncodeToString(b)
}
