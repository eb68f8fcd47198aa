package middleware

import (
	"net/http"
	"strings"
)

// MethodOverrideHeader 不支持 DELETE 的客户端用 POST + 该请求头发起删除。
const MethodOverrideHeader = "X-HTTP-Method-Override"

// MethodOverride 在进入 gin 路由之前改写请求方法。
// gin 在匹配路由前就确定了方法，所以这里包装的是整个 http.Handler 而不是 gin 中间件。
// 只允许 POST 被改写为 DELETE / PUT / PATCH。
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			switch override := strings.ToUpper(strings.TrimSpace(r.Header.Get(MethodOverrideHeader))); override {
			case http.MethodDelete, http.MethodPut, http.MethodPatch:
				r.Method = override
			}
		}
		next.ServeHTTP(w, r)
	})
}
