package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/comment_service/myErrors"
)

// respondServiceError 把服务层错误映射为 HTTP 状态码：
// 不存在 404；非法状态 / 非法转换 422；举报已处理 409；空选择 / 非法参数 400；无身份 401；其他 500。
// 业务错误同时写出 myErrors.ErrorKindHeader，便于客户端区分同一状态码下的不同错误。
func respondServiceError(c *gin.Context, err error, fallbackMsg string) {
	if kind := myErrors.KindOf(err); kind != "" {
		c.Header(myErrors.ErrorKindHeader, kind)
	}
	switch {
	case errors.Is(err, commonerrors.ErrRepoNotFound):
		response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, err.Error())
	case errors.Is(err, myErrors.ErrInvalidStatus), errors.Is(err, myErrors.ErrInvalidTransition):
		response.RespondError(c, http.StatusUnprocessableEntity, response.ErrCodeClientInvalidInput, err.Error())
	case errors.Is(err, myErrors.ErrAlreadyResolved):
		response.RespondError(c, http.StatusConflict, response.ErrCodeClientInvalidInput, err.Error())
	case errors.Is(err, myErrors.ErrEmptySelection), errors.Is(err, myErrors.ErrInvalidInput):
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, err.Error())
	case errors.Is(err, myErrors.ErrUnauthorized):
		response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, err.Error())
	default:
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, fallbackMsg+": "+err.Error())
	}
}

// parseIDParam 解析路径中的 :id，失败时已写出 400 响应
func parseIDParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的 ID 格式")
		return 0, false
	}
	return id, true
}
