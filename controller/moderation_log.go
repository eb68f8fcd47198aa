package controller

import (
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/comment_service/models/dto"
	"github.com/Xushengqwer/comment_service/service"
)

// ModerationLogController 审核轨迹查询
type ModerationLogController struct {
	logService service.ModerationLogService
}

func NewModerationLogController(logService service.ModerationLogService) *ModerationLogController {
	return &ModerationLogController{logService: logService}
}

func (ctrl *ModerationLogController) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("/moderation-logs", ctrl.ListLogs)
}

// ListLogs 查询某条评论或举报的审核记录
// @Summary      审核轨迹
// @Tags         admin-logs (管理员-审核日志)
// @Produce      json
// @Param        entity_type query string true "实体类型" Enums(comment, report)
// @Param        entity_id query int true "实体 ID"
// @Param        page query int false "页码（从 1 开始）" default(1)
// @Param        page_size query int false "每页条数（1-100）" default(15)
// @Success      200 {object} vo.ModerationLogListResponseWrapper "查询成功"
// @Failure      400 {object} vo.BaseResponseWrapper "参数非法"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/comment/admin/moderation-logs [get]
func (ctrl *ModerationLogController) ListLogs(c *gin.Context) {
	var req dto.ListModerationLogsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数: "+err.Error())
		return
	}
	logs, err := ctrl.logService.List(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "查询审核日志失败")
		return
	}
	response.RespondSuccess(c, logs, "查询审核日志成功")
}
