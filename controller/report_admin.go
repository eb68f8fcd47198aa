package controller

import (
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/comment_service/middleware"
	"github.com/Xushengqwer/comment_service/models/dto"
	"github.com/Xushengqwer/comment_service/models/enums"
	"github.com/Xushengqwer/comment_service/service"
)

// ReportAdminController 评论举报的管理接口
type ReportAdminController struct {
	reportService service.ReportService
}

func NewReportAdminController(reportService service.ReportService) *ReportAdminController {
	return &ReportAdminController{reportService: reportService}
}

func (ctrl *ReportAdminController) RegisterRoutes(group, writes *gin.RouterGroup) {
	group.GET("/comment-reports", ctrl.ListReports)
	writes.POST("/comment-reports/:id/resolve", ctrl.ResolveReport)
}

// ListReports 分页查询举报
// @Summary      举报列表 (管理员)
// @Description  按创建时间倒序返回举报，日期区间两端都包含当天。
// @Tags         admin-reports (管理员-举报)
// @Produce      json
// @Param        search query string false "模糊搜索举报原因与描述"
// @Param        status query string false "举报状态" Enums(pending, resolved, dismissed)
// @Param        category query string false "举报分类" Enums(spam, harassment, hate_speech, misinformation, off_topic, inappropriate, other)
// @Param        priority query string false "优先级" Enums(high, medium, low)
// @Param        reporter_type query string false "举报人类型" Enums(user, guest)
// @Param        date_from query string false "起始日期 (YYYY-MM-DD)"
// @Param        date_to query string false "结束日期 (YYYY-MM-DD)"
// @Param        page query int false "页码（从 1 开始）" default(1)
// @Param        page_size query int false "每页条数（1-100）" default(15)
// @Success      200 {object} vo.ReportListResponseWrapper "查询成功"
// @Failure      400 {object} vo.BaseResponseWrapper "参数非法"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/comment/admin/comment-reports [get]
func (ctrl *ReportAdminController) ListReports(c *gin.Context) {
	var req dto.ListReportsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数: "+err.Error())
		return
	}
	list, err := ctrl.reportService.List(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "查询举报列表失败")
		return
	}
	response.RespondSuccess(c, list, "查询举报列表成功")
}

// ResolveReport 处理举报
// @Summary      处理举报
// @Description  pending 的举报只能处理一次，结果为 resolved 或 dismissed。重复处理返回 409。
// @Tags         admin-reports (管理员-举报)
// @Accept       json
// @Produce      json
// @Param        id path int true "举报 ID"
// @Param        X-CSRF-Token header string true "CSRF 令牌"
// @Param        request body dto.ResolveReportRequest true "处理结果与备注"
// @Success      200 {object} vo.ReportResponseWrapper "处理成功"
// @Failure      400 {object} vo.BaseResponseWrapper "请求体非法"
// @Failure      401 {object} vo.BaseResponseWrapper "缺少身份或 CSRF 令牌"
// @Failure      404 {object} vo.BaseResponseWrapper "举报不存在"
// @Failure      409 {object} vo.BaseResponseWrapper "举报已被处理"
// @Failure      422 {object} vo.BaseResponseWrapper "处理结果非法"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/comment/admin/comment-reports/{id}/resolve [post]
func (ctrl *ReportAdminController) ResolveReport(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.ResolveReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求负载: "+err.Error())
		return
	}

	outcome, err := enums.ParseReportStatus(req.Status)
	if err != nil {
		respondServiceError(c, err, "处理举报失败")
		return
	}

	report, err := ctrl.reportService.Resolve(c.Request.Context(), id, outcome, req.Notes, middleware.ActorFrom(c))
	if err != nil {
		respondServiceError(c, err, "处理举报失败")
		return
	}
	response.RespondSuccess(c, report, "处理举报成功")
}
