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

// CommentAdminController 管理后台的评论审核接口
type CommentAdminController struct {
	moderationService service.CommentModerationService
}

func NewCommentAdminController(moderationService service.CommentModerationService) *CommentAdminController {
	return &CommentAdminController{moderationService: moderationService}
}

// RegisterRoutes 读接口挂在 group 上，写接口挂在 writes 上 (writes 已带 CSRF 与身份校验)
func (ctrl *CommentAdminController) RegisterRoutes(group, writes *gin.RouterGroup) {
	group.GET("/comments", ctrl.ListComments)
	group.GET("/comments/stats", ctrl.GetStats)

	writes.POST("/comments/:id/status", ctrl.SetStatus)
	writes.DELETE("/comments/:id", ctrl.SoftDelete)
	writes.POST("/comments/:id/restore", ctrl.Restore)

	writes.POST("/comments/bulk-approve", ctrl.bulk(enums.BulkApprove))
	writes.POST("/comments/bulk-spam", ctrl.bulk(enums.BulkSpam))
	writes.POST("/comments/bulk-reject", ctrl.bulk(enums.BulkReject))
	writes.POST("/comments/bulk-restore", ctrl.bulk(enums.BulkRestore))
	writes.POST("/comments/bulk-delete", ctrl.bulk(enums.BulkDelete))
	writes.DELETE("/comments/bulk", ctrl.bulk(enums.BulkDelete))
	// POST /comments/bulk-delete + X-HTTP-Method-Override: DELETE 改写后落到这里
	writes.DELETE("/comments/bulk-delete", ctrl.bulk(enums.BulkDelete))
}

// ListComments 按条件分页查询评论
// @Summary      评论列表 (管理员)
// @Description  支持正文/游客信息模糊搜索、状态、帖子、删除范围过滤，按 ID 倒序分页。
// @Tags         admin-comments (管理员-评论)
// @Produce      json
// @Param        search query string false "模糊搜索正文、游客名、邮箱"
// @Param        status query string false "评论状态" Enums(pending, approved, rejected, spam)
// @Param        post query int false "帖子 ID" Format(uint64)
// @Param        deleted_status query string false "删除范围" Enums(active, deleted, all) default(active)
// @Param        page query int false "页码（从 1 开始）" default(1)
// @Param        page_size query int false "每页条数（1-100）" default(15)
// @Success      200 {object} vo.CommentListResponseWrapper "查询成功"
// @Failure      400 {object} vo.BaseResponseWrapper "参数非法"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/comment/admin/comments [get]
func (ctrl *CommentAdminController) ListComments(c *gin.Context) {
	var req dto.ListCommentsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数: "+err.Error())
		return
	}

	list, err := ctrl.moderationService.List(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "查询评论列表失败")
		return
	}
	response.RespondSuccess(c, list, "查询评论列表成功")
}

// GetStats 各状态的评论数量
// @Summary      评论统计
// @Description  返回删除范围内各状态的评论数，结果会在 Redis 中缓存。
// @Tags         admin-comments (管理员-评论)
// @Produce      json
// @Param        deleted_status query string false "删除范围" Enums(active, deleted, all) default(active)
// @Success      200 {object} vo.CommentStatsResponseWrapper "查询成功"
// @Failure      400 {object} vo.BaseResponseWrapper "删除范围非法"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/comment/admin/comments/stats [get]
func (ctrl *CommentAdminController) GetStats(c *gin.Context) {
	scope, err := enums.ParseDeletionScope(c.Query("deleted_status"))
	if err != nil {
		respondServiceError(c, err, "查询评论统计失败")
		return
	}
	stats, err := ctrl.moderationService.Stats(c.Request.Context(), scope)
	if err != nil {
		respondServiceError(c, err, "查询评论统计失败")
		return
	}
	response.RespondSuccess(c, stats, "查询评论统计成功")
}

// SetStatus 修改单条评论状态
// @Summary      修改评论状态
// @Description  任意状态之间都可以切换；目标状态与当前相同时不写库。首次进入 approved 时 celebrate 为 true。
// @Tags         admin-comments (管理员-评论)
// @Accept       json
// @Produce      json
// @Param        id path int true "评论 ID"
// @Param        X-CSRF-Token header string true "CSRF 令牌"
// @Param        request body dto.SetCommentStatusRequest true "目标状态"
// @Success      200 {object} vo.StatusChangeResponseWrapper "修改成功"
// @Failure      400 {object} vo.BaseResponseWrapper "请求体非法"
// @Failure      401 {object} vo.BaseResponseWrapper "缺少身份或 CSRF 令牌"
// @Failure      404 {object} vo.BaseResponseWrapper "评论不存在"
// @Failure      422 {object} vo.BaseResponseWrapper "状态值非法"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/comment/admin/comments/{id}/status [post]
func (ctrl *CommentAdminController) SetStatus(c *gin.Context) {
	// 1. 解析路径参数与请求体
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.SetCommentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求负载: "+err.Error())
		return
	}

	// 2. 状态值在边界处解析，非法值返回 422
	status, err := enums.ParseCommentStatus(req.Status)
	if err != nil {
		respondServiceError(c, err, "修改评论状态失败")
		return
	}

	// 3. 调用服务层
	change, err := ctrl.moderationService.SetStatus(c.Request.Context(), id, status, middleware.ActorFrom(c))
	if err != nil {
		respondServiceError(c, err, "修改评论状态失败")
		return
	}
	response.RespondSuccess(c, change, "修改评论状态成功")
}

// SoftDelete 软删除评论
// @Summary      软删除评论
// @Description  只设置删除时间，不改变审核状态。对已删除的评论重复调用是无操作。
// @Tags         admin-comments (管理员-评论)
// @Produce      json
// @Param        id path int true "评论 ID"
// @Param        X-CSRF-Token header string true "CSRF 令牌"
// @Success      200 {object} vo.DeletionChangeResponseWrapper "删除成功"
// @Failure      401 {object} vo.BaseResponseWrapper "缺少身份或 CSRF 令牌"
// @Failure      404 {object} vo.BaseResponseWrapper "评论不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/comment/admin/comments/{id} [delete]
func (ctrl *CommentAdminController) SoftDelete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	change, err := ctrl.moderationService.SoftDelete(c.Request.Context(), id, middleware.ActorFrom(c))
	if err != nil {
		respondServiceError(c, err, "删除评论失败")
		return
	}
	response.RespondSuccess(c, change, "删除评论成功")
}

// Restore 恢复已删除的评论
// @Summary      恢复评论
// @Description  清除删除时间，审核状态保持不变。对未删除的评论调用是无操作。
// @Tags         admin-comments (管理员-评论)
// @Produce      json
// @Param        id path int true "评论 ID"
// @Param        X-CSRF-Token header string true "CSRF 令牌"
// @Success      200 {object} vo.DeletionChangeResponseWrapper "恢复成功"
// @Failure      401 {object} vo.BaseResponseWrapper "缺少身份或 CSRF 令牌"
// @Failure      404 {object} vo.BaseResponseWrapper "评论不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/comment/admin/comments/{id}/restore [post]
func (ctrl *CommentAdminController) Restore(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	change, err := ctrl.moderationService.Restore(c.Request.Context(), id, middleware.ActorFrom(c))
	if err != nil {
		respondServiceError(c, err, "恢复评论失败")
		return
	}
	response.RespondSuccess(c, change, "恢复评论成功")
}

// BulkApply 批量操作
// @Summary      批量审核评论
// @Description  对一组评论逐个执行同一操作，单个失败不影响其他评论。重复 ID 会被去重，空集合返回 400。
// @Description  bulk-delete 也可以通过 DELETE /comments/bulk 或 POST + X-HTTP-Method-Override: DELETE 调用。
// @Tags         admin-comments (管理员-评论)
// @Accept       json
// @Produce      json
// @Param        action path string true "批量操作" Enums(approve, spam, reject, restore, delete)
// @Param        X-CSRF-Token header string true "CSRF 令牌"
// @Param        request body dto.BulkCommentsRequest true "目标评论 ID"
// @Success      200 {object} vo.BulkResultResponseWrapper "逐个 ID 的处理结果"
// @Failure      400 {object} vo.BaseResponseWrapper "空选择或请求体非法"
// @Failure      401 {object} vo.BaseResponseWrapper "缺少身份或 CSRF 令牌"
// @Failure      500 {object} vo.BaseResponseWrapper "批量读取失败，未做任何修改"
// @Router       /api/v1/comment/admin/comments/bulk-{action} [post]
func (ctrl *CommentAdminController) bulk(action enums.BulkAction) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.BulkCommentsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求负载: "+err.Error())
			return
		}

		result, err := ctrl.moderationService.BulkApply(c.Request.Context(), req.IDs, action, middleware.ActorFrom(c))
		if err != nil {
			respondServiceError(c, err, "批量操作失败")
			return
		}
		response.RespondSuccess(c, result, "批量操作完成")
	}
}
