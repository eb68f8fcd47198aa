package dto

// ListCommentsRequest 管理后台评论列表的查询参数
type ListCommentsRequest struct {
	// 正文 / 游客名 / 邮箱模糊搜索
	Search string `form:"search" json:"search,omitempty" binding:"omitempty,max=100"`
	// 状态筛选：pending/approved/rejected/spam
	Status string `form:"status" json:"status,omitempty" binding:"omitempty,comment_status" example:"pending"`
	// 所属帖子筛选
	PostID *uint64 `form:"post" json:"post,omitempty"`
	// 删除范围：active(默认)/deleted/all
	DeletedStatus string `form:"deleted_status" json:"deleted_status,omitempty" binding:"omitempty,deletion_scope" example:"active"`
	// 页码从 1 开始，<1 时按 1 处理；每页条数钳制到 [1, 100]，默认 15
	Page     int `form:"page" json:"page"`
	PageSize int `form:"page_size" json:"page_size"`
}

// SetCommentStatusRequest 修改单条评论状态
type SetCommentStatusRequest struct {
	// Status 目标状态。取值之外的字符串返回 422。
	Status string `json:"status" binding:"required" example:"approved"`
}

// BulkCommentsRequest 批量操作的目标 ID 集合。重复 ID 会被去重；空集合返回 400。
type BulkCommentsRequest struct {
	IDs []uint64 `json:"ids" binding:"max=500,dive,gt=0"`
}
