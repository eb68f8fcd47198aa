package dto

// ListReportsRequest 举报列表的查询参数，date_from / date_to 均包含当天
type ListReportsRequest struct {
	Search       string `form:"search" json:"search,omitempty" binding:"omitempty,max=100"`
	Status       string `form:"status" json:"status,omitempty" binding:"omitempty,report_status"`
	Category     string `form:"category" json:"category,omitempty" binding:"omitempty,report_category"`
	Priority     string `form:"priority" json:"priority,omitempty" binding:"omitempty,oneof=high medium low"`
	ReporterType string `form:"reporter_type" json:"reporter_type,omitempty" binding:"omitempty,oneof=user guest"`
	DateFrom     string `form:"date_from" json:"date_from,omitempty" binding:"omitempty,datetime=2006-01-02" example:"2024-01-01"`
	DateTo       string `form:"date_to" json:"date_to,omitempty" binding:"omitempty,datetime=2006-01-02" example:"2024-01-31"`
	Page         int    `form:"page" json:"page"`
	PageSize     int    `form:"page_size" json:"page_size"`
}

// ResolveReportRequest 处理举报
type ResolveReportRequest struct {
	// Status 处理结果：resolved 或 dismissed。pending 或其他值返回 422。
	Status string `json:"status" binding:"required" example:"resolved"`
	// Notes 处理备注，原样保存，允许为空
	Notes string `json:"notes" binding:"max=2000" example:"已删除违规评论"`
}
