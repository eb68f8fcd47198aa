package vo

// --- 用于成功响应且包含具体 Data 的包装器，仅供 swag 生成文档 ---

// CommentListResponseWrapper 对应 response.APIResponse[vo.CommentListVO]
type CommentListResponseWrapper struct {
	Code    int           `json:"code" example:"0"`
	Message string        `json:"message,omitempty" example:"success"`
	Data    CommentListVO `json:"data"`
}

// StatusChangeResponseWrapper 对应 response.APIResponse[vo.StatusChangeVO]
type StatusChangeResponseWrapper struct {
	Code    int            `json:"code" example:"0"`
	Message string         `json:"message,omitempty" example:"success"`
	Data    StatusChangeVO `json:"data"`
}

// DeletionChangeResponseWrapper 对应 response.APIResponse[vo.DeletionChangeVO]
type DeletionChangeResponseWrapper struct {
	Code    int              `json:"code" example:"0"`
	Message string           `json:"message,omitempty" example:"success"`
	Data    DeletionChangeVO `json:"data"`
}

// BulkResultResponseWrapper 对应 response.APIResponse[vo.BulkResultVO]
type BulkResultResponseWrapper struct {
	Code    int          `json:"code" example:"0"`
	Message string       `json:"message,omitempty" example:"success"`
	Data    BulkResultVO `json:"data"`
}

// CommentStatsResponseWrapper 对应 response.APIResponse[vo.CommentStatsVO]
type CommentStatsResponseWrapper struct {
	Code    int            `json:"code" example:"0"`
	Message string         `json:"message,omitempty" example:"success"`
	Data    CommentStatsVO `json:"data"`
}

// ReportListResponseWrapper 对应 response.APIResponse[vo.ReportListVO]
type ReportListResponseWrapper struct {
	Code    int          `json:"code" example:"0"`
	Message string       `json:"message,omitempty" example:"success"`
	Data    ReportListVO `json:"data"`
}

// ReportResponseWrapper 对应 response.APIResponse[vo.ReportVO]
type ReportResponseWrapper struct {
	Code    int      `json:"code" example:"0"`
	Message string   `json:"message,omitempty" example:"success"`
	Data    ReportVO `json:"data"`
}

// ModerationLogListResponseWrapper 对应 response.APIResponse[vo.ModerationLogListVO]
type ModerationLogListResponseWrapper struct {
	Code    int                 `json:"code" example:"0"`
	Message string              `json:"message,omitempty" example:"success"`
	Data    ModerationLogListVO `json:"data"`
}

// --- 用于错误响应 或 简单成功响应（只有 Code 和 Message） ---

// BaseResponseWrapper 只包含 Code 和 Message，错误时 Data 为 nil 且被 omitempty 省略。
type BaseResponseWrapper struct {
	Code    int    `json:"code" example:"0"`
	Message string `json:"message" example:"success"`
}
