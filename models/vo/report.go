package vo

import (
	"time"

	"github.com/Xushengqwer/comment_service/models/entities"
	"github.com/Xushengqwer/comment_service/models/enums"
)

// ReportVO 举报的响应结构
type ReportVO struct {
	ID              uint64               `json:"id"`
	CommentID       uint64               `json:"comment_id"`
	Status          enums.ReportStatus   `json:"status" swaggertype:"string" example:"pending"`
	Category        enums.ReportCategory `json:"category" swaggertype:"string" example:"spam"`
	Priority        enums.ReportPriority `json:"priority" swaggertype:"string" example:"high"`
	Reason          string               `json:"reason"`
	Description     string               `json:"description"`
	ReporterType    enums.ReporterType   `json:"reporter_type" swaggertype:"string" example:"user"`
	ReporterUserID  *string              `json:"reporter_user_id,omitempty"`
	ReporterIP      string               `json:"reporter_ip,omitempty"`
	ResolutionNotes *string              `json:"resolution_notes"`
	ReviewedBy      *string              `json:"reviewed_by"`
	ReviewedAt      *time.Time           `json:"reviewed_at"`
	CreatedAt       time.Time            `json:"created_at"`
}

// ReportListVO 举报分页列表
type ReportListVO struct {
	Reports      []*ReportVO `json:"reports"`
	Total        int64       `json:"total"`
	PendingTotal int64       `json:"pending_total"` // 全部待处理举报数，不受筛选条件影响
	Page         int         `json:"page"`
	PageSize     int         `json:"page_size"`
}

func NewReportVO(r *entities.CommentReport) *ReportVO {
	if r == nil {
		return nil
	}
	return &ReportVO{
		ID:              r.ID,
		CommentID:       r.CommentID,
		Status:          r.Status,
		Category:        r.Category,
		Priority:        r.Priority,
		Reason:          r.Reason,
		Description:     r.Description,
		ReporterType:    r.ReporterType(),
		ReporterUserID:  r.ReporterUserID,
		ReporterIP:      r.ReporterIP,
		ResolutionNotes: r.ResolutionNotes,
		ReviewedBy:      r.ReviewedBy,
		ReviewedAt:      r.ReviewedAt,
		CreatedAt:       r.CreatedAt,
	}
}

func NewReportVOs(reports []*entities.CommentReport) []*ReportVO {
	out := make([]*ReportVO, 0, len(reports))
	for _, r := range reports {
		if r == nil {
			continue
		}
		out = append(out, NewReportVO(r))
	}
	return out
}
