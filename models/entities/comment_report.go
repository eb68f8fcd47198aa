package entities

import (
	"time"

	"github.com/Xushengqwer/comment_service/models/enums"
)

// CommentReport 用户对评论的举报
// - 表名: comment_reports
// - CommentID 不建外键约束：评论被物理清理后举报记录仍保留
// - 处理字段 (ResolutionNotes / ReviewedBy / ReviewedAt) 在 pending 时全部为 NULL，
//   离开 pending 的那一刻一起写入，之后不再修改
type CommentReport struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	CommentID uint64 `gorm:"type:bigint;not null;index"`

	Status   enums.ReportStatus   `gorm:"type:varchar(16);not null;default:pending;index"`
	Category enums.ReportCategory `gorm:"type:varchar(32);not null;default:other"`
	Priority enums.ReportPriority `gorm:"type:varchar(8);not null;default:medium"`

	Reason      string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text"`

	// 举报人，二选一：注册用户 ID 或游客 IP
	ReporterUserID *string `gorm:"type:char(36);index"`
	ReporterIP     string  `gorm:"type:varchar(45)"`

	ResolutionNotes *string    `gorm:"type:text"`
	ReviewedBy      *string    `gorm:"type:varchar(64)"`
	ReviewedAt      *time.Time

	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time
}

// ReporterType 根据举报人字段推导举报人类型。
func (r *CommentReport) ReporterType() enums.ReporterType {
	if r.ReporterUserID != nil {
		return enums.ReporterUser
	}
	return enums.ReporterGuest
}
