package entities

import (
	"time"

	"github.com/Xushengqwer/comment_service/models/enums"
)

// ModerationLog 审核审计日志，每一次真正生效的状态变更写入一行
// - 表名: moderation_logs
// - 无操作 (例如重复通过同一条评论) 不记录
type ModerationLog struct {
	ID         uint64                 `gorm:"primaryKey;autoIncrement"`
	EntityType enums.EntityType       `gorm:"type:varchar(16);not null;index:idx_entity"`
	EntityID   uint64                 `gorm:"type:bigint;not null;index:idx_entity"`
	Action     enums.ModerationAction `gorm:"type:varchar(32);not null"`
	FromState  string                 `gorm:"type:varchar(16)"`
	ToState    string                 `gorm:"type:varchar(16)"`
	Actor      string                 `gorm:"type:varchar(64);not null"`
	// Deleted 记录操作发生时评论是否处于软删除状态
	Deleted   bool      `gorm:"not null;default:false"`
	Note      string    `gorm:"type:varchar(500)"`
	CreatedAt time.Time `gorm:"not null;index"`
}
