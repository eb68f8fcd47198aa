package enums

import (
	"fmt"

	"github.com/Xushengqwer/comment_service/myErrors"
)

// BulkAction 批量操作类型。每个动作对应一次单条评论操作。
type BulkAction string

const (
	BulkApprove BulkAction = "approve"
	BulkSpam    BulkAction = "spam"
	BulkDelete  BulkAction = "delete"
	BulkReject  BulkAction = "reject"
	BulkRestore BulkAction = "restore"
)

func (a BulkAction) Valid() bool {
	switch a {
	case BulkApprove, BulkSpam, BulkDelete, BulkReject, BulkRestore:
		return true
	default:
		return false
	}
}

// TargetStatus 返回状态类批量动作对应的目标状态；删除/恢复类动作返回 false。
func (a BulkAction) TargetStatus() (CommentStatus, bool) {
	switch a {
	case BulkApprove:
		return CommentApproved, true
	case BulkSpam:
		return CommentSpam, true
	case BulkReject:
		return CommentRejected, true
	default:
		return "", false
	}
}

func ParseBulkAction(raw string) (BulkAction, error) {
	a := BulkAction(raw)
	if !a.Valid() {
		return "", fmt.Errorf("批量操作 %q 不支持: %w", raw, myErrors.ErrInvalidInput)
	}
	return a, nil
}

// ModerationAction 审计日志中记录的动作
type ModerationAction string

const (
	ActionSetStatus     ModerationAction = "set_status"
	ActionSoftDelete    ModerationAction = "soft_delete"
	ActionRestore       ModerationAction = "restore"
	ActionResolveReport ModerationAction = "resolve_report"
	ActionPurge         ModerationAction = "purge"
)

// EntityType 审计日志关联的实体类型
type EntityType string

const (
	EntityComment EntityType = "comment"
	EntityReport  EntityType = "report"
)

func ParseEntityType(raw string) (EntityType, error) {
	t := EntityType(raw)
	if t != EntityComment && t != EntityReport {
		return "", fmt.Errorf("实体类型 %q 不合法: %w", raw, myErrors.ErrInvalidInput)
	}
	return t, nil
}
