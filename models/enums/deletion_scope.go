package enums

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Xushengqwer/comment_service/myErrors"
)

// DeletionScope 软删除维度上的筛选范围
type DeletionScope string

const (
	ScopeActive  DeletionScope = "active"  // deleted_at IS NULL
	ScopeDeleted DeletionScope = "deleted" // deleted_at IS NOT NULL
	ScopeAll     DeletionScope = "all"     // 不过滤
)

var AllDeletionScopes = []DeletionScope{ScopeActive, ScopeDeleted, ScopeAll}

func (s DeletionScope) Valid() bool {
	return s == ScopeActive || s == ScopeDeleted || s == ScopeAll
}

// ParseDeletionScope 空字符串视为 active，其余未知值返回 ErrInvalidInput。
func ParseDeletionScope(raw string) (DeletionScope, error) {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == "" {
		return ScopeActive, nil
	}
	s := DeletionScope(trimmed)
	if !s.Valid() {
		return "", fmt.Errorf("删除范围 %q 不合法: %w", raw, myErrors.ErrInvalidInput)
	}
	return s, nil
}

// Matches 是筛选谓词的内存版本，与 Apply 生成的 SQL 条件一一对应。
func (s DeletionScope) Matches(deletedAt *time.Time) bool {
	switch s {
	case ScopeActive:
		return deletedAt == nil
	case ScopeDeleted:
		return deletedAt != nil
	case ScopeAll:
		return true
	default:
		return false
	}
}

// Apply 把筛选范围追加到查询上。
// 调用方需要先对查询执行 Unscoped()，否则 gorm 会自动追加 deleted_at IS NULL。
func (s DeletionScope) Apply(db *gorm.DB) *gorm.DB {
	switch s {
	case ScopeDeleted:
		return db.Where("deleted_at IS NOT NULL")
	case ScopeAll:
		return db
	default:
		return db.Where("deleted_at IS NULL")
	}
}
