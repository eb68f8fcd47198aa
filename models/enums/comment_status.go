package enums

import (
	"fmt"
	"strings"

	"github.com/Xushengqwer/comment_service/myErrors"
)

// CommentStatus 评论审核状态，闭合枚举，任何时刻都恰好是四个值之一
type CommentStatus string

const (
	CommentPending  CommentStatus = "pending"  // 待审核 (新评论的初始状态)
	CommentApproved CommentStatus = "approved" // 已通过
	CommentRejected CommentStatus = "rejected" // 已拒绝
	CommentSpam     CommentStatus = "spam"     // 垃圾评论
)

// AllCommentStatuses 按展示顺序列出所有评论状态，统计接口依赖这个顺序。
var AllCommentStatuses = []CommentStatus{CommentPending, CommentApproved, CommentRejected, CommentSpam}

// Valid 判断状态值是否属于枚举集合。
func (s CommentStatus) Valid() bool {
	switch s {
	case CommentPending, CommentApproved, CommentRejected, CommentSpam:
		return true
	default:
		return false
	}
}

func (s CommentStatus) String() string { return string(s) }

// ParseCommentStatus 在边界处把字符串解析为评论状态。
// 大小写不敏感，前后空白会被忽略；未知值返回 myErrors.ErrInvalidStatus。
func ParseCommentStatus(raw string) (CommentStatus, error) {
	s := CommentStatus(strings.ToLower(strings.TrimSpace(raw)))
	if !s.Valid() {
		return "", fmt.Errorf("评论状态 %q 不合法: %w", raw, myErrors.ErrInvalidStatus)
	}
	return s, nil
}
