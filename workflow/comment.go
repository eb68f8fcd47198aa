// Package workflow 定义评论与举报的状态机。
// 这里的函数都是纯函数：只修改传入的实体并返回结果，不访问存储。
package workflow

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Xushengqwer/comment_service/models/entities"
	"github.com/Xushengqwer/comment_service/models/enums"
	"github.com/Xushengqwer/comment_service/myErrors"
)

// Transition 描述一次评论状态变更的结果
type Transition struct {
	From enums.CommentStatus
	To   enums.CommentStatus
	// Changed 为 false 表示目标状态与当前相同，调用方不应写库也不应发事件。
	Changed bool
	// Celebrate 仅在从其他状态进入 approved 时为 true，供界面触发一次性提示。
	Celebrate bool
}

// ApplyStatus 把评论状态改写为 to。
// 评论状态机是宽松的：任意状态都可以转换到任意状态，软删除的评论同样可以改状态。
func ApplyStatus(c *entities.Comment, to enums.CommentStatus) (Transition, error) {
	if !to.Valid() {
		return Transition{}, fmt.Errorf("目标状态 %q: %w", to, myErrors.ErrInvalidStatus)
	}
	t := Transition{From: c.Status, To: to}
	if c.Status == to {
		return t, nil
	}
	t.Changed = true
	t.Celebrate = to == enums.CommentApproved
	c.Status = to
	return t, nil
}

// SoftDelete 标记评论为已删除，不改变状态。已删除的评论保持原删除时间，返回 false。
func SoftDelete(c *entities.Comment, now time.Time) bool {
	if c.IsDeleted() {
		return false
	}
	c.DeletedAt = gorm.DeletedAt{Time: now, Valid: true}
	return true
}

// Restore 清除删除标记，不改变状态。未删除的评论返回 false。
func Restore(c *entities.Comment) bool {
	if !c.IsDeleted() {
		return false
	}
	c.DeletedAt = gorm.DeletedAt{}
	return true
}
