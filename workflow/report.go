package workflow

import (
	"fmt"
	"time"

	"github.com/Xushengqwer/comment_service/models/entities"
	"github.com/Xushengqwer/comment_service/models/enums"
	"github.com/Xushengqwer/comment_service/myErrors"
)

// reportTransitions 举报处理的单向转换表。终态没有出边，也就不存在"重新打开"。
var reportTransitions = map[enums.ReportStatus][]enums.ReportStatus{
	enums.ReportPending:   {enums.ReportResolved, enums.ReportDismissed},
	enums.ReportResolved:  {},
	enums.ReportDismissed: {},
}

// CanResolve 判断举报能否从 from 转到 to。
func CanResolve(from, to enums.ReportStatus) bool {
	for _, allowed := range reportTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// ValidateOutcome 校验处理结果：只能是 resolved 或 dismissed。
//   - 枚举之外的值返回 ErrInvalidStatus
//   - pending 返回 ErrInvalidTransition (不能把举报"处理"回待处理)
func ValidateOutcome(outcome enums.ReportStatus) error {
	if !outcome.Valid() {
		return fmt.Errorf("处理结果 %q: %w", outcome, myErrors.ErrInvalidStatus)
	}
	if !outcome.Terminal() {
		return fmt.Errorf("处理结果不能是 %q: %w", outcome, myErrors.ErrInvalidTransition)
	}
	return nil
}

// ResolveReport 处理一条举报。
// 只有 pending 的举报可以处理，否则返回 ErrAlreadyResolved 且不修改任何字段。
// 成功时四个处理字段一起写入，notes 原样保存 (允许空字符串)。
// 举报的处理与被举报评论的状态无关，这里不会触碰评论。
func ResolveReport(r *entities.CommentReport, outcome enums.ReportStatus, notes, reviewer string, now time.Time) error {
	if err := ValidateOutcome(outcome); err != nil {
		return err
	}
	if !CanResolve(r.Status, outcome) {
		return fmt.Errorf("举报(ID: %d)当前状态为 %s: %w", r.ID, r.Status, myErrors.ErrAlreadyResolved)
	}
	reviewedAt := now
	r.Status = outcome
	r.ResolutionNotes = &notes
	r.ReviewedBy = &reviewer
	r.ReviewedAt = &reviewedAt
	return nil
}
