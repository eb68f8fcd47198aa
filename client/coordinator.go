package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Xushengqwer/comment_service/models/enums"
	"github.com/Xushengqwer/comment_service/models/vo"
	"github.com/Xushengqwer/comment_service/myErrors"
)

// NoticeKind 给操作员的提示类别
type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	// NoticeUnchanged 业务规则拒绝，服务端什么都没有改
	NoticeUnchanged NoticeKind = "unchanged"
	// NoticeUncertain 传输失败 (含超时、5xx)，服务端可能已经生效，需要刷新确认
	NoticeUncertain NoticeKind = "uncertain"
	// NoticeBusy 同一评论已有操作在进行中，本次未发送
	NoticeBusy NoticeKind = "busy"
)

// Notice 面向操作员的提示
type Notice struct {
	Kind    NoticeKind
	Message string
}

// Outcome 一次协调操作的结果。Err 为 nil 表示服务端已确认。
type Outcome struct {
	Err    error
	Notice Notice
	// Celebrate 评论刚被通过，界面可以播放一次性的庆祝效果
	Celebrate bool
	// Bulk 批量操作的逐个结果，仅 BulkApply 设置
	Bulk   *vo.BulkResultVO
	Report *vo.ReportVO
}

// API Coordinator 依赖的服务端调用，由 *Client 实现
type API interface {
	SetStatus(ctx context.Context, id uint64, status enums.CommentStatus) (*vo.StatusChangeVO, error)
	SoftDelete(ctx context.Context, id uint64) (*vo.DeletionChangeVO, error)
	Restore(ctx context.Context, id uint64) (*vo.DeletionChangeVO, error)
	BulkApply(ctx context.Context, action enums.BulkAction, ids []uint64) (*vo.BulkResultVO, error)
	ResolveReport(ctx context.Context, id uint64, outcome enums.ReportStatus, notes string) (*vo.ReportVO, error)
}

// Coordinator 串起乐观更新：本地预期修改 -> 调用服务端 -> 成功确认 / 失败回滚。
// 不做自动重试；请求发出后不支持取消，结果总会落到确认或回滚之一。
type Coordinator struct {
	api    API
	cache  *CommentCache
	logger *zap.Logger
	now    func() time.Time
}

func NewCoordinator(api API, cache *CommentCache, logger *zap.Logger) *Coordinator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Coordinator{api: api, cache: cache, logger: logger, now: time.Now}
}

func (co *Coordinator) SetStatus(ctx context.Context, id uint64, raw string) Outcome {
	// 1. 非法状态在本地拒绝，不做乐观修改
	status, err := enums.ParseCommentStatus(raw)
	if err != nil {
		return failed(err)
	}
	// 2. 乐观修改
	if err := co.cache.Speculate(id, func(c *vo.CommentVO) { c.Status = status }); err != nil {
		return failed(err)
	}
	// 3. 调用服务端并对账
	change, err := co.api.SetStatus(ctx, id, status)
	if err != nil {
		co.cache.Rollback(id)
		co.logger.Debug("修改评论状态失败，已回滚", zap.Uint64("commentID", id), zap.Error(err))
		return failed(err)
	}
	co.cache.Confirm(id, change.Comment)

	msg := fmt.Sprintf("评论 #%d 已标记为 %s", id, status)
	if !change.Changed {
		msg = fmt.Sprintf("评论 #%d 本来就是 %s", id, status)
	}
	return Outcome{Notice: Notice{Kind: NoticeSuccess, Message: msg}, Celebrate: change.Celebrate}
}

func (co *Coordinator) SoftDelete(ctx context.Context, id uint64) Outcome {
	return co.deletion(ctx, id, patchFor(enums.BulkDelete, co.now()), co.api.SoftDelete, "评论 #%d 已删除")
}

func (co *Coordinator) Restore(ctx context.Context, id uint64) Outcome {
	return co.deletion(ctx, id, patchFor(enums.BulkRestore, co.now()), co.api.Restore, "评论 #%d 已恢复")
}

func (co *Coordinator) deletion(
	ctx context.Context,
	id uint64,
	patch Patch,
	call func(context.Context, uint64) (*vo.DeletionChangeVO, error),
	successFmt string,
) Outcome {
	if err := co.cache.Speculate(id, patch); err != nil {
		return failed(err)
	}
	change, err := call(ctx, id)
	if err != nil {
		co.cache.Rollback(id)
		return failed(err)
	}
	co.cache.Confirm(id, change.Comment)
	return Outcome{Notice: Notice{Kind: NoticeSuccess, Message: fmt.Sprintf(successFmt, id)}}
}

// BulkApply 批量操作。
// - 去重后为空：直接返回 ErrEmptySelection，不修改缓存也不发请求
// - 整体失败：所有 ID 回滚到调用前的值
// - 部分失败：成功的 ID 确认，失败的 ID 逐个回滚
func (co *Coordinator) BulkApply(ctx context.Context, action enums.BulkAction, ids []uint64) Outcome {
	targets := dedupe(ids)
	if len(targets) == 0 {
		return failed(myErrors.ErrEmptySelection)
	}
	patch := patchFor(action, co.now())
	if patch == nil {
		return failed(fmt.Errorf("批量操作 %q 不支持: %w", action, myErrors.ErrInvalidInput))
	}
	if err := co.cache.SpeculateMany(targets, patch); err != nil {
		return failed(err)
	}

	result, err := co.api.BulkApply(ctx, action, targets)
	if err != nil {
		co.cache.RollbackMany(targets)
		co.logger.Debug("批量操作失败，已全部回滚", zap.String("action", string(action)), zap.Int("count", len(targets)), zap.Error(err))
		return failed(err)
	}

	succeeded := make(map[uint64]struct{}, len(result.Succeeded))
	for _, id := range result.Succeeded {
		succeeded[id] = struct{}{}
	}
	var confirm, rollback []uint64
	for _, id := range targets {
		if _, ok := succeeded[id]; ok {
			confirm = append(confirm, id)
		} else {
			rollback = append(rollback, id)
		}
	}
	co.cache.ConfirmMany(confirm)
	co.cache.RollbackMany(rollback)

	out := Outcome{Bulk: result}
	if len(rollback) == 0 {
		out.Notice = Notice{Kind: NoticeSuccess, Message: fmt.Sprintf("已处理 %d 条评论", len(confirm))}
	} else {
		out.Notice = Notice{Kind: NoticeUnchanged, Message: fmt.Sprintf("已处理 %d 条评论，%d 条未生效", len(confirm), len(rollback))}
	}
	return out
}

// ResolveReport 举报不在本地缓存中，只做调用与提示
func (co *Coordinator) ResolveReport(ctx context.Context, id uint64, raw, notes string) Outcome {
	outcome, err := enums.ParseReportStatus(raw)
	if err != nil {
		return failed(err)
	}
	report, err := co.api.ResolveReport(ctx, id, outcome, notes)
	if err != nil {
		return failed(err)
	}
	return Outcome{Report: report, Notice: Notice{Kind: NoticeSuccess, Message: fmt.Sprintf("举报 #%d 已处理", id)}}
}

func failed(err error) Outcome {
	return Outcome{Err: err, Notice: noticeFor(err)}
}

// noticeFor 区分"什么都没变"与"不确定，请检查"
func noticeFor(err error) Notice {
	switch {
	case errors.Is(err, myErrors.ErrInFlight):
		return Notice{Kind: NoticeBusy, Message: "该评论有操作正在进行中，请稍后再试"}
	case errors.Is(err, myErrors.ErrEmptySelection):
		return Notice{Kind: NoticeUnchanged, Message: "没有选择任何评论"}
	case myErrors.IsBusiness(err):
		return Notice{Kind: NoticeUnchanged, Message: "操作未生效，数据没有任何修改：" + err.Error()}
	default:
		return Notice{Kind: NoticeUncertain, Message: "无法确认操作结果，请刷新后检查：" + err.Error()}
	}
}

func dedupe(ids []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(ids))
	out := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
