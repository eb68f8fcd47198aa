package myErrors

import (
	"errors"

	"github.com/Xushengqwer/go-common/commonerrors"
)

// ErrCacheMiss 表示在缓存层未找到对应的键值
var ErrCacheMiss = errors.New("cache: key not found (miss)")

// 审核领域的错误分类。NotFound 统一复用 commonerrors.ErrRepoNotFound。
var (
	// ErrInvalidStatus 请求的状态值不在枚举集合内。
	ErrInvalidStatus = errors.New("moderation: invalid status")
	// ErrInvalidTransition 状态值合法，但当前实体不允许这一转换 (例如把举报"处理"回 pending)。
	ErrInvalidTransition = errors.New("moderation: invalid transition")
	// ErrAlreadyResolved 举报已离开 pending，不能再次处理。
	ErrAlreadyResolved = errors.New("moderation: report already resolved")
	// ErrEmptySelection 批量操作的目标集合为空。
	ErrEmptySelection = errors.New("moderation: empty selection")
	// ErrUnauthorized 缺少或无效的身份/防伪令牌。
	ErrUnauthorized = errors.New("moderation: unauthorized")
	// ErrTransportFailure 与业务规则无关的网络/服务端故障 (超时、5xx、连接中断)。
	ErrTransportFailure = errors.New("moderation: transport failure")
	// ErrInFlight 同一实体已有未完成的变更请求。
	ErrInFlight = errors.New("moderation: operation already in flight")
	// ErrInvalidInput 请求参数格式错误 (非状态枚举类问题)。
	ErrInvalidInput = errors.New("moderation: invalid input")
)

// ErrNotFound 是 commonerrors.ErrRepoNotFound 的别名，便于调用方只依赖本包。
var ErrNotFound = commonerrors.ErrRepoNotFound

// IsBusiness 判断错误是否属于业务规则错误。
// 业务错误对单次操作是终态，不会重试，且意味着"什么都没有改变"。
func IsBusiness(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, ErrNotFound),
		errors.Is(err, ErrInvalidStatus),
		errors.Is(err, ErrInvalidTransition),
		errors.Is(err, ErrAlreadyResolved),
		errors.Is(err, ErrEmptySelection),
		errors.Is(err, ErrUnauthorized),
		errors.Is(err, ErrInFlight),
		errors.Is(err, ErrInvalidInput):
		return true
	default:
		return false
	}
}

// ErrorKindHeader 错误响应上携带错误分类的响应头。
// 同一个 HTTP 状态码对应多个分类 (422: 非法状态/非法转换，400: 空选择/非法参数)，客户端据此还原具体错误。
const ErrorKindHeader = "X-Error-Kind"

var errorKinds = []struct {
	name string
	err  error
}{
	{"not_found", ErrNotFound},
	{"invalid_status", ErrInvalidStatus},
	{"invalid_transition", ErrInvalidTransition},
	{"already_resolved", ErrAlreadyResolved},
	{"empty_selection", ErrEmptySelection},
	{"unauthorized", ErrUnauthorized},
	{"in_flight", ErrInFlight},
	{"invalid_input", ErrInvalidInput},
}

// KindOf 返回业务错误的分类名，非业务错误返回空串。
func KindOf(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return ""
}

// FromKind 按分类名取回对应的哨兵错误。
func FromKind(name string) (error, bool) {
	for _, k := range errorKinds {
		if k.name == name {
			return k.err, true
		}
	}
	return nil, false
}
