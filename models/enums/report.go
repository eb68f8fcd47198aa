package enums

import (
	"fmt"
	"strings"

	"github.com/Xushengqwer/comment_service/myErrors"
)

// ReportStatus 举报处理状态。pending 是唯一的非终态。
type ReportStatus string

const (
	ReportPending   ReportStatus = "pending"
	ReportResolved  ReportStatus = "resolved"
	ReportDismissed ReportStatus = "dismissed"
)

func (s ReportStatus) Valid() bool {
	switch s {
	case ReportPending, ReportResolved, ReportDismissed:
		return true
	default:
		return false
	}
}

// Terminal 判断是否为终态 (resolved / dismissed 之后不再有任何转换)。
func (s ReportStatus) Terminal() bool {
	return s == ReportResolved || s == ReportDismissed
}

func (s ReportStatus) String() string { return string(s) }

// ParseReportStatus 解析举报状态，未知值返回 ErrInvalidStatus。
func ParseReportStatus(raw string) (ReportStatus, error) {
	s := ReportStatus(strings.ToLower(strings.TrimSpace(raw)))
	if !s.Valid() {
		return "", fmt.Errorf("举报状态 %q 不合法: %w", raw, myErrors.ErrInvalidStatus)
	}
	return s, nil
}

// ReportCategory 举报分类标签
type ReportCategory string

const (
	CategorySpam           ReportCategory = "spam"
	CategoryHarassment     ReportCategory = "harassment"
	CategoryHateSpeech     ReportCategory = "hate_speech"
	CategoryInappropriate  ReportCategory = "inappropriate"
	CategoryMisinformation ReportCategory = "misinformation"
	CategoryOffTopic       ReportCategory = "off_topic"
	CategoryOther          ReportCategory = "other"
)

var AllReportCategories = []ReportCategory{
	CategorySpam, CategoryHarassment, CategoryHateSpeech, CategoryInappropriate,
	CategoryMisinformation, CategoryOffTopic, CategoryOther,
}

func (c ReportCategory) Valid() bool {
	for _, v := range AllReportCategories {
		if v == c {
			return true
		}
	}
	return false
}

// ParseReportCategory 未知分类返回 ErrInvalidInput。
func ParseReportCategory(raw string) (ReportCategory, error) {
	c := ReportCategory(strings.ToLower(strings.TrimSpace(raw)))
	if !c.Valid() {
		return "", fmt.Errorf("举报分类 %q 不合法: %w", raw, myErrors.ErrInvalidInput)
	}
	return c, nil
}

// ReportPriority 举报优先级，仅作展示与筛选，不影响状态转换
type ReportPriority string

const (
	PriorityHigh   ReportPriority = "high"
	PriorityMedium ReportPriority = "medium"
	PriorityLow    ReportPriority = "low"
)

func (p ReportPriority) Valid() bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

func ParseReportPriority(raw string) (ReportPriority, error) {
	p := ReportPriority(strings.ToLower(strings.TrimSpace(raw)))
	if !p.Valid() {
		return "", fmt.Errorf("举报优先级 %q 不合法: %w", raw, myErrors.ErrInvalidInput)
	}
	return p, nil
}

// ReporterType 举报人类型：注册用户或以 IP 标识的游客
type ReporterType string

const (
	ReporterUser  ReporterType = "user"
	ReporterGuest ReporterType = "guest"
)

func ParseReporterType(raw string) (ReporterType, error) {
	t := ReporterType(strings.ToLower(strings.TrimSpace(raw)))
	if t != ReporterUser && t != ReporterGuest {
		return "", fmt.Errorf("举报人类型 %q 不合法: %w", raw, myErrors.ErrInvalidInput)
	}
	return t, nil
}
