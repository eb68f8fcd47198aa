// Package events 定义审核服务在 Kafka 上收发的事件结构。
package events

import "time"

// --- 出站事件 ---

// CommentStatusChangedEvent 评论状态真正发生变化后发出 (无操作不发)
type CommentStatusChangedEvent struct {
	EventID   string    `json:"event_id"`
	Timestamp time.Time `json:"timestamp"`
	CommentID uint64    `json:"comment_id"`
	PostID    uint64    `json:"post_id"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Actor     string    `json:"actor"`
	// Deleted 评论在变更时是否处于软删除状态
	Deleted bool `json:"deleted"`
}

// CommentDeletionEvent 评论被软删除 (Deleted=true) 或恢复 (Deleted=false)
type CommentDeletionEvent struct {
	EventID   string    `json:"event_id"`
	Timestamp time.Time `json:"timestamp"`
	CommentID uint64    `json:"comment_id"`
	PostID    uint64    `json:"post_id"`
	Deleted   bool      `json:"deleted"`
	Actor     string    `json:"actor"`
}

// ReportResolvedEvent 举报离开 pending 时发出
type ReportResolvedEvent struct {
	EventID    string    `json:"event_id"`
	Timestamp  time.Time `json:"timestamp"`
	ReportID   uint64    `json:"report_id"`
	CommentID  uint64    `json:"comment_id"`
	Outcome    string    `json:"outcome"`
	ReviewedBy string    `json:"reviewed_by"`
}

// --- 入站事件 ---

// CommentCreatedEvent 评论服务在用户提交评论后发出
type CommentCreatedEvent struct {
	EventID      string    `json:"event_id"`
	CommentID    uint64    `json:"comment_id"`
	PostID       uint64    `json:"post_id"`
	Body         string    `json:"body"`
	AuthorUserID *string   `json:"author_user_id,omitempty"`
	GuestName    string    `json:"guest_name,omitempty"`
	GuestEmail   string    `json:"guest_email,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// ReportSubmittedEvent 用户举报评论后发出
type ReportSubmittedEvent struct {
	EventID        string    `json:"event_id"`
	ReportID       uint64    `json:"report_id"`
	CommentID      uint64    `json:"comment_id"`
	Category       string    `json:"category"`
	Priority       string    `json:"priority"`
	Reason         string    `json:"reason"`
	Description    string    `json:"description"`
	ReporterUserID *string   `json:"reporter_user_id,omitempty"`
	ReporterIP     string    `json:"reporter_ip,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// AutoModerationVerdictEvent 外部自动审核服务给出的裁决
type AutoModerationVerdictEvent struct {
	EventID   string  `json:"event_id"`
	CommentID uint64  `json:"comment_id"`
	Verdict   string  `json:"verdict"` // approved / rejected / spam
	Score     float64 `json:"score"`
	Model     string  `json:"model"`
}
