package vo

import (
	"time"

	"github.com/Xushengqwer/comment_service/models/entities"
	"github.com/Xushengqwer/comment_service/models/enums"
)

// AuthorVO 评论作者：注册用户 (UserID) 或游客 (Name + Email)
type AuthorVO struct {
	Type   string  `json:"type" example:"guest"` // user / guest
	UserID *string `json:"user_id,omitempty"`
	Name   string  `json:"name,omitempty"`
	Email  string  `json:"email,omitempty"`
}

// CommentVO 评论的响应结构
type CommentVO struct {
	ID            uint64              `json:"id"`
	PostID        uint64              `json:"post_id"`
	Body          string              `json:"body"`
	Author        AuthorVO            `json:"author"`
	Status        enums.CommentStatus `json:"status" swaggertype:"string" example:"pending"`
	DeletedAt     *time.Time          `json:"deleted_at"`
	LikesCount    int64               `json:"likes_count"`
	DislikesCount int64               `json:"dislikes_count"`
	RepliesCount  int64               `json:"replies_count"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// CommentListVO 评论分页列表
type CommentListVO struct {
	Comments []*CommentVO `json:"comments"`
	Total    int64        `json:"total"`
	Page     int          `json:"page"`
	PageSize int          `json:"page_size"`
}

// StatusChangeVO 单条状态变更的结果
type StatusChangeVO struct {
	Comment *CommentVO          `json:"comment"`
	From    enums.CommentStatus `json:"from" swaggertype:"string"`
	To      enums.CommentStatus `json:"to" swaggertype:"string"`
	// Changed 为 false 表示目标状态与原状态相同，未发生写入
	Changed bool `json:"changed"`
	// Celebrate 仅在评论刚进入 approved 时为 true
	Celebrate bool `json:"celebrate"`
}

// DeletionChangeVO 软删除 / 恢复的结果
type DeletionChangeVO struct {
	Comment *CommentVO `json:"comment"`
	// Changed 为 false 表示评论本来就处于目标状态 (幂等的无操作)
	Changed bool `json:"changed"`
}

// BulkItemFailure 批量操作中单个 ID 的失败原因
type BulkItemFailure struct {
	ID     uint64 `json:"id"`
	Code   string `json:"code" example:"not_found"` // not_found / store_error
	Reason string `json:"reason"`
}

// 批量失败原因码
const (
	BulkFailureNotFound   = "not_found"
	BulkFailureStoreError = "store_error"
)

// BulkResultVO 批量操作的结果
// - Requested: 请求中的 ID 数量 (含重复)
// - Processed: 去重后调用方意图操作的数量
// - Succeeded / Failed: 逐个 ID 核实后的结果
type BulkResultVO struct {
	Action    enums.BulkAction  `json:"action" swaggertype:"string" example:"approve"`
	Requested int               `json:"requested"`
	Processed int               `json:"processed"`
	Succeeded []uint64          `json:"succeeded"`
	Failed    []BulkItemFailure `json:"failed"`
}

// CommentStatsVO 某个删除范围内各状态的评论数量
type CommentStatsVO struct {
	Scope  enums.DeletionScope `json:"scope" swaggertype:"string" example:"active"`
	Counts map[string]int64    `json:"counts"`
	Total  int64               `json:"total"`
	// Cached 表示结果来自 Redis 缓存
	Cached bool `json:"cached"`
}

// NewCommentVO 把评论实体转换为响应结构。
func NewCommentVO(c *entities.Comment) *CommentVO {
	if c == nil {
		return nil
	}
	author := AuthorVO{Type: "user", UserID: c.AuthorUserID}
	if c.IsGuest() {
		author = AuthorVO{Type: "guest", Name: c.GuestName, Email: c.GuestEmail}
	}
	return &CommentVO{
		ID:            c.ID,
		PostID:        c.PostID,
		Body:          c.Body,
		Author:        author,
		Status:        c.Status,
		DeletedAt:     c.DeletedAtPtr(),
		LikesCount:    c.LikesCount,
		DislikesCount: c.DislikesCount,
		RepliesCount:  c.RepliesCount,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

// NewCommentVOs 批量转换，空输入返回空切片而不是 nil，便于前端处理。
func NewCommentVOs(comments []*entities.Comment) []*CommentVO {
	out := make([]*CommentVO, 0, len(comments))
	for _, c := range comments {
		if c == nil {
			continue
		}
		out = append(out, NewCommentVO(c))
	}
	return out
}
