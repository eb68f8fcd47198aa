package vo

import (
	"time"

	"github.com/Xushengqwer/comment_service/models/entities"
)

// ModerationLogVO 审核轨迹中的一条记录
type ModerationLogVO struct {
	ID         uint64    `json:"id"`
	EntityType string    `json:"entity_type" example:"comment"`
	EntityID   uint64    `json:"entity_id"`
	Action     string    `json:"action" example:"set_status"`
	From       string    `json:"from"`
	To         string    `json:"to"`
	Actor      string    `json:"actor"`
	Deleted    bool      `json:"deleted"`
	Note       string    `json:"note,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type ModerationLogListVO struct {
	Logs     []*ModerationLogVO `json:"logs"`
	Total    int64              `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
}

func NewModerationLogVOs(logs []*entities.ModerationLog) []*ModerationLogVO {
	out := make([]*ModerationLogVO, 0, len(logs))
	for _, l := range logs {
		out = append(out, &ModerationLogVO{
			ID:         l.ID,
			EntityType: string(l.EntityType),
			EntityID:   l.EntityID,
			Action:     string(l.Action),
			From:       l.FromState,
			To:         l.ToState,
			Actor:      l.Actor,
			Deleted:    l.Deleted,
			Note:       l.Note,
			CreatedAt:  l.CreatedAt,
		})
	}
	return out
}
