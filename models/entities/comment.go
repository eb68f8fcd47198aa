package entities

import (
	"time"

	"gorm.io/gorm"

	"github.com/Xushengqwer/comment_service/models/enums"
)

// Comment 评论实体，审核核心所修改的对象
// - 表名: comments
// - 审核服务只改写 Status 与 DeletedAt 两个字段，其余字段由评论服务写入 (经 Kafka 同步到本服务)
type Comment struct {
	// ID 自增主键，稳定且永不复用 (被物理清理后也不会被重新分配)
	ID uint64 `gorm:"primaryKey;autoIncrement"`

	// 所属帖子 ID，创建后不可变
	PostID uint64 `gorm:"type:bigint;not null;index"`

	// 评论正文，审核服务只读
	Body string `gorm:"type:text;not null"`

	// 作者信息，二选一：
	//   - 注册用户: AuthorUserID 非空，GuestName/GuestEmail 为空
	//   - 游客: AuthorUserID 为 nil，GuestName/GuestEmail 填充
	AuthorUserID *string `gorm:"type:char(36);index"`
	GuestName    string  `gorm:"type:varchar(100)"`
	GuestEmail   string  `gorm:"type:varchar(255)"`

	// 审核状态
	// - GORM 标签: not null + default 保证任何时刻都恰好有一个值
	Status enums.CommentStatus `gorm:"type:varchar(16);not null;default:pending;index"`

	// 软删除时间戳，与 Status 相互独立：删除不会清空状态
	// - 使用 gorm.DeletedAt，仓库层统一通过 Unscoped() 访问，删除范围由调用方显式指定
	DeletedAt gorm.DeletedAt `gorm:"index"`

	// 冗余计数，审核服务不修改
	LikesCount    int64 `gorm:"type:int;default:0"`
	DislikesCount int64 `gorm:"type:int;default:0"`
	RepliesCount  int64 `gorm:"type:int;default:0"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time
}

// IsDeleted 判断评论是否处于软删除状态。
func (c *Comment) IsDeleted() bool {
	return c.DeletedAt.Valid
}

// DeletedAtPtr 把 gorm.DeletedAt 转成 *time.Time，便于 VO 与删除范围谓词使用。
func (c *Comment) DeletedAtPtr() *time.Time {
	if !c.DeletedAt.Valid {
		return nil
	}
	t := c.DeletedAt.Time
	return &t
}

// IsGuest 判断评论作者是否为游客。
func (c *Comment) IsGuest() bool {
	return c.AuthorUserID == nil
}
