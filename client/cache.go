package client

import (
	"sort"
	"sync"
	"time"

	"github.com/Xushengqwer/comment_service/models/enums"
	"github.com/Xushengqwer/comment_service/models/vo"
	"github.com/Xushengqwer/comment_service/myErrors"
)

// Patch 对缓存中的评论副本做预期修改
type Patch func(c *vo.CommentVO)

// CommentCache 按评论 ID 缓存管理后台看到的评论。
// 同一个 ID 同时只能有一个未完成的乐观更新：进行中时再次 Speculate 返回 ErrInFlight。
// 所有读写都基于深拷贝，调用方拿到的对象不会被后续更新影响。
type CommentCache struct {
	mu       sync.Mutex
	items    map[uint64]*vo.CommentVO
	inflight map[uint64]snapshot
}

// snapshot 乐观更新前的最后一次确认值，present=false 表示当时缓存中没有该评论
type snapshot struct {
	prev    *vo.CommentVO
	present bool
}

func NewCommentCache() *CommentCache {
	return &CommentCache{
		items:    make(map[uint64]*vo.CommentVO),
		inflight: make(map[uint64]snapshot),
	}
}

// Put 写入服务端确认过的评论
func (c *CommentCache) Put(comments ...*vo.CommentVO) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, cm := range comments {
		if cm != nil {
			c.items[cm.ID] = cloneComment(cm)
		}
	}
}

func (c *CommentCache) Get(id uint64) (*vo.CommentVO, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	cm, ok := c.items[id]
	if !ok {
		return nil, false
	}
	return cloneComment(cm), true
}

// InFlight 判断评论是否有未完成的操作 (界面据此禁用对应按钮)
func (c *CommentCache) InFlight(id uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.inflight[id]
	return ok
}

// Speculate 记录当前值作为快照并应用 patch。缓存中没有该评论时只标记进行中。
func (c *CommentCache) Speculate(id uint64, patch Patch) error {
	return c.SpeculateMany([]uint64{id}, patch)
}

// SpeculateMany 对一组评论应用同一个 patch。任意一个 ID 正在进行中时全部不修改。
func (c *CommentCache) SpeculateMany(ids []uint64, patch Patch) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, id := range ids {
		if _, busy := c.inflight[id]; busy {
			return myErrors.ErrInFlight
		}
	}
	for _, id := range ids {
		if _, done := c.inflight[id]; done {
			continue // 重复 ID
		}
		cur, ok := c.items[id]
		if !ok {
			c.inflight[id] = snapshot{}
			continue
		}
		c.inflight[id] = snapshot{prev: cloneComment(cur), present: true}
		next := cloneComment(cur)
		if patch != nil {
			patch(next)
		}
		c.items[id] = next
	}
	return nil
}

// Confirm 服务端确认成功，保留乐观值；confirmed 非空时以服务端返回为准
func (c *CommentCache) Confirm(id uint64, confirmed *vo.CommentVO) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.inflight, id)
	if confirmed != nil {
		c.items[id] = cloneComment(confirmed)
	}
}

func (c *CommentCache) ConfirmMany(ids []uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, id := range ids {
		delete(c.inflight, id)
	}
}

// Rollback 恢复到 Speculate 之前的值
func (c *CommentCache) Rollback(id uint64) {
	c.RollbackMany([]uint64{id})
}

func (c *CommentCache) RollbackMany(ids []uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, id := range ids {
		snap, ok := c.inflight[id]
		if !ok {
			continue
		}
		if snap.present {
			c.items[id] = snap.prev
		} else {
			delete(c.items, id)
		}
		delete(c.inflight, id)
	}
}

// Filter 返回删除范围内的评论，按 ID 升序
func (c *CommentCache) Filter(scope enums.DeletionScope) []*vo.CommentVO {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*vo.CommentVO, 0, len(c.items))
	for _, cm := range c.items {
		if scope.Matches(cm.DeletedAt) {
			out = append(out, cloneComment(cm))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func cloneComment(src *vo.CommentVO) *vo.CommentVO {
	dst := *src
	if src.DeletedAt != nil {
		t := *src.DeletedAt
		dst.DeletedAt = &t
	}
	if src.Author.UserID != nil {
		id := *src.Author.UserID
		dst.Author.UserID = &id
	}
	return &dst
}

// patchFor 批量操作在本地对应的预期修改
func patchFor(action enums.BulkAction, now time.Time) Patch {
	if status, ok := action.TargetStatus(); ok {
		return func(c *vo.CommentVO) { c.Status = status }
	}
	switch action {
	case enums.BulkDelete:
		return func(c *vo.CommentVO) {
			if c.DeletedAt == nil {
				t := now
				c.DeletedAt = &t
			}
		}
	case enums.BulkRestore:
		return func(c *vo.CommentVO) { c.DeletedAt = nil }
	}
	return nil
}
