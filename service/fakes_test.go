package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"gorm.io/gorm"

	"github.com/Xushengqwer/comment_service/models/entities"
	"github.com/Xushengqwer/comment_service/models/enums"
	"github.com/Xushengqwer/comment_service/models/events"
	"github.com/Xushengqwer/comment_service/myErrors"
	"github.com/Xushengqwer/comment_service/repo/mysql"
)

var errStoreDown = errors.New("store down")

// fakeCommentRepo 内存版评论存储，记录读写次数用于断言"没有访问存储"。
type fakeCommentRepo struct {
	mu       sync.Mutex
	comments map[uint64]*entities.Comment
	reads    int
	writes   int
	// failGetByIDs 为 true 时批量读取返回错误
	failGetByIDs bool
	// failWrites 中的 ID 写入时返回错误
	failWrites map[uint64]bool
}

func newFakeCommentRepo(comments ...*entities.Comment) *fakeCommentRepo {
	r := &fakeCommentRepo{comments: map[uint64]*entities.Comment{}, failWrites: map[uint64]bool{}}
	for _, c := range comments {
		r.comments[c.ID] = c
	}
	return r
}

func (r *fakeCommentRepo) copyOf(id uint64) *entities.Comment {
	c := *r.comments[id]
	return &c
}

func (r *fakeCommentRepo) Create(_ context.Context, c *entities.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes++
	if _, ok := r.comments[c.ID]; !ok {
		cp := *c
		r.comments[c.ID] = &cp
	}
	return nil
}

func (r *fakeCommentRepo) GetByID(_ context.Context, id uint64) (*entities.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reads++
	if _, ok := r.comments[id]; !ok {
		return nil, commonerrors.ErrRepoNotFound
	}
	return r.copyOf(id), nil
}

func (r *fakeCommentRepo) GetByIDs(_ context.Context, ids []uint64) ([]*entities.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reads++
	if r.failGetByIDs {
		return nil, errStoreDown
	}
	out := make([]*entities.Comment, 0, len(ids))
	for _, id := range ids {
		if _, ok := r.comments[id]; ok {
			out = append(out, r.copyOf(id))
		}
	}
	return out, nil
}

func (r *fakeCommentRepo) write(id uint64, apply func(c *entities.Comment)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes++
	if r.failWrites[id] {
		return errStoreDown
	}
	c, ok := r.comments[id]
	if !ok {
		return commonerrors.ErrRepoNotFound
	}
	apply(c)
	return nil
}

func (r *fakeCommentRepo) UpdateStatus(_ context.Context, id uint64, status enums.CommentStatus) error {
	return r.write(id, func(c *entities.Comment) { c.Status = status })
}

func (r *fakeCommentRepo) MarkDeleted(_ context.Context, id uint64, at time.Time) error {
	return r.write(id, func(c *entities.Comment) { c.DeletedAt = gorm.DeletedAt{Time: at, Valid: true} })
}

func (r *fakeCommentRepo) ClearDeleted(_ context.Context, id uint64) error {
	return r.write(id, func(c *entities.Comment) { c.DeletedAt = gorm.DeletedAt{} })
}

func (r *fakeCommentRepo) List(_ context.Context, f mysql.CommentFilter) ([]*entities.Comment, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reads++
	out := make([]*entities.Comment, 0)
	for id, c := range r.comments {
		if f.Scope.Matches(c.DeletedAtPtr()) && (f.Status == nil || *f.Status == c.Status) {
			out = append(out, r.copyOf(id))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, int64(len(out)), nil
}

func (r *fakeCommentRepo) ListIDsByScope(_ context.Context, scope enums.DeletionScope) ([]uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reads++
	ids := make([]uint64, 0)
	for id, c := range r.comments {
		if scope.Matches(c.DeletedAtPtr()) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (r *fakeCommentRepo) CountByStatus(_ context.Context, scope enums.DeletionScope) (map[enums.CommentStatus]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reads++
	counts := map[enums.CommentStatus]int64{}
	for _, c := range r.comments {
		if scope.Matches(c.DeletedAtPtr()) {
			counts[c.Status]++
		}
	}
	return counts, nil
}

func (r *fakeCommentRepo) ListDeletedBefore(_ context.Context, cutoff time.Time, limit int) ([]*entities.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entities.Comment, 0)
	for id, c := range r.comments {
		if c.DeletedAt.Valid && c.DeletedAt.Time.Before(cutoff) && len(out) < limit {
			out = append(out, r.copyOf(id))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeCommentRepo) PurgeByIDs(ctx context.Context, ids []uint64, beforeDelete mysql.PurgeHook) ([]*entities.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes++
	doomed := make([]*entities.Comment, 0, len(ids))
	for _, id := range ids {
		if c, ok := r.comments[id]; ok && c.DeletedAt.Valid {
			doomed = append(doomed, r.copyOf(id))
		}
	}
	if beforeDelete != nil && len(doomed) > 0 {
		if err := beforeDelete(ctx, doomed); err != nil {
			return nil, err
		}
	}
	for _, c := range doomed {
		delete(r.comments, c.ID)
	}
	return doomed, nil
}

func (r *fakeCommentRepo) stored(id uint64) *entities.Comment {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.copyOf(id)
}

func (r *fakeCommentRepo) counters() (reads, writes int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reads, r.writes
}

// fakeReportRepo 内存版举报存储，Resolve 与真实实现一样是条件更新。
type fakeReportRepo struct {
	mu      sync.Mutex
	reports map[uint64]*entities.CommentReport
	writes  int
}

func newFakeReportRepo(reports ...*entities.CommentReport) *fakeReportRepo {
	r := &fakeReportRepo{reports: map[uint64]*entities.CommentReport{}}
	for _, rep := range reports {
		r.reports[rep.ID] = rep
	}
	return r
}

func (r *fakeReportRepo) Create(_ context.Context, rep *entities.CommentReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes++
	cp := *rep
	r.reports[rep.ID] = &cp
	return nil
}

func (r *fakeReportRepo) GetByID(_ context.Context, id uint64) (*entities.CommentReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rep, ok := r.reports[id]
	if !ok {
		return nil, commonerrors.ErrRepoNotFound
	}
	cp := *rep
	return &cp, nil
}

func (r *fakeReportRepo) Resolve(_ context.Context, id uint64, res mysql.ReportResolution) (*entities.CommentReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rep, ok := r.reports[id]
	if !ok {
		return nil, commonerrors.ErrRepoNotFound
	}
	if rep.Status != enums.ReportPending {
		cp := *rep
		return &cp, myErrors.ErrAlreadyResolved
	}
	r.writes++
	notes, by, at := res.Notes, res.ReviewedBy, res.ReviewedAt
	rep.Status = res.Outcome
	rep.ResolutionNotes = &notes
	rep.ReviewedBy = &by
	rep.ReviewedAt = &at
	cp := *rep
	return &cp, nil
}

func (r *fakeReportRepo) List(_ context.Context, f mysql.ReportFilter) ([]*entities.CommentReport, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entities.CommentReport, 0)
	for _, rep := range r.reports {
		if f.Status == nil || *f.Status == rep.Status {
			cp := *rep
			out = append(out, &cp)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeReportRepo) CountPending(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, rep := range r.reports {
		if rep.Status == enums.ReportPending {
			n++
		}
	}
	return n, nil
}

type fakeLogRepo struct {
	mu   sync.Mutex
	logs []*entities.ModerationLog
}

func (r *fakeLogRepo) Create(_ context.Context, log *entities.ModerationLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logs = append(r.logs, log)
	return nil
}

func (r *fakeLogRepo) ListByEntity(_ context.Context, t enums.EntityType, id uint64, page, pageSize int) ([]*entities.ModerationLog, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entities.ModerationLog, 0)
	for _, l := range r.logs {
		if l.EntityType == t && l.EntityID == id {
			out = append(out, l)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeLogRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.logs)
}

// fakeStatsCache 内存版统计缓存
type fakeStatsCache struct {
	mu           sync.Mutex
	data         map[enums.DeletionScope]map[enums.CommentStatus]int64
	invalidation int
}

func newFakeStatsCache() *fakeStatsCache {
	return &fakeStatsCache{data: map[enums.DeletionScope]map[enums.CommentStatus]int64{}}
}

func (c *fakeStatsCache) Get(_ context.Context, scope enums.DeletionScope) (map[enums.CommentStatus]int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[scope]
	if !ok {
		return nil, myErrors.ErrCacheMiss
	}
	return v, nil
}

func (c *fakeStatsCache) Set(_ context.Context, scope enums.DeletionScope, counts map[enums.CommentStatus]int64, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[scope] = counts
	return nil
}

func (c *fakeStatsCache) Invalidate(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidation++
	c.data = map[enums.DeletionScope]map[enums.CommentStatus]int64{}
	return nil
}

// fakePublisher 记录发布的事件
type fakePublisher struct {
	mu             sync.Mutex
	statusChanged  []events.CommentStatusChangedEvent
	deletions      []events.CommentDeletionEvent
	reportResolved []events.ReportResolvedEvent
	err            error
}

func (p *fakePublisher) SendCommentStatusChanged(_ context.Context, e events.CommentStatusChangedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.statusChanged = append(p.statusChanged, e)
	return p.err
}

func (p *fakePublisher) SendCommentDeletion(_ context.Context, e events.CommentDeletionEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.deletions = append(p.deletions, e)
	return p.err
}

func (p *fakePublisher) SendReportResolved(_ context.Context, e events.ReportResolvedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reportResolved = append(p.reportResolved, e)
	return p.err
}
