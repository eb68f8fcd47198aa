package service

import (
	"context"
	"testing"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/comment_service/config"
	"github.com/Xushengqwer/comment_service/models/dto"
	"github.com/Xushengqwer/comment_service/models/entities"
	"github.com/Xushengqwer/comment_service/models/enums"
	"github.com/Xushengqwer/comment_service/models/vo"
	"github.com/Xushengqwer/comment_service/myErrors"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

type commentFixture struct {
	svc   *commentModerationService
	repo  *fakeCommentRepo
	logs  *fakeLogRepo
	cache *fakeStatsCache
	pub   *fakePublisher
}

func newCommentFixture(comments ...*entities.Comment) *commentFixture {
	f := &commentFixture{
		repo:  newFakeCommentRepo(comments...),
		logs:  &fakeLogRepo{},
		cache: newFakeStatsCache(),
		pub:   &fakePublisher{},
	}
	svc := NewCommentModerationService(f.repo, f.logs, f.cache, f.pub, config.ModerationConfig{}, zap.NewNop()).(*commentModerationService)
	svc.now = func() time.Time { return fixedNow }
	f.svc = svc
	return f
}

func pendingComment(id uint64) *entities.Comment {
	return &entities.Comment{ID: id, PostID: 100, Body: "body", Status: enums.CommentPending}
}

func TestSetStatus_SingleApprove(t *testing.T) {
	ctx := context.Background()
	f := newCommentFixture(pendingComment(42))

	res, err := f.svc.SetStatus(ctx, 42, enums.CommentApproved, "admin")
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.True(t, res.Celebrate)
	assert.Equal(t, enums.CommentPending, res.From)
	assert.Equal(t, enums.CommentApproved, res.Comment.Status)
	assert.Equal(t, enums.CommentApproved, f.repo.stored(42).Status)
	assert.Len(t, f.pub.statusChanged, 1)
	assert.Equal(t, 1, f.logs.count())

	_, writesBefore := f.repo.counters()
	res, err = f.svc.SetStatus(ctx, 42, enums.CommentApproved, "admin")
	require.NoError(t, err)
	assert.False(t, res.Changed)
	assert.False(t, res.Celebrate)
	assert.Equal(t, enums.CommentApproved, res.Comment.Status)
	_, writesAfter := f.repo.counters()
	assert.Equal(t, writesBefore, writesAfter, "no-op transition must not write")
	assert.Len(t, f.pub.statusChanged, 1, "no-op transition must not publish")
	assert.Equal(t, 1, f.logs.count())
}

func TestSetStatus_Errors(t *testing.T) {
	ctx := context.Background()
	f := newCommentFixture(pendingComment(1))

	_, err := f.svc.SetStatus(ctx, 1, enums.CommentStatus("trash"), "admin")
	assert.ErrorIs(t, err, myErrors.ErrInvalidStatus)
	reads, writes := f.repo.counters()
	assert.Zero(t, reads, "invalid status is rejected before the store")
	assert.Zero(t, writes)

	_, err = f.svc.SetStatus(ctx, 404, enums.CommentSpam, "admin")
	assert.ErrorIs(t, err, commonerrors.ErrRepoNotFound)
}

func TestSetStatus_StoreFailureKeepsOldValue(t *testing.T) {
	ctx := context.Background()
	f := newCommentFixture(pendingComment(1))
	f.repo.failWrites[1] = true

	_, err := f.svc.SetStatus(ctx, 1, enums.CommentSpam, "admin")
	require.Error(t, err)
	assert.False(t, myErrors.IsBusiness(err))
	assert.Equal(t, enums.CommentPending, f.repo.stored(1).Status)
	assert.Empty(t, f.pub.statusChanged)
}

func TestSoftDelete_IdempotentAndIndependentOfStatus(t *testing.T) {
	ctx := context.Background()
	c := pendingComment(7)
	c.Status = enums.CommentApproved
	f := newCommentFixture(c)

	res, err := f.svc.SoftDelete(ctx, 7, "admin")
	require.NoError(t, err)
	assert.True(t, res.Changed)
	require.NotNil(t, res.Comment.DeletedAt)
	assert.Equal(t, enums.CommentApproved, res.Comment.Status)

	res, err = f.svc.SoftDelete(ctx, 7, "admin")
	require.NoError(t, err)
	assert.False(t, res.Changed)
	require.NotNil(t, res.Comment.DeletedAt)
	assert.Equal(t, fixedNow, *res.Comment.DeletedAt)
	assert.Len(t, f.pub.deletions, 1)

	// 已删除的评论仍可修改状态，删除时间保持不变
	st, err := f.svc.SetStatus(ctx, 7, enums.CommentSpam, "admin")
	require.NoError(t, err)
	assert.True(t, st.Changed)
	stored := f.repo.stored(7)
	assert.Equal(t, enums.CommentSpam, stored.Status)
	assert.True(t, stored.DeletedAt.Valid)
	assert.Equal(t, fixedNow, stored.DeletedAt.Time)
	require.Len(t, f.pub.statusChanged, 1)
	assert.True(t, f.pub.statusChanged[0].Deleted)

	_, err = f.svc.SoftDelete(ctx, 404, "admin")
	assert.ErrorIs(t, err, commonerrors.ErrRepoNotFound)
}

func TestRestore_Idempotent(t *testing.T) {
	ctx := context.Background()
	c := pendingComment(3)
	c.Status = enums.CommentRejected
	c.DeletedAt = gorm.DeletedAt{Time: fixedNow.Add(-time.Hour), Valid: true}
	f := newCommentFixture(c)

	res, err := f.svc.Restore(ctx, 3, "admin")
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Nil(t, res.Comment.DeletedAt)
	assert.Equal(t, enums.CommentRejected, res.Comment.Status)

	res, err = f.svc.Restore(ctx, 3, "admin")
	require.NoError(t, err)
	assert.False(t, res.Changed)

	_, err = f.svc.Restore(ctx, 404, "admin")
	assert.ErrorIs(t, err, commonerrors.ErrRepoNotFound)
}

func TestBulkApply_EmptySelectionTouchesNothing(t *testing.T) {
	ctx := context.Background()
	f := newCommentFixture(pendingComment(1))

	for _, ids := range [][]uint64{nil, {}} {
		_, err := f.svc.BulkApply(ctx, ids, enums.BulkApprove, "admin")
		assert.ErrorIs(t, err, myErrors.ErrEmptySelection)
	}
	reads, writes := f.repo.counters()
	assert.Zero(t, reads)
	assert.Zero(t, writes)
	assert.Zero(t, f.cache.invalidation)
	assert.Empty(t, f.pub.statusChanged)
}

func TestBulkApply_PerItemIndependence(t *testing.T) {
	ctx := context.Background()
	approved := pendingComment(2)
	approved.Status = enums.CommentApproved
	f := newCommentFixture(pendingComment(1), approved, pendingComment(3))
	f.repo.failWrites[3] = true

	res, err := f.svc.BulkApply(ctx, []uint64{1, 2, 2, 3, 99}, enums.BulkApprove, "admin")
	require.NoError(t, err)
	assert.Equal(t, 5, res.Requested)
	assert.Equal(t, 4, res.Processed)
	assert.Equal(t, []uint64{1, 2}, res.Succeeded)
	require.Len(t, res.Failed, 2)
	assert.Equal(t, uint64(3), res.Failed[0].ID)
	assert.Equal(t, vo.BulkFailureStoreError, res.Failed[0].Code)
	assert.Equal(t, uint64(99), res.Failed[1].ID)
	assert.Equal(t, vo.BulkFailureNotFound, res.Failed[1].Code)

	assert.Equal(t, enums.CommentApproved, f.repo.stored(1).Status)
	assert.Equal(t, enums.CommentPending, f.repo.stored(3).Status)
	assert.Len(t, f.pub.statusChanged, 1, "only comment 1 actually changed")
}

func TestBulkApply_BatchFetchFailureWritesNothing(t *testing.T) {
	ctx := context.Background()
	f := newCommentFixture(pendingComment(1), pendingComment(2), pendingComment(3))
	f.repo.failGetByIDs = true

	res, err := f.svc.BulkApply(ctx, []uint64{1, 2, 3}, enums.BulkSpam, "admin")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, myErrors.ErrTransportFailure)
	_, writes := f.repo.counters()
	assert.Zero(t, writes)
	for _, id := range []uint64{1, 2, 3} {
		assert.Equal(t, enums.CommentPending, f.repo.stored(id).Status)
	}
}

func TestBulkApply_AllStoreFailuresIsAggregateFailure(t *testing.T) {
	ctx := context.Background()
	f := newCommentFixture(pendingComment(1), pendingComment(2))
	f.repo.failWrites[1] = true
	f.repo.failWrites[2] = true

	res, err := f.svc.BulkApply(ctx, []uint64{1, 2}, enums.BulkDelete, "admin")
	assert.ErrorIs(t, err, myErrors.ErrTransportFailure)
	require.NotNil(t, res)
	assert.Empty(t, res.Succeeded)
	assert.Len(t, res.Failed, 2)
}

func TestBulkApply_DeleteAndRestore(t *testing.T) {
	ctx := context.Background()
	f := newCommentFixture(pendingComment(1), pendingComment(2))

	res, err := f.svc.BulkApply(ctx, []uint64{1, 2}, enums.BulkDelete, "admin")
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 2}, res.Succeeded)
	assert.True(t, f.repo.stored(1).DeletedAt.Valid)
	assert.Equal(t, enums.CommentPending, f.repo.stored(1).Status)

	res, err = f.svc.BulkApply(ctx, []uint64{2}, enums.BulkRestore, "admin")
	require.NoError(t, err)
	assert.Equal(t, []uint64{2}, res.Succeeded)
	assert.False(t, f.repo.stored(2).DeletedAt.Valid)

	_, err = f.svc.BulkApply(ctx, []uint64{1}, enums.BulkAction("purge"), "admin")
	assert.ErrorIs(t, err, myErrors.ErrInvalidInput)
}

func TestListByDeletionScope(t *testing.T) {
	ctx := context.Background()
	deleted := pendingComment(2)
	deleted.DeletedAt = gorm.DeletedAt{Time: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Valid: true}
	f := newCommentFixture(pendingComment(1), deleted)

	ids, err := f.svc.ListByDeletionScope(ctx, enums.ScopeActive)
	require.NoError(t, err)
	assert.Equal(t, []uint64{1}, ids)

	ids, err = f.svc.ListByDeletionScope(ctx, enums.ScopeDeleted)
	require.NoError(t, err)
	assert.Equal(t, []uint64{2}, ids)

	ids, err = f.svc.ListByDeletionScope(ctx, enums.ScopeAll)
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 2}, ids)

	_, err = f.svc.ListByDeletionScope(ctx, enums.DeletionScope("trash"))
	assert.ErrorIs(t, err, myErrors.ErrInvalidInput)
}

func TestList_ClampsPaging(t *testing.T) {
	ctx := context.Background()
	f := newCommentFixture(pendingComment(1))

	res, err := f.svc.List(ctx, &dto.ListCommentsRequest{Page: -3, PageSize: 1000})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Page)
	assert.Equal(t, 100, res.PageSize)

	res, err = f.svc.List(ctx, &dto.ListCommentsRequest{})
	require.NoError(t, err)
	assert.Equal(t, 15, res.PageSize)
	assert.Len(t, res.Comments, 1)

	_, err = f.svc.List(ctx, &dto.ListCommentsRequest{Status: "bogus"})
	assert.ErrorIs(t, err, myErrors.ErrInvalidStatus)
	_, err = f.svc.List(ctx, &dto.ListCommentsRequest{DeletedStatus: "bogus"})
	assert.ErrorIs(t, err, myErrors.ErrInvalidInput)
}

func TestStats_CacheAsideAndInvalidation(t *testing.T) {
	ctx := context.Background()
	f := newCommentFixture(pendingComment(1), pendingComment(2))

	stats, err := f.svc.Stats(ctx, enums.ScopeActive)
	require.NoError(t, err)
	assert.False(t, stats.Cached)
	assert.EqualValues(t, 2, stats.Counts["pending"])
	assert.EqualValues(t, 2, stats.Total)

	stats, err = f.svc.Stats(ctx, enums.ScopeActive)
	require.NoError(t, err)
	assert.True(t, stats.Cached)

	_, err = f.svc.SetStatus(ctx, 1, enums.CommentSpam, "admin")
	require.NoError(t, err)
	stats, err = f.svc.Stats(ctx, enums.ScopeActive)
	require.NoError(t, err)
	assert.False(t, stats.Cached)
	assert.EqualValues(t, 1, stats.Counts["spam"])

	require.NoError(t, f.svc.RefreshStats(ctx))
	_, err = f.cache.Get(ctx, enums.ScopeDeleted)
	assert.NoError(t, err)
}

func TestIngest_ForcesPending(t *testing.T) {
	ctx := context.Background()
	f := newCommentFixture()

	c := &entities.Comment{ID: 5, PostID: 9, Body: "hi", Status: enums.CommentApproved}
	require.NoError(t, f.svc.Ingest(ctx, c))
	assert.Equal(t, enums.CommentPending, f.repo.stored(5).Status)

	err := f.svc.Ingest(ctx, &entities.Comment{PostID: 9})
	assert.ErrorIs(t, err, myErrors.ErrInvalidInput)
}
