package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Xushengqwer/comment_service/models/entities"
	"github.com/Xushengqwer/comment_service/models/enums"
)

func seedComment(t *testing.T, repo CommentRepository, id uint64, status enums.CommentStatus, body string) {
	t.Helper()
	require.NoError(t, repo.Create(context.Background(), &entities.Comment{
		ID:        id,
		PostID:    100,
		Body:      body,
		GuestName: "guest",
		Status:    status,
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}))
}

func TestCommentRepository_GetByIDSeesDeleted(t *testing.T) {
	ctx := context.Background()
	repo := NewCommentRepository(newTestDB(t), zap.NewNop())
	seedComment(t, repo, 1, enums.CommentApproved, "hello")

	require.NoError(t, repo.MarkDeleted(ctx, 1, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)))

	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.True(t, got.IsDeleted())
	assert.Equal(t, enums.CommentApproved, got.Status, "deletion keeps the status")

	_, err = repo.GetByID(ctx, 999)
	assert.ErrorIs(t, err, commonerrors.ErrRepoNotFound)
}

func TestCommentRepository_UpdateStatusOnDeleted(t *testing.T) {
	ctx := context.Background()
	repo := NewCommentRepository(newTestDB(t), zap.NewNop())
	seedComment(t, repo, 1, enums.CommentApproved, "hello")
	deletedAt := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.MarkDeleted(ctx, 1, deletedAt))

	require.NoError(t, repo.UpdateStatus(ctx, 1, enums.CommentSpam))

	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, enums.CommentSpam, got.Status)
	require.True(t, got.IsDeleted())
	assert.True(t, deletedAt.Equal(got.DeletedAt.Time))

	assert.ErrorIs(t, repo.UpdateStatus(ctx, 404, enums.CommentSpam), commonerrors.ErrRepoNotFound)
	assert.ErrorIs(t, repo.MarkDeleted(ctx, 404, deletedAt), commonerrors.ErrRepoNotFound)
	assert.ErrorIs(t, repo.ClearDeleted(ctx, 404), commonerrors.ErrRepoNotFound)
}

func TestCommentRepository_DeletionScope(t *testing.T) {
	ctx := context.Background()
	repo := NewCommentRepository(newTestDB(t), zap.NewNop())
	seedComment(t, repo, 1, enums.CommentPending, "one")
	seedComment(t, repo, 2, enums.CommentPending, "two")
	require.NoError(t, repo.MarkDeleted(ctx, 2, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))

	ids, err := repo.ListIDsByScope(ctx, enums.ScopeActive)
	require.NoError(t, err)
	assert.Equal(t, []uint64{1}, ids)

	ids, err = repo.ListIDsByScope(ctx, enums.ScopeDeleted)
	require.NoError(t, err)
	assert.Equal(t, []uint64{2}, ids)

	ids, err = repo.ListIDsByScope(ctx, enums.ScopeAll)
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 2}, ids)

	require.NoError(t, repo.ClearDeleted(ctx, 2))
	ids, err = repo.ListIDsByScope(ctx, enums.ScopeActive)
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 2}, ids)
}

func TestCommentRepository_ListFilters(t *testing.T) {
	ctx := context.Background()
	repo := NewCommentRepository(newTestDB(t), zap.NewNop())
	seedComment(t, repo, 1, enums.CommentPending, "buy cheap watches")
	seedComment(t, repo, 2, enums.CommentApproved, "great article")
	seedComment(t, repo, 3, enums.CommentApproved, "cheap shot")
	require.NoError(t, repo.MarkDeleted(ctx, 3, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)))

	approved := enums.CommentApproved
	list, total, err := repo.List(ctx, CommentFilter{Status: &approved, Scope: enums.ScopeAll, Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, list, 2)
	assert.Equal(t, uint64(3), list[0].ID, "newest first")

	list, total, err = repo.List(ctx, CommentFilter{Search: "cheap", Scope: enums.ScopeActive, Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, list, 1)
	assert.Equal(t, uint64(1), list[0].ID)

	list, total, err = repo.List(ctx, CommentFilter{Scope: enums.ScopeAll, Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, list, 1)
	assert.Equal(t, uint64(1), list[0].ID)

	postID := uint64(555)
	list, total, err = repo.List(ctx, CommentFilter{PostID: &postID, Scope: enums.ScopeAll, Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 0, total)
	assert.Empty(t, list)
}

func TestCommentRepository_CountByStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewCommentRepository(newTestDB(t), zap.NewNop())
	seedComment(t, repo, 1, enums.CommentPending, "a")
	seedComment(t, repo, 2, enums.CommentPending, "b")
	seedComment(t, repo, 3, enums.CommentSpam, "c")
	require.NoError(t, repo.MarkDeleted(ctx, 3, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)))

	counts, err := repo.CountByStatus(ctx, enums.ScopeActive)
	require.NoError(t, err)
	assert.EqualValues(t, 2, counts[enums.CommentPending])
	assert.EqualValues(t, 0, counts[enums.CommentSpam])
	assert.Len(t, counts, 4)

	counts, err = repo.CountByStatus(ctx, enums.ScopeDeleted)
	require.NoError(t, err)
	assert.EqualValues(t, 1, counts[enums.CommentSpam])
}

func TestCommentRepository_CreateIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewCommentRepository(newTestDB(t), zap.NewNop())
	seedComment(t, repo, 1, enums.CommentPending, "original")
	seedComment(t, repo, 1, enums.CommentApproved, "replayed")

	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "original", got.Body)
	assert.Equal(t, enums.CommentPending, got.Status)
}

func TestCommentRepository_Purge(t *testing.T) {
	ctx := context.Background()
	repo := NewCommentRepository(newTestDB(t), zap.NewNop())
	seedComment(t, repo, 1, enums.CommentSpam, "old trash")
	seedComment(t, repo, 2, enums.CommentSpam, "fresh trash")
	seedComment(t, repo, 3, enums.CommentApproved, "alive")
	require.NoError(t, repo.MarkDeleted(ctx, 1, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, repo.MarkDeleted(ctx, 2, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)))

	old, err := repo.ListDeletedBefore(ctx, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), 10)
	require.NoError(t, err)
	require.Len(t, old, 1)
	assert.Equal(t, uint64(1), old[0].ID)

	// 归档失败时整批回滚
	_, err = repo.PurgeByIDs(ctx, []uint64{1, 3}, func(context.Context, []*entities.Comment) error {
		return errors.New("archive down")
	})
	require.Error(t, err)
	_, err = repo.GetByID(ctx, 1)
	require.NoError(t, err)

	var archived []uint64
	purged, err := repo.PurgeByIDs(ctx, []uint64{1, 3}, func(_ context.Context, doomed []*entities.Comment) error {
		for _, c := range doomed {
			archived = append(archived, c.ID)
		}
		return nil
	})
	require.NoError(t, err)
	require.Len(t, purged, 1, "active comments are never purged")
	assert.Equal(t, uint64(1), purged[0].ID)
	assert.Equal(t, []uint64{1}, archived)

	_, err = repo.GetByID(ctx, 1)
	assert.ErrorIs(t, err, commonerrors.ErrRepoNotFound)
	_, err = repo.GetByID(ctx, 3)
	assert.NoError(t, err)
}

func TestCommentRepository_GetByIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewCommentRepository(newTestDB(t), zap.NewNop())
	seedComment(t, repo, 1, enums.CommentPending, "a")
	seedComment(t, repo, 2, enums.CommentPending, "b")

	got, err := repo.GetByIDs(ctx, []uint64{2, 1, 99})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, uint64(1), got[0].ID)
	assert.Equal(t, uint64(2), got[1].ID)

	got, err = repo.GetByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
