package workflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/comment_service/models/entities"
	"github.com/Xushengqwer/comment_service/models/enums"
	"github.com/Xushengqwer/comment_service/myErrors"
)

func TestResolveReport_OneWay(t *testing.T) {
	first := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	r := &entities.CommentReport{ID: 9, CommentID: 42, Status: enums.ReportPending}

	require.NoError(t, ResolveReport(r, enums.ReportResolved, "removed", "admin-1", first))
	assert.Equal(t, enums.ReportResolved, r.Status)
	require.NotNil(t, r.ResolutionNotes)
	require.NotNil(t, r.ReviewedBy)
	require.NotNil(t, r.ReviewedAt)
	assert.Equal(t, "removed", *r.ResolutionNotes)
	assert.Equal(t, "admin-1", *r.ReviewedBy)
	assert.Equal(t, first, *r.ReviewedAt)

	err := ResolveReport(r, enums.ReportDismissed, "second", "admin-2", first.Add(time.Hour))
	assert.ErrorIs(t, err, myErrors.ErrAlreadyResolved)
	assert.Equal(t, enums.ReportResolved, r.Status)
	assert.Equal(t, "removed", *r.ResolutionNotes)
	assert.Equal(t, "admin-1", *r.ReviewedBy)
	assert.Equal(t, first, *r.ReviewedAt)
}

func TestResolveReport_EmptyNotesAllowed(t *testing.T) {
	r := &entities.CommentReport{ID: 1, Status: enums.ReportPending}
	require.NoError(t, ResolveReport(r, enums.ReportDismissed, "", "admin", time.Now()))
	require.NotNil(t, r.ResolutionNotes)
	assert.Equal(t, "", *r.ResolutionNotes)
}

func TestResolveReport_InvalidOutcome(t *testing.T) {
	r := &entities.CommentReport{ID: 1, Status: enums.ReportPending}

	err := ResolveReport(r, enums.ReportPending, "", "admin", time.Now())
	assert.ErrorIs(t, err, myErrors.ErrInvalidTransition)

	err = ResolveReport(r, enums.ReportStatus("escalated"), "", "admin", time.Now())
	assert.ErrorIs(t, err, myErrors.ErrInvalidStatus)

	assert.Equal(t, enums.ReportPending, r.Status)
	assert.Nil(t, r.ResolutionNotes)
	assert.Nil(t, r.ReviewedBy)
	assert.Nil(t, r.ReviewedAt)
}

func TestCanResolve(t *testing.T) {
	assert.True(t, CanResolve(enums.ReportPending, enums.ReportResolved))
	assert.True(t, CanResolve(enums.ReportPending, enums.ReportDismissed))
	assert.False(t, CanResolve(enums.ReportResolved, enums.ReportDismissed))
	assert.False(t, CanResolve(enums.ReportDismissed, enums.ReportPending))
	assert.False(t, CanResolve(enums.ReportResolved, enums.ReportPending))
}
