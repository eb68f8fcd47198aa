package enums

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/comment_service/myErrors"
)

func TestParseCommentStatus(t *testing.T) {
	for _, raw := range []string{"pending", "approved", "rejected", "spam", " Approved "} {
		s, err := ParseCommentStatus(raw)
		require.NoError(t, err, raw)
		assert.True(t, s.Valid())
	}

	for _, raw := range []string{"", "deleted", "null", "trash"} {
		_, err := ParseCommentStatus(raw)
		assert.ErrorIs(t, err, myErrors.ErrInvalidStatus, raw)
	}
}

func TestReportStatus_Terminal(t *testing.T) {
	assert.False(t, ReportPending.Terminal())
	assert.True(t, ReportResolved.Terminal())
	assert.True(t, ReportDismissed.Terminal())

	_, err := ParseReportStatus("reopened")
	assert.ErrorIs(t, err, myErrors.ErrInvalidStatus)
}

func TestDeletionScope_Matches(t *testing.T) {
	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.True(t, ScopeActive.Matches(nil))
	assert.False(t, ScopeActive.Matches(&ts))
	assert.False(t, ScopeDeleted.Matches(nil))
	assert.True(t, ScopeDeleted.Matches(&ts))
	assert.True(t, ScopeAll.Matches(nil))
	assert.True(t, ScopeAll.Matches(&ts))
}

func TestParseDeletionScope(t *testing.T) {
	s, err := ParseDeletionScope("")
	require.NoError(t, err)
	assert.Equal(t, ScopeActive, s)

	s, err = ParseDeletionScope("DELETED")
	require.NoError(t, err)
	assert.Equal(t, ScopeDeleted, s)

	_, err = ParseDeletionScope("trashed")
	assert.ErrorIs(t, err, myErrors.ErrInvalidInput)
}

func TestBulkAction_TargetStatus(t *testing.T) {
	st, ok := BulkApprove.TargetStatus()
	assert.True(t, ok)
	assert.Equal(t, CommentApproved, st)

	st, ok = BulkSpam.TargetStatus()
	assert.True(t, ok)
	assert.Equal(t, CommentSpam, st)

	_, ok = BulkDelete.TargetStatus()
	assert.False(t, ok)

	_, err := ParseBulkAction("purge")
	assert.ErrorIs(t, err, myErrors.ErrInvalidInput)
}

func TestParseReportCategoryAndPriority(t *testing.T) {
	c, err := ParseReportCategory("hate_speech")
	require.NoError(t, err)
	assert.Equal(t, CategoryHateSpeech, c)

	_, err = ParseReportCategory("rude")
	assert.ErrorIs(t, err, myErrors.ErrInvalidInput)

	p, err := ParseReportPriority("HIGH")
	require.NoError(t, err)
	assert.Equal(t, PriorityHigh, p)

	rt, err := ParseReporterType("guest")
	require.NoError(t, err)
	assert.Equal(t, ReporterGuest, rt)
}
