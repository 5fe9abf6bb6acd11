package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLogAdd verifies creation stamps ids, denormalizes the path name and
// normalizes the date to its calendar day.
func TestLogAdd(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	path := e.createPath(t, "Korean")

	entry, err := e.logSvc.Add(ctx, path.ID, time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC), "  drilled batchim  ")
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "Korean", entry.PathName)
	assert.Equal(t, "drilled batchim", entry.Content, "content is trimmed")

	stored, err := e.logs.GetByID(ctx, entry.ID)
	require.NoError(t, err)
	assert.True(t, stored.Date.Equal(date(2026, 3, 10)))
}

// TestLogAdd_Rejections covers blank content and unknown paths.
func TestLogAdd_Rejections(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	path := e.createPath(t, "Korean")

	_, err := e.logSvc.Add(ctx, path.ID, date(2026, 3, 10), "   ")
	assert.ErrorIs(t, err, ErrEmptyLogContent)

	_, err = e.logSvc.Add(ctx, "no-such-path", date(2026, 3, 10), "something")
	assert.ErrorIs(t, err, ErrUnknownPath)

	entries, err := e.logs.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries, "rejected entries are not stored")
}

// TestLogUpdateAndDelete verifies content rewrite bumps updated_at and
// unknown ids are silent no-ops.
func TestLogUpdateAndDelete(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	path := e.createPath(t, "Korean")

	entry, err := e.logSvc.Add(ctx, path.ID, date(2026, 3, 10), "first draft")
	require.NoError(t, err)

	require.NoError(t, e.logSvc.UpdateContent(ctx, entry.ID, "rewritten"))
	stored, err := e.logs.GetByID(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, "rewritten", stored.Content)
	assert.False(t, stored.UpdatedAt.Before(stored.CreatedAt))

	assert.ErrorIs(t, e.logSvc.UpdateContent(ctx, entry.ID, "  "), ErrEmptyLogContent)
	require.NoError(t, e.logSvc.UpdateContent(ctx, "no-such-id", "whatever"))

	require.NoError(t, e.logSvc.Delete(ctx, entry.ID))
	require.NoError(t, e.logSvc.Delete(ctx, entry.ID), "second delete is a no-op")
}

// TestLogGrouped verifies day grouping, newest first, with Today and
// Yesterday labels and the literal-date fallback.
func TestLogGrouped(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	path := e.createPath(t, "Korean")
	now := date(2026, 3, 10)

	_, err := e.logSvc.Add(ctx, path.ID, date(2026, 3, 8), "two days back")
	require.NoError(t, err)
	_, err = e.logSvc.Add(ctx, path.ID, date(2026, 3, 10), "today one")
	require.NoError(t, err)
	_, err = e.logSvc.Add(ctx, path.ID, date(2026, 3, 9), "yesterday")
	require.NoError(t, err)
	_, err = e.logSvc.Add(ctx, path.ID, date(2026, 3, 10), "today two")
	require.NoError(t, err)

	groups, err := e.logSvc.Grouped(ctx, now)
	require.NoError(t, err)

	require.Len(t, groups, 3)
	assert.Equal(t, "Today", groups[0].Label)
	assert.Len(t, groups[0].Entries, 2)
	assert.Equal(t, "Yesterday", groups[1].Label)
	assert.Equal(t, "March 8, 2026", groups[2].Label)
}

// TestLogForDate filters to one calendar day.
func TestLogForDate(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	path := e.createPath(t, "Korean")

	_, err := e.logSvc.Add(ctx, path.ID, date(2026, 3, 8), "target day")
	require.NoError(t, err)
	_, err = e.logSvc.Add(ctx, path.ID, date(2026, 3, 9), "other day")
	require.NoError(t, err)

	entries, err := e.logSvc.ForDate(ctx, date(2026, 3, 8))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "target day", entries[0].Content)
}
