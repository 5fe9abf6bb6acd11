package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdubel/trailhead/internal/domain"
	"github.com/rdubel/trailhead/internal/testutil"
)

// seedSection creates path -> unit -> section and returns their ids.
func seedSection(t *testing.T, db *sql.DB, name string) (pathID, sectionID string) {
	t.Helper()
	_, unit := seedPathUnit(t, db, name)
	sec := testutil.NewTestSection(unit.ID, name+" Section", testutil.Unlocked())
	require.NoError(t, NewSQLiteSectionRepo(db).Create(context.Background(), sec))
	return unit.PathID, sec.ID
}

func TestRequirementRepo_GetScoped_TopLevelOnly(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	pathID, sectionID := seedSection(t, db, "Korean")

	repo := NewSQLiteRequirementRepo(db)
	parent := testutil.NewTestRequirement(sectionID, "Pass the quiz")
	child := testutil.NewTestRequirement(sectionID, "Score 80%", testutil.WithParent(parent.ID))
	require.NoError(t, repo.Create(ctx, parent))
	require.NoError(t, repo.Create(ctx, child))

	got, err := repo.GetScoped(ctx, pathID, sectionID, parent.ID)
	require.NoError(t, err)
	assert.Equal(t, parent.ID, got.ID)

	// Children are not addressable as top-level requirements.
	_, err = repo.GetScoped(ctx, pathID, sectionID, child.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRequirementRepo_GetChild(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	_, sectionID := seedSection(t, db, "Korean")

	repo := NewSQLiteRequirementRepo(db)
	parent := testutil.NewTestRequirement(sectionID, "Pass the quiz")
	child := testutil.NewTestRequirement(sectionID, "Score 80%", testutil.WithParent(parent.ID))
	other := testutil.NewTestRequirement(sectionID, "Unrelated")
	require.NoError(t, repo.Create(ctx, parent))
	require.NoError(t, repo.Create(ctx, child))
	require.NoError(t, repo.Create(ctx, other))

	got, err := repo.GetChild(ctx, parent.ID, child.ID)
	require.NoError(t, err)
	assert.Equal(t, child.ID, got.ID)
	require.NotNil(t, got.ParentID)
	assert.Equal(t, parent.ID, *got.ParentID)

	// A top-level row is not a child of anything.
	_, err = repo.GetChild(ctx, parent.ID, other.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRequirementRepo_ListBySection_TopLevelFirst(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	_, sectionID := seedSection(t, db, "Korean")

	repo := NewSQLiteRequirementRepo(db)
	first := testutil.NewTestRequirement(sectionID, "First", testutil.WithRequirementOrder(0))
	second := testutil.NewTestRequirement(sectionID, "Second", testutil.WithRequirementOrder(1))
	childA := testutil.NewTestRequirement(sectionID, "Second sub A", testutil.WithParent(second.ID), testutil.WithRequirementOrder(0))
	childB := testutil.NewTestRequirement(sectionID, "Second sub B", testutil.WithParent(second.ID), testutil.WithRequirementOrder(1))
	for _, r := range []*domain.Requirement{childB, second, first, childA} {
		require.NoError(t, repo.Create(ctx, r))
	}

	reqs, err := repo.ListBySection(ctx, sectionID)
	require.NoError(t, err)
	require.Len(t, reqs, 4)
	assert.Equal(t, first.ID, reqs[0].ID)
	assert.Equal(t, second.ID, reqs[1].ID)
	assert.Nil(t, reqs[0].ParentID)
	assert.Nil(t, reqs[1].ParentID)
	assert.NotNil(t, reqs[2].ParentID)
	assert.NotNil(t, reqs[3].ParentID)

	children, err := repo.ListChildren(ctx, second.ID)
	require.NoError(t, err)
	require.Len(t, children, 2)
	assert.Equal(t, childA.ID, children[0].ID)
	assert.Equal(t, childB.ID, children[1].ID)
}

func TestRequirementRepo_UpdateCompleted(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	pathID, sectionID := seedSection(t, db, "Korean")

	repo := NewSQLiteRequirementRepo(db)
	req := testutil.NewTestRequirement(sectionID, "Pass the quiz")
	require.NoError(t, repo.Create(ctx, req))

	req.Completed = true
	require.NoError(t, repo.Update(ctx, req))

	got, err := repo.GetScoped(ctx, pathID, sectionID, req.ID)
	require.NoError(t, err)
	assert.True(t, got.Completed)
}
