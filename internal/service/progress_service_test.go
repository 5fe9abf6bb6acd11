package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdubel/trailhead/internal/testutil"
)

// TestToggleTopic flips the studied flag in both directions.
func TestToggleTopic(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	path := e.createPath(t, "Korean")
	unit := e.createUnit(t, path.ID, "Unit 1", 0)
	sec := e.createSection(t, unit.ID, "Hangul", testutil.Unlocked())
	topic := e.createTopic(t, sec.ID, "Vowel combinations")

	require.NoError(t, e.progressSvc.ToggleTopic(ctx, path.ID, sec.ID, topic.ID))
	got, err := e.topics.GetScoped(ctx, path.ID, sec.ID, topic.ID)
	require.NoError(t, err)
	assert.True(t, got.Completed)

	require.NoError(t, e.progressSvc.ToggleTopic(ctx, path.ID, sec.ID, topic.ID))
	got, err = e.topics.GetScoped(ctx, path.ID, sec.ID, topic.ID)
	require.NoError(t, err)
	assert.False(t, got.Completed)
}

// TestToggleTopic_UnknownIsNoOp verifies addressing a missing or
// wrong-path topic changes nothing and returns no error.
func TestToggleTopic_UnknownIsNoOp(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	path := e.createPath(t, "Korean")
	other := e.createPath(t, "Guitar")
	unit := e.createUnit(t, path.ID, "Unit 1", 0)
	sec := e.createSection(t, unit.ID, "Hangul", testutil.Unlocked())
	topic := e.createTopic(t, sec.ID, "Vowel combinations")

	require.NoError(t, e.progressSvc.ToggleTopic(ctx, path.ID, sec.ID, "no-such-topic"))
	require.NoError(t, e.progressSvc.ToggleTopic(ctx, other.ID, sec.ID, topic.ID))

	got, err := e.topics.GetScoped(ctx, path.ID, sec.ID, topic.ID)
	require.NoError(t, err)
	assert.False(t, got.Completed, "wrong-path toggle must not leak through")
}

// TestToggleRequirement_Leaf flips a childless top-level requirement.
func TestToggleRequirement_Leaf(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	path := e.createPath(t, "Korean")
	unit := e.createUnit(t, path.ID, "Unit 1", 0)
	sec := e.createSection(t, unit.ID, "Hangul", testutil.Unlocked())
	req := e.createRequirement(t, sec.ID, "Pass the quiz")

	require.NoError(t, e.progressSvc.ToggleRequirement(ctx, path.ID, sec.ID, req.ID, ""))
	got, err := e.requirements.GetScoped(ctx, path.ID, sec.ID, req.ID)
	require.NoError(t, err)
	assert.True(t, got.Completed)
}

// TestToggleRequirement_ParentWithChildrenIsNoOp verifies the derived flag
// cannot be set directly.
func TestToggleRequirement_ParentWithChildrenIsNoOp(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	path := e.createPath(t, "Korean")
	unit := e.createUnit(t, path.ID, "Unit 1", 0)
	sec := e.createSection(t, unit.ID, "Hangul", testutil.Unlocked())
	parent := e.createRequirement(t, sec.ID, "Finish drills")
	e.createRequirement(t, sec.ID, "Drill 1", testutil.WithParent(parent.ID))

	require.NoError(t, e.progressSvc.ToggleRequirement(ctx, path.ID, sec.ID, parent.ID, ""))

	got, err := e.requirements.GetScoped(ctx, path.ID, sec.ID, parent.ID)
	require.NoError(t, err)
	assert.False(t, got.Completed)
}

// TestToggleRequirement_ChildDerivesParent verifies the parent flag follows
// the AND of its children as they flip.
func TestToggleRequirement_ChildDerivesParent(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	path := e.createPath(t, "Korean")
	unit := e.createUnit(t, path.ID, "Unit 1", 0)
	sec := e.createSection(t, unit.ID, "Hangul", testutil.Unlocked())
	parent := e.createRequirement(t, sec.ID, "Finish drills")
	childA := e.createRequirement(t, sec.ID, "Drill 1", testutil.WithParent(parent.ID))
	childB := e.createRequirement(t, sec.ID, "Drill 2", testutil.WithParent(parent.ID), testutil.WithRequirementOrder(1))

	require.NoError(t, e.progressSvc.ToggleRequirement(ctx, path.ID, sec.ID, parent.ID, childA.ID))
	got, err := e.requirements.GetScoped(ctx, path.ID, sec.ID, parent.ID)
	require.NoError(t, err)
	assert.False(t, got.Completed, "one of two children done")

	require.NoError(t, e.progressSvc.ToggleRequirement(ctx, path.ID, sec.ID, parent.ID, childB.ID))
	got, err = e.requirements.GetScoped(ctx, path.ID, sec.ID, parent.ID)
	require.NoError(t, err)
	assert.True(t, got.Completed, "all children done")

	// Un-checking a child pulls the parent back down.
	require.NoError(t, e.progressSvc.ToggleRequirement(ctx, path.ID, sec.ID, parent.ID, childA.ID))
	got, err = e.requirements.GetScoped(ctx, path.ID, sec.ID, parent.ID)
	require.NoError(t, err)
	assert.False(t, got.Completed)
}

// TestCompleteSection_Gates covers the two precondition failures: locked
// section and unmet requirements.
func TestCompleteSection_Gates(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	path := e.createPath(t, "Korean")
	unit := e.createUnit(t, path.ID, "Unit 1", 0)

	locked := e.createSection(t, unit.ID, "Locked")
	err := e.progressSvc.CompleteSection(ctx, path.ID, locked.ID)
	assert.ErrorIs(t, err, ErrSectionLocked)
	assert.False(t, e.getSection(t, locked.ID).Completed)

	gated := e.createSection(t, unit.ID, "Gated", testutil.Unlocked(), testutil.WithSectionOrder(1))
	e.createRequirement(t, gated.ID, "Pass the quiz")
	err = e.progressSvc.CompleteSection(ctx, path.ID, gated.ID)
	assert.ErrorIs(t, err, ErrRequirementsIncomplete)
	assert.False(t, e.getSection(t, gated.ID).Completed)
}

// TestCompleteSection_TopicsDoNotGate verifies unstudied topics never block
// completion.
func TestCompleteSection_TopicsDoNotGate(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	path := e.createPath(t, "Korean")
	unit := e.createUnit(t, path.ID, "Unit 1", 0)
	sec := e.createSection(t, unit.ID, "Hangul", testutil.Unlocked())
	e.createTopic(t, sec.ID, "Never studied")

	require.NoError(t, e.progressSvc.CompleteSection(ctx, path.ID, sec.ID))
	assert.True(t, e.getSection(t, sec.ID).Completed)
}

// TestCompleteSection_DerivedRequirementGate verifies a parent counts as
// met exactly when all its children are done.
func TestCompleteSection_DerivedRequirementGate(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	path := e.createPath(t, "Korean")
	unit := e.createUnit(t, path.ID, "Unit 1", 0)
	sec := e.createSection(t, unit.ID, "Hangul", testutil.Unlocked())
	parent := e.createRequirement(t, sec.ID, "Finish drills")
	e.createRequirement(t, sec.ID, "Drill 1", testutil.WithParent(parent.ID), testutil.RequirementDone())
	e.createRequirement(t, sec.ID, "Drill 2", testutil.WithParent(parent.ID), testutil.WithRequirementOrder(1))

	err := e.progressSvc.CompleteSection(ctx, path.ID, sec.ID)
	assert.ErrorIs(t, err, ErrRequirementsIncomplete)
}

// TestCompleteSection_UnlocksNextInUnit verifies the one-step unlock within
// the same unit.
func TestCompleteSection_UnlocksNextInUnit(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	path := e.createPath(t, "Korean")
	unit := e.createUnit(t, path.ID, "Unit 1", 0)
	first := e.createSection(t, unit.ID, "First", testutil.Unlocked(), testutil.WithSectionOrder(0))
	second := e.createSection(t, unit.ID, "Second", testutil.WithSectionOrder(1))
	third := e.createSection(t, unit.ID, "Third", testutil.WithSectionOrder(2))

	require.NoError(t, e.progressSvc.CompleteSection(ctx, path.ID, first.ID))

	done := e.getSection(t, first.ID)
	assert.True(t, done.Completed)
	require.NotNil(t, done.CompletedAt)

	assert.True(t, e.getSection(t, second.ID).Unlocked, "immediate successor unlocks")
	assert.False(t, e.getSection(t, third.ID).Unlocked, "unlock propagates exactly one step")
}

// TestCompleteSection_NoCrossUnitUnlock verifies the last section of a unit
// unlocks nothing in the following unit.
func TestCompleteSection_NoCrossUnitUnlock(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	path := e.createPath(t, "Korean")
	unit1 := e.createUnit(t, path.ID, "Unit 1", 0)
	unit2 := e.createUnit(t, path.ID, "Unit 2", 1)
	last := e.createSection(t, unit1.ID, "Unit 1 finale", testutil.Unlocked())
	nextUnitFirst := e.createSection(t, unit2.ID, "Unit 2 opener")

	require.NoError(t, e.progressSvc.CompleteSection(ctx, path.ID, last.ID))

	assert.False(t, e.getSection(t, nextUnitFirst.ID).Unlocked)
}

// TestCompleteSection_CompletedAtStampedOnce verifies repeating completion
// neither errors nor moves the timestamp.
func TestCompleteSection_CompletedAtStampedOnce(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	path := e.createPath(t, "Korean")
	unit := e.createUnit(t, path.ID, "Unit 1", 0)
	sec := e.createSection(t, unit.ID, "Hangul", testutil.Unlocked())

	require.NoError(t, e.progressSvc.CompleteSection(ctx, path.ID, sec.ID))
	first := e.getSection(t, sec.ID)
	require.NotNil(t, first.CompletedAt)

	require.NoError(t, e.progressSvc.CompleteSection(ctx, path.ID, sec.ID))
	second := e.getSection(t, sec.ID)
	require.NotNil(t, second.CompletedAt)
	assert.True(t, first.CompletedAt.Equal(*second.CompletedAt))
}

// TestSetSectionDeadline sets, replaces and clears the deadline.
func TestSetSectionDeadline(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	path := e.createPath(t, "Korean")
	unit := e.createUnit(t, path.ID, "Unit 1", 0)
	sec := e.createSection(t, unit.ID, "Hangul", testutil.Unlocked())

	d1 := date(2026, 4, 1)
	require.NoError(t, e.progressSvc.SetSectionDeadline(ctx, path.ID, sec.ID, &d1))
	got := e.getSection(t, sec.ID)
	require.NotNil(t, got.Deadline)
	assert.True(t, got.Deadline.Equal(d1))

	d2 := date(2026, 5, 1)
	require.NoError(t, e.progressSvc.SetSectionDeadline(ctx, path.ID, sec.ID, &d2))
	got = e.getSection(t, sec.ID)
	require.NotNil(t, got.Deadline)
	assert.True(t, got.Deadline.Equal(d2))

	require.NoError(t, e.progressSvc.SetSectionDeadline(ctx, path.ID, sec.ID, nil))
	assert.Nil(t, e.getSection(t, sec.ID).Deadline)
}
