package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdubel/trailhead/internal/testutil"
)

// TestSectionDetail verifies the assembled read model: context names,
// progress counts, requirement tree and readiness flag.
func TestSectionDetail(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	path := e.createPath(t, "Korean")
	unit := e.createUnit(t, path.ID, "Unit 1", 0)
	sec := e.createSection(t, unit.ID, "Hangul", testutil.Unlocked(), testutil.WithSectionCode("1a"))

	e.createTopic(t, sec.ID, "Vowels", testutil.TopicDone())
	e.createTopic(t, sec.ID, "Consonants", testutil.WithTopicOrder(1))

	leaf := e.createRequirement(t, sec.ID, "Pass the quiz", testutil.RequirementDone())
	parent := e.createRequirement(t, sec.ID, "Finish drills", testutil.WithRequirementOrder(1))
	e.createRequirement(t, sec.ID, "Drill 1", testutil.WithParent(parent.ID), testutil.RequirementDone())
	e.createRequirement(t, sec.ID, "Drill 2", testutil.WithParent(parent.ID), testutil.WithRequirementOrder(1))

	detail, err := e.sectionSvc.Get(ctx, path.ID, sec.ID)
	require.NoError(t, err)
	require.NotNil(t, detail)

	assert.Equal(t, "Korean", detail.PathName)
	assert.Equal(t, "Unit 1", detail.UnitName)
	assert.Equal(t, 1, detail.TopicsDone)
	assert.Equal(t, 2, detail.TopicsTotal)
	assert.Equal(t, 1, detail.RequirementsMet)
	assert.Equal(t, 2, detail.RequirementsTotal)
	assert.False(t, detail.ReadyToComplete)

	require.Len(t, detail.Requirements, 2)
	assert.Equal(t, leaf.ID, detail.Requirements[0].Requirement.ID)
	assert.True(t, detail.Requirements[0].Satisfied)
	assert.Equal(t, parent.ID, detail.Requirements[1].Requirement.ID)
	assert.False(t, detail.Requirements[1].Satisfied)
	assert.Len(t, detail.Requirements[1].Children, 2)
}

// TestSectionDetail_ReadyToComplete flips once every requirement is met.
func TestSectionDetail_ReadyToComplete(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	path := e.createPath(t, "Korean")
	unit := e.createUnit(t, path.ID, "Unit 1", 0)
	sec := e.createSection(t, unit.ID, "Hangul", testutil.Unlocked())
	req := e.createRequirement(t, sec.ID, "Pass the quiz")

	detail, err := e.sectionSvc.Get(ctx, path.ID, sec.ID)
	require.NoError(t, err)
	assert.False(t, detail.ReadyToComplete)

	require.NoError(t, e.progressSvc.ToggleRequirement(ctx, path.ID, sec.ID, req.ID, ""))

	detail, err = e.sectionSvc.Get(ctx, path.ID, sec.ID)
	require.NoError(t, err)
	assert.True(t, detail.ReadyToComplete)

	require.NoError(t, e.progressSvc.CompleteSection(ctx, path.ID, sec.ID))
	detail, err = e.sectionSvc.Get(ctx, path.ID, sec.ID)
	require.NoError(t, err)
	assert.False(t, detail.ReadyToComplete, "already completed sections are not ready again")
}

// TestSectionDetail_MissingReturnsNil verifies the (nil, nil) contract for
// absent or wrong-path sections.
func TestSectionDetail_MissingReturnsNil(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	path := e.createPath(t, "Korean")
	other := e.createPath(t, "Guitar")
	unit := e.createUnit(t, path.ID, "Unit 1", 0)
	sec := e.createSection(t, unit.ID, "Hangul")

	detail, err := e.sectionSvc.Get(ctx, path.ID, "no-such-section")
	require.NoError(t, err)
	assert.Nil(t, detail)

	detail, err = e.sectionSvc.Get(ctx, other.ID, sec.ID)
	require.NoError(t, err)
	assert.Nil(t, detail)
}
