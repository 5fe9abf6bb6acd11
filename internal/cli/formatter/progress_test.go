package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderProgress_Bounds(t *testing.T) {
	assert.Contains(t, RenderProgress(0, 8), "  0%")
	assert.Contains(t, RenderProgress(1, 8), "100%")
	assert.Contains(t, RenderProgress(-0.5, 8), "  0%", "negative clamps to zero")
	assert.Contains(t, RenderProgress(1.5, 8), "100%", "overflow clamps to one")
}

func TestRenderCount(t *testing.T) {
	out := RenderCount(2, 5, 10)
	assert.Contains(t, out, "2/5")

	empty := RenderCount(0, 0, 10)
	assert.Contains(t, empty, "0/0")
}

func TestDueBadge(t *testing.T) {
	assert.Contains(t, DueBadge(-3), "overdue by 3 days")
	assert.Contains(t, DueBadge(-1), "overdue by 1 day")
	assert.Contains(t, DueBadge(0), "due today")
	assert.Contains(t, DueBadge(1), "due tomorrow")
	assert.Contains(t, DueBadge(6), "due in 6 days")
}
