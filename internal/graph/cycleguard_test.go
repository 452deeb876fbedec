package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCycleGuard_EnterLeaveContains(t *testing.T) {
	g := NewCycleGuard()
	assert.False(t, g.Contains("prop"))

	g.Enter("prop")
	assert.True(t, g.Contains("prop"))
	assert.False(t, g.Contains("prop1"))

	g.Enter("prop1")
	assert.True(t, g.Contains("prop1"))

	g.Leave("prop1")
	assert.False(t, g.Contains("prop1"))
	assert.True(t, g.Contains("prop"))

	g.Leave("prop")
	assert.False(t, g.Contains("prop"))
}

func TestCycleGuard_CycleFrom(t *testing.T) {
	g := NewCycleGuard()
	g.Enter("prop")
	g.Enter("prop1")
	g.Enter("prop2")

	assert.Equal(t, []Name{"prop", "prop1", "prop2", "prop"}, g.CycleFrom("prop"))
	assert.Equal(t, []Name{"prop1", "prop2", "prop1"}, g.CycleFrom("prop1"))
}

func TestCycleGuard_LeaveEmptyIsNoop(t *testing.T) {
	g := NewCycleGuard()
	assert.NotPanics(t, func() { g.Leave("nothing") })
}
