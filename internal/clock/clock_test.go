package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBudgetEmergencyFloor(t *testing.T) {
	d := Budget(1*time.Second, 0, 0.5)
	assert.Equal(t, MinMoveTime, d, "with no increment the emergency branch must floor at MinMoveTime")
}

func TestBudgetEmergencyUsesIncrementMinusBuffer(t *testing.T) {
	d := Budget(2*time.Second, 900*time.Millisecond, 0.2)
	assert.Equal(t, 400*time.Millisecond, d)
}

func TestBudgetNormalAllocation(t *testing.T) {
	d := Budget(60*time.Second, 0, 1.0)
	// moves_left = round(30*1 + 10*0) = 30
	assert.Equal(t, 2*time.Second, d)
}

func TestBudgetScalesWithPhase(t *testing.T) {
	opening := Budget(60*time.Second, 0, 1.0)
	endgame := Budget(60*time.Second, 0, 0.0)
	assert.Less(t, opening, endgame, "fewer assumed moves left in the endgame means more time per move")
}

func TestShouldContinueAllowsWhenComfortablyAheadOfDeadline(t *testing.T) {
	now := time.Now()
	deadline := now.Add(time.Minute)
	ok := ShouldContinue(1000, 1000, 10*time.Millisecond, now, deadline)
	assert.True(t, ok)
}

func TestShouldContinueRejectsWhenProjectedPastDeadline(t *testing.T) {
	now := time.Now()
	deadline := now.Add(50 * time.Millisecond)
	// branching factor sqrt(100000/1000) = 10, next iter ~10x the nodes and time.
	ok := ShouldContinue(100000, 1000, 40*time.Millisecond, now, deadline)
	assert.False(t, ok)
}

func TestShouldContinueWithoutPriorIterationFallsBackToDeadline(t *testing.T) {
	now := time.Now()
	assert.True(t, ShouldContinue(500, 0, time.Millisecond, now, now.Add(time.Second)))
	assert.False(t, ShouldContinue(500, 0, time.Millisecond, now, now.Add(-time.Second)))
}
