package rules

import (
	"testing"

	"github.com/mitchelldurbincs/GridWalk/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestTerminationChecker_IsDone(t *testing.T) {
	tc := NewTerminationChecker(testutil.NopLogger(), 4)

	assert.Equal(t, 4, tc.EndTurn())
	assert.False(t, tc.IsDone(0))
	assert.False(t, tc.IsDone(3))
	assert.True(t, tc.IsDone(4))

	assert.True(t, NewTerminationChecker(testutil.NopLogger(), 0).IsDone(0))
}

func TestTerminationChecker_TurnsRemaining(t *testing.T) {
	tc := NewTerminationChecker(testutil.NopLogger(), 4)

	tests := []struct {
		turn     int
		expected int
	}{
		{0, 4},
		{3, 1},
		{4, 0},
		{5, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, tc.TurnsRemaining(tt.turn), "turn %d", tt.turn)
	}
}

func TestTerminationChecker_CheckDoneLogs(t *testing.T) {
	logger, buf := testutil.BufferLogger()
	tc := NewTerminationChecker(logger, 2)

	assert.False(t, tc.CheckDone(1))
	assert.NotContains(t, buf.String(), "End turn reached")

	assert.True(t, tc.CheckDone(2))
	assert.Contains(t, buf.String(), `"component":"TerminationChecker"`)
	assert.Contains(t, buf.String(), "End turn reached")
	assert.Contains(t, buf.String(), `"turns_remaining":0`)
}
