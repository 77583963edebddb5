package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeShift(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"morning", ShiftMorning},
		{"Morning", ShiftMorning},
		{"morning shift", ShiftMorning},
		{" MORNING SHIFT ", ShiftMorning},
		{"afternoon", ShiftAfternoon},
		{"afternoon shift", ShiftAfternoon},
		{"all day", ShiftAllDay},
		{"All Day", ShiftAllDay},
		{"", ShiftAllDay},
		{"whole day", ShiftAllDay},
		{"sick", ShiftAllDay},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeShift(tt.in), "input %q", tt.in)
	}
}

func TestIsRange(t *testing.T) {
	d := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	single := LeaveRequest{Date: &d}
	assert.False(t, single.IsRange())

	legacy := LeaveRequest{StartDate: &d, EndDate: &d}
	assert.True(t, legacy.IsRange())

	// A row with both forms reads as single-date.
	both := LeaveRequest{Date: &d, StartDate: &d, EndDate: &d}
	assert.False(t, both.IsRange())
}
