package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidTimeString(t *testing.T) {
	valid := []string{"00:00", "08:30", "23:59", "09:00:00"}
	for _, s := range valid {
		assert.True(t, ValidTimeString(s), s)
	}

	invalid := []string{"", "8:30", "24:00", "12:60", "12.30", "noon", "12:3"}
	for _, s := range invalid {
		assert.False(t, ValidTimeString(s), s)
	}
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd string
		want                       bool
	}{
		{"identical", "09:00", "10:00", "09:00", "10:00", true},
		{"contained", "09:00", "12:00", "10:00", "11:00", true},
		{"partial front", "09:00", "10:30", "10:00", "11:00", true},
		{"partial back", "10:00", "11:00", "09:00", "10:30", true},
		{"touching end-to-start", "09:00", "10:00", "10:00", "11:00", false},
		{"touching start-to-end", "10:00", "11:00", "09:00", "10:00", false},
		{"disjoint", "08:00", "09:00", "10:00", "11:00", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd))
			// overlap is symmetric
			assert.Equal(t, tc.want, Overlaps(tc.bStart, tc.bEnd, tc.aStart, tc.aEnd))
		})
	}
}

func TestValidateInterval(t *testing.T) {
	require.NoError(t, ValidateInterval(1, "09:00", "10:30"))

	assert.Error(t, ValidateInterval(7, "09:00", "10:30"), "day out of range")
	assert.Error(t, ValidateInterval(-1, "09:00", "10:30"), "negative day")
	assert.Error(t, ValidateInterval(1, "10:30", "09:00"), "end before start")
	assert.Error(t, ValidateInterval(1, "09:00", "09:00"), "empty interval")
	assert.Error(t, ValidateInterval(1, "9:00", "10:00"), "malformed start")
}
