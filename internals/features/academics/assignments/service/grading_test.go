package service

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	asgModel "schoolhub_backend/internals/features/academics/assignments/model"
)

func TestResolveSubmissionStatus(t *testing.T) {
	due := time.Date(2026, 3, 15, 23, 59, 0, 0, time.UTC)

	assert.Equal(t, asgModel.SubmissionSubmitted, ResolveSubmissionStatus(due.Add(-time.Hour), due))
	assert.Equal(t, asgModel.SubmissionSubmitted, ResolveSubmissionStatus(due, due), "exactly at the deadline is on time")
	assert.Equal(t, asgModel.SubmissionLate, ResolveSubmissionStatus(due.Add(time.Second), due))
	assert.Equal(t, asgModel.SubmissionLate, ResolveSubmissionStatus(due.Add(48*time.Hour), due))
}

func TestValidateGrade(t *testing.T) {
	require.NoError(t, ValidateGrade(0, 100))
	require.NoError(t, ValidateGrade(100, 100))
	require.NoError(t, ValidateGrade(73, 100))

	for _, grade := range []int{-1, 101, 1000} {
		err := ValidateGrade(grade, 100)
		require.Error(t, err)
		fe, ok := err.(*fiber.Error)
		require.True(t, ok)
		assert.Equal(t, fiber.StatusBadRequest, fe.Code)
		assert.Equal(t, "Grade must be between 0 and 100", fe.Message)
	}
}
