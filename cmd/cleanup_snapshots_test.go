package cmd

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"voicedesk.io/accounting/mocks"
	"voicedesk.io/accounting/utils"
)

func TestCleanupSnapshots(t *testing.T) {
	t.Parallel()
	utils.InitLogrus("stdout")

	t.Run("Should delete snapshots past the retention window", func(t *testing.T) {
		t.Parallel()

		mockUsage := &mocks.UsageRepository{}

		var cutoff time.Time
		mockUsage.EXPECT().DeleteSnapshotsBefore(mock.Anything).
			Run(func(c time.Time) {
				cutoff = c
			}).
			Return(int64(12), nil).Once()

		job := NewCleanupSnapshotsJob(mockUsage, 90*24*time.Hour)
		assert.NoError(t, job.CleanupSnapshots())

		expected := time.Now().Add(-90 * 24 * time.Hour)
		assert.WithinDuration(t, expected, cutoff, time.Minute)
	})

	t.Run("Should surface repository errors", func(t *testing.T) {
		t.Parallel()

		mockUsage := &mocks.UsageRepository{}
		mockUsage.EXPECT().DeleteSnapshotsBefore(mock.Anything).
			Return(int64(0), errors.New("db down")).Once()

		job := NewCleanupSnapshotsJob(mockUsage, 90*24*time.Hour)
		assert.Error(t, job.CleanupSnapshots())
	})
}
