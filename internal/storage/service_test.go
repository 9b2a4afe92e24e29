package storage

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"voicedesk.io/accounting/mocks"
	"voicedesk.io/accounting/models"
)

func TestRenderCSV(t *testing.T) {
	t.Parallel()

	computedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	snapshots := []models.UsageSnapshot{
		{
			AssistantId:      "asst_abc",
			PlanId:           "starter",
			TotalMinutesUsed: 12.5,
			MinutesLeft:      17.5,
			ComputedAt:       computedAt,
		},
		{
			AssistantId:      "asst_def",
			PlanId:           "premium",
			TotalMinutesUsed: 900,
			MinutesLeft:      -1,
			ComputedAt:       computedAt,
		},
	}

	data, err := RenderCSV(snapshots)
	assert.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, "assistant_id,plan_id,total_minutes_used,minutes_left,computed_at", lines[0])
	assert.Equal(t, "asst_abc,starter,12.5000,17.5000,2025-03-01T12:00:00Z", lines[1])
	assert.Equal(t, "asst_def,premium,900.0000,-1.0000,2025-03-01T12:00:00Z", lines[2])
}

func TestRenderCSVEmpty(t *testing.T) {
	t.Parallel()

	data, err := RenderCSV(nil)
	assert.NoError(t, err)
	assert.Equal(t, "assistant_id,plan_id,total_minutes_used,minutes_left,computed_at\n", string(data))
}

func TestExportSinceRepositoryError(t *testing.T) {
	t.Parallel()

	mockUsage := &mocks.UsageRepository{}
	mockUsage.EXPECT().ListSnapshotsSince(mock.Anything).
		Return(nil, errors.New("db down")).Once()

	service := NewExportService(mockUsage, &models.Settings{Credentials: map[string]string{}})

	url, err := service.ExportSince(time.Now().Add(-24 * time.Hour))
	assert.Error(t, err)
	assert.Empty(t, url)
}
