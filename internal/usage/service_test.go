package usage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"voicedesk.io/accounting/internal/plans"
	"voicedesk.io/accounting/internal/quota"
	"voicedesk.io/accounting/mocks"
	"voicedesk.io/accounting/models"
)

func snapshotTestResolver() *quota.Resolver {
	return quota.NewResolver(plans.NewRegistry(), nil)
}

func TestSnapshotServiceProcessAssistant(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	assistant := models.Assistant{
		Id:          7,
		AssistantId: "asst_abc",
		PlanId:      "starter",
	}

	records := []models.CallRecord{
		{AssistantId: "asst_abc", Duration: "4min 30sec"},
		{AssistantId: "asst_abc", Duration: "90s"},
		{AssistantId: "asst_other", Duration: "200min"},
	}

	t.Run("Should aggregate only the assistant's records and persist", func(t *testing.T) {
		t.Parallel()

		mockAssistants := &mocks.AssistantRepository{}
		mockUsage := &mocks.UsageRepository{}
		mockLogs := &mocks.CallLogFetcher{}

		var saved *models.UsageSnapshot
		mockUsage.EXPECT().SaveSnapshot(mock.Anything).
			Run(func(snapshot *models.UsageSnapshot) {
				saved = snapshot
			}).
			Return(nil).Once()

		service := NewSnapshotService(mockAssistants, mockUsage, mockLogs, snapshotTestResolver(), nil)

		snapshot, err := service.ProcessAssistant(ctx, assistant, records)
		assert.NoError(t, err)
		assert.Equal(t, "asst_abc", snapshot.AssistantId)
		assert.Equal(t, "starter", snapshot.PlanId)
		assert.InDelta(t, 6.0, snapshot.TotalMinutesUsed, 0.0001)
		assert.InDelta(t, 24.0, snapshot.MinutesLeft, 0.0001)
		assert.Equal(t, saved, snapshot)
	})

	t.Run("Should surface the repository error", func(t *testing.T) {
		t.Parallel()

		mockAssistants := &mocks.AssistantRepository{}
		mockUsage := &mocks.UsageRepository{}
		mockLogs := &mocks.CallLogFetcher{}

		mockUsage.EXPECT().SaveSnapshot(mock.Anything).
			Return(errors.New("db down")).Once()

		service := NewSnapshotService(mockAssistants, mockUsage, mockLogs, snapshotTestResolver(), nil)

		snapshot, err := service.ProcessAssistant(ctx, assistant, records)
		assert.Error(t, err)
		assert.Nil(t, snapshot)
	})
}

func TestSnapshotServiceProcessTask(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	task := models.UsageTask{
		AssistantRowID: 7,
		AssistantId:    "asst_abc",
		PlanId:         "starter",
	}

	assistant := &models.Assistant{
		Id:          7,
		AssistantId: "asst_abc",
		PlanId:      "starter",
	}

	t.Run("Should load the assistant, fetch logs and snapshot", func(t *testing.T) {
		t.Parallel()

		mockAssistants := &mocks.AssistantRepository{}
		mockUsage := &mocks.UsageRepository{}
		mockLogs := &mocks.CallLogFetcher{}

		mockAssistants.EXPECT().GetAssistant(7).Return(assistant, nil).Once()
		mockLogs.EXPECT().FetchAll(mock.Anything).Return([]models.CallRecord{
			{AssistantId: "asst_abc", Duration: "10min"},
		}, nil).Once()

		var saved *models.UsageSnapshot
		mockUsage.EXPECT().SaveSnapshot(mock.Anything).
			Run(func(snapshot *models.UsageSnapshot) {
				saved = snapshot
			}).
			Return(nil).Once()

		service := NewSnapshotService(mockAssistants, mockUsage, mockLogs, snapshotTestResolver(), nil)

		assert.NoError(t, service.ProcessTask(ctx, task))
		assert.InDelta(t, 10.0, saved.TotalMinutesUsed, 0.0001)
		assert.InDelta(t, 20.0, saved.MinutesLeft, 0.0001)
	})

	t.Run("Should snapshot zero usage when the log fetch fails", func(t *testing.T) {
		t.Parallel()

		mockAssistants := &mocks.AssistantRepository{}
		mockUsage := &mocks.UsageRepository{}
		mockLogs := &mocks.CallLogFetcher{}

		mockAssistants.EXPECT().GetAssistant(7).Return(assistant, nil).Once()
		mockLogs.EXPECT().FetchAll(mock.Anything).Return(nil, errors.New("log store unreachable")).Once()

		var saved *models.UsageSnapshot
		mockUsage.EXPECT().SaveSnapshot(mock.Anything).
			Run(func(snapshot *models.UsageSnapshot) {
				saved = snapshot
			}).
			Return(nil).Once()

		service := NewSnapshotService(mockAssistants, mockUsage, mockLogs, snapshotTestResolver(), nil)

		assert.NoError(t, service.ProcessTask(ctx, task))
		assert.InDelta(t, 0.0, saved.TotalMinutesUsed, 0.0001)
		assert.InDelta(t, 30.0, saved.MinutesLeft, 0.0001)
	})

	t.Run("Should fail when the assistant is unknown", func(t *testing.T) {
		t.Parallel()

		mockAssistants := &mocks.AssistantRepository{}
		mockUsage := &mocks.UsageRepository{}
		mockLogs := &mocks.CallLogFetcher{}

		mockAssistants.EXPECT().GetAssistant(99).Return(nil, errors.New("not found")).Once()

		service := NewSnapshotService(mockAssistants, mockUsage, mockLogs, snapshotTestResolver(), nil)

		err := service.ProcessTask(ctx, models.UsageTask{AssistantRowID: 99})
		assert.Error(t, err)
	})
}
