package usage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"voicedesk.io/accounting/internal/quota"
	"voicedesk.io/accounting/models"
	"voicedesk.io/accounting/repository"
)

// CallLogFetcher retrieves call records from the external log store.
type CallLogFetcher interface {
	FetchAll(ctx context.Context) ([]models.CallRecord, error)
}

// SnapshotService computes and persists usage snapshots for assistants.
// The latest snapshot per assistant is additionally cached in redis for the
// dashboard when a client is configured.
type SnapshotService struct {
	assistantRepository repository.AssistantRepository
	usageRepository     repository.UsageRepository
	callLogs            CallLogFetcher
	resolver            *quota.Resolver
	rdb                 *redis.Client
	cacheTTL            time.Duration
	logger              *logrus.Entry
}

func NewSnapshotService(
	assistantRepository repository.AssistantRepository,
	usageRepository repository.UsageRepository,
	callLogs CallLogFetcher,
	resolver *quota.Resolver,
	rdb *redis.Client,
) *SnapshotService {
	return &SnapshotService{
		assistantRepository: assistantRepository,
		usageRepository:     usageRepository,
		callLogs:            callLogs,
		resolver:            resolver,
		rdb:                 rdb,
		cacheTTL:            2 * time.Hour,
		logger:              logrus.WithField("component", "usage_snapshot"),
	}
}

// ProcessAssistant aggregates one assistant's minutes from the given
// record set, resolves the remaining quota and persists the snapshot.
func (s *SnapshotService) ProcessAssistant(ctx context.Context, assistant models.Assistant, records []models.CallRecord) (*models.UsageSnapshot, error) {
	own := FilterByAssistant(records, assistant.AssistantId)
	used := TotalMinutes(own)
	left := s.resolver.MinutesLeft(ctx, assistant.PlanId, assistant.AssistantId, &used)

	snapshot := &models.UsageSnapshot{
		AssistantId:      assistant.AssistantId,
		PlanId:           assistant.PlanId,
		TotalMinutesUsed: used,
		MinutesLeft:      left,
		ComputedAt:       time.Now().UTC(),
	}

	if err := s.usageRepository.SaveSnapshot(snapshot); err != nil {
		return nil, errors.Wrapf(err, "saving snapshot for assistant %s", assistant.AssistantId)
	}

	s.cacheSnapshot(ctx, snapshot)
	return snapshot, nil
}

// ProcessTask handles one queued usage task: load the assistant, fetch the
// call logs and snapshot the result. Call-log fetch failures degrade to an
// empty record set; usage is best-effort and must not wedge the queue.
func (s *SnapshotService) ProcessTask(ctx context.Context, task models.UsageTask) error {
	assistant, err := s.assistantRepository.GetAssistant(task.AssistantRowID)
	if err != nil {
		return errors.Wrapf(err, "loading assistant %d", task.AssistantRowID)
	}

	records, err := s.callLogs.FetchAll(ctx)
	if err != nil {
		s.logger.Warn("call log fetch failed, snapshotting with no records: " + err.Error())
		records = nil
	}

	_, err = s.ProcessAssistant(ctx, *assistant, records)
	return err
}

func (s *SnapshotService) cacheSnapshot(ctx context.Context, snapshot *models.UsageSnapshot) {
	if s.rdb == nil {
		return
	}
	b, err := json.Marshal(snapshot)
	if err != nil {
		return
	}
	key := fmt.Sprintf("usage:latest:%s", snapshot.AssistantId)
	if err := s.rdb.Set(ctx, key, b, s.cacheTTL).Err(); err != nil {
		s.logger.Warn("could not cache snapshot: " + err.Error())
	}
}
