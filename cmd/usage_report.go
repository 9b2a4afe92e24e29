package cmd

import (
	"context"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"

	"voicedesk.io/accounting/internal/usage"
	"voicedesk.io/accounting/repository"
)

type UsageReportJob struct {
	assistantRepository repository.AssistantRepository
	snapshots           *usage.SnapshotService
	callLogs            usage.CallLogFetcher
	logger              *logrus.Entry
}

func NewUsageReportJob(assistantRepository repository.AssistantRepository, snapshots *usage.SnapshotService, callLogs usage.CallLogFetcher) *UsageReportJob {
	return &UsageReportJob{
		assistantRepository: assistantRepository,
		snapshots:           snapshots,
		callLogs:            callLogs,
		logger:              logrus.WithField("component", "usage_report"),
	}
}

// cron tab to snapshot usage for every assistant
func (ur *UsageReportJob) UsageReport(ctx context.Context) error {
	records, err := ur.callLogs.FetchAll(ctx)
	if err != nil {
		ur.logger.Warn("could not fetch call logs, snapshots will show zero usage: " + err.Error())
		records = nil
	}

	assistants, err := ur.assistantRepository.ListAssistants()
	if err != nil {
		ur.logger.Error("error listing assistants: " + err.Error())
		return err
	}

	for _, assistant := range assistants {
		snapshot, err := ur.snapshots.ProcessAssistant(ctx, assistant, records)
		if err != nil {
			ur.logger.Error("error snapshotting assistant " + assistant.AssistantId + ": " + err.Error())
			continue
		}
		ur.logger.Info(fmt.Sprintf("assistant %s used %.2f minutes, %.2f left", snapshot.AssistantId, snapshot.TotalMinutesUsed, snapshot.MinutesLeft))
	}
	return nil
}
