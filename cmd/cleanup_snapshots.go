package cmd

import (
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"

	"voicedesk.io/accounting/repository"
)

type CleanupSnapshotsJob struct {
	usageRepository repository.UsageRepository
	retention       time.Duration
	logger          *logrus.Entry
}

func NewCleanupSnapshotsJob(usageRepository repository.UsageRepository, retention time.Duration) *CleanupSnapshotsJob {
	return &CleanupSnapshotsJob{
		usageRepository: usageRepository,
		retention:       retention,
		logger:          logrus.WithField("component", "cleanup_snapshots"),
	}
}

// remove any snapshots older than the retention period
func (cs *CleanupSnapshotsJob) CleanupSnapshots() error {
	cutoff := time.Now().Add(-cs.retention)

	deleted, err := cs.usageRepository.DeleteSnapshotsBefore(cutoff)
	if err != nil {
		cs.logger.Error("error occurred removing old snapshots: " + err.Error())
		return err
	}

	cs.logger.Info(fmt.Sprintf("removed %d snapshots older than %s", deleted, cutoff.Format(time.DateTime)))
	return nil
}
