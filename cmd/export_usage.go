package cmd

import (
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"

	"voicedesk.io/accounting/internal/storage"
)

type ExportUsageJob struct {
	exports *storage.ExportService
	window  time.Duration
	logger  *logrus.Entry
}

func NewExportUsageJob(exports *storage.ExportService, window time.Duration) *ExportUsageJob {
	return &ExportUsageJob{
		exports: exports,
		window:  window,
		logger:  logrus.WithField("component", "export_usage"),
	}
}

// cron tab to upload a CSV usage report covering the configured window
func (eu *ExportUsageJob) ExportUsage() error {
	since := time.Now().Add(-eu.window)

	url, err := eu.exports.ExportSince(since)
	if err != nil {
		eu.logger.Error("error exporting usage report: " + err.Error())
		return err
	}

	eu.logger.Info("usage report uploaded to " + url)
	return nil
}
