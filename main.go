package main

import (
	"context"
	"os"
	"strconv"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"

	"voicedesk.io/accounting/cmd"
	"voicedesk.io/accounting/handlers/alerts"
	"voicedesk.io/accounting/internal/calllog"
	"voicedesk.io/accounting/internal/plans"
	"voicedesk.io/accounting/internal/quota"
	"voicedesk.io/accounting/internal/storage"
	"voicedesk.io/accounting/internal/usage"
	"voicedesk.io/accounting/internal/voiceapi"
	"voicedesk.io/accounting/repository"
	"voicedesk.io/accounting/utils"
)

const alertRetryAttempts = 3

func main() {
	logDestination := utils.Config("LOG_DESTINATIONS")
	utils.InitLogrus(logDestination)

	args := os.Args[1:]
	if len(args) == 0 {
		utils.Log(logrus.InfoLevel, "Please provide command")
		return
	}

	ctx := context.Background()
	command := args[0]
	switch command {
	case "usage_report":
		utils.Log(logrus.InfoLevel, "running usage snapshot routines")

		db, err := utils.GetDBConnection()
		if err != nil {
			utils.Log(logrus.ErrorLevel, err.Error())
			return
		}
		assistantRepo := repository.NewAssistantRepository(db)
		usageRepo := repository.NewUsageRepository(db)
		logClient := calllog.NewClient(utils.Config("CALLLOG_API_URL"), utils.Config("CALLLOG_API_KEY"))
		snapshots := usage.NewSnapshotService(assistantRepo, usageRepo, logClient, newResolver(), nil)

		job := cmd.NewUsageReportJob(assistantRepo, snapshots, logClient)
		err = job.UsageReport(ctx)
		if err != nil {
			utils.Log(logrus.ErrorLevel, err.Error())
		}
	case "quota_alerts":
		utils.Log(logrus.InfoLevel, "running quota alert routines")

		db, err := utils.GetDBConnection()
		if err != nil {
			utils.Log(logrus.ErrorLevel, err.Error())
			return
		}
		assistantRepo := repository.NewAssistantRepository(db)
		usageRepo := repository.NewUsageRepository(db)
		registry := newRegistry()
		voiceClient := voiceapi.NewClient(utils.Config("VOICEAPI_URL"), utils.Config("VOICEAPI_PRIVATE_KEY"))
		resolver := quota.NewResolver(registry, voiceClient)

		job := cmd.NewQuotaAlertsJob(assistantRepo, usageRepo, registry, resolver, alertHandlers())
		err = job.QuotaAlerts(ctx)
		if err != nil {
			utils.Log(logrus.ErrorLevel, err.Error())
		}
	case "export_usage":
		utils.Log(logrus.InfoLevel, "exporting usage report")

		db, err := utils.GetDBConnection()
		if err != nil {
			utils.Log(logrus.ErrorLevel, err.Error())
			return
		}
		settings, err := utils.GetSettingsFromAPI()
		if err != nil {
			utils.Log(logrus.ErrorLevel, err.Error())
			return
		}
		exports := storage.NewExportService(repository.NewUsageRepository(db), settings)

		job := cmd.NewExportUsageJob(exports, exportWindow())
		err = job.ExportUsage()
		if err != nil {
			utils.Log(logrus.ErrorLevel, err.Error())
		}
	case "cleanup_snapshots":
		utils.Log(logrus.InfoLevel, "removing old snapshots")

		db, err := utils.GetDBConnection()
		if err != nil {
			utils.Log(logrus.ErrorLevel, err.Error())
			return
		}

		job := cmd.NewCleanupSnapshotsJob(repository.NewUsageRepository(db), snapshotRetention())
		err = job.CleanupSnapshots()
		if err != nil {
			utils.Log(logrus.ErrorLevel, err.Error())
		}
	default:
		utils.Log(logrus.InfoLevel, "unknown command: "+command)
	}
}

func newRegistry() *plans.Registry {
	registry := plans.NewRegistry()
	if stripeKey := utils.Config("STRIPE_KEY"); stripeKey != "" {
		registry.HydratePrices(stripeKey)
	}
	return registry
}

func newResolver() *quota.Resolver {
	voiceClient := voiceapi.NewClient(utils.Config("VOICEAPI_URL"), utils.Config("VOICEAPI_PRIVATE_KEY"))
	return quota.NewResolver(newRegistry(), voiceClient)
}

func alertHandlers() []alerts.AlertHandler {
	var handlers []alerts.AlertHandler
	if domain := utils.Config("MAILGUN_DOMAIN"); domain != "" {
		handlers = append(handlers, alerts.NewMailgunAlertHandler(
			domain,
			utils.Config("MAILGUN_API_KEY"),
			utils.Config("ALERT_SENDER"),
			alertRetryAttempts))
	}
	if url := utils.Config("ALERT_WEBHOOK_URL"); url != "" {
		handlers = append(handlers, alerts.NewWebhookAlertHandler(
			url,
			utils.Config("ALERT_WEBHOOK_KEY"),
			alertRetryAttempts))
	}
	return handlers
}

func exportWindow() time.Duration {
	days := 30
	if v := utils.Config("EXPORT_WINDOW_DAYS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			days = parsed
		}
	}
	return time.Duration(days) * 24 * time.Hour
}

func snapshotRetention() time.Duration {
	days := 90
	if v := utils.Config("SNAPSHOT_RETENTION_DAYS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			days = parsed
		}
	}
	return time.Duration(days) * 24 * time.Hour
}
