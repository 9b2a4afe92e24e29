package cmd

import (
	"context"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"

	"voicedesk.io/accounting/handlers/alerts"
	"voicedesk.io/accounting/internal/plans"
	"voicedesk.io/accounting/internal/quota"
	"voicedesk.io/accounting/models"
	"voicedesk.io/accounting/repository"
)

// lowMinutesThreshold is the fraction of the plan quota below which a
// low-minutes alert fires.
const lowMinutesThreshold = 0.20

type QuotaAlertsJob struct {
	assistantRepository repository.AssistantRepository
	usageRepository     repository.UsageRepository
	registry            *plans.Registry
	resolver            *quota.Resolver
	handlers            []alerts.AlertHandler
	logger              *logrus.Entry
}

func NewQuotaAlertsJob(
	assistantRepository repository.AssistantRepository,
	usageRepository repository.UsageRepository,
	registry *plans.Registry,
	resolver *quota.Resolver,
	handlers []alerts.AlertHandler,
) *QuotaAlertsJob {
	return &QuotaAlertsJob{
		assistantRepository: assistantRepository,
		usageRepository:     usageRepository,
		registry:            registry,
		resolver:            resolver,
		handlers:            handlers,
		logger:              logrus.WithField("component", "quota_alerts"),
	}
}

// cron tab to alert owners whose assistants are low on minutes. Each alert
// kind fires at most once per billing period per assistant.
func (qa *QuotaAlertsJob) QuotaAlerts(ctx context.Context) error {
	assistants, err := qa.assistantRepository.ListAssistants()
	if err != nil {
		qa.logger.Error("error listing assistants: " + err.Error())
		return err
	}

	now := time.Now().UTC()
	periodStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	for _, assistant := range assistants {
		plan := qa.registry.GetPlanById(assistant.PlanId)
		if plan.Unlimited() {
			continue
		}

		left := qa.resolver.MinutesLeft(ctx, assistant.PlanId, assistant.AssistantId, nil)

		var kind string
		switch {
		case left <= 0:
			kind = models.AlertKindMinutesExhausted
		case left < float64(plan.CallMinutes)*lowMinutesThreshold:
			kind = models.AlertKindLowMinutes
		default:
			continue
		}

		sent, err := qa.usageRepository.WasAlertSent(assistant.AssistantId, kind, periodStart)
		if err != nil {
			qa.logger.Error("error checking alert history for " + assistant.AssistantId + ": " + err.Error())
			continue
		}
		if sent {
			continue
		}

		alert := qa.buildAlert(&assistant, kind, left)

		delivered := false
		for _, handler := range qa.handlers {
			if err := handler.SendAlert(&assistant, alert); err != nil {
				qa.logger.Error("could not deliver alert for " + assistant.AssistantId + ": " + err.Error())
				continue
			}
			delivered = true
		}
		if !delivered {
			continue
		}

		if err := qa.usageRepository.RecordAlert(assistant.AssistantId, kind, now); err != nil {
			qa.logger.Error("error recording alert for " + assistant.AssistantId + ": " + err.Error())
		}
	}
	return nil
}

func (qa *QuotaAlertsJob) buildAlert(assistant *models.Assistant, kind string, minutesLeft float64) *models.QuotaAlert {
	subject := "Your assistant is running low on minutes"
	if kind == models.AlertKindMinutesExhausted {
		subject = "Your assistant is out of minutes"
	}

	return &models.QuotaAlert{
		AssistantId: assistant.AssistantId,
		PlanId:      assistant.PlanId,
		Kind:        kind,
		MinutesLeft: minutesLeft,
		Subject:     subject,
		To:          assistant.OwnerEmail,
		Args: map[string]string{
			"assistant_name": assistant.Name,
			"minutes_left":   fmt.Sprintf("%.0f", minutesLeft),
			"plan":           assistant.PlanId,
		},
	}
}
