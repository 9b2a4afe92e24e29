package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"voicedesk.io/accounting/models"
)

func TestAssistantService(t *testing.T) {
	t.Parallel()

	t.Run("Should insert an assistant and backfill the row id", func(t *testing.T) {
		t.Parallel()

		db, mockSql, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mockSql.ExpectPrepare("INSERT INTO assistants").
			ExpectExec().
			WithArgs("asst_1", "Riverside Landscaping", "Hello!", "prompt", "jennifer", "en-US", 0.7, "starter", "owner@example.com", false).
			WillReturnResult(sqlmock.NewResult(42, 1))

		svc := NewAssistantService(db)
		assistant := &models.Assistant{
			AssistantId:  "asst_1",
			Name:         "Riverside Landscaping",
			FirstMessage: "Hello!",
			SystemPrompt: "prompt",
			VoiceId:      "jennifer",
			Language:     "en-US",
			Temperature:  0.7,
			PlanId:       "starter",
			OwnerEmail:   "owner@example.com",
		}
		assert.NoError(t, svc.CreateAssistant(assistant))
		assert.Equal(t, 42, assistant.Id)
		assert.NoError(t, mockSql.ExpectationsWereMet())
	})

	t.Run("Should list assistants", func(t *testing.T) {
		t.Parallel()

		db, mockSql, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		rows := sqlmock.NewRows([]string{"id", "assistant_id", "name", "first_message", "system_prompt", "voice_id", "language", "temperature", "plan_id", "owner_email", "published"}).
			AddRow(1, "asst_1", "A", "hi", "p", "jennifer", "en-US", 0.7, "starter", "a@example.com", false).
			AddRow(2, "asst_2", "B", "hi", "p", "will", "en-US", 0.7, "premium", "b@example.com", true)

		mockSql.ExpectQuery("SELECT (.+) FROM assistants").WillReturnRows(rows)

		svc := NewAssistantService(db)
		assistants, err := svc.ListAssistants()
		assert.NoError(t, err)
		assert.Len(t, assistants, 2)
		assert.Equal(t, "asst_2", assistants[1].AssistantId)
		assert.True(t, assistants[1].Published)
	})
}

func TestUsageService(t *testing.T) {
	t.Parallel()

	t.Run("Should save a snapshot", func(t *testing.T) {
		t.Parallel()

		db, mockSql, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		computedAt := time.Now()
		mockSql.ExpectPrepare("INSERT INTO usage_snapshots").
			ExpectExec().
			WithArgs("asst_1", "starter", 12.5, 17.5, computedAt).
			WillReturnResult(sqlmock.NewResult(1, 1))

		svc := NewUsageService(db)
		err = svc.SaveSnapshot(&models.UsageSnapshot{
			AssistantId:      "asst_1",
			PlanId:           "starter",
			TotalMinutesUsed: 12.5,
			MinutesLeft:      17.5,
			ComputedAt:       computedAt,
		})
		assert.NoError(t, err)
		assert.NoError(t, mockSql.ExpectationsWereMet())
	})

	t.Run("Should report whether an alert was already sent", func(t *testing.T) {
		t.Parallel()

		db, mockSql, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mockSql.ExpectQuery("SELECT COUNT\\(\\*\\) FROM quota_alerts").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		svc := NewUsageService(db)
		sent, err := svc.WasAlertSent("asst_1", models.AlertKindLowMinutes, time.Now().AddDate(0, 0, -30))
		assert.NoError(t, err)
		assert.True(t, sent)
	})

	t.Run("Should delete old snapshots", func(t *testing.T) {
		t.Parallel()

		db, mockSql, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mockSql.ExpectExec("DELETE FROM usage_snapshots").
			WillReturnResult(sqlmock.NewResult(0, 7))

		svc := NewUsageService(db)
		deleted, err := svc.DeleteSnapshotsBefore(time.Now().AddDate(0, -3, 0))
		assert.NoError(t, err)
		assert.Equal(t, int64(7), deleted)
	})
}
