package repository

import (
	"database/sql"
	"time"

	"github.com/pkg/errors"

	"voicedesk.io/accounting/models"
)

type UsageRepository interface {
	SaveSnapshot(snapshot *models.UsageSnapshot) error
	LatestSnapshot(assistantId string) (*models.UsageSnapshot, error)
	ListSnapshotsSince(since time.Time) ([]models.UsageSnapshot, error)
	DeleteSnapshotsBefore(cutoff time.Time) (int64, error)
	WasAlertSent(assistantId string, kind string, since time.Time) (bool, error)
	RecordAlert(assistantId string, kind string, sentAt time.Time) error
}

type UsageService struct {
	db *sql.DB
}

func NewUsageRepository(db *sql.DB) UsageRepository {
	return NewUsageService(db)
}

func NewUsageService(db *sql.DB) *UsageService {
	return &UsageService{
		db: db,
	}
}

func (us *UsageService) SaveSnapshot(snapshot *models.UsageSnapshot) error {
	stmt, err := us.db.Prepare("INSERT INTO usage_snapshots (`assistant_id`, `plan_id`, `total_minutes_used`, `minutes_left`, `computed_at`) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return errors.Wrap(err, "preparing snapshot insert")
	}
	defer stmt.Close()

	_, err = stmt.Exec(snapshot.AssistantId, snapshot.PlanId, snapshot.TotalMinutesUsed, snapshot.MinutesLeft, snapshot.ComputedAt)
	return errors.Wrap(err, "inserting snapshot")
}

func (us *UsageService) LatestSnapshot(assistantId string) (*models.UsageSnapshot, error) {
	row := us.db.QueryRow(
		"SELECT assistant_id, plan_id, total_minutes_used, minutes_left, computed_at FROM usage_snapshots WHERE assistant_id = ? ORDER BY computed_at DESC LIMIT 1",
		assistantId)

	var s models.UsageSnapshot
	err := row.Scan(&s.AssistantId, &s.PlanId, &s.TotalMinutesUsed, &s.MinutesLeft, &s.ComputedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (us *UsageService) ListSnapshotsSince(since time.Time) ([]models.UsageSnapshot, error) {
	rows, err := us.db.Query(
		"SELECT assistant_id, plan_id, total_minutes_used, minutes_left, computed_at FROM usage_snapshots WHERE computed_at >= ? ORDER BY computed_at",
		since)
	if err != nil {
		return nil, errors.Wrap(err, "listing snapshots")
	}
	defer rows.Close()

	var snapshots []models.UsageSnapshot
	for rows.Next() {
		var s models.UsageSnapshot
		if err := rows.Scan(&s.AssistantId, &s.PlanId, &s.TotalMinutesUsed, &s.MinutesLeft, &s.ComputedAt); err != nil {
			return nil, errors.Wrap(err, "scanning snapshot row")
		}
		snapshots = append(snapshots, s)
	}
	return snapshots, rows.Err()
}

func (us *UsageService) DeleteSnapshotsBefore(cutoff time.Time) (int64, error) {
	res, err := us.db.Exec("DELETE FROM usage_snapshots WHERE computed_at < ?", cutoff)
	if err != nil {
		return 0, errors.Wrap(err, "deleting old snapshots")
	}
	return res.RowsAffected()
}

func (us *UsageService) WasAlertSent(assistantId string, kind string, since time.Time) (bool, error) {
	row := us.db.QueryRow(
		"SELECT COUNT(*) FROM quota_alerts WHERE assistant_id = ? AND kind = ? AND sent_at >= ?",
		assistantId, kind, since)

	var count int
	if err := row.Scan(&count); err != nil {
		return false, errors.Wrap(err, "counting sent alerts")
	}
	return count > 0, nil
}

func (us *UsageService) RecordAlert(assistantId string, kind string, sentAt time.Time) error {
	_, err := us.db.Exec("INSERT INTO quota_alerts (`assistant_id`, `kind`, `sent_at`) VALUES (?, ?, ?)",
		assistantId, kind, sentAt)
	return errors.Wrap(err, "recording alert")
}
