package storage

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/pkg/errors"

	"voicedesk.io/accounting/models"
	"voicedesk.io/accounting/repository"
)

// ExportService renders usage snapshots to CSV and uploads the report to S3.
type ExportService struct {
	usageRepository repository.UsageRepository
	settings        *models.Settings
}

func NewExportService(usageRepository repository.UsageRepository, settings *models.Settings) *ExportService {
	return &ExportService{
		usageRepository: usageRepository,
		settings:        settings,
	}
}

// ExportSince uploads a CSV of all snapshots computed at or after the given
// time and returns the uploaded object's URL.
func (s *ExportService) ExportSince(since time.Time) (string, error) {
	snapshots, err := s.usageRepository.ListSnapshotsSince(since)
	if err != nil {
		return "", errors.Wrap(err, "loading snapshots for export")
	}

	data, err := RenderCSV(snapshots)
	if err != nil {
		return "", err
	}

	filename := fmt.Sprintf("usage-%s.csv", time.Now().UTC().Format("20060102T150405"))
	return s.uploadToS3(data, filename)
}

// RenderCSV serializes snapshots as a CSV document with a header row.
func RenderCSV(snapshots []models.UsageSnapshot) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"assistant_id", "plan_id", "total_minutes_used", "minutes_left", "computed_at"}); err != nil {
		return nil, errors.Wrap(err, "writing csv header")
	}
	for _, snapshot := range snapshots {
		record := []string{
			snapshot.AssistantId,
			snapshot.PlanId,
			strconv.FormatFloat(snapshot.TotalMinutesUsed, 'f', 4, 64),
			strconv.FormatFloat(snapshot.MinutesLeft, 'f', 4, 64),
			snapshot.ComputedAt.UTC().Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return nil, errors.Wrap(err, "writing csv row")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, errors.Wrap(err, "flushing csv")
	}
	return buf.Bytes(), nil
}

func (s *ExportService) uploadToS3(data []byte, filename string) (string, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(s.settings.GetAWSRegion()),
		Credentials: credentials.NewStaticCredentials(
			s.settings.Credentials["aws_access_key_id"],
			s.settings.Credentials["aws_secret_access_key"], ""),
	})
	if err != nil {
		return "", errors.Wrap(err, "creating aws session")
	}

	uploader := s3manager.NewUploader(sess)
	result, err := uploader.Upload(&s3manager.UploadInput{
		Bucket: aws.String(s.settings.GetS3Bucket()),
		Key:    aws.String("usage-reports/" + filename),
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		return "", errors.Wrap(err, "uploading usage report")
	}
	return result.Location, nil
}
