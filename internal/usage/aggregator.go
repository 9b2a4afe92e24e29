package usage

import (
	"math"

	"voicedesk.io/accounting/models"
)

// TotalMinutes sums the parsed durations of every record in the list. No
// deduplication and no filtering by ended reason: every record contributes
// once regardless of call outcome.
func TotalMinutes(records []models.CallRecord) float64 {
	total := 0.0
	for _, record := range records {
		total += ParseDuration(record.Duration)
	}
	return total
}

// WholeMinutes floors the aggregate to whole minutes. Internal accounting
// keeps the fractional total; this exists for display surfaces that show
// whole minutes only.
func WholeMinutes(records []models.CallRecord) int {
	return int(math.Floor(TotalMinutes(records)))
}

// FilterByAssistant keeps the records attributed to one assistant identity.
// Matching here is exact; fuzzy identifier matching only exists in the
// analytics fetcher. A blank id matches nothing: an assistant row without a
// provider id must not absorb the whole call log.
func FilterByAssistant(records []models.CallRecord, assistantId string) []models.CallRecord {
	if assistantId == "" {
		return nil
	}
	filtered := make([]models.CallRecord, 0, len(records))
	for _, record := range records {
		if record.AssistantId == assistantId {
			filtered = append(filtered, record)
		}
	}
	return filtered
}
