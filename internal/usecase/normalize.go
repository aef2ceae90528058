package usecase

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"EconWatch/internal/domain/models"
	drepo "EconWatch/internal/domain/repository"
)

// ErrMalformedYear marks a record whose date field is not a parseable year.
// The whole batch fails: the source emits years uniformly, so one bad date
// means the payload shape is off, not a single bad row.
var ErrMalformedYear = errors.New("normalize: malformed year field")

// Normalize converts raw source records into a rectangular observation
// table. Year coercion errors abort the batch; a missing or non-numeric
// value only marks that row as missing. Source order is preserved, no
// dedup.
func Normalize(records []drepo.SourceRecord) (models.ObservationTable, error) {
	rows := make([]models.Observation, 0, len(records))
	for i, rec := range records {
		year, err := strconv.Atoi(strings.TrimSpace(rec.Date))
		if err != nil {
			return models.ObservationTable{}, fmt.Errorf("%w: record %d date %q", ErrMalformedYear, i, rec.Date)
		}

		value, missing := coerceValue(rec.Value)
		rows = append(rows, models.Observation{
			Country: rec.Country,
			Year:    year,
			Value:   value,
			Missing: missing,
		})
	}
	return models.ObservationTable{Rows: rows}, nil
}

// coerceValue turns the raw value field into a float64, accepting numbers
// and numeric strings. Absent, null, or non-numeric values become missing.
func coerceValue(raw json.RawMessage) (float64, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, true
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f, false
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return f, false
		}
	}
	return 0, true
}
