package usecase

import (
	"encoding/json"
	"errors"
	"testing"

	drepo "EconWatch/internal/domain/repository"
)

func rec(country, date, value string) drepo.SourceRecord {
	r := drepo.SourceRecord{Country: country, Date: date}
	if value != "" {
		r.Value = json.RawMessage(value)
	}
	return r
}

func TestNormalizeRowCountAndValues(t *testing.T) {
	records := []drepo.SourceRecord{
		rec("USA", "2020", "123.4"),
		rec("USA", "2019", `"456.7"`),
		rec("CHN", "2020", "89"),
	}

	table, err := Normalize(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(table.Rows) != len(records) {
		t.Fatalf("expected %d rows, got %d", len(records), len(table.Rows))
	}
	if table.Rows[0].Value != 123.4 || table.Rows[0].Missing {
		t.Fatalf("unexpected row 0: %+v", table.Rows[0])
	}
	// numeric strings coerce like numbers
	if table.Rows[1].Value != 456.7 || table.Rows[1].Missing {
		t.Fatalf("unexpected row 1: %+v", table.Rows[1])
	}
	if table.Rows[1].Year != 2019 {
		t.Fatalf("unexpected year %d", table.Rows[1].Year)
	}
}

func TestNormalizeNonNumericValueIsMissing(t *testing.T) {
	records := []drepo.SourceRecord{
		rec("USA", "2020", "1.0"),
		rec("USA", "2019", `"unavailable"`),
		rec("USA", "2018", "null"),
		rec("USA", "2017", ""),
	}

	table, err := Normalize(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if table.Rows[0].Missing {
		t.Fatalf("row 0 should not be missing")
	}
	for i := 1; i < 4; i++ {
		if !table.Rows[i].Missing {
			t.Fatalf("row %d should be missing", i)
		}
	}
}

func TestNormalizeMalformedYearIsFatal(t *testing.T) {
	records := []drepo.SourceRecord{
		rec("USA", "2020", "1.0"),
		rec("USA", "twenty-nineteen", "2.0"),
	}

	_, err := Normalize(records)
	if !errors.Is(err, ErrMalformedYear) {
		t.Fatalf("expected ErrMalformedYear, got %v", err)
	}
}

func TestNormalizePreservesOrderAndDuplicates(t *testing.T) {
	records := []drepo.SourceRecord{
		rec("CHN", "2020", "1"),
		rec("USA", "2020", "2"),
		rec("CHN", "2019", "3"),
		rec("CHN", "2020", "4"), // duplicate (country, year) passes through
	}

	table, err := Normalize(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(table.Rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(table.Rows))
	}
	want := []string{"CHN", "USA", "CHN", "CHN"}
	for i, w := range want {
		if table.Rows[i].Country != w {
			t.Fatalf("row %d: expected %s, got %s", i, w, table.Rows[i].Country)
		}
	}
}
