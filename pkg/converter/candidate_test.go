package converter

import (
	"testing"
	"time"

	apperrors "github.com/David-Botos/consultant-insights/pkg/errors"
	"github.com/David-Botos/consultant-insights/pkg/model"
)

func candidateRow() model.Row {
	return model.Row{
		int64(1), "Backend Engineer", "Ada", "Lovelace", "Berlin", "Senior",
		"2024-01-02 10:30:00", []byte("100.00"), nil, "Developer",
		"British", "110.00", nil, nil, "ada@example.com", nil, nil,
	}
}

func TestDecodeCandidate(t *testing.T) {
	c := newTestConverter()
	frame := &model.Frame{Columns: model.CandidateColumnNames(), Rows: []model.Row{candidateRow()}}

	candidates, err := c.DecodeCandidates(frame)
	if err != nil {
		t.Fatalf("DecodeCandidates() error = %v", err)
	}
	if len(candidates) != 1 {
		t.Fatalf("len = %d, want 1", len(candidates))
	}

	got := candidates[0]
	if got.ID != 1 || got.Title != "Backend Engineer" || got.Location != "Berlin" || got.Position != "Developer" {
		t.Errorf("unexpected candidate: %+v", got)
	}
	if rate, ok := got.RateFloat(); !ok || rate != 100 {
		t.Errorf("Rate = %v, %v", rate, ok)
	}
	if got.RateOnsite.Valid {
		t.Error("RateOnsite should be NULL")
	}
	if !got.SendRate.Valid || got.SendRate.Decimal.String() != "110" {
		t.Errorf("SendRate = %+v", got.SendRate)
	}
	want := time.Date(2024, 1, 2, 10, 30, 0, 0, time.UTC)
	if !got.CreatedAt.Valid || !got.CreatedAt.Time.Equal(want) {
		t.Errorf("CreatedAt = %+v", got.CreatedAt)
	}
	if got.LinkedIn != "" || got.Email != "ada@example.com" {
		t.Errorf("text columns = %q, %q", got.LinkedIn, got.Email)
	}
}

func TestDecodeCandidateBadValue(t *testing.T) {
	c := newTestConverter()
	row := candidateRow()
	row[7] = "a lot"
	frame := &model.Frame{Columns: model.CandidateColumnNames(), Rows: []model.Row{row}}

	_, err := c.DecodeCandidates(frame)
	if !apperrors.Is(err, apperrors.KindDataShape) {
		t.Fatalf("DecodeCandidates() error = %v, want DataShapeError", err)
	}
}

func TestDecodeCandidateMissingColumn(t *testing.T) {
	c := newTestConverter()
	frame := &model.Frame{Columns: []string{"id"}, Rows: []model.Row{{int64(1)}}}

	_, err := c.DecodeCandidate(frame, 0)
	if !apperrors.Is(err, apperrors.KindDataShape) {
		t.Fatalf("DecodeCandidate() error = %v, want DataShapeError", err)
	}
}
