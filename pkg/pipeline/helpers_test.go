package pipeline

import (
	"database/sql"
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/David-Botos/consultant-insights/pkg/model"
)

// candidate builds a record; an empty rate means NULL and an empty created
// value means no creation time
func candidate(title, location, rate, created string) model.Candidate {
	c := model.Candidate{Title: title, Location: location}
	if rate != "" {
		c.Rate = decimal.NewNullDecimal(decimal.RequireFromString(rate))
	}
	if created != "" {
		ts, err := time.Parse("2006-01-02 15:04", created)
		if err != nil {
			panic(err)
		}
		c.CreatedAt = sql.NullTime{Time: ts, Valid: true}
	}
	return c
}

func assertClose(t *testing.T, got, want float64, what string) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("%s = %v, want %v", what, got, want)
	}
}

func rawRow(id int64, title, location string, rate interface{}, created string, position, nationality string) model.Row {
	return model.Row{
		id, title, "First", "Last", location, "Senior",
		created, rate, nil, position,
		nationality, nil, nil, nil, nil, nil, nil,
	}
}
