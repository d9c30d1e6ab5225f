package model

import (
	"math"
	"testing"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

func TestCorrelationMatrixMarshalJSON(t *testing.T) {
	m := CorrelationMatrix{
		Variables: []string{"a", "b"},
		Values: [][]float64{
			{1, math.NaN()},
			{math.NaN(), 1},
		},
	}

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	want := `{"variables":["a","b"],"values":[[1,null],[null,1]]}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}

func TestCorrelationMatrixAt(t *testing.T) {
	m := CorrelationMatrix{
		Variables: []string{"a", "b"},
		Values:    [][]float64{{1, 0.5}, {0.5, 1}},
	}

	if v, ok := m.At("a", "b"); !ok || v != 0.5 {
		t.Errorf("At(a, b) = %v, %v", v, ok)
	}
	if _, ok := m.At("a", "z"); ok {
		t.Error("At(a, z) ok = true, want false")
	}
}

func TestCandidateRateFloat(t *testing.T) {
	c := Candidate{Rate: decimal.NewNullDecimal(decimal.RequireFromString("87.50"))}
	if v, ok := c.RateFloat(); !ok || v != 87.5 {
		t.Errorf("RateFloat() = %v, %v", v, ok)
	}

	var unset Candidate
	if _, ok := unset.RateFloat(); ok {
		t.Error("RateFloat() ok = true for NULL rate")
	}
}
