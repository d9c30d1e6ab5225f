package pipeline

import (
	"testing"

	"gonum.org/v1/gonum/floats"

	"github.com/David-Botos/consultant-insights/pkg/model"
)

func TestTitleStatistics(t *testing.T) {
	candidates := []model.Candidate{
		candidate("Engineer", "Berlin", "100", ""),
		candidate("Engineer", "Berlin", "100", ""),
		candidate("Engineer", "Berlin", "200", ""),
		candidate("Analyst", "Lisbon", "", ""),
		candidate("Designer", "Lisbon", "90.50", ""),
		candidate("Designer", "Lisbon", "", ""),
	}

	stats := TitleStatisticsByTitle(candidates)
	if len(stats) != 3 {
		t.Fatalf("len = %d, want 3", len(stats))
	}

	// ordered by title
	if stats[0].Title != "Analyst" || stats[1].Title != "Designer" || stats[2].Title != "Engineer" {
		t.Errorf("titles out of order: %v", stats)
	}

	analyst := stats[0]
	if analyst.TotalCandidates != 1 || analyst.MeanRate != nil || analyst.ModeRate != nil {
		t.Errorf("Analyst = %+v, want count 1 and nil rates", analyst)
	}

	designer := stats[1]
	if designer.TotalCandidates != 2 {
		t.Errorf("Designer count = %d, want 2", designer.TotalCandidates)
	}
	assertClose(t, *designer.MeanRate, 90.5, "Designer mean")
	assertClose(t, *designer.ModeRate, 90.5, "Designer mode")

	engineer := stats[2]
	if engineer.TotalCandidates != 3 {
		t.Errorf("Engineer count = %d, want 3", engineer.TotalCandidates)
	}
	assertClose(t, *engineer.MeanRate, 400.0/3, "Engineer mean")
	assertClose(t, *engineer.ModeRate, 100, "Engineer mode")
}

func TestSmallestMode(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{name: "single", values: []float64{42}, want: 42},
		{name: "clear winner", values: []float64{200, 100, 100}, want: 100},
		{name: "tie picks smallest", values: []float64{300, 200, 100, 200, 100}, want: 100},
		{name: "all distinct", values: []float64{5, 3, 9}, want: 3},
		{name: "later value more frequent", values: []float64{1, 7, 7, 7, 1}, want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := smallestMode(tt.values); got != tt.want {
				t.Errorf("smallestMode(%v) = %v, want %v", tt.values, got, tt.want)
			}
		})
	}
}

func TestTitleStatisticsBounds(t *testing.T) {
	var candidates []model.Candidate
	rates := []string{"80", "95.5", "120", "95.5", "60", "150"}
	for i, r := range rates {
		title := "Even"
		if i%2 == 1 {
			title = "Odd"
		}
		candidates = append(candidates, candidate(title, "X", r, ""))
	}

	for _, s := range TitleStatisticsByTitle(candidates) {
		var groupRates []float64
		for _, c := range candidates {
			if c.Title == s.Title {
				v, _ := c.RateFloat()
				groupRates = append(groupRates, v)
			}
		}

		if *s.MeanRate < floats.Min(groupRates) || *s.MeanRate > floats.Max(groupRates) {
			t.Errorf("%s mean %v outside [%v, %v]", s.Title, *s.MeanRate, floats.Min(groupRates), floats.Max(groupRates))
		}

		found := false
		for _, r := range groupRates {
			if r == *s.ModeRate {
				found = true
			}
		}
		if !found {
			t.Errorf("%s mode %v not an observed rate", s.Title, *s.ModeRate)
		}
	}
}
