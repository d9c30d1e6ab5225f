// pkg/pipeline/stats.go
package pipeline

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/David-Botos/consultant-insights/pkg/model"
)

// TitleStatisticsByTitle groups candidates by title, ordered by title
func TitleStatisticsByTitle(candidates []model.Candidate) []model.TitleStatistics {
	type group struct {
		count int
		rates []float64
	}

	groups := make(map[string]*group)
	for i := range candidates {
		c := &candidates[i]
		g, ok := groups[c.Title]
		if !ok {
			g = &group{}
			groups[c.Title] = g
		}
		g.count++
		if rate, ok := c.RateFloat(); ok {
			g.rates = append(g.rates, rate)
		}
	}

	titles := make([]string, 0, len(groups))
	for title := range groups {
		titles = append(titles, title)
	}
	sort.Strings(titles)

	result := make([]model.TitleStatistics, len(titles))
	for i, title := range titles {
		g := groups[title]
		row := model.TitleStatistics{Title: title, TotalCandidates: g.count}
		if len(g.rates) > 0 {
			mean := stat.Mean(g.rates, nil)
			row.MeanRate = &mean
			mode := smallestMode(g.rates)
			row.ModeRate = &mode
		}
		result[i] = row
	}
	return result
}

// smallestMode returns the most frequent value of a non-empty slice; among
// equally frequent values the smallest wins.
func smallestMode(values []float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	best, bestCount := sorted[0], 0
	for i := 0; i < len(sorted); {
		j := i
		for j < len(sorted) && sorted[j] == sorted[i] {
			j++
		}
		// strictly greater keeps the earlier, smaller value on ties
		if j-i > bestCount {
			best, bestCount = sorted[i], j-i
		}
		i = j
	}
	return best
}
