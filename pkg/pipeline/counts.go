// pkg/pipeline/counts.go
package pipeline

import (
	"sort"

	"github.com/David-Botos/consultant-insights/pkg/model"
)

type keyCount struct {
	key   string
	count int
}

// countBy counts candidates per key. Result is ordered by descending count;
// ties keep the order in which keys first appeared.
func countBy(candidates []model.Candidate, key func(*model.Candidate) string) []keyCount {
	index := make(map[string]int)
	var counts []keyCount

	for i := range candidates {
		k := key(&candidates[i])
		if pos, ok := index[k]; ok {
			counts[pos].count++
			continue
		}
		index[k] = len(counts)
		counts = append(counts, keyCount{key: k, count: 1})
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].count > counts[j].count
	})
	return counts
}

// LocationCounts returns one row per distinct location. Candidates without a
// location are counted under "".
func LocationCounts(candidates []model.Candidate) []model.LocationCount {
	counts := countBy(candidates, func(c *model.Candidate) string { return c.Location })

	result := make([]model.LocationCount, len(counts))
	for i, kc := range counts {
		result[i] = model.LocationCount{Location: kc.key, Count: kc.count}
	}
	return result
}

// NationalityCounts returns one row per distinct nationality
func NationalityCounts(candidates []model.Candidate) []model.NationalityCount {
	counts := countBy(candidates, func(c *model.Candidate) string { return c.Nationality })

	result := make([]model.NationalityCount, len(counts))
	for i, kc := range counts {
		result[i] = model.NationalityCount{Nationality: kc.key, Count: kc.count}
	}
	return result
}
