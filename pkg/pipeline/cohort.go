// pkg/pipeline/cohort.go
package pipeline

import (
	"sort"
	"time"

	"github.com/David-Botos/consultant-insights/pkg/model"
)

// WeekStart returns midnight (UTC) of the Monday beginning the week that
// contains t's wall-clock date
func WeekStart(t time.Time) time.Time {
	y, m, d := t.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	offset := (int(day.Weekday()) + 6) % 7 // days since Monday
	return day.AddDate(0, 0, -offset)
}

// WeeklyCohorts counts candidates per creation week, ascending by week.
// Weeks without candidates are omitted, as are candidates with no creation
// time. The second result is the number of candidates skipped that way.
func WeeklyCohorts(candidates []model.Candidate) ([]model.WeeklyCohort, int) {
	counts := make(map[time.Time]int)
	skipped := 0

	for i := range candidates {
		if !candidates[i].CreatedAt.Valid {
			skipped++
			continue
		}
		counts[WeekStart(candidates[i].CreatedAt.Time)]++
	}

	result := make([]model.WeeklyCohort, 0, len(counts))
	for week, count := range counts {
		result = append(result, model.WeeklyCohort{WeekStart: week, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].WeekStart.Before(result[j].WeekStart)
	})

	return result, skipped
}
