// pkg/pipeline/scatter.go
package pipeline

import "github.com/David-Botos/consultant-insights/pkg/model"

// ScatterPoints returns one point per candidate that has a rate, in input order
func ScatterPoints(candidates []model.Candidate) []model.ScatterPoint {
	points := make([]model.ScatterPoint, 0, len(candidates))
	for i := range candidates {
		c := &candidates[i]
		rate, ok := c.RateFloat()
		if !ok {
			continue
		}
		points = append(points, model.ScatterPoint{
			Rate:        rate,
			Location:    c.Location,
			Position:    c.Position,
			Nationality: c.Nationality,
		})
	}
	return points
}
