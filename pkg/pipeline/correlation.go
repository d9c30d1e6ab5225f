// pkg/pipeline/correlation.go
package pipeline

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/David-Botos/consultant-insights/pkg/model"
)

// Correlation variable names
const (
	VarRate            = "rate"
	VarPositionEncoded = "position_encoded"
	VarLocationEncoded = "location_encoded"
)

// series is one numeric column with per-row presence
type series struct {
	values []float64
	valid  []bool
}

// Correlation computes the Pearson matrix over rate and the encoded position
// and location. Each pair uses the rows where both values are present.
func Correlation(candidates []model.Candidate) model.CorrelationMatrix {
	rate := series{
		values: make([]float64, len(candidates)),
		valid:  make([]bool, len(candidates)),
	}
	positions := make([]string, len(candidates))
	locations := make([]string, len(candidates))

	for i := range candidates {
		rate.values[i], rate.valid[i] = candidates[i].RateFloat()
		positions[i] = candidates[i].Position
		locations[i] = candidates[i].Location
	}

	vars := []string{VarRate, VarPositionEncoded, VarLocationEncoded}
	cols := []series{rate, encode(positions), encode(locations)}

	values := make([][]float64, len(cols))
	for i := range values {
		values[i] = make([]float64, len(cols))
		values[i][i] = 1
	}
	for i := 0; i < len(cols); i++ {
		for j := i + 1; j < len(cols); j++ {
			r := pairwisePearson(cols[i], cols[j])
			values[i][j] = r
			values[j][i] = r
		}
	}

	return model.CorrelationMatrix{Variables: vars, Values: values}
}

// encode assigns each distinct value its index in sorted order. The mapping
// lives only for the duration of one correlation computation.
func encode(values []string) series {
	distinct := make(map[string]struct{}, len(values))
	for _, v := range values {
		distinct[v] = struct{}{}
	}

	keys := make([]string, 0, len(distinct))
	for k := range distinct {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	codes := make(map[string]float64, len(keys))
	for i, k := range keys {
		codes[k] = float64(i)
	}

	s := series{
		values: make([]float64, len(values)),
		valid:  make([]bool, len(values)),
	}
	for i, v := range values {
		s.values[i] = codes[v]
		s.valid[i] = true
	}
	return s
}

// pairwisePearson returns NaN with fewer than two complete pairs or when
// either side is constant
func pairwisePearson(a, b series) float64 {
	var xs, ys []float64
	for i := range a.values {
		if a.valid[i] && b.valid[i] {
			xs = append(xs, a.values[i])
			ys = append(ys, b.values[i])
		}
	}

	if len(xs) < 2 || constant(xs) || constant(ys) {
		return math.NaN()
	}

	r := stat.Correlation(xs, ys, nil)
	return math.Max(-1, math.Min(1, r))
}

func constant(x []float64) bool {
	return floats.Min(x) == floats.Max(x)
}
