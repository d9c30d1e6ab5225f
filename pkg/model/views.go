// pkg/model/views.go
package model

import (
	"math"
	"time"

	"github.com/goccy/go-json"
)

// LocationCount is the number of candidates at one location
type LocationCount struct {
	Location string `json:"location"`
	Count    int    `json:"count"`
}

// NationalityCount is the number of candidates of one nationality
type NationalityCount struct {
	Nationality string `json:"nationality"`
	Count       int    `json:"count"`
}

// TitleStatistics summarises the candidates sharing a title.
// MeanRate and ModeRate are nil when no candidate in the group has a rate.
type TitleStatistics struct {
	Title           string   `json:"title"`
	TotalCandidates int      `json:"total_number_candidates"`
	MeanRate        *float64 `json:"mean_rate"`
	ModeRate        *float64 `json:"mode_rate"`
}

// WeeklyCohort counts the candidates created in the week starting WeekStart (a Monday)
type WeeklyCohort struct {
	WeekStart time.Time `json:"week"`
	Count     int       `json:"candidates_added"`
}

// ScatterPoint places one rated candidate by rate and location
type ScatterPoint struct {
	Rate        float64 `json:"rate"`
	Location    string  `json:"location"`
	Position    string  `json:"position"`
	Nationality string  `json:"nationality"`
}

// CorrelationMatrix holds Pearson coefficients between Variables.
// Values[i][j] is the coefficient of Variables[i] and Variables[j]; cells
// that cannot be computed are NaN.
type CorrelationMatrix struct {
	Variables []string    `json:"variables"`
	Values    [][]float64 `json:"values"`
}

// At returns the coefficient for the named pair
func (m CorrelationMatrix) At(a, b string) (float64, bool) {
	i, j := -1, -1
	for k, v := range m.Variables {
		if v == a {
			i = k
		}
		if v == b {
			j = k
		}
	}
	if i < 0 || j < 0 {
		return math.NaN(), false
	}
	return m.Values[i][j], true
}

// MarshalJSON writes NaN cells as null
func (m CorrelationMatrix) MarshalJSON() ([]byte, error) {
	values := make([][]*float64, len(m.Values))
	for i, row := range m.Values {
		values[i] = make([]*float64, len(row))
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			v := v
			values[i][j] = &v
		}
	}

	return json.Marshal(struct {
		Variables []string     `json:"variables"`
		Values    [][]*float64 `json:"values"`
	}{
		Variables: m.Variables,
		Values:    values,
	})
}
