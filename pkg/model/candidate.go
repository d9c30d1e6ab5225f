// pkg/model/candidate.go
package model

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// Candidate is one recruiting candidate as read from the store. NULL text
// columns decode to the empty string.
type Candidate struct {
	ID             int64
	Title          string
	FirstName      string
	LastName       string
	Location       string
	Seniority      string
	CreatedAt      sql.NullTime
	Rate           decimal.NullDecimal
	RateOnsite     decimal.NullDecimal
	Position       string
	Nationality    string
	SendRate       decimal.NullDecimal
	SendRateOnsite decimal.NullDecimal
	CVLink         string
	Email          string
	LinkedIn       string
	Description    string
}

// RateFloat returns the rate as a float and whether it was set
func (c *Candidate) RateFloat() (float64, bool) {
	if !c.Rate.Valid {
		return 0, false
	}
	return c.Rate.Decimal.InexactFloat64(), true
}
