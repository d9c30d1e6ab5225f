// pkg/model/columns.go
package model

import "strings"

// ColumnKind tells a rendering layer how to present a column
type ColumnKind string

const (
	ColumnText    ColumnKind = "text"
	ColumnNumeric ColumnKind = "numeric"
)

// ColumnSpec describes one column of the candidate table
type ColumnSpec struct {
	Name     string     `json:"name"`
	Kind     ColumnKind `json:"type"`
	Currency bool       `json:"currency"` // Formatted as money with two decimals
	Nullable bool       `json:"nullable"`
}

// Candidate column names, in query order
const (
	ColID             = "id"
	ColTitle          = "title"
	ColFirstName      = "first_name"
	ColLastName       = "last_name"
	ColLocation       = "location"
	ColSeniority      = "level_of_seniority"
	ColCreatedAt      = "created_at"
	ColRate           = "rate"
	ColRateOnsite     = "rate_onsite"
	ColPosition       = "position"
	ColNationality    = "nationality"
	ColSendRate       = "send_rate"
	ColSendRateOnsite = "send_rate_onsite"
	ColCVLink         = "cv_link"
	ColEmail          = "email"
	ColLinkedIn       = "linkedin"
	ColDescription    = "description"
)

// CandidateColumns is the fixed, ordered column list rows are bound against
var CandidateColumns = []ColumnSpec{
	{Name: ColID, Kind: ColumnNumeric},
	{Name: ColTitle, Kind: ColumnText},
	{Name: ColFirstName, Kind: ColumnText},
	{Name: ColLastName, Kind: ColumnText},
	{Name: ColLocation, Kind: ColumnText},
	{Name: ColSeniority, Kind: ColumnText},
	{Name: ColCreatedAt, Kind: ColumnText, Nullable: true}, // undated rows are skipped by cohorts
	{Name: ColRate, Kind: ColumnNumeric, Currency: true, Nullable: true},
	{Name: ColRateOnsite, Kind: ColumnNumeric, Currency: true, Nullable: true},
	{Name: ColPosition, Kind: ColumnText, Nullable: true}, // LEFT JOIN, may be NULL
	{Name: ColNationality, Kind: ColumnText},
	{Name: ColSendRate, Kind: ColumnNumeric, Currency: true, Nullable: true},
	{Name: ColSendRateOnsite, Kind: ColumnNumeric, Currency: true, Nullable: true},
	{Name: ColCVLink, Kind: ColumnText, Nullable: true},
	{Name: ColEmail, Kind: ColumnText, Nullable: true},
	{Name: ColLinkedIn, Kind: ColumnText, Nullable: true},
	{Name: ColDescription, Kind: ColumnText, Nullable: true},
}

// CandidateColumnNames returns the names of CandidateColumns in order
func CandidateColumnNames() []string {
	names := make([]string, len(CandidateColumns))
	for i, col := range CandidateColumns {
		names[i] = col.Name
	}
	return names
}

// columnSpecByName returns a column spec by name (case-insensitive).
// Returns nil if column not found
func columnSpecByName(name string) *ColumnSpec {
	for i := range CandidateColumns {
		if strings.EqualFold(CandidateColumns[i].Name, name) {
			return &CandidateColumns[i]
		}
	}
	return nil
}
