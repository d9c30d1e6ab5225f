// pkg/converter/candidate.go
package converter

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	apperrors "github.com/David-Botos/consultant-insights/pkg/errors"
	"github.com/David-Botos/consultant-insights/pkg/model"
)

// DecodeCandidates converts every row of a bound candidate frame
func (c *TypeConverter) DecodeCandidates(frame *model.Frame) ([]model.Candidate, error) {
	candidates := make([]model.Candidate, 0, frame.Len())
	for i := range frame.Rows {
		candidate, err := c.DecodeCandidate(frame, i)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, candidate)
	}

	c.logger.Debug("Decoded candidates", zap.Int("count", len(candidates)))
	return candidates, nil
}

// DecodeCandidate converts row i of a bound candidate frame
func (c *TypeConverter) DecodeCandidate(frame *model.Frame, i int) (model.Candidate, error) {
	d := rowDecoder{c: c, frame: frame, row: i}

	candidate := model.Candidate{
		ID:             d.integer(model.ColID),
		Title:          d.text(model.ColTitle),
		FirstName:      d.text(model.ColFirstName),
		LastName:       d.text(model.ColLastName),
		Location:       d.text(model.ColLocation),
		Seniority:      d.text(model.ColSeniority),
		Rate:           d.currency(model.ColRate),
		RateOnsite:     d.currency(model.ColRateOnsite),
		Position:       d.text(model.ColPosition),
		Nationality:    d.text(model.ColNationality),
		SendRate:       d.currency(model.ColSendRate),
		SendRateOnsite: d.currency(model.ColSendRateOnsite),
		CVLink:         d.text(model.ColCVLink),
		Email:          d.text(model.ColEmail),
		LinkedIn:       d.text(model.ColLinkedIn),
		Description:    d.text(model.ColDescription),
	}
	candidate.CreatedAt.Time, candidate.CreatedAt.Valid = d.timestamp(model.ColCreatedAt)

	if d.err != nil {
		return model.Candidate{}, d.err
	}
	return candidate, nil
}

// rowDecoder keeps the first conversion failure of a row
type rowDecoder struct {
	c     *TypeConverter
	frame *model.Frame
	row   int
	err   error
}

func (d *rowDecoder) value(col string) (interface{}, bool) {
	if d.err != nil {
		return nil, false
	}
	v, err := d.frame.Value(d.row, col)
	if err != nil {
		d.err = apperrors.DataShape(fmt.Sprintf("row %d", d.row), err)
		return nil, false
	}
	return v, true
}

func (d *rowDecoder) fail(col string, err error) {
	d.err = apperrors.DataShape(fmt.Sprintf("row %d column %s", d.row, col), err)
}

func (d *rowDecoder) text(col string) string {
	v, ok := d.value(col)
	if !ok {
		return ""
	}
	return d.c.ToText(v)
}

func (d *rowDecoder) integer(col string) int64 {
	v, ok := d.value(col)
	if !ok {
		return 0
	}
	n, err := d.c.ToInt(v)
	if err != nil {
		d.fail(col, err)
	}
	return n
}

func (d *rowDecoder) currency(col string) decimal.NullDecimal {
	v, ok := d.value(col)
	if !ok {
		return decimal.NullDecimal{}
	}
	n, err := d.c.ToDecimal(v)
	if err != nil {
		d.fail(col, err)
	}
	return n
}

func (d *rowDecoder) timestamp(col string) (time.Time, bool) {
	v, ok := d.value(col)
	if !ok {
		return time.Time{}, false
	}
	t, valid, err := d.c.ToTime(v)
	if err != nil {
		d.fail(col, err)
	}
	return t, valid
}
