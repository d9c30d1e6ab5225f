// pkg/pipeline/bind.go
package pipeline

import (
	"fmt"

	"github.com/David-Botos/consultant-insights/pkg/converter"
	apperrors "github.com/David-Botos/consultant-insights/pkg/errors"
	"github.com/David-Botos/consultant-insights/pkg/model"
)

// Bind zips raw rows positionally with the candidate column list. Every row
// must have exactly one value per column.
func Bind(rows []model.Row) (*model.Frame, error) {
	return BindColumns(rows, model.CandidateColumnNames())
}

// BindColumns zips raw rows positionally with columns
func BindColumns(rows []model.Row, columns []string) (*model.Frame, error) {
	frame := &model.Frame{
		Columns: append([]string(nil), columns...),
		Rows:    make([]model.Row, len(rows)),
	}

	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, apperrors.DataShape(
				fmt.Sprintf("row %d has %d values, expected %d columns", i, len(row), len(columns)), nil)
		}

		bound := make(model.Row, len(row))
		for j, v := range row {
			bound[j] = converter.Normalize(v)
		}
		frame.Rows[i] = bound
	}

	return frame, nil
}
