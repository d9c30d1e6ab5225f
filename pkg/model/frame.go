// pkg/model/frame.go
package model

import "fmt"

// Row is one result tuple in the order the statement selected its columns
type Row []interface{}

// Frame is a tabular structure of rows bound to named columns
type Frame struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// Len returns the number of rows
func (f *Frame) Len() int {
	return len(f.Rows)
}

// ColumnIndex returns the position of name, or -1
func (f *Frame) ColumnIndex(name string) int {
	for i, col := range f.Columns {
		if col == name {
			return i
		}
	}
	return -1
}

// Column returns every value of the named column in row order
func (f *Frame) Column(name string) ([]interface{}, error) {
	idx := f.ColumnIndex(name)
	if idx < 0 {
		return nil, fmt.Errorf("column %q not in frame", name)
	}

	values := make([]interface{}, len(f.Rows))
	for i, row := range f.Rows {
		values[i] = row[idx]
	}
	return values, nil
}

// Value returns the cell at row i of the named column
func (f *Frame) Value(i int, name string) (interface{}, error) {
	idx := f.ColumnIndex(name)
	if idx < 0 {
		return nil, fmt.Errorf("column %q not in frame", name)
	}
	if i < 0 || i >= len(f.Rows) {
		return nil, fmt.Errorf("row %d out of range [0, %d)", i, len(f.Rows))
	}
	return f.Rows[i][idx], nil
}

// Records returns each row as a column-name keyed map
func (f *Frame) Records() []map[string]interface{} {
	records := make([]map[string]interface{}, len(f.Rows))
	for i, row := range f.Rows {
		record := make(map[string]interface{}, len(f.Columns))
		for j, col := range f.Columns {
			record[col] = row[j]
		}
		records[i] = record
	}
	return records
}
