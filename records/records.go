// Package records parses the NBA Stats API's tabular resultSets encoding.
//
// Most endpoints on stats.nba.com return tables as parallel arrays:
//
//	{
//	    "resultSets": [
//	        {
//	            "name": "Standings",
//	            "headers": ["TeamID", "TeamName", "WINS"],
//	            "rowSet": [
//	                [1610612760, "Thunder", 36],
//	                [1610612765, "Pistons", 31]
//	            ]
//	        }
//	    ]
//	}
//
// A handful of endpoints use a singular "resultSet" object instead, and the
// newer v3 endpoints return ordinary nested JSON with no resultSets at all.
// IsTabular is the discriminant; the Parse functions reshape the positional
// rows into Records keyed by header so per-endpoint decoders never deal with
// column indices.
package records

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Record is one row of a result set, keyed by column header.
type Record map[string]any

// Table mirrors one entry of the upstream resultSets array.
type Table struct {
	Name    string   `json:"name"`
	Headers []string `json:"headers"`
	RowSet  [][]any  `json:"rowSet"`
}

type tabularBody struct {
	ResultSets []Table `json:"resultSets"`
	ResultSet  *Table  `json:"resultSet"`
}

// ErrNotTabular reports a body that is not in either resultSets encoding.
// Endpoint decoders hit this when the API serves the nested v3 shape where
// the legacy shape was expected, which is a contract break, not bad luck.
var ErrNotTabular = errors.New("records: body is not in resultSets format")

// RowLengthError reports a row whose value count does not match its table's
// header count. The zip would silently drop or invent columns otherwise.
type RowLengthError struct {
	Table   string
	Row     int
	Headers int
	Values  int
}

func (e *RowLengthError) Error() string {
	return fmt.Sprintf("records: table %q row %d has %d values for %d headers", e.Table, e.Row, e.Values, e.Headers)
}

// MissingTableError reports a declared table name absent from the response.
type MissingTableError struct {
	Table     string
	Available []string
}

func (e *MissingTableError) Error() string {
	return fmt.Sprintf("records: no result set named %q, available: %v", e.Table, e.Available)
}

// IsTabular reports whether data is a JSON object carrying a "resultSets"
// or "resultSet" key. Anything else, including the nested v3 encoding and
// non-object bodies, is not tabular.
func IsTabular(data []byte) bool {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return false
	}
	if _, ok := probe["resultSets"]; ok {
		return true
	}
	_, ok := probe["resultSet"]
	return ok
}

func decode(data []byte) (*tabularBody, error) {
	if !IsTabular(data) {
		return nil, ErrNotTabular
	}
	var body tabularBody
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, fmt.Errorf("records: %w", err)
	}
	return &body, nil
}

func zip(t *Table) ([]Record, error) {
	rows := make([]Record, len(t.RowSet))
	for i, row := range t.RowSet {
		if len(row) != len(t.Headers) {
			return nil, &RowLengthError{Table: t.Name, Row: i, Headers: len(t.Headers), Values: len(row)}
		}
		rec := make(Record, len(t.Headers))
		for j, h := range t.Headers {
			rec[h] = row[j]
		}
		rows[i] = rec
	}
	return rows, nil
}

func names(tables []Table) []string {
	out := make([]string, len(tables))
	for i, t := range tables {
		out[i] = t.Name
	}
	return out
}

// ParseTable returns the records of the result set whose name equals name.
// Matching is exact and case-sensitive: the upstream names carry inconsistent
// casing and the occasional typo, and those must be reproduced verbatim.
// An absent table yields an empty slice, because some endpoints omit empty
// tables entirely rather than sending an empty rowSet.
func ParseTable(data []byte, name string) ([]Record, error) {
	body, err := decode(data)
	if err != nil {
		return nil, err
	}
	for i := range body.ResultSets {
		if body.ResultSets[i].Name == name {
			return zip(&body.ResultSets[i])
		}
	}
	return []Record{}, nil
}

// ParseSingleTable parses the singular "resultSet" variant.
func ParseSingleTable(data []byte) ([]Record, error) {
	body, err := decode(data)
	if err != nil {
		return nil, err
	}
	if body.ResultSet == nil {
		return nil, &MissingTableError{Table: "resultSet", Available: names(body.ResultSets)}
	}
	return zip(body.ResultSet)
}

// ParseFirstRow returns the first record of the named table, or nil when the
// table is absent or empty. Intended for tables that are semantically a
// single aggregate row.
func ParseFirstRow(data []byte, name string) (Record, error) {
	rows, err := ParseTable(data, name)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// TableSpec names one table of a multi-table response and the output field
// it populates. Single marks tables whose payload is one aggregate row.
type TableSpec struct {
	Field  string
	Table  string
	Single bool
}

// ParseNamedTables parses the declared tables out of one response. A declared
// table that is missing is a hard error unless ignoreMissing is set: a table
// that is legitimately empty arrives as an empty rowSet, so a missing name
// usually means the API changed shape underneath us. Single-row tables are
// truncated to at most one record; callers read index 0 when present.
func ParseNamedTables(data []byte, specs []TableSpec, ignoreMissing bool) (map[string][]Record, error) {
	body, err := decode(data)
	if err != nil {
		return nil, err
	}
	out := make(map[string][]Record, len(specs))
	for _, spec := range specs {
		var table *Table
		for i := range body.ResultSets {
			if body.ResultSets[i].Name == spec.Table {
				table = &body.ResultSets[i]
				break
			}
		}
		if table == nil {
			if ignoreMissing {
				out[spec.Field] = []Record{}
				continue
			}
			return nil, &MissingTableError{Table: spec.Table, Available: names(body.ResultSets)}
		}
		rows, err := zip(table)
		if err != nil {
			return nil, err
		}
		if spec.Single && len(rows) > 1 {
			rows = rows[:1]
		}
		out[spec.Field] = rows
	}
	return out, nil
}

// Value returns a pointer to the record's value for key when it holds a T,
// nil otherwise. JSON numbers arrive as float64, so numeric columns read as
// Value[float64] even when the upstream documents them as integers.
func Value[T any](r Record, key string) *T {
	if v, ok := r[key].(T); ok {
		return &v
	}
	return nil
}
