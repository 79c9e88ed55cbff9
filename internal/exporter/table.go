package exporter

import (
	apperrors "odooseed/internal/errors"
)

// Kind identifies the scalar type held by a Value
type Kind int

const (
	KindBlank Kind = iota
	KindText
	KindInt
	KindFloat
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return "blank"
	}
}

// Value is one cell of a Record
type Value struct {
	kind Kind
	text string
	i    int64
	f    float64
}

// Text returns a text value. The empty string is a blank cell.
func Text(s string) Value {
	if s == "" {
		return Blank()
	}
	return Value{kind: KindText, text: s}
}

// Int returns an integer value
func Int(n int64) Value {
	return Value{kind: KindInt, i: n}
}

// Bool returns 1 or 0, the way import templates spell flags
func Bool(b bool) Value {
	if b {
		return Int(1)
	}
	return Int(0)
}

// Float returns a decimal value
func Float(f float64) Value {
	return Value{kind: KindFloat, f: f}
}

// Blank returns an empty cell
func Blank() Value {
	return Value{}
}

// Kind returns the value's kind
func (v Value) Kind() Kind {
	return v.kind
}

// IsBlank reports whether the cell is empty
func (v Value) IsBlank() bool {
	return v.kind == KindBlank
}

// String renders the canonical text form of the value
func (v Value) String() string {
	switch v.kind {
	case KindText:
		return v.text
	case KindInt:
		return formatInt(v.i)
	case KindFloat:
		return formatFloat(v.f)
	default:
		return ""
	}
}

// Interface returns the value as a native Go type for spreadsheet cells:
// nil, string, int64 or float64
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindText:
		return v.text
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	default:
		return nil
	}
}

// Record is one row's worth of positional field values
type Record []Value

// Strings renders every field with Value.String
func (r Record) Strings() []string {
	out := make([]string, len(r))
	for i, v := range r {
		out[i] = v.String()
	}
	return out
}

// Interfaces renders every field with Value.Interface
func (r Record) Interfaces() []interface{} {
	out := make([]interface{}, len(r))
	for i, v := range r {
		out[i] = v.Interface()
	}
	return out
}

// Table holds column names and ordered records. Position i of every record
// belongs to column i.
type Table struct {
	Columns []string
	Records []Record
}

// NewTable creates an empty table with the given header
func NewTable(columns ...string) *Table {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Table{Columns: cols}
}

// Append adds one record. It fails with a shape error when the field count
// does not match the column count.
func (t *Table) Append(values ...Value) error {
	if len(values) != len(t.Columns) {
		return apperrors.NewShapeError(len(t.Records), len(values), len(t.Columns))
	}
	rec := make(Record, len(values))
	copy(rec, values)
	t.Records = append(t.Records, rec)
	return nil
}

// Len returns the number of records, header excluded
func (t *Table) Len() int {
	return len(t.Records)
}

// Validate checks the header is present and every record matches it
func (t *Table) Validate() error {
	if t == nil || len(t.Columns) == 0 {
		return apperrors.NewAppValidationError("table has no columns")
	}
	for i, rec := range t.Records {
		if len(rec) != len(t.Columns) {
			return apperrors.NewShapeError(i, len(rec), len(t.Columns))
		}
	}
	return nil
}

// StringRows returns the header followed by every record rendered as text
func (t *Table) StringRows() [][]string {
	rows := make([][]string, 0, len(t.Records)+1)
	header := make([]string, len(t.Columns))
	copy(header, t.Columns)
	rows = append(rows, header)
	for _, rec := range t.Records {
		rows = append(rows, rec.Strings())
	}
	return rows
}
