package exporter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "odooseed/internal/errors"
)

func TestValue(t *testing.T) {
	tests := []struct {
		name      string
		value     Value
		kind      Kind
		text      string
		native    interface{}
		wantBlank bool
	}{
		{name: "text", value: Text("Lima"), kind: KindText, text: "Lima", native: "Lima"},
		{name: "empty text is blank", value: Text(""), kind: KindBlank, text: "", native: nil, wantBlank: true},
		{name: "blank", value: Blank(), kind: KindBlank, text: "", native: nil, wantBlank: true},
		{name: "int", value: Int(9999999999999), kind: KindInt, text: "9999999999999", native: int64(9999999999999)},
		{name: "bool true", value: Bool(true), kind: KindInt, text: "1", native: int64(1)},
		{name: "bool false", value: Bool(false), kind: KindInt, text: "0", native: int64(0)},
		{name: "float", value: Float(3.5), kind: KindFloat, text: "3.5", native: 3.5},
		{name: "whole float", value: Float(10.0), kind: KindFloat, text: "10", native: 10.0},
		{name: "small float", value: Float(0.05), kind: KindFloat, text: "0.05", native: 0.05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.value.Kind())
			assert.Equal(t, tt.text, tt.value.String())
			assert.Equal(t, tt.native, tt.value.Interface())
			assert.Equal(t, tt.wantBlank, tt.value.IsBlank())
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "blank", KindBlank.String())
	assert.Equal(t, "text", KindText.String())
	assert.Equal(t, "int", KindInt.String())
	assert.Equal(t, "float", KindFloat.String())
}

func TestTable_Append(t *testing.T) {
	table := NewTable("a", "b", "c")

	require.NoError(t, table.Append(Text("x"), Int(1), Float(1.5)))
	require.NoError(t, table.Append(Blank(), Blank(), Blank()))
	assert.Equal(t, 2, table.Len())

	err := table.Append(Text("short"))
	require.Error(t, err)
	assert.True(t, apperrors.IsShapeError(err))
	assert.Equal(t, 2, table.Len(), "rejected record must not be stored")
}

func TestTable_AppendCopiesValues(t *testing.T) {
	table := NewTable("a")
	values := []Value{Text("before")}
	require.NoError(t, table.Append(values...))

	values[0] = Text("after")
	assert.Equal(t, "before", table.Records[0][0].String())
}

func TestNewTable_CopiesColumns(t *testing.T) {
	columns := []string{"a", "b"}
	table := NewTable(columns...)
	columns[0] = "changed"
	assert.Equal(t, []string{"a", "b"}, table.Columns)
}

func TestTable_Validate(t *testing.T) {
	tests := []struct {
		name      string
		table     *Table
		wantErr   bool
		wantShape bool
	}{
		{
			name:  "valid table",
			table: &Table{Columns: []string{"a", "b"}, Records: []Record{{Text("1"), Text("2")}}},
		},
		{
			name:  "header only",
			table: NewTable("a"),
		},
		{
			name:    "nil table",
			table:   nil,
			wantErr: true,
		},
		{
			name:    "no columns",
			table:   &Table{},
			wantErr: true,
		},
		{
			name: "record too long",
			table: &Table{
				Columns: []string{"a"},
				Records: []Record{{Text("1")}, {Text("1"), Text("2")}},
			},
			wantErr:   true,
			wantShape: true,
		},
		{
			name: "record too short",
			table: &Table{
				Columns: []string{"a", "b"},
				Records: []Record{{}},
			},
			wantErr:   true,
			wantShape: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.table.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantShape, apperrors.IsShapeError(err))
		})
	}
}

func TestTable_StringRows(t *testing.T) {
	table := NewTable("name", "is_company", "price")
	require.NoError(t, table.Append(Text("Empresa 10"), Bool(true), Float(3.5)))
	require.NoError(t, table.Append(Text("Ana"), Bool(false), Blank()))

	assert.Equal(t, [][]string{
		{"name", "is_company", "price"},
		{"Empresa 10", "1", "3.5"},
		{"Ana", "0", ""},
	}, table.StringRows())
}
