package intake

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// FeatureRecord is a single-row table built from the collected inputs.
// Its columns are exactly the input keys at the time Finalize ran.
type FeatureRecord struct {
	columns []string
	values  []float64
}

// FieldValue is one field-name/value pair of a transposed record.
type FieldValue struct {
	Name  string
	Value float64
}

func newFeatureRecord(inputs Fields) FeatureRecord {
	columns := make([]string, 0, len(inputs))
	for name := range inputs {
		columns = append(columns, name)
	}
	slices.SortFunc(columns, compareColumns)

	values := make([]float64, len(columns))
	for i, name := range columns {
		values[i] = inputs[name]
	}
	return FeatureRecord{columns: columns, values: values}
}

// compareColumns orders catalog fields first, in catalog order, then any
// other key alphabetically.
func compareColumns(a, b string) int {
	pa, pb := catalogPosition(a), catalogPosition(b)
	switch {
	case pa >= 0 && pb >= 0:
		return pa - pb
	case pa >= 0:
		return -1
	case pb >= 0:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

// Len returns the number of rows: 1 for a finalized record, 0 for the zero value.
func (r FeatureRecord) Len() int {
	if len(r.columns) == 0 {
		return 0
	}
	return 1
}

// Columns returns the column names in display order.
func (r FeatureRecord) Columns() []string {
	return slices.Clone(r.columns)
}

// Value returns the value of a column.
func (r FeatureRecord) Value(name string) (float64, bool) {
	i := slices.Index(r.columns, name)
	if i < 0 {
		return 0, false
	}
	return r.values[i], true
}

// Row returns the single row as a map.
func (r FeatureRecord) Row() Fields {
	row := make(Fields, len(r.columns))
	for i, name := range r.columns {
		row[name] = r.values[i]
	}
	return row
}

// Transpose returns the record as field-name/value pairs, one per column.
func (r FeatureRecord) Transpose() []FieldValue {
	out := make([]FieldValue, len(r.columns))
	for i, name := range r.columns {
		out[i] = FieldValue{Name: name, Value: r.values[i]}
	}
	return out
}

// MarshalYAML renders the record as a mapping in column order.
func (r FeatureRecord) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for i, name := range r.columns {
		tag := "!!float"
		if isWhole(r.values[i]) {
			tag = "!!int"
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: FormatValue(r.values[i])},
		)
	}
	return node, nil
}

// FormatValue renders a stored value without trailing zeros.
func FormatValue(v float64) string {
	if isWhole(v) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func isWhole(v float64) bool {
	return v == math.Trunc(v) && !math.IsInf(v, 0) && math.Abs(v) < 1<<53
}
