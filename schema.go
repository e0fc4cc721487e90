package sqldump2csv

import (
	"fmt"
	"strings"
)

// Field names one output column and the zero-based position of its value
// in the flattened token list of a row group.
type Field struct {
	// Name is the output column name
	Name string
	// Index is the zero-based token position the value is taken from
	Index int
}

// Schema is an ordered list of fields. The order defines both the output
// column order and the header row of every output file.
type Schema []Field

// NewSchema validates fields and returns them as a Schema. A schema must
// have at least one field; names must be non-empty and unique, and indices
// must not be negative.
func NewSchema(fields []Field) (Schema, error) {
	if len(fields) == 0 {
		return nil, ErrEmptySchema
	}

	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		name := strings.TrimSpace(f.Name)
		if name == "" {
			return nil, ErrEmptyFieldName
		}
		if f.Index < 0 {
			return nil, fmt.Errorf("%w: %s", ErrNegativeFieldIndex, f.Name)
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateFieldName, f.Name)
		}
		seen[name] = true
	}

	schema := make(Schema, len(fields))
	copy(schema, fields)
	return schema, nil
}

// Header returns the field names in schema order.
func (s Schema) Header() []string {
	names := make([]string, len(s))
	for i, f := range s {
		names[i] = f.Name
	}
	return names
}
