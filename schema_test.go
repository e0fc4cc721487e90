package sqldump2csv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSchema(t *testing.T) {
	t.Parallel()

	t.Run("Valid schema", func(t *testing.T) {
		t.Parallel()

		fields := []Field{
			{Name: "LOGIN", Index: 2},
			{Name: "EMAIL", Index: 8},
			{Name: "TIMESTAMP_X", Index: 1},
		}
		schema, err := NewSchema(fields)

		require.NoError(t, err)
		assert.Len(t, schema, 3, "Schema length mismatch")

		for i, expected := range fields {
			assert.Equal(t, expected, schema[i], "Schema field mismatch at index %d", i)
		}
	})

	t.Run("Schema is a copy of the input", func(t *testing.T) {
		t.Parallel()

		fields := []Field{{Name: "LOGIN", Index: 2}}
		schema, err := NewSchema(fields)
		require.NoError(t, err)

		fields[0].Name = "CHANGED"
		assert.Equal(t, "LOGIN", schema[0].Name, "Schema should not alias the input slice")
	})

	tests := []struct {
		name    string
		fields  []Field
		wantErr error
	}{
		{
			name:    "Empty schema",
			fields:  []Field{},
			wantErr: ErrEmptySchema,
		},
		{
			name:    "Nil schema",
			fields:  nil,
			wantErr: ErrEmptySchema,
		},
		{
			name:    "Empty field name",
			fields:  []Field{{Name: "", Index: 0}},
			wantErr: ErrEmptyFieldName,
		},
		{
			name:    "Whitespace-only field name",
			fields:  []Field{{Name: "   ", Index: 0}},
			wantErr: ErrEmptyFieldName,
		},
		{
			name:    "Negative field index",
			fields:  []Field{{Name: "LOGIN", Index: -1}},
			wantErr: ErrNegativeFieldIndex,
		},
		{
			name: "Duplicate field name",
			fields: []Field{
				{Name: "LOGIN", Index: 2},
				{Name: "LOGIN", Index: 3},
			},
			wantErr: ErrDuplicateFieldName,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewSchema(tt.fields)
			assert.ErrorIs(t, err, tt.wantErr, "NewSchema() error mismatch")
		})
	}
}

func TestSchema_Header(t *testing.T) {
	t.Parallel()

	t.Run("Header follows field order", func(t *testing.T) {
		t.Parallel()

		schema, err := NewSchema([]Field{
			{Name: "LOGIN", Index: 2},
			{Name: "TIMESTAMP_X", Index: 1},
			{Name: "EMAIL", Index: 8},
		})
		require.NoError(t, err)

		assert.Equal(t, []string{"LOGIN", "TIMESTAMP_X", "EMAIL"}, schema.Header())
	})

	t.Run("Empty schema yields empty header", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, Schema{}.Header())
	})
}
