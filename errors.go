package sqldump2csv

import "errors"

// Sentinel errors returned by this package. Wrap sites add detail with
// fmt.Errorf and %w so callers can still match with errors.Is.
var (
	// ErrEmptySchema indicates a schema with no fields
	ErrEmptySchema = errors.New("sqldump2csv: schema has no fields")

	// ErrEmptyFieldName indicates a schema field with an empty name
	ErrEmptyFieldName = errors.New("sqldump2csv: field name is empty")

	// ErrNegativeFieldIndex indicates a schema field with a negative index
	ErrNegativeFieldIndex = errors.New("sqldump2csv: field index is negative")

	// ErrDuplicateFieldName indicates two schema fields sharing a name
	ErrDuplicateFieldName = errors.New("sqldump2csv: duplicate field name")

	// ErrNoValuesClause indicates a statement without a VALUES clause
	ErrNoValuesClause = errors.New("sqldump2csv: statement has no VALUES clause")

	// ErrMalformedValueList indicates a value list that is not parenthesized
	ErrMalformedValueList = errors.New("sqldump2csv: value list is not parenthesized")

	// ErrUnbalancedParens indicates a row group with stray parentheses
	ErrUnbalancedParens = errors.New("sqldump2csv: unbalanced parentheses in value list")

	// ErrInvalidRowsPerFile indicates a non-positive per-file row threshold
	ErrInvalidRowsPerFile = errors.New("sqldump2csv: rows per file must be positive")

	// ErrEmptyFilePrefix indicates an empty output file prefix
	ErrEmptyFilePrefix = errors.New("sqldump2csv: output file prefix is empty")

	// ErrWriterClosed indicates a write after Close
	ErrWriterClosed = errors.New("sqldump2csv: writer is closed")
)
