package sqldump2csv

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// valuesIntroducer separates a statement head from its value list.
	valuesIntroducer = " VALUES "
	// nullMarker is the token text that maps to an empty output value.
	nullMarker = "NULL"
)

var (
	// rowGroupBoundary matches the separator between two row groups:
	// a closing parenthesis, a comma, optional whitespace, an opening
	// parenthesis.
	rowGroupBoundary = regexp.MustCompile(`\),\s*\(`)

	// valueToken matches one raw value in textual order: a single-quoted
	// string (contents captured; embedded escaped quotes are not handled),
	// the null marker, or a bare digit run. This matching is a heuristic,
	// not a grammar, and is kept permissive on purpose.
	valueToken = regexp.MustCompile(`(?:'([^']*)'|NULL|\d+)`)

	// quotedSpan matches a complete single-quoted string. Used to exclude
	// quoted text from the parenthesis balance check.
	quotedSpan = regexp.MustCompile(`'[^']*'`)
)

// Extractor turns logical INSERT statements into output rows for one schema.
type Extractor struct {
	schema Schema
}

// NewExtractor creates an Extractor for the given schema.
func NewExtractor(schema Schema) *Extractor {
	return &Extractor{schema: schema}
}

// Rows extracts one output row per row group in the statement, in schema
// order. It is all-or-nothing: if the value list cannot be parsed, no rows
// are returned and the error describes the first problem found.
func (e *Extractor) Rows(statement string) ([][]string, error) {
	values, err := valuesClause(statement)
	if err != nil {
		return nil, err
	}

	groups, err := splitRowGroups(values)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(groups))
	for _, group := range groups {
		rows = append(rows, e.mapRow(tokenize(group)))
	}
	return rows, nil
}

// valuesClause returns the text between the statement's VALUES keyword and
// its terminator, with the outermost parenthesis pair removed. Exactly one
// leading and one trailing parenthesis are stripped.
func valuesClause(statement string) (string, error) {
	_, values, found := strings.Cut(statement, valuesIntroducer)
	if !found {
		return "", ErrNoValuesClause
	}

	values = strings.TrimSpace(values)
	values = strings.TrimSuffix(values, statementTerminator)
	values = strings.TrimSpace(values)

	if !strings.HasPrefix(values, "(") || !strings.HasSuffix(values, ")") {
		return "", ErrMalformedValueList
	}
	return values[1 : len(values)-1], nil
}

// splitRowGroups splits a value list into row-group fragments on the
// group boundary pattern. The split runs on raw text, so a boundary inside
// a quoted string still splits; that limitation is preserved. A fragment
// with parentheses left outside quoted spans means the list was not a flat
// sequence of tuples, and the whole statement is rejected.
func splitRowGroups(values string) ([]string, error) {
	groups := rowGroupBoundary.Split(values, -1)
	for i, group := range groups {
		bare := quotedSpan.ReplaceAllString(group, "")
		if strings.ContainsAny(bare, "()") {
			return nil, fmt.Errorf("%w (row group %d)", ErrUnbalancedParens, i+1)
		}
	}
	return groups, nil
}

// tokenize extracts the raw value tokens of one row group in textual
// order. Quoted matches yield their contents; NULL and digit matches yield
// the matched text.
func tokenize(group string) []string {
	matches := valueToken.FindAllStringSubmatch(group, -1)
	tokens := make([]string, len(matches))
	for i, m := range matches {
		if strings.HasPrefix(m[0], "'") {
			tokens[i] = m[1]
		} else {
			tokens[i] = m[0]
		}
	}
	return tokens
}

// mapRow selects the schema's fields from a token list. An index past the
// end of the list, or a token equal to the null marker, yields an empty
// value. A quoted 'NULL' therefore also maps to empty; its token text is
// indistinguishable from the marker.
func (e *Extractor) mapRow(tokens []string) []string {
	row := make([]string, len(e.schema))
	for i, f := range e.schema {
		if f.Index < len(tokens) && tokens[f.Index] != nullMarker {
			row[i] = tokens[f.Index]
		}
	}
	return row
}
