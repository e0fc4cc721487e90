package sqldump2csv

import (
	"context"
	"fmt"
	"os"
)

// Converter is the dump-to-table converter. It reads SQL dump text from
// one or more sources, reconstructs logical INSERT statements, extracts
// the schema's fields from every row group, and writes one CSV row per
// row group across rotating output files.
//
// A Converter is built once and runs single-threaded; it must not be
// shared across goroutines during a run.
type Converter struct {
	schema Schema
	opts   Options

	rowsWritten  int64
	skippedCount int
}

// New creates a Converter for the given schema. The schema is validated
// the same way NewSchema validates it. Options may be omitted for the
// defaults described on NewOptions.
//
// Example usage:
//
//	conv, err := sqldump2csv.New(sqldump2csv.Schema{
//		{Name: "LOGIN", Index: 2},
//		{Name: "EMAIL", Index: 8},
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := conv.Convert("users.sql"); err != nil {
//		log.Fatal(err)
//	}
func New(schema Schema, opts ...Options) (*Converter, error) {
	validated, err := NewSchema(schema)
	if err != nil {
		return nil, err
	}

	options := NewOptions()
	if len(opts) > 0 {
		options = opts[0]
	}
	if options.RowsPerFile < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRowsPerFile, options.RowsPerFile)
	}
	if options.FilePrefix == "" {
		return nil, ErrEmptyFilePrefix
	}
	if options.OutputDir == "" {
		options.OutputDir = "."
	}
	if options.Diagnostics == nil {
		options.Diagnostics = os.Stderr
	}

	return &Converter{schema: validated, opts: options}, nil
}

// Convert runs the conversion over the given input paths in order. With no
// paths it reads standard input, and the path "-" also names standard
// input. Compressed files (.gz, .bz2, .xz, .zst) are decompressed
// transparently.
//
// Statements whose value list cannot be parsed are reported to the
// diagnostics writer and skipped; the run continues. Input and output I/O
// failures abort the run and are returned.
func (c *Converter) Convert(paths ...string) error {
	return c.ConvertContext(context.Background(), paths...)
}

// ConvertContext is Convert with context support. The context is checked
// between statements, so cancellation leaves the output files with whole
// statements only.
func (c *Converter) ConvertContext(ctx context.Context, paths ...string) error {
	c.rowsWritten = 0
	c.skippedCount = 0

	if len(paths) == 0 {
		paths = []string{stdinPath}
	}
	source := newMultiSourceReader(paths, os.Stdin)
	defer func() {
		_ = source.Close()
	}()

	writer, err := NewRotatingWriter(c.opts.OutputDir, c.opts.FilePrefix, c.opts.RowsPerFile, c.schema.Header())
	if err != nil {
		return err
	}

	extractor := NewExtractor(c.schema)
	scanner := NewStatementScanner(source)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			_ = writer.Close()
			return err
		}

		rows, err := extractor.Rows(scanner.Statement())
		if err != nil {
			c.skippedCount++
			fmt.Fprintf(c.opts.Diagnostics, "skipping statement: %v\n", err)
			continue
		}

		for _, row := range rows {
			if err := writer.WriteRow(row); err != nil {
				_ = writer.Close()
				return err
			}
		}
		c.rowsWritten += int64(len(rows))
	}
	if err := scanner.Err(); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to read input: %w", err)
	}

	return writer.Close()
}

// RowsWritten returns the number of output rows written by the most
// recent run.
func (c *Converter) RowsWritten() int64 {
	return c.rowsWritten
}

// SkippedStatements returns the number of statements dropped by the most
// recent run because their value list could not be parsed.
func (c *Converter) SkippedStatements() int {
	return c.skippedCount
}
