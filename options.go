package sqldump2csv

import (
	"io"
	"os"
)

// Default converter settings.
const (
	// DefaultRowsPerFile is the number of data rows written to one output
	// file before rotating to the next.
	DefaultRowsPerFile = 10000
	// DefaultFilePrefix is the default output file name prefix.
	DefaultFilePrefix = "dump"
)

// Options configures how a Converter writes its output.
//
// Example:
//
//	options := NewOptions().
//		WithRowsPerFile(50000).
//		WithFilePrefix("users")
//
//	conv, err := New(schema, options)
type Options struct {
	// RowsPerFile is the per-file row threshold that triggers rotation
	RowsPerFile int
	// FilePrefix is the output file name prefix (<prefix>_<seq>.csv)
	FilePrefix string
	// OutputDir is the directory output files are created in
	OutputDir string
	// Diagnostics receives one line per skipped statement
	Diagnostics io.Writer
}

// NewOptions creates default converter options: 10,000 rows per file,
// prefix "dump", output in the current directory, diagnostics to standard
// error.
//
// Modify with:
//   - WithRowsPerFile(): Change the rotation threshold
//   - WithFilePrefix(): Change the output file name prefix
//   - WithOutputDir(): Write output files somewhere else
//   - WithDiagnostics(): Redirect skipped-statement reports
func NewOptions() Options {
	return Options{
		RowsPerFile: DefaultRowsPerFile,
		FilePrefix:  DefaultFilePrefix,
		OutputDir:   ".",
		Diagnostics: os.Stderr,
	}
}

// WithRowsPerFile sets the number of data rows written to one output file
// before rotation. The header row does not count toward the threshold.
func (o Options) WithRowsPerFile(n int) Options {
	o.RowsPerFile = n
	return o
}

// WithFilePrefix sets the output file name prefix.
func (o Options) WithFilePrefix(prefix string) Options {
	o.FilePrefix = prefix
	return o
}

// WithOutputDir sets the directory output files are created in.
func (o Options) WithOutputDir(dir string) Options {
	o.OutputDir = dir
	return o
}

// WithDiagnostics sets the writer that receives one line for each
// statement skipped because its value list could not be parsed.
func (o Options) WithDiagnostics(w io.Writer) Options {
	o.Diagnostics = w
	return o
}
