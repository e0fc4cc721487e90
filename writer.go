package sqldump2csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// RotatingWriter writes output rows across sequence-numbered CSV files.
// The first file (sequence 0) is created by NewRotatingWriter; each file
// begins with the header row, and once the configured number of data rows
// has been written the file is closed and the next sequence number opens.
// Rotation happens immediately when the threshold is reached, so the row
// count of the open file is always below the threshold before a write.
type RotatingWriter struct {
	dir         string
	prefix      string
	rowsPerFile int
	header      []string
	seq         int
	rows        int
	file        *os.File
	csv         *csv.Writer
	closed      bool
}

// NewRotatingWriter creates a RotatingWriter, opens the file for sequence 0
// in dir, and writes its header row. Files are named <prefix>_<seq>.csv.
func NewRotatingWriter(dir, prefix string, rowsPerFile int, header []string) (*RotatingWriter, error) {
	if rowsPerFile < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRowsPerFile, rowsPerFile)
	}
	if prefix == "" {
		return nil, ErrEmptyFilePrefix
	}

	w := &RotatingWriter{
		dir:         dir,
		prefix:      prefix,
		rowsPerFile: rowsPerFile,
		header:      header,
	}
	if err := w.open(); err != nil {
		return nil, err
	}
	return w, nil
}

// WriteRow appends one data row to the current file and rotates to the
// next sequence number when the per-file row threshold is reached. A
// rotation may therefore fall between two rows of the same statement.
func (w *RotatingWriter) WriteRow(row []string) error {
	if w.closed {
		return ErrWriterClosed
	}

	if err := w.csv.Write(row); err != nil {
		return fmt.Errorf("failed to write row: %w", err)
	}
	w.rows++

	if w.rows >= w.rowsPerFile {
		if err := w.closeFile(); err != nil {
			return err
		}
		w.seq++
		w.rows = 0
		return w.open()
	}
	return nil
}

// Close flushes and closes the current output file. The writer cannot be
// used afterwards; further writes return ErrWriterClosed.
func (w *RotatingWriter) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	return w.closeFile()
}

// Sequence returns the zero-based index of the current output file.
func (w *RotatingWriter) Sequence() int {
	return w.seq
}

// RowCount returns the number of data rows written to the current output
// file. The header row is not counted.
func (w *RotatingWriter) RowCount() int {
	return w.rows
}

// Path returns the path of the current output file.
func (w *RotatingWriter) Path() string {
	return filepath.Join(w.dir, fmt.Sprintf("%s_%d.csv", w.prefix, w.seq))
}

// open creates the file for the current sequence number and writes the
// header row.
func (w *RotatingWriter) open() error {
	path := w.Path()
	file, err := os.Create(path) //nolint:gosec // Output path is built from caller-provided prefix and directory
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	w.file = file
	w.csv = csv.NewWriter(file)
	if err := w.csv.Write(w.header); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to write header to %s: %w", path, err)
	}
	return nil
}

// closeFile flushes buffered rows and closes the current file.
func (w *RotatingWriter) closeFile() error {
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		_ = w.file.Close()
		return fmt.Errorf("failed to flush %s: %w", w.Path(), err)
	}
	if err := w.file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", w.Path(), err)
	}
	return nil
}
