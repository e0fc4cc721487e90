package sqldump2csv

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// stdinPath is the conventional path argument naming standard input.
const stdinPath = "-"

// openSource opens one input source with transparent decompression.
// The path "-" yields stdin unchanged; file paths are decompressed
// according to their extension. The returned cleanup function closes
// both the decompressor and the file.
func openSource(path string, stdin io.Reader) (io.Reader, func() error, error) {
	if path == stdinPath {
		return stdin, func() error { return nil }, nil
	}

	file, err := os.Open(path) //nolint:gosec // User-provided path is necessary for file operations
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	reader, cleanup, err := newDecompressedReader(file, DetectCompressionType(path))
	if err != nil {
		_ = file.Close()
		return nil, nil, err
	}

	compositeCleanup := func() error {
		cleanupErr := cleanup()
		if closeErr := file.Close(); closeErr != nil && cleanupErr == nil {
			cleanupErr = closeErr
		}
		return cleanupErr
	}
	return reader, compositeCleanup, nil
}

// multiSourceReader concatenates input sources, opening each lazily when
// reading reaches it and closing it when it is exhausted. A missing or
// unreadable source surfaces as a read error at the point it is reached.
//
// A source whose content does not end in a newline has one appended, so
// the final line of one source never merges with the first line of the
// next; the statement buffer above this reader still carries across the
// boundary.
type multiSourceReader struct {
	paths          []string
	stdin          io.Reader
	idx            int
	cur            io.Reader
	cleanup        func() error
	sawData        bool
	lastByte       byte
	pendingNewline bool
}

// newMultiSourceReader creates a reader over paths. The stdin reader is
// substituted for the "-" path.
func newMultiSourceReader(paths []string, stdin io.Reader) *multiSourceReader {
	return &multiSourceReader{paths: paths, stdin: stdin}
}

// Read implements io.Reader.
func (m *multiSourceReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	for {
		if m.pendingNewline {
			m.pendingNewline = false
			p[0] = '\n'
			return 1, nil
		}

		if m.cur == nil {
			if m.idx >= len(m.paths) {
				return 0, io.EOF
			}
			reader, cleanup, err := openSource(m.paths[m.idx], m.stdin)
			if err != nil {
				return 0, err
			}
			m.idx++
			m.cur = reader
			m.cleanup = cleanup
			m.sawData = false
		}

		n, err := m.cur.Read(p)
		if n > 0 {
			m.sawData = true
			m.lastByte = p[n-1]
			if err != nil && !errors.Is(err, io.EOF) {
				return n, err
			}
			return n, nil
		}
		if err == nil {
			continue
		}
		if !errors.Is(err, io.EOF) {
			return 0, err
		}

		if closeErr := m.closeCurrent(); closeErr != nil {
			return 0, closeErr
		}
		if m.sawData && m.lastByte != '\n' {
			m.pendingNewline = true
		}
	}
}

// Close releases the currently open source, if any. Sources already
// exhausted were closed as reading moved past them.
func (m *multiSourceReader) Close() error {
	return m.closeCurrent()
}

func (m *multiSourceReader) closeCurrent() error {
	if m.cur == nil {
		return nil
	}
	cleanup := m.cleanup
	m.cur = nil
	m.cleanup = nil
	if cleanup != nil {
		return cleanup()
	}
	return nil
}
