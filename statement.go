package sqldump2csv

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

const (
	// statementIntroducer starts a new logical statement.
	statementIntroducer = "INSERT INTO"
	// statementTerminator ends a logical statement.
	statementTerminator = ";"
)

// StatementScanner reconstructs logical INSERT statements from a stream of
// physical lines, in the manner of bufio.Scanner:
//
//	scanner := NewStatementScanner(r)
//	for scanner.Scan() {
//		process(scanner.Statement())
//	}
//	if err := scanner.Err(); err != nil {
//		return err
//	}
//
// Each line is whitespace-trimmed. A line beginning with the introducer
// keyword starts a new statement, first flushing any statement already
// buffered; the introducer line itself is never checked for the
// terminator, so a complete single-line statement is held until the next
// introducer or end of input. Any other non-empty line is appended to the
// statement in progress with a single separating space, and the statement
// is flushed once it ends with the terminator. Lines arriving before the
// first introducer are ignored. A non-empty buffer is flushed at end of
// input whether or not it is terminated.
//
// Lines are read with bufio.Reader, so there is no upper bound on line
// length; dump files routinely carry multi-megabyte INSERT lines.
type StatementScanner struct {
	reader    *bufio.Reader
	buffer    string
	statement string
	err       error
	eof       bool
}

// NewStatementScanner creates a StatementScanner reading from r.
func NewStatementScanner(r io.Reader) *StatementScanner {
	return &StatementScanner{reader: bufio.NewReader(r)}
}

// Scan advances to the next logical statement. It returns false when the
// input is exhausted or a read error occurs; Err reports the error, if any.
func (s *StatementScanner) Scan() bool {
	if s.err != nil {
		return false
	}
	if s.eof {
		return s.flush()
	}

	for {
		raw, err := s.reader.ReadString('\n')
		if err != nil {
			if !errors.Is(err, io.EOF) {
				s.err = err
				return false
			}
			s.eof = true
		}

		line := strings.TrimSpace(raw)
		switch {
		case strings.HasPrefix(line, statementIntroducer):
			prev := s.buffer
			s.buffer = line
			if prev != "" {
				s.statement = prev
				return true
			}
		case line != "" && s.buffer != "":
			s.buffer += " " + line
			if strings.HasSuffix(s.buffer, statementTerminator) {
				s.statement = s.buffer
				s.buffer = ""
				return true
			}
		}

		if s.eof {
			return s.flush()
		}
	}
}

// flush returns any buffered statement at end of input.
func (s *StatementScanner) flush() bool {
	if s.buffer == "" {
		return false
	}
	s.statement = s.buffer
	s.buffer = ""
	return true
}

// Statement returns the statement produced by the last call to Scan.
func (s *StatementScanner) Statement() string {
	return s.statement
}

// Err returns the first read error encountered, excluding io.EOF.
func (s *StatementScanner) Err() error {
	return s.err
}
