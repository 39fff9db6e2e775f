package errorid

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

const (
	blockCommentStart = "/*"
	blockCommentEnd   = "*/"
	lineComment       = "//"
	preprocessorMark  = "#"

	// maxLineSize for the line scanner: message sources have long lines, but nothing near this.
	maxLineSize = 1024 * 1024
)

var reErrorID = regexp.MustCompile(
	`ErrorId\s+(?:\w+::)?(\w+)\s*=\s*\{\s*` + // Name, with optional class qualifier.
		`ErrorOf\s*\(\s*(\w+)\s*,\s*(\d+)\s*,\s*(\w+)\s*,\s*(\w+)\s*,\s*(\w+)\s*\)\s*,\s*` + // ErrorOf arguments.
		`"((?:[^"\\]|\\.)*)"\s*\}\s*;`) // Message text.

// ParseError is returned when the source has unexpected contents around comment delimiters, or a record
// that can't be converted.
type ParseError struct {
	// Line number, starting from 1.
	Line int
	Msg  string
	// Text of the offending line.
	Text string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Msg, e.Text)
}

type scanState int

const (
	stateNormal scanState = iota
	stateInBlockComment
)

// Scanner reads a message source line by line and returns the records found, in the order they appear.
//
// Block comments, line comments and preprocessor lines are skipped. Statements can span multiple lines:
// code is accumulated in a buffer until it contains a complete record.
type Scanner struct {
	lines   *bufio.Scanner
	lineNum int
	state   scanState
	pending string   // Code accumulated and not yet matched to a record.
	ready   []Record // Records matched and not yet returned.
	err     error
}

// NewScanner creates a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	lines := bufio.NewScanner(r)
	lines.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Scanner{lines: lines}
}

// Scan reads all records from r, in the order they appear.
func Scan(r io.Reader) ([]Record, error) {
	s := NewScanner(r)
	var records []Record
	for {
		record, err := s.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	klog.V(1).Infof("errorid: scanned %d lines, %d records", s.lineNum, len(records))
	return records, nil
}

// Next returns the next record, or io.EOF when the source is exhausted.
//
// Errors are sticky: once an error is returned, subsequent calls return the same error.
func (s *Scanner) Next() (Record, error) {
	for len(s.ready) == 0 {
		if s.err != nil {
			return Record{}, s.err
		}
		if !s.lines.Scan() {
			s.finish()
			return Record{}, s.err
		}
		s.lineNum++
		s.err = s.processLine(s.lines.Text())
	}
	record := s.ready[0]
	s.ready = s.ready[1:]
	return record, nil
}

// LineNumber returns the number of lines read so far.
func (s *Scanner) LineNumber() int {
	return s.lineNum
}

// finish is called at the end of the input: it sets s.err to the read error or io.EOF.
func (s *Scanner) finish() {
	if err := s.lines.Err(); err != nil {
		s.err = errors.Wrapf(err, "failed reading message source after line %d", s.lineNum)
		return
	}
	if s.state == stateInBlockComment {
		klog.V(1).Infof("errorid: source ended inside a block comment")
	}
	if leftover := strings.TrimSpace(s.pending); leftover != "" {
		klog.V(1).Infof("errorid: ignoring %d characters of code that don't form a record: %q", len(leftover), leftover)
	}
	s.pending = ""
	s.err = io.EOF
}

func (s *Scanner) newParseError(line, msg string) error {
	return errors.WithStack(&ParseError{Line: s.lineNum, Msg: msg, Text: line})
}

func (s *Scanner) processLine(line string) error {
	if strings.TrimSpace(line) == "" {
		return nil
	}
	code, err := s.stripComments(line, line)
	if err != nil {
		return err
	}
	trimmed := strings.TrimSpace(code)
	if trimmed == "" || strings.HasPrefix(trimmed, preprocessorMark) {
		return nil
	}
	if strings.TrimSpace(s.pending) == "" {
		s.pending = code
	} else {
		s.pending = s.pending + " " + code
	}
	return s.extractRecords()
}

// stripComments returns the code part of text, updating the comment state.
// fullLine is used for error reporting only.
func (s *Scanner) stripComments(text, fullLine string) (string, error) {
	if s.state == stateInBlockComment {
		idx := strings.Index(text, blockCommentEnd)
		if idx < 0 {
			return "", nil
		}
		s.state = stateNormal
		if strings.TrimSpace(text[idx+len(blockCommentEnd):]) != "" {
			return "", s.newParseError(fullLine, "unexpected text after end of block comment")
		}
		return "", nil
	}

	// A block comment start takes precedence over anything else on the line, line comments included.
	if blockIdx := strings.Index(text, blockCommentStart); blockIdx >= 0 {
		if strings.TrimSpace(text[:blockIdx]) != "" {
			return "", s.newParseError(fullLine, "unexpected text before start of block comment")
		}
		s.state = stateInBlockComment
		return s.stripComments(text[blockIdx+len(blockCommentStart):], fullLine)
	}
	lineIdx := strings.Index(text, lineComment)
	if lineIdx < 0 || inStringLiteral(text[:lineIdx], text[lineIdx+len(lineComment):]) {
		return text, nil
	}
	return text[:lineIdx], nil
}

// inStringLiteral guesses whether a line comment marker, with the given left and right parts of the line,
// is inside a string literal: that is the case if both sides have an odd number of quotes.
func inStringLiteral(left, right string) bool {
	return strings.Count(left, `"`)%2 == 1 && strings.Count(right, `"`)%2 == 1
}

// extractRecords moves every complete record in s.pending to s.ready.
func (s *Scanner) extractRecords() error {
	for {
		matches := reErrorID.FindStringSubmatchIndex(s.pending)
		if matches == nil {
			return nil
		}
		group := func(n int) string {
			return s.pending[matches[2*n]:matches[2*n+1]]
		}
		code, err := strconv.Atoi(group(3))
		if err != nil {
			return errors.WithStack(&ParseError{
				Line: s.lineNum,
				Msg:  fmt.Sprintf("invalid message code for %s: %v", group(1), err),
				Text: group(0),
			})
		}
		record := Record{
			Name:      group(1),
			Subsystem: group(2),
			Code:      code,
			Severity:  group(4),
			Generic:   group(5),
			ArgCount:  group(6),
			Text:      group(7),
			Line:      s.lineNum,
		}
		klog.V(2).Infof("errorid: line %d: %s", s.lineNum, record)
		s.ready = append(s.ready, record)
		s.pending = s.pending[matches[1]:]
	}
}
