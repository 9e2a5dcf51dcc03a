package markdown

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ParseError is a parse failure annotated with its position. Column is
// always 1; positions within a line are not tracked.
type ParseError struct {
	Message string
	Line    int
	Column  int
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("markdown parse error at line %d, column %d: %s", e.Line, e.Column, e.Message)
}

func (e *ParseError) Unwrap() error { return e.Err }

func newParseError(err error, line int) *ParseError {
	msg := err.Error()
	var levelErr *HeadingLevelError
	if errors.As(err, &levelErr) {
		msg = fmt.Sprintf("Invalid heading level: %d", levelErr.Level)
	}
	return &ParseError{Message: msg, Line: line, Column: 1, Err: err}
}

// cursor walks the input one rune at a time and counts consumed line breaks.
// It works on byte offsets so invalid UTF-8 passes through unchanged.
type cursor struct {
	text string
	pos  int
	line int
}

func newCursor(text string) *cursor {
	return &cursor{text: text, line: 1}
}

func (c *cursor) peek() (rune, bool) {
	if c.pos >= len(c.text) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(c.text[c.pos:])
	return r, true
}

// next consumes one rune and returns it with its raw bytes.
func (c *cursor) next() (rune, string, bool) {
	if c.pos >= len(c.text) {
		return 0, "", false
	}
	r, size := utf8.DecodeRuneInString(c.text[c.pos:])
	raw := c.text[c.pos : c.pos+size]
	c.pos += size
	if r == '\n' {
		c.line++
	}
	return r, raw, true
}

type scanState int

const (
	stateStart scanState = iota
	stateParagraph
	stateParagraphEndCandidate
	stateHeading
)

type blockScanner struct {
	cur   *cursor
	doc   *Document
	state scanState
	text  strings.Builder
	// held collects the line break and whitespace seen after a paragraph
	// line until the next character decides whether the paragraph ends.
	held strings.Builder
}

// Parse converts Markdown text into a Document. The only failure is a heading
// whose level falls outside 1..6; it aborts the parse and is returned as a
// *ParseError.
func Parse(text string) (*Document, error) {
	s := &blockScanner{
		cur:   newCursor(text),
		doc:   NewDocument(),
		state: stateStart,
	}
	if err := s.run(); err != nil {
		return nil, err
	}
	return s.doc, nil
}

// ParseReader reads r to the end and parses it.
func ParseReader(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read markdown: %w", err)
	}
	return Parse(string(data))
}

func (s *blockScanner) run() error {
	for {
		r, ok := s.cur.peek()
		if !ok {
			break
		}

		switch s.state {
		case stateStart:
			s.state = stateParagraph
		case stateParagraph:
			if r == '#' {
				s.state = stateHeading
				continue
			}
			_, raw, _ := s.cur.next()
			if r == '\n' {
				if s.textBlank() {
					// No paragraph is open: the line is blank.
					s.text.Reset()
					continue
				}
				s.held.WriteString(raw)
				s.state = stateParagraphEndCandidate
				continue
			}
			s.text.WriteString(raw)
		case stateParagraphEndCandidate:
			_, raw, _ := s.cur.next()
			switch {
			case r == '\n':
				s.finishParagraph()
				s.state = stateParagraph
			case unicode.IsSpace(r):
				s.held.WriteString(raw)
			default:
				s.resumeParagraph(raw)
				s.state = stateParagraph
			}
		case stateHeading:
			line := s.cur.line
			heading, err := scanHeading(s.cur)
			if err != nil {
				return newParseError(err, line)
			}
			s.finishParagraph()
			s.doc.Push(heading)
			s.state = stateParagraph
		}
	}

	s.finishParagraph()
	return nil
}

func (s *blockScanner) textBlank() bool {
	return strings.TrimSpace(s.text.String()) == ""
}

// resumeParagraph puts the held whitespace back in front of raw: the line
// break did not end the paragraph. Breaks held before any paragraph text are
// dropped.
func (s *blockScanner) resumeParagraph(raw string) {
	if s.text.Len() > 0 {
		s.text.WriteString(s.held.String())
	}
	s.held.Reset()
	s.text.WriteString(raw)
}

// finishParagraph emits the accumulated text as a paragraph unless it is blank.
func (s *blockScanner) finishParagraph() {
	text := s.text.String()
	s.text.Reset()
	s.held.Reset()
	if strings.TrimSpace(text) == "" {
		return
	}
	s.doc.Push(ParseParagraph(text))
}
