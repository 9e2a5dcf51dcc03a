package markdown

import (
	"fmt"
	"strings"
)

const (
	minHeadingLevel = 1
	maxHeadingLevel = 6
)

// HeadingLevelError reports a heading level outside 1..6.
type HeadingLevelError struct {
	Level int
}

func (e *HeadingLevelError) Error() string {
	return fmt.Sprintf("invalid heading level: %d (expected %d-%d)", e.Level, minHeadingLevel, maxHeadingLevel)
}

// Heading is an ATX heading. Its level is always within 1..6.
type Heading struct {
	level int
	text  string
}

// NewHeading validates level and returns the heading. Levels outside 1..6
// are rejected, never clamped.
func NewHeading(level int, text string) (Heading, error) {
	if level < minHeadingLevel || level > maxHeadingLevel {
		return Heading{}, &HeadingLevelError{Level: level}
	}
	return Heading{level: level, text: text}, nil
}

func (h Heading) Level() int   { return h.level }
func (h Heading) Text() string { return h.text }

// scanHeading consumes a run of '#' and the rest of its line, including the
// terminating line break. The cursor must be positioned on '#'.
func scanHeading(c *cursor) (Heading, error) {
	level := 0
	for {
		r, ok := c.peek()
		if !ok || r != '#' {
			break
		}
		c.next()
		level++
	}

	var text strings.Builder
	for {
		r, raw, ok := c.next()
		if !ok || r == '\n' {
			break
		}
		text.WriteString(raw)
	}

	return NewHeading(level, strings.TrimSpace(text.String()))
}
