package format

// TextStyleKind describes a semantic style for rendered segments.
type TextStyleKind int

const (
	TextStylePlain TextStyleKind = iota
	TextStyleHeading
	TextStyleLink
	TextStyleImage
	TextStyleURL
)

// StyledTextSegment is a chunk of text with an associated style.
type StyledTextSegment struct {
	Text  string
	Style TextStyleKind
}

// JoinSegmentsText concatenates the text of segments, dropping styles.
func JoinSegmentsText(segments []StyledTextSegment) string {
	if len(segments) == 0 {
		return ""
	}
	total := 0
	for _, seg := range segments {
		total += len(seg.Text)
	}
	buf := make([]byte, 0, total)
	for _, seg := range segments {
		buf = append(buf, seg.Text...)
	}
	return string(buf)
}
