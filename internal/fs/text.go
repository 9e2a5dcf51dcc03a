// Package fs loads Markdown sources from disk or stdin and normalizes their
// encoding before parsing.
package fs

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/unicode/norm"
)

const (
	textDetectionSampleSize      = 4096
	nonPrintableThresholdPercent = 30
)

// StdinName is the path that selects standard input.
const StdinName = "-"

var (
	ErrBinary   = errors.New("content is not text")
	ErrTooLarge = errors.New("content exceeds size limit")
)

type unicodeEncoding int

const (
	encodingUnknown unicodeEncoding = iota
	encodingUTF8BOM
	encodingUTF16LE
	encodingUTF16BE
)

var binaryExtensions = map[string]struct{}{
	".7z":   {},
	".bin":  {},
	".docx": {},
	".exe":  {},
	".gif":  {},
	".gz":   {},
	".jpeg": {},
	".jpg":  {},
	".pdf":  {},
	".png":  {},
	".tar":  {},
	".webp": {},
	".zip":  {},
}

// Source is decoded Markdown text together with where it came from.
type Source struct {
	Name string
	Text string
	Size int64
}

// LoadOptions controls how Load reads and decodes a source.
type LoadOptions struct {
	// MaxBytes rejects larger inputs; zero or less disables the limit.
	MaxBytes int64
	// Normalize applies Unicode NFC normalization to the decoded text.
	Normalize bool
	// Stdin is read when the path is StdinName. Defaults to os.Stdin.
	Stdin io.Reader
}

// Load reads path (or stdin for "-") and decodes it into UTF-8 text with
// "\n" line breaks.
func Load(path string, opts LoadOptions) (Source, error) {
	var r io.Reader
	name := path
	if path == StdinName || path == "" {
		name = "<stdin>"
		r = opts.Stdin
		if r == nil {
			r = os.Stdin
		}
	} else {
		f, err := os.Open(path)
		if err != nil {
			return Source{}, err
		}
		defer func() {
			_ = f.Close()
		}()
		r = f
	}

	content, err := readLimited(r, opts.MaxBytes)
	if err != nil {
		return Source{}, fmt.Errorf("%s: %w", name, err)
	}

	text, err := Decode(path, content, opts.Normalize)
	if err != nil {
		return Source{}, fmt.Errorf("%s: %w", name, err)
	}
	return Source{Name: name, Text: text, Size: int64(len(content))}, nil
}

func readLimited(r io.Reader, limit int64) ([]byte, error) {
	if limit <= 0 {
		return io.ReadAll(r)
	}
	content, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(content)) > limit {
		return nil, fmt.Errorf("%w (%d bytes)", ErrTooLarge, limit)
	}
	return content, nil
}

// Decode turns raw bytes into parser input: binary content is rejected,
// BOM-marked UTF-8/UTF-16 is decoded, CRLF and CR become LF, and with
// normalize set the text is converted to NFC.
func Decode(path string, content []byte, normalize bool) (string, error) {
	if !IsTextFile(path, content) {
		return "", ErrBinary
	}
	text := NormalizeTextContent(content)
	text = NormalizeLineEndings(text)
	if normalize {
		text = norm.NFC.String(text)
	}
	return text, nil
}

// NormalizeLineEndings converts CRLF and lone CR to LF.
func NormalizeLineEndings(text string) string {
	if !strings.ContainsRune(text, '\r') {
		return text
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// IsTextFile determines if content is text or binary.
// The path (if provided) is used to short-circuit obvious binary extensions before sniffing.
func IsTextFile(path string, content []byte) bool {
	if looksBinaryByExtension(path) {
		return false
	}

	if len(content) == 0 {
		return true
	}

	sample := content
	if len(sample) > textDetectionSampleSize {
		sample = sample[:textDetectionSampleSize]
	}

	if enc := detectUnicodeEncoding(sample); enc != encodingUnknown {
		return true
	}

	if bytes.IndexByte(sample, 0x00) != -1 {
		return false
	}

	if utf8.Valid(sample) {
		return true
	}

	printable := 0
	for _, b := range sample {
		if isCommonTextByte(b) {
			printable++
		}
	}
	if printable == 0 {
		return false
	}
	nonPrintable := len(sample) - printable
	return nonPrintable*100/len(sample) < nonPrintableThresholdPercent
}

func looksBinaryByExtension(path string) bool {
	if path == "" || path == StdinName {
		return false
	}
	_, ok := binaryExtensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

func isCommonTextByte(b byte) bool {
	switch {
	case b == 0x09 || b == 0x0A || b == 0x0D:
		return true
	case b >= 0x20 && b <= 0x7E:
		return true
	case b >= 0x80:
		return true
	default:
		return false
	}
}

func detectUnicodeEncoding(sample []byte) unicodeEncoding {
	if len(sample) >= 3 && sample[0] == 0xEF && sample[1] == 0xBB && sample[2] == 0xBF {
		return encodingUTF8BOM
	}
	if len(sample) >= 2 {
		switch {
		case sample[0] == 0xFF && sample[1] == 0xFE:
			return encodingUTF16LE
		case sample[0] == 0xFE && sample[1] == 0xFF:
			return encodingUTF16BE
		}
	}
	return encodingUnknown
}

// NormalizeTextContent converts known Unicode BOM-encoded content into UTF-8 strings.
func NormalizeTextContent(content []byte) string {
	switch detectUnicodeEncoding(content) {
	case encodingUTF8BOM:
		return string(content[3:])
	case encodingUTF16LE:
		return decodeUTF16(content, unicode.LittleEndian)
	case encodingUTF16BE:
		return decodeUTF16(content, unicode.BigEndian)
	default:
		return string(content)
	}
}

func decodeUTF16(content []byte, endian unicode.Endianness) string {
	decoder := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder()
	out, err := decoder.Bytes(content)
	if err != nil {
		return string(content)
	}
	return string(out)
}
