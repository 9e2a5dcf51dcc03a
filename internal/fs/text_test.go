package fs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestIsTextFileDetectsUTF16LE(t *testing.T) {
	content := []byte{0xFF, 0xFE, 0x41, 0x00, 0x0D, 0x00, 0x0A, 0x00}
	if !IsTextFile("notes.md", content) {
		t.Fatalf("expected UTF-16 LE content to be treated as text")
	}
}

func TestIsTextFileRejectsBinary(t *testing.T) {
	if IsTextFile("image.png", []byte("# looks like text")) {
		t.Fatalf("expected .png extension to be treated as binary")
	}
	if IsTextFile("blob.md", []byte{0x01, 0x00, 0x02, 0x03}) {
		t.Fatalf("expected NUL bytes to be treated as binary")
	}
}

func TestNormalizeTextContentUTF16LE(t *testing.T) {
	content := []byte{0xFF, 0xFE, 0x41, 0x00, 0x0D, 0x00, 0x0A, 0x00}
	if got := NormalizeTextContent(content); got != "A\r\n" {
		t.Fatalf("NormalizeTextContent returned %q, want %q", got, "A\r\n")
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name      string
		content   []byte
		normalize bool
		want      string
	}{
		{"plain", []byte("# Title\n"), false, "# Title\n"},
		{"utf8 bom", []byte("\xEF\xBB\xBF# T"), false, "# T"},
		{"utf16 be", []byte{0xFE, 0xFF, 0x00, 0x23, 0x00, 0x0D, 0x00, 0x0A}, false, "#\n"},
		{"crlf", []byte("a\r\n\r\nb\rc"), false, "a\n\nb\nc"},
		{"nfc", []byte("e\u0301"), true, "\u00e9"},
		{"nfc disabled", []byte("e\u0301"), false, "e\u0301"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode("doc.md", tt.content, tt.normalize)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if got != tt.want {
				t.Fatalf("Decode = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.md")
	if err := os.WriteFile(path, []byte("# Title\r\n\r\nBody"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	src, err := Load(path, LoadOptions{MaxBytes: 1024, Normalize: true})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if src.Text != "# Title\n\nBody" || src.Name != path || src.Size != 15 {
		t.Fatalf("unexpected source %#v", src)
	}
}

func TestLoadStdin(t *testing.T) {
	src, err := Load(StdinName, LoadOptions{Stdin: strings.NewReader("hello")})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if src.Name != "<stdin>" || src.Text != "hello" {
		t.Fatalf("unexpected source %#v", src)
	}
}

func TestLoadRejectsLargeAndBinaryInput(t *testing.T) {
	_, err := Load(StdinName, LoadOptions{MaxBytes: 4, Stdin: strings.NewReader("12345")})
	if !errors.Is(err, ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}

	_, err = Load(StdinName, LoadOptions{Stdin: strings.NewReader("a\x00b")})
	if !errors.Is(err, ErrBinary) {
		t.Fatalf("expected ErrBinary, got %v", err)
	}

	if _, err := Load(StdinName, LoadOptions{MaxBytes: 5, Stdin: strings.NewReader("12345")}); err != nil {
		t.Fatalf("input at the limit should load, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.md"), LoadOptions{})
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}
