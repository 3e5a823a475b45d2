package services

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestExtractTextUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	if err := os.WriteFile(path, []byte("plain text resume"), 0644); err != nil {
		t.Fatal(err)
	}

	extractor := NewTextExtractorService()
	_, err := extractor.ExtractText(path)

	if !errors.Is(err, ErrUnreadableDocument) {
		t.Errorf("err = %v, want ErrUnreadableDocument", err)
	}
}

func TestExtractTextMissingFile(t *testing.T) {
	extractor := NewTextExtractorService()

	if _, err := extractor.ExtractText(filepath.Join(t.TempDir(), "absent.pdf")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestExtractTextCorruptedPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.pdf")
	if err := os.WriteFile(path, []byte("this is not a pdf"), 0644); err != nil {
		t.Fatal(err)
	}

	extractor := NewTextExtractorService()
	_, err := extractor.ExtractText(path)

	if !errors.Is(err, ErrUnreadableDocument) {
		t.Errorf("err = %v, want ErrUnreadableDocument", err)
	}
}

func TestStripDocxMarkup(t *testing.T) {
	content := `<w:p><w:r><w:t>Senior Go Engineer</w:t></w:r></w:p><w:p><w:r><w:t>Python, AWS</w:t></w:r></w:p>`

	got := CleanText(stripDocxMarkup(content))
	want := "Senior Go Engineer\nPython, AWS"

	if got != want {
		t.Errorf("stripDocxMarkup = %q, want %q", got, want)
	}
}

func TestCleanText(t *testing.T) {
	got := CleanText("  line one \n\n\n   line two\t\n")
	want := "line one\nline two"

	if got != want {
		t.Errorf("CleanText = %q, want %q", got, want)
	}
}
