package ingest

import (
	"archive/zip"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExtractTxtPassthrough(t *testing.T) {
	got, err := Extract("note.txt", strings.NewReader("  Hello there.  \n\n  Second   line. \n"))
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	want := "Hello there.\nSecond line."
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestExtractMarkdown(t *testing.T) {
	got, err := Extract("README.md", strings.NewReader("# Title\n\nBody text here."))
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if !strings.Contains(got, "Body text here.") {
		t.Fatalf("expected markdown body in output, got %q", got)
	}
}

func TestExtractDOCX(t *testing.T) {
	raw := buildDOCX(t, `<w:document><w:body><w:p><w:r><w:t>First paragraph.</w:t></w:r></w:p><w:p><w:r><w:t>Second paragraph.</w:t></w:r></w:p></w:body></w:document>`)
	got, err := Extract("sample.docx", bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	want := "First paragraph.\nSecond paragraph."
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestExtractDOCXMissingDocument(t *testing.T) {
	var b bytes.Buffer
	zw := zip.NewWriter(&b)
	f, err := zw.Create("word/other.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := f.Write([]byte("<x/>")); err != nil {
		t.Fatalf("write xml: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	if _, err := Extract("broken.docx", bytes.NewReader(b.Bytes())); err == nil {
		t.Fatal("expected error for docx without document.xml")
	}
}

func TestExtractUnsupportedExtension(t *testing.T) {
	_, err := Extract("image.png", strings.NewReader("binary"))
	if err == nil {
		t.Fatal("expected unsupported file type error")
	}
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}

func TestExtractFileFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.txt")
	if err := os.WriteFile(path, []byte("On disk. Works fine."), 0o644); err != nil {
		t.Fatalf("write sample: %v", err)
	}
	got, err := ExtractFile(path)
	if err != nil {
		t.Fatalf("ExtractFile failed: %v", err)
	}
	if got != "On disk. Works fine." {
		t.Fatalf("unexpected text %q", got)
	}
}

func TestExtractFileMissing(t *testing.T) {
	if _, err := ExtractFile(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func buildDOCX(t *testing.T, bodyXML string) []byte {
	t.Helper()
	var b bytes.Buffer
	zw := zip.NewWriter(&b)
	f, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	xml := `<?xml version="1.0" encoding="UTF-8"?>` + bodyXML
	if _, err := f.Write([]byte(xml)); err != nil {
		t.Fatalf("write xml: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return b.Bytes()
}
