package source

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestForFile_Dispatch(t *testing.T) {
	cases := []struct {
		filename string
		want     Loader
	}{
		{"notes.md", &TextLoader{}},
		{"notes.markdown", &TextLoader{}},
		{"notes.txt", &TextLoader{}},
		{"page.html", &HTMLLoader{}},
		{"page.HTM", &HTMLLoader{}},
		{"paper.pdf", &PDFLoader{}},
		{"report.docx", &DOCXLoader{}},
	}
	for _, tc := range cases {
		loader, err := ForFile(tc.filename)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.filename, err)
		}
		if fmt.Sprintf("%T", loader) != fmt.Sprintf("%T", tc.want) {
			t.Errorf("%s: expected %T, got %T", tc.filename, tc.want, loader)
		}
	}
}

func TestForFile_Unsupported(t *testing.T) {
	_, err := ForFile("image.png")
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}

func TestIsSupportedExtension(t *testing.T) {
	if !IsSupportedExtension("doc.md") {
		t.Error("expected .md supported")
	}
	if !IsSupportedExtension("DOC.PDF") {
		t.Error("expected extension check to be case-insensitive")
	}
	if IsSupportedExtension("archive.zip") {
		t.Error("expected .zip unsupported")
	}
	if IsSupportedExtension("no-extension") {
		t.Error("expected extensionless file unsupported")
	}
}

func TestTextLoader_Passthrough(t *testing.T) {
	l := &TextLoader{}
	text, err := l.Load(strings.NewReader("# Title\n\nbody"), "doc.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "# Title\n\nbody" {
		t.Errorf("expected passthrough, got %q", text)
	}
}

func TestTextLoader_InvalidUTF8(t *testing.T) {
	l := &TextLoader{}
	_, err := l.Load(strings.NewReader("ok\xff\xfe"), "doc.txt")
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
	if !strings.Contains(err.Error(), "doc.txt") {
		t.Errorf("expected filename in error, got %v", err)
	}
}

func TestHTMLLoader_ConvertsToMarkdown(t *testing.T) {
	input := `<html><head><title>skip me</title></head><body>
<h1>Main</h1>
<h4>Deep</h4>
<p>First paragraph.</p>
<ul><li>one</li><li>two</li></ul>
<pre>x = 1</pre>
<script>alert("skip")</script>
</body></html>`

	l := &HTMLLoader{}
	text, err := l.Load(strings.NewReader(input), "page.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantLines := []string{
		"# Main",
		"### Deep",
		"First paragraph.",
		"- one",
		"- two",
		"```\nx = 1\n```",
	}
	for _, w := range wantLines {
		if !strings.Contains(text, w) {
			t.Errorf("expected output to contain %q, got:\n%s", w, text)
		}
	}
	if strings.Contains(text, "skip") {
		t.Errorf("expected script and title content dropped, got:\n%s", text)
	}
}

func TestRead_MissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "absent.md"))
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}

func TestRead_Markdown(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	if err := os.WriteFile(path, []byte("# Hello\n\nworld"), 0o644); err != nil {
		t.Fatal(err)
	}

	text, err := Read(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "# Hello\n\nworld" {
		t.Errorf("unexpected content: %q", text)
	}
}

func TestDefaultTitle_FirstHeading(t *testing.T) {
	got := DefaultTitle("intro text\n\n# The **Real** Title\n\nbody", "/tmp/doc.md")
	if got != "The Real Title" {
		t.Errorf("expected heading text, got %q", got)
	}
}

func TestDefaultTitle_FileStemFallback(t *testing.T) {
	got := DefaultTitle("no headings here", "/tmp/meeting-notes.md")
	if got != "meeting-notes" {
		t.Errorf("expected file stem, got %q", got)
	}
}

func TestDefaultTitle_Untitled(t *testing.T) {
	got := DefaultTitle("", ".md")
	if got != "Untitled" {
		t.Errorf("expected Untitled, got %q", got)
	}
}
