package source

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Loader converts raw document bytes into markdown text for the block parser.
type Loader interface {
	Load(r io.Reader, filename string) (string, error)
}

// ErrUnsupported is returned for file extensions no loader handles.
var ErrUnsupported = errors.New("unsupported file extension")

// ErrDecode is returned when a text source is not valid UTF-8.
var ErrDecode = errors.New("invalid text encoding")

// SupportedExtensions lists file extensions this tool can upload.
var SupportedExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
	".txt":      true,
	".html":     true,
	".htm":      true,
	".pdf":      true,
	".docx":     true,
}

// ForFile returns the loader for a filename.
func ForFile(filename string) (Loader, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".md", ".markdown", ".txt":
		return &TextLoader{}, nil
	case ".html", ".htm":
		return &HTMLLoader{}, nil
	case ".pdf":
		return &PDFLoader{}, nil
	case ".docx":
		return &DOCXLoader{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	return SupportedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// Read loads the document at path and converts it to markdown text.
// Missing and unreadable files surface through the os error; undecodable
// content surfaces as ErrDecode.
func Read(path string) (string, error) {
	loader, err := ForFile(path)
	if err != nil {
		return "", err
	}
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	text, err := loader.Load(f, filepath.Base(path))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return text, nil
}
