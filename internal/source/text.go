package source

import (
	"fmt"
	"io"
	"unicode/utf8"
)

// TextLoader handles markdown and plain-text files, which are already in the
// form the block parser consumes.
type TextLoader struct{}

func (l *TextLoader) Load(r io.Reader, filename string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s: %w", filename, ErrDecode)
	}
	return string(data), nil
}
