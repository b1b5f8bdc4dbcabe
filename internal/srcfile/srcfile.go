// Package srcfile loads Atlas source files as UTF-8 text.
//
// Editors on some platforms save sources with a byte order mark or as
// UTF-16. The lexer works on UTF-8 only, so every file goes through a BOM
// sniffing decoder first: a UTF-8 BOM is dropped, a UTF-16 BOM switches to
// the matching UTF-16 decoder, anything else is read as UTF-8 with invalid
// bytes replaced by U+FFFD.
package srcfile

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Read returns the decoded contents of the file at path.
func Read(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("file %q could not be opened: %w", path, err)
	}
	defer f.Close()

	src, err := Decode(f)
	if err != nil {
		return "", fmt.Errorf("reading %q: %w", path, err)
	}
	return src, nil
}

// Decode reads r to the end and returns its text as UTF-8.
func Decode(r io.Reader) (string, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	b, err := io.ReadAll(transform.NewReader(r, dec))
	if err != nil {
		return "", err
	}
	return string(b), nil
}
