package srcfile

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"plain", []byte("::x i64 = 1\n"), "::x i64 = 1\n"},
		{"utf8_bom", append([]byte{0xEF, 0xBB, 0xBF}, "main fn() {}"...), "main fn() {}"},
		{"utf16le_bom", []byte{0xFF, 0xFE, 'a', 0, '\n', 0}, "a\n"},
		{"utf16be_bom", []byte{0xFE, 0xFF, 0, 'a', 0, 'b'}, "ab"},
		{"empty", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(bytes.NewReader(tt.in))
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if got != tt.want {
				t.Errorf("Decode = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecodeInvalidUTF8(t *testing.T) {
	got, err := Decode(bytes.NewReader([]byte{'a', 0xFF, 'b'}))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got != "a\uFFFDb" {
		t.Errorf("Decode = %q, want replacement character", got)
	}
}

func TestRead(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lib.atl")
	if err := os.WriteFile(path, []byte("\xEF\xBB\xBFadd fn(a i64) -> i64\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got != "add fn(a i64) -> i64\n" {
		t.Errorf("Read = %q", got)
	}
}

func TestReadMissing(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.atl"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "could not be opened") {
		t.Errorf("error = %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error %v does not wrap fs.ErrNotExist", err)
	}
}
