package syntax

import (
	"log/slog"
	"path/filepath"

	"github.com/you-not-fish/atlas/internal/srcfile"
)

// Context is the read-only configuration shared by a parse and all of the
// files it includes.
type Context struct {
	// IncludePath, when set, is the directory every include is resolved in.
	IncludePath string

	// InputFilename is the file given on the command line.
	InputFilename string

	// InputFileDir anchors relative file names (usually the working
	// directory).
	InputFileDir string

	// ReadFile loads an included file. Defaults to srcfile.Read.
	ReadFile func(path string) (string, error)

	// Logger receives debug traces of the parse. Defaults to a discarding
	// logger.
	Logger *slog.Logger
}

func (c *Context) readFile(path string) (string, error) {
	if c.ReadFile != nil {
		return c.ReadFile(path)
	}
	return srcfile.Read(path)
}

func (c *Context) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// abs anchors a relative path at InputFileDir.
func (c *Context) abs(path string) string {
	if !filepath.IsAbs(path) && c.InputFileDir != "" {
		path = filepath.Join(c.InputFileDir, path)
	}
	return filepath.Clean(path)
}

// resolve returns the path of the file named by an include directive found
// in the file current. Absolute names are used as written; otherwise the
// include path wins over the including file's directory.
func (c *Context) resolve(current, name string) string {
	if filepath.IsAbs(name) {
		return filepath.Clean(name)
	}
	if c.IncludePath != "" {
		return c.abs(filepath.Join(c.IncludePath, name))
	}
	return c.abs(filepath.Join(filepath.Dir(current), name))
}
