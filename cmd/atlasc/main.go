// Package main implements the Atlas front-end driver.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/you-not-fish/atlas/internal/srcfile"
	"github.com/you-not-fish/atlas/internal/syntax"
)

// Driver flags
var (
	includeDir string
	debug      = flag.Bool("debug", false, "Trace tokens and productions to stderr")
	emitTokens = flag.Bool("emit-tokens", false, "Output token stream")
	emitAST    = flag.Bool("emit-ast", false, "Output AST")
	astFormat  = flag.String("ast-format", "text", "AST output format (text or json)")
	emitFuncs  = flag.Bool("emit-funcs", false, "Output function table")
	version    = flag.Bool("version", false, "Print version")
)

func init() {
	flag.StringVar(&includeDir, "I", "", "Resolve include directives in `dir`")
	flag.StringVar(&includeDir, "include", "", "Same as -I")
}

// Version information
const Version = "0.1.0-dev"

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Atlas front end %s\n\n", Version)
		fmt.Fprintf(os.Stderr, "Usage: atlasc [options] <file.atl>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *version {
		fmt.Printf("atlasc version %s\n", Version)
		fmt.Printf("go version %s\n", runtime.Version())
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "error: no input file")
		fmt.Fprintln(os.Stderr, "usage: atlasc [options] <file.atl>")
		os.Exit(1)
	}

	filename := args[0]

	// Handle -emit-tokens
	if *emitTokens {
		os.Exit(runEmitTokens(filename))
	}

	os.Exit(runParse(filename))
}

// newLogger returns the driver's logger: debug records with -debug, warnings
// only otherwise.
func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if *debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// newContext builds the parse configuration for filename from the flags.
func newContext(filename string, logger *slog.Logger) *syntax.Context {
	cwd, err := os.Getwd()
	if err != nil {
		logger.Warn("cannot determine working directory", slog.Any("err", err))
	}
	return &syntax.Context{
		IncludePath:   includeDir,
		InputFilename: filename,
		InputFileDir:  cwd,
		Logger:        logger,
	}
}

// report writes err to stderr. Front-end errors carry their own position
// and kind.
func report(err error) {
	var e *syntax.Error
	if errors.As(err, &e) {
		fmt.Fprintln(os.Stderr, e)
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
}

// runParse parses the input file, with its includes, and outputs whatever
// the emit flags ask for.
func runParse(filename string) int {
	logger := newLogger(os.Stderr)

	if *astFormat != "text" && *astFormat != "json" {
		fmt.Fprintf(os.Stderr, "error: unknown AST format %q\n", *astFormat)
		return 1
	}

	f, err := syntax.ParseFile(filename, newContext(filename, logger))
	if err != nil {
		report(err)
		return 1
	}

	if *emitAST {
		switch *astFormat {
		case "json":
			if err := syntax.FprintJSON(os.Stdout, f); err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				return 1
			}
		default:
			syntax.Fprint(os.Stdout, f)
		}
	}

	if *emitFuncs {
		syntax.FprintFuncs(os.Stdout, f.Funcs)
	}

	logger.Info("parsed",
		slog.String("file", filename),
		slog.Int("stmts", len(f.Stmts)),
		slog.Int("decls", len(f.Decls())),
		slog.Int("includes", len(f.Includes)))
	return 0
}

// runEmitTokens tokenizes the input file and prints all tokens with their
// line and column. Included files are not expanded.
func runEmitTokens(filename string) int {
	logger := newLogger(os.Stderr)

	src, err := srcfile.Read(filename)
	if err != nil {
		report(err)
		return 1
	}

	toks, err := syntax.Tokenize(filename, strings.NewReader(src))
	logger.Debug("tokenized", slog.String("file", filename), slog.Int("tokens", len(toks)))

	// Print header
	fmt.Printf("%-20s %-12s %s\n", "POSITION", "TOKEN", "LITERAL")
	fmt.Printf("%-20s %-12s %s\n", strings.Repeat("-", 20), strings.Repeat("-", 12), strings.Repeat("-", 20))

	for _, t := range toks {
		pos := fmt.Sprintf("%d:%d", t.Line(), t.Column())
		fmt.Printf("%-20s %-12s %s\n", pos, t.Tok, formatLiteral(t.Text))
	}

	if err != nil {
		report(err)
		return 1
	}
	return 0
}

// formatLiteral formats a literal for display, escaping special characters.
func formatLiteral(lit string) string {
	if lit == "" {
		return "\"\""
	}

	var b strings.Builder
	b.WriteRune('"')
	for _, r := range lit {
		switch r {
		case '\n':
			b.WriteString("\\n")
		case '\t':
			b.WriteString("\\t")
		case '\r':
			b.WriteString("\\r")
		case '\\':
			b.WriteString("\\\\")
		case '"':
			b.WriteString("\\\"")
		case 0:
			b.WriteString("\\0")
		default:
			b.WriteRune(r)
		}
	}
	b.WriteRune('"')
	return b.String()
}
