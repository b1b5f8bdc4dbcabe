package syntax

import "fmt"

// Pos locates a token in an Atlas file. Lines and columns count from 1, so
// the zero Pos is not a position at all.
type Pos struct {
	filename string
	line     uint32
	col      uint32
}

func NewPos(filename string, line, col uint32) Pos {
	return Pos{filename: filename, line: line, col: col}
}

// String renders p the way diagnostics print it, file:line:col. Sources
// parsed without a name print as line:col.
func (p Pos) String() string {
	if p.filename == "" {
		return fmt.Sprintf("%d:%d", p.line, p.col)
	}
	return fmt.Sprintf("%s:%d:%d", p.filename, p.line, p.col)
}

func (p Pos) IsValid() bool { return p.line > 0 }

func (p Pos) Line() uint32     { return p.line }
func (p Pos) Col() uint32      { return p.col }
func (p Pos) Filename() string { return p.filename }

// Before orders two positions in one file. Spliced include files keep their
// own names, so positions from different files are not comparable.
func (p Pos) Before(q Pos) bool {
	if p.line != q.line {
		return p.line < q.line
	}
	return p.col < q.col
}
