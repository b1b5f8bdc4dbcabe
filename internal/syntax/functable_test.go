package syntax

import (
	"strings"
	"testing"
)

func TestMangleName(t *testing.T) {
	tests := []struct {
		name   string
		result string
		want   string
	}{
		{"add", "i64", "Z_3addx"},
		{"add", "u64", "Z_3addy"},
		{"add", "i32", "Z_3addi"},
		{"add", "u32", "Z_3addj"},
		{"add", "i16", "Z_3adds"},
		{"add", "u16", "Z_3addt"},
		{"add", "i8", "Z_3addDh"},
		{"add", "u8", "Z_3addh"},
		{"add", "", "Z_3addv"},
		{"origin", "Point", "Z_6origin5Point"},
		{"avg", "f64", "Z_3avg3f64"},
		{"count", "int", "Z_5count3int"},
		{"f", "i64", "Z_1fx"},
		{"main", "i32", "main"},
		{"main", "", "main"},
	}

	for _, tt := range tests {
		t.Run(tt.name+"_"+tt.result, func(t *testing.T) {
			if got := MangleName(tt.name, tt.result); got != tt.want {
				t.Errorf("MangleName(%q, %q) = %q, want %q", tt.name, tt.result, got, tt.want)
			}
		})
	}
}

func TestMangleNameResultSuffix(t *testing.T) {
	// Mangled names differ only in the suffix when the return type changes.
	prefix := "Z_" + "7compute"
	for _, result := range []string{"i64", "u8", "", "Vec"} {
		got := MangleName("compute", result)
		if !strings.HasPrefix(got, prefix) {
			t.Errorf("MangleName(compute, %q) = %q, want prefix %q", result, got, prefix)
		}
		if again := MangleName("compute", result); again != got {
			t.Errorf("MangleName is not deterministic: %q then %q", got, again)
		}
	}
}

func TestFprintFuncs(t *testing.T) {
	f := parseFile(t, `puts fn(s *u8) -> i32
add fn(a i64, u8 [4]::b) -> i64 {
    -> a
}
main fn() {
}
`)
	var buf strings.Builder
	FprintFuncs(&buf, f.Funcs)

	want := `Z_4putsi puts(s *u8) -> i32 (prototype)
Z_3addx add(a i64, b [4]u8) -> i64
main main()
`
	if buf.String() != want {
		t.Errorf("FprintFuncs =\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestFunctionTable(t *testing.T) {
	decl := func(name, result string, proto bool) *FuncDecl {
		return &FuncDecl{Name: name, Result: result, Prototype: proto, MangledName: MangleName(name, result)}
	}

	tab := NewFunctionTable()
	if tab.Len() != 0 || len(tab.Funcs()) != 0 {
		t.Fatal("new table is not empty")
	}

	proto := decl("area", "i64", true)
	def := decl("area", "i64", false)
	other := decl("main", "i32", false)
	tab.Add(proto)
	tab.Add(other)
	tab.Add(def)

	if tab.Len() != 3 {
		t.Errorf("Len = %d, want 3", tab.Len())
	}
	funcs := tab.Funcs()
	if funcs[0] != proto || funcs[1] != other || funcs[2] != def {
		t.Error("Funcs not in declaration order")
	}

	if fn, ok := tab.Lookup("area"); !ok || fn != proto {
		t.Errorf("Lookup(area) = %v, %v, want the first declaration", fn, ok)
	}
	if _, ok := tab.Lookup("printf"); ok {
		t.Error("Lookup(printf) found an undeclared function")
	}

	tests := []struct {
		name string
		want string
	}{
		{"area", "Z_4areax"},
		{"main", "main"},
		{"printf", "printf"},
	}
	for _, tt := range tests {
		if got := tab.Mangled(tt.name); got != tt.want {
			t.Errorf("Mangled(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
