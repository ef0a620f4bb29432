package gen

import (
	"bytes"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"strings"
	"testing"
)

func parseSource(t *testing.T, src string) (*token.FileSet, *ast.File) {
	t.Helper()
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "test.go", src, 0)
	if err != nil {
		t.Fatalf("parse test source: %v", err)
	}
	return fset, f
}

func printSource(t *testing.T, fset *token.FileSet, f *ast.File) string {
	t.Helper()
	var buf bytes.Buffer
	if err := format.Node(&buf, fset, f); err != nil {
		t.Fatalf("print test source: %v", err)
	}
	return buf.String()
}

func countIdents(f *ast.File, name string) int {
	count := 0
	ast.Inspect(f, func(n ast.Node) bool {
		if ident, ok := n.(*ast.Ident); ok && ident.Name == name {
			count++
		}
		return true
	})
	return count
}

func TestRenameSymbolCoversIdentifiersAndTypes(t *testing.T) {
	src := `package p

func run(l *TplLexer) TplLexer {
	var x TplLexer
	x = TplLexer{}
	_ = l
	return x
}
`
	fset, f := parseSource(t, src)

	n := RenameSymbol(f, "TplLexer", "ExprLexer")
	if n != 4 {
		t.Errorf("RenameSymbol replaced %d identifiers, want 4", n)
	}
	if remaining := countIdents(f, "TplLexer"); remaining != 0 {
		t.Errorf("%d identifiers still read TplLexer", remaining)
	}
	if got := countIdents(f, "ExprLexer"); got != 4 {
		t.Errorf("%d identifiers read ExprLexer, want 4", got)
	}

	out := printSource(t, fset, f)
	if strings.Contains(out, "TplLexer") {
		t.Errorf("printed source still mentions TplLexer:\n%s", out)
	}
}

func TestRenameSymbolExactMatchOnly(t *testing.T) {
	src := `package p

var a NewTplLexer
var b TplLexerFactory
`
	_, f := parseSource(t, src)

	if n := RenameSymbol(f, "TplLexer", "ExprLexer"); n != 0 {
		t.Errorf("RenameSymbol replaced %d identifiers, want 0 (prefix and suffix forms must not match)", n)
	}
}

func TestRenameSymbolNoMatchIsNoOp(t *testing.T) {
	src := "package p\n\nvar x int\n"
	fset, f := parseSource(t, src)
	before := printSource(t, fset, f)

	if n := RenameSymbol(f, "Absent", "Present"); n != 0 {
		t.Errorf("RenameSymbol replaced %d identifiers, want 0", n)
	}
	if after := printSource(t, fset, f); after != before {
		t.Errorf("no-op rewrite changed the source:\n%s", after)
	}
}
