package gen

import "go/ast"

// RenameSymbol rewrites every identifier in f whose text exactly equals
// from so it reads to, and returns how many identifiers changed. Value
// identifiers and declared-type annotations are both plain identifiers
// in Go source, so a single walk covers both positions. Matching is
// textual; there is no scope resolution. That is safe only because
// template placeholder names are reserved and collide with nothing else
// in the template.
func RenameSymbol(f *ast.File, from, to string) int {
	count := 0
	ast.Inspect(f, func(n ast.Node) bool {
		if ident, ok := n.(*ast.Ident); ok && ident.Name == from {
			ident.Name = to
			count++
		}
		return true
	})
	return count
}
