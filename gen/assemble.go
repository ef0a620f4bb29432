package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/tools/go/ast/astutil"
)

type stagedFile struct {
	path string
	data []byte
}

// assemble rewrites the facade template for the generator's rule set
// and renders the visitor companion, then persists both. The template
// is re-parsed on every run, so each run mutates its own fresh copy.
// Rendering fans out on goroutines since the two modules are
// independent; persistence happens only after the join, and either both
// modules are written or neither is.
func (g *Generator) assemble() error {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "parser.go", facadeTemplate, parser.ParseComments)
	if err != nil {
		return &StructuralMismatchError{Detail: fmt.Sprintf("facade template does not parse: %v", err)}
	}
	file.Name.Name = g.Config.Package

	astutil.AddNamedImport(fset, file, "antlr", antlrRuntime)

	for _, m := range []struct{ from, to string }{
		{lexerPlaceholder, g.Set.LexerName()},
		{parserPlaceholder, g.Set.ParserName()},
	} {
		// The ANTLR Go target prefixes constructors with New, so each
		// placeholder maps to two concrete identifiers.
		n := RenameSymbol(file, m.from, m.to)
		n += RenameSymbol(file, "New"+m.from, "New"+m.to)
		if n == 0 {
			return &StructuralMismatchError{
				Detail: fmt.Sprintf("placeholder %s does not occur in the facade template", m.from),
			}
		}
	}

	if err := BindEntryPoint(file, entryFunc, g.Set.Root().Name); err != nil {
		return err
	}

	var facadeBuf, visitorBuf bytes.Buffer
	var facadeErr, visitorErr error
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		facadeErr = format.Node(&facadeBuf, fset, file)
	}()
	go func() {
		defer wg.Done()
		visitorErr = visitorTemplate.Execute(&visitorBuf, map[string]string{
			"Package":    g.Config.Package,
			"Grammar":    g.Set.Grammar,
			"ParserName": g.Set.ParserName(),
		})
	}()
	wg.Wait()

	if facadeErr != nil {
		return &IOError{Op: "render", Path: "parser.go", Err: facadeErr}
	}
	if visitorErr != nil {
		return &IOError{Op: "render", Path: "visitor.go", Err: visitorErr}
	}

	return writeAll([]stagedFile{
		{path: filepath.Join(g.Config.OutDir, "parser.go"), data: facadeBuf.Bytes()},
		{path: filepath.Join(g.Config.OutDir, "visitor.go"), data: visitorBuf.Bytes()},
	})
}

// writeAll persists staged files all-or-nothing: every file is written
// to a temporary sibling first, then the temporaries are renamed into
// place. Any failure removes the temporaries and everything already
// renamed.
func writeAll(files []stagedFile) error {
	tmps := make([]string, 0, len(files))
	cleanup := func(renamed int) {
		for _, tmp := range tmps {
			os.Remove(tmp)
		}
		for i := 0; i < renamed; i++ {
			os.Remove(files[i].path)
		}
	}

	for _, f := range files {
		tmp := f.path + ".tmp"
		if err := os.WriteFile(tmp, f.data, 0644); err != nil {
			cleanup(0)
			return &IOError{Op: "write", Path: tmp, Err: err}
		}
		tmps = append(tmps, tmp)
	}
	for i, f := range files {
		if err := os.Rename(tmps[i], f.path); err != nil {
			cleanup(i)
			return &IOError{Op: "rename", Path: f.path, Err: err}
		}
	}
	return nil
}
