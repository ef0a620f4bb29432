package gen

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/tliron/commonlog"

	"github.com/parsekit/parsekit/rules"
)

var log = commonlog.GetLogger("parsekit.gen")

// Config controls where and how generated modules are produced.
type Config struct {
	// OutDir receives the grammar texts, the compiler's artifacts and
	// the generated parser and visitor modules.
	OutDir string
	// Package is the Go package name of the generated modules. It must
	// match the package the compiler artifacts are generated into.
	// Defaults to "parser".
	Package string
}

// Generator runs the generation pipeline for one rule set. Each run
// owns its in-memory state; concurrent runs share nothing.
type Generator struct {
	Set    *rules.Set
	Config Config
	Runner ToolRunner
}

func New(set *rules.Set, cfg Config, runner ToolRunner) *Generator {
	if cfg.Package == "" {
		cfg.Package = "parser"
	}
	return &Generator{Set: set, Config: cfg, Runner: runner}
}

// Run executes the pipeline: validate the rule set, emit grammar texts,
// compile them with the external tool, then assemble the parser facade
// and visitor companion. Any stage failure aborts the run. Nothing is
// retried: rerunning a deterministic generation on unchanged input
// cannot succeed where it just failed.
func (g *Generator) Run(ctx context.Context) error {
	if err := g.Set.Validate(); err != nil {
		return &PreconditionError{Reason: err}
	}

	if err := os.MkdirAll(g.Config.OutDir, 0755); err != nil {
		return &IOError{Op: "create", Path: g.Config.OutDir, Err: err}
	}

	lexerGrammar := filepath.Join(g.Config.OutDir, g.Set.LexerName()+".g4")
	parserGrammar := filepath.Join(g.Config.OutDir, g.Set.ParserName()+".g4")

	if err := g.writeGrammar(lexerGrammar, g.Set.WriteLexerGrammar); err != nil {
		return err
	}
	if err := g.writeGrammar(parserGrammar, g.Set.WriteParserGrammar); err != nil {
		return err
	}

	log.Infof("compiling lexer grammar %s", lexerGrammar)
	if err := g.Runner.Run(ctx, lexerGrammar, g.Config.OutDir, g.Config.Package); err != nil {
		return &ToolError{Stage: "lexer grammar", Err: err}
	}
	log.Infof("compiling parser grammar %s", parserGrammar)
	if err := g.Runner.Run(ctx, parserGrammar, g.Config.OutDir, g.Config.Package); err != nil {
		return &ToolError{Stage: "parser grammar", Err: err}
	}

	log.Infof("assembling parser module for grammar %s", g.Set.Grammar)
	return g.assemble()
}

func (g *Generator) writeGrammar(path string, emit func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := emit(&buf); err != nil {
		return &IOError{Op: "emit", Path: path, Err: err}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}
