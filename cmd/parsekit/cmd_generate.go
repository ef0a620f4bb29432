package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/parsekit/parsekit/gen"
	"github.com/parsekit/parsekit/rules"
)

func newGenerateCmd() *cobra.Command {
	var rulesFile string
	var outDir string
	var pkg string
	var tool string
	var watch bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a parser module from a rule file",
		Long: `Generate a parser module from a declarative rule file.

This command:
  - Emits lexer and parser grammar text from the rule file
  - Compiles both grammars with the external grammar compiler
  - Assembles a typed parser facade and a visitor scaffold
    around the compiler's output

With --watch the command keeps running and regenerates whenever
the rule file changes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runOnce := func() error {
				set, err := rules.Load(rulesFile)
				if err != nil {
					return err
				}
				generator := gen.New(set, gen.Config{OutDir: outDir, Package: pkg},
					&gen.AntlrRunner{Command: strings.Fields(tool)})
				if err := generator.Run(cmd.Context()); err != nil {
					return err
				}
				fmt.Printf("Generated %s into %s\n", set.Grammar, outDir)
				return nil
			}

			if !watch {
				return runOnce()
			}
			return watchAndRun(cmd, rulesFile, runOnce)
		},
	}

	cmd.Flags().StringVarP(&rulesFile, "rules", "r", "rules.yaml", "rule file to generate from")
	cmd.Flags().StringVarP(&outDir, "out", "o", "out", "output directory")
	cmd.Flags().StringVar(&pkg, "package", "parser", "package name for generated modules")
	cmd.Flags().StringVar(&tool, "tool", "antlr4", "grammar compiler command")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "regenerate when the rule file changes")

	return cmd
}

func watchAndRun(cmd *cobra.Command, rulesFile string, run func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors replace files on
	// save, which drops a direct file watch.
	if err := watcher.Add(filepath.Dir(rulesFile)); err != nil {
		return fmt.Errorf("watch %s: %w", rulesFile, err)
	}

	if err := run(); err != nil {
		fmt.Println(err)
	}

	target := filepath.Clean(rulesFile)
	for {
		select {
		case <-cmd.Context().Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := run(); err != nil {
				fmt.Println(err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Println("watch error:", err)
		}
	}
}
