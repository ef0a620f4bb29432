package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/parsekit/parsekit/tree"
)

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <tree.json> <source-file>",
		Short: "Pretty-print a serialized parse tree",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := tree.Load(args[0])
			if err != nil {
				return err
			}
			source, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("read source file: %w", err)
			}
			tree.Dump(os.Stdout, string(source), root)
			return nil
		},
	}
	return cmd
}
