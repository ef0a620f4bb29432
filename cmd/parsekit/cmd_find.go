package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/parsekit/parsekit/tree"
)

func newFindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find <type> <tree.json>",
		Short: "List all nodes of a given type in a serialized parse tree",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := tree.Load(args[1])
			if err != nil {
				return err
			}
			for _, n := range tree.Find(args[0], root) {
				if n.Span != nil {
					fmt.Printf("%s [%d-%d]\n", n.Type, n.Span.Start, n.Span.End)
				} else {
					fmt.Println(n.Type)
				}
			}
			return nil
		},
	}
	return cmd
}
