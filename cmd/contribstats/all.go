package main

import (
	"github.com/spf13/cobra"
)

func newAllCmd(root *rootOptions) *cobra.Command {
	var authors []string
	var workers int

	cmd := &cobra.Command{
		Use:   "all",
		Short: "Run every analysis for one or more identities",
		Long: `All runs the strip stage plus the ticket, pull request and page
analyses for each identity, in parallel across a worker pool. Output for
each identity is buffered and printed in the order the identities were
given, so concurrent runs never interleave.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := root.newApp()
			if err != nil {
				return err
			}
			if len(authors) == 0 && root.author != "" {
				authors = []string{root.author}
			}
			if len(authors) == 0 {
				authors = []string{""}
			}
			return a.RunAll(cmd.Context(), authors, workers)
		},
	}
	cmd.Flags().StringSliceVar(&authors, "authors", nil, "Comma-separated identities to analyse")
	cmd.Flags().IntVar(&workers, "workers", 4, "Concurrent analyses to run")
	return cmd
}
