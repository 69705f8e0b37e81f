package main

import (
	"github.com/spf13/cobra"
)

func newTicketsCmd(root *rootOptions) *cobra.Command {
	var inputPath, outputPath string

	cmd := &cobra.Command{
		Use:   "tickets",
		Short: "Summarize ticket activity from a stripped CSV export",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := root.newApp()
			if err != nil {
				return err
			}
			return a.RunTickets(root.author, inputPath, outputPath)
		},
	}
	cmd.Flags().StringVar(&inputPath, "input", "", "Stripped ticket CSV (default: <data-dir>/<author>_jira.csv)")
	cmd.Flags().StringVar(&outputPath, "output", "", "Also write summary stats JSON to this path")
	return cmd
}
