package main

import (
	"github.com/spf13/cobra"
)

func newPRsCmd(root *rootOptions) *cobra.Command {
	var inputPath, reviewedPath, outputPath string

	cmd := &cobra.Command{
		Use:   "prs",
		Short: "Summarize authored and reviewed pull request activity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := root.newApp()
			if err != nil {
				return err
			}
			return a.RunPRs(root.author, inputPath, reviewedPath, outputPath)
		},
	}
	cmd.Flags().StringVar(&inputPath, "input", "", "Authored PR dataset (default: <data-dir>/<author>_prs.json)")
	cmd.Flags().StringVar(&reviewedPath, "reviewed-input", "", "Reviewed PR dataset (default: <data-dir>/<author>_reviewed_prs.json)")
	cmd.Flags().StringVar(&outputPath, "output", "", "Also write summary stats JSON to this path")
	return cmd
}
