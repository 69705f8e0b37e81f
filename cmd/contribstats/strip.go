package main

import (
	"github.com/spf13/cobra"
)

func newStripCmd(root *rootOptions) *cobra.Command {
	var inputPath, outputPath string

	cmd := &cobra.Command{
		Use:   "strip",
		Short: "Normalize a raw ticket export down to the reporting schema",
		Long: `Strip reads a raw ticket CSV export, deduplicates repeated header
names and projects the rows onto the fixed reporting schema. The result
is written atomically so a failed run never leaves a partial file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := root.newApp()
			if err != nil {
				return err
			}
			return a.RunStrip(root.author, inputPath, outputPath)
		},
	}
	cmd.Flags().StringVar(&inputPath, "input", "", "Raw ticket export (default: <data-dir>/<author>_jira_raw.csv)")
	cmd.Flags().StringVar(&outputPath, "output", "", "Stripped CSV destination (default: <data-dir>/<author>_jira.csv)")
	return cmd
}
