package main

import (
	"github.com/spf13/cobra"
)

func newPagesCmd(root *rootOptions) *cobra.Command {
	var inputPath, outputPath string

	cmd := &cobra.Command{
		Use:   "pages",
		Short: "Summarize wiki page creation and contribution activity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := root.newApp()
			if err != nil {
				return err
			}
			return a.RunPages(root.author, inputPath, outputPath)
		},
	}
	cmd.Flags().StringVar(&inputPath, "input", "", "Page dataset (default: <data-dir>/<author>_confluence.json)")
	cmd.Flags().StringVar(&outputPath, "output", "", "Also write summary stats JSON to this path")
	return cmd
}
