// contribstats aggregates personal contribution metrics from flat-file
// datasets the fetch collaborators leave in the cache directory, and
// runs the strip stage that normalizes raw ticket exports.
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/benkalmus/contribstats/internal/app"
	"github.com/benkalmus/contribstats/internal/config"
	"github.com/benkalmus/contribstats/internal/version"
)

type rootOptions struct {
	configPath string
	dataDir    string
	author     string
}

// newApp resolves the configuration and builds the shared run context.
func (o *rootOptions) newApp() (*app.App, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.dataDir != "" {
		cfg.DataDir = o.dataDir
	}
	logger := log.New(os.Stderr, "", 0)
	return app.New(cfg, logger, os.Stdout), nil
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "contribstats",
		Short:         "Summarize cached contribution datasets for a self-review",
		Version:       version.Current,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default: contribstats.yaml if present)")
	cmd.PersistentFlags().StringVar(&opts.dataDir, "data-dir", "", "Cache directory holding the fetched datasets")
	cmd.PersistentFlags().StringVar(&opts.author, "author", "", "Identity (code-hosting login) to analyse")

	cmd.AddCommand(
		newStripCmd(opts),
		newTicketsCmd(opts),
		newPRsCmd(opts),
		newPagesCmd(opts),
		newAllCmd(opts),
	)
	return cmd
}

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		log.New(os.Stderr, "", 0).Printf("error: %v", err)
		os.Exit(1)
	}
}
