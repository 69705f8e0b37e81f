package app

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"

	"github.com/benkalmus/contribstats/internal/worker"
)

// RunAll runs every section with an available dataset for each author,
// authors in parallel over a bounded pool. Each job works on its own
// files and renders into its own buffer; buffers are flushed in input
// order so peer summaries never interleave.
func (a *App) RunAll(ctx context.Context, authors []string, workers int) error {
	if len(authors) == 0 {
		authors = []string{a.Config.Author}
	}

	results, err := worker.RunAll(ctx, authors, func(_ context.Context, author string) (*bytes.Buffer, error) {
		var buf bytes.Buffer
		sub := &App{
			Config: a.Config,
			Logger: log.New(&buf, "", 0),
			Stdout: &buf,
		}
		if err := sub.runAllSections(author); err != nil {
			return &buf, err
		}
		return &buf, nil
	}, worker.Options{Workers: workers})
	if err != nil {
		return err
	}

	var failed int
	for _, res := range results {
		if res.Output != nil {
			if _, err := a.Stdout.Write(res.Output.Bytes()); err != nil {
				return err
			}
		}
		if res.Err != nil {
			failed++
			a.Logger.Printf("warning: %s: %v", res.Input, res.Err)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d authors failed", failed, len(results))
	}
	return nil
}

// runAllSections runs strip, tickets, prs, and pages for one author,
// skipping sections whose input file is absent. At least one section
// must run.
func (a *App) runAllSections(author string) error {
	author = a.author(author)
	paths := a.paths()
	ran := 0

	if fileExists(paths.TicketExport(author)) {
		if err := a.RunStrip(author, "", ""); err != nil {
			return fmt.Errorf("strip: %w", err)
		}
		ran++
	}
	if fileExists(paths.Tickets(author)) {
		if err := a.RunTickets(author, "", paths.Stats(author, "tickets")); err != nil {
			return fmt.Errorf("tickets: %w", err)
		}
		ran++
	}
	if fileExists(paths.AuthoredPRs(author)) {
		if err := a.RunPRs(author, "", "", paths.Stats(author, "pr")); err != nil {
			return fmt.Errorf("prs: %w", err)
		}
		ran++
	}
	if fileExists(paths.Pages(author)) {
		if err := a.RunPages(author, "", paths.Stats(author, "pages")); err != nil {
			return fmt.Errorf("pages: %w", err)
		}
		ran++
	}

	if ran == 0 {
		return fmt.Errorf("no datasets found under %s for %q", a.Config.DataDir, displayName(author))
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
