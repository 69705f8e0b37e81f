// Package app wires datasets, analysers, and rendering together for
// the command surface. Each run reads flat files, transforms in memory,
// and writes its outputs atomically; nothing here touches the network.
package app

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/benkalmus/contribstats/internal/config"
	"github.com/benkalmus/contribstats/internal/dataset"
	"github.com/benkalmus/contribstats/internal/report"
	"github.com/benkalmus/contribstats/internal/stats"
	"github.com/benkalmus/contribstats/pkg/strip"
)

// App carries the shared run context: resolved configuration, the
// warning logger, and the summary destination.
type App struct {
	Config config.Config
	Logger *log.Logger
	Stdout io.Writer
}

func New(cfg config.Config, logger *log.Logger, stdout io.Writer) *App {
	if logger == nil {
		logger = log.New(os.Stderr, "", 0)
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	return &App{Config: cfg, Logger: logger, Stdout: stdout}
}

func (a *App) paths() dataset.Paths {
	return dataset.Paths{Dir: a.Config.DataDir}
}

func (a *App) schema() strip.Schema {
	if len(a.Config.Schema) > 0 {
		return strip.Schema(a.Config.Schema)
	}
	return strip.DefaultSchema()
}

// author resolves the effective identity: the flag wins, then the
// config default.
func (a *App) author(flagAuthor string) string {
	if flagAuthor != "" {
		return flagAuthor
	}
	return a.Config.Author
}

func displayName(author string) string {
	if author == "" {
		return "unknown"
	}
	return author
}

// RunStrip executes the strip stage: raw ticket export in, reduced CSV
// out, with a completion summary. Missing schema columns degrade to
// empty output columns but are surfaced as warnings so an incomplete
// export is visible before anyone trusts the downstream statistics.
func (a *App) RunStrip(author, inputPath, outputPath string) error {
	author = a.author(author)
	if inputPath == "" {
		inputPath = a.paths().TicketExport(author)
	}
	if outputPath == "" {
		outputPath = a.paths().Tickets(author)
	}

	schema := a.schema()
	res, err := strip.File(inputPath, outputPath, schema)
	if err != nil {
		return err
	}
	for _, col := range res.MissingColumns {
		a.Logger.Printf("warning: column %q not found in %s; output column is empty", col, inputPath)
	}
	report.New(a.Stdout).StripSummary(inputPath, outputPath, res.Rows, res.InputColumns, len(schema))
	return nil
}

// RunTickets analyses a stripped ticket CSV and renders the ticket
// summary. When outputPath is set the stats are also written as JSON.
func (a *App) RunTickets(author, inputPath, outputPath string) error {
	author = a.author(author)
	if inputPath == "" {
		inputPath = a.paths().Tickets(author)
	}

	rows, err := dataset.LoadTickets(inputPath)
	if err != nil {
		return err
	}
	name := stats.InferAssigneeName(rows)
	ticketStats := stats.AnalyzeTickets(rows, name)

	report.New(a.Stdout).TicketSummary(displayName(author), ticketStats)
	return a.writeStats(outputPath, author, "tickets", ticketStats)
}

// RunPRs analyses the authored-PR dataset plus, when present, the
// reviewed-PR dataset, and renders the combined PR summary.
func (a *App) RunPRs(author, inputPath, reviewedPath string, outputPath string) error {
	author = a.author(author)
	if inputPath == "" {
		inputPath = a.paths().AuthoredPRs(author)
	}
	if reviewedPath == "" {
		reviewedPath = a.paths().ReviewedPRs(author)
	}

	prs, err := dataset.LoadAuthoredPRs(inputPath)
	if err != nil {
		return err
	}
	if author == "" {
		author = inferPRAuthor(prs, a.Logger)
	} else {
		prs = filterByAuthor(prs, author)
	}
	authored := stats.AnalyzeAuthored(prs, author)

	var reviewed *stats.ReviewedStats
	reviewedPRs, err := dataset.LoadReviewedPRs(reviewedPath)
	switch {
	case os.IsNotExist(err):
		a.Logger.Printf("note: %s not found, skipping review activity section", reviewedPath)
	case err != nil:
		return err
	default:
		checkReviewedDataset(reviewedPRs, author, reviewedPath, a.Logger)
		rs := stats.AnalyzeReviewed(reviewedPRs, author)
		reviewed = &rs
	}

	report.New(a.Stdout).PRSummary(authored, reviewed)

	payload := struct {
		Author   string               `json:"author"`
		Authored stats.AuthoredStats  `json:"authored"`
		Reviewed *stats.ReviewedStats `json:"reviewed"`
	}{Author: displayName(author), Authored: authored, Reviewed: reviewed}
	return a.writeStatsPayload(outputPath, payload)
}

// RunPages analyses the documentation-platform export and renders the
// pages summary.
func (a *App) RunPages(author, inputPath, outputPath string) error {
	author = a.author(author)
	if inputPath == "" {
		inputPath = a.paths().Pages(author)
	}

	export, err := dataset.LoadPages(inputPath)
	if err != nil {
		return err
	}
	pageStats := stats.AnalyzePages(export)

	report.New(a.Stdout).PageSummary(displayName(author), pageStats)
	return a.writeStats(outputPath, author, "pages", pageStats)
}

func (a *App) writeStats(outputPath, author, section string, s any) error {
	if outputPath == "" {
		return nil
	}
	payload := struct {
		Author  string `json:"author"`
		Section string `json:"section"`
		Stats   any    `json:"stats"`
	}{Author: displayName(author), Section: section, Stats: s}
	return a.writeStatsPayload(outputPath, payload)
}

func (a *App) writeStatsPayload(outputPath string, payload any) error {
	if outputPath == "" {
		return nil
	}
	if err := dataset.WriteJSON(outputPath, payload); err != nil {
		return fmt.Errorf("write stats: %w", err)
	}
	fmt.Fprintf(a.Stdout, "Stats written to: %s\n", outputPath)
	return nil
}

func filterByAuthor(prs []dataset.PullRequest, author string) []dataset.PullRequest {
	out := make([]dataset.PullRequest, 0, len(prs))
	for _, pr := range prs {
		if pr.Author == author {
			out = append(out, pr)
		}
	}
	return out
}

// inferPRAuthor returns the dataset's author when it is unambiguous.
func inferPRAuthor(prs []dataset.PullRequest, logger *log.Logger) string {
	authors := make(map[string]bool)
	for _, pr := range prs {
		if pr.Author != "" {
			authors[pr.Author] = true
		}
	}
	switch len(authors) {
	case 0:
		logger.Printf("warning: no author field in PR data, pass --author")
		return ""
	case 1:
		for author := range authors {
			return author
		}
	}
	logger.Printf("warning: multiple authors in PR data, pass --author to filter")
	return ""
}

// checkReviewedDataset warns when the reviewed dataset does not appear
// to contain reviews by the expected identity, which usually means two
// mismatched files were passed.
func checkReviewedDataset(prs []dataset.ReviewedPullRequest, author, path string, logger *log.Logger) {
	if author == "" {
		return
	}
	seen := make(map[string]bool)
	for _, pr := range prs {
		for _, rv := range pr.YourReviews {
			if rv.Author != "" {
				seen[rv.Author] = true
			}
		}
	}
	if len(seen) > 0 && !seen[author] {
		logger.Printf("warning: %s does not contain reviews by %q, re-fetch the reviewed dataset", path, author)
	}
}
