// Package report renders stats structs as sectioned plain-text
// summaries: headline counts as aligned key/value lines, breakdowns as
// tables. Output is deterministic for fixed stats.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/benkalmus/contribstats/internal/stats"
)

const ruleWidth = 55

// Printer writes summary sections to a single destination.
type Printer struct {
	w io.Writer
}

func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (p *Printer) title(text string) {
	rule := strings.Repeat("=", ruleWidth)
	fmt.Fprintf(p.w, "\n%s\n  %s\n%s\n", rule, text, rule)
}

func (p *Printer) section(heading string) {
	pad := ruleWidth - len(heading) - 4
	if pad < 2 {
		pad = 2
	}
	fmt.Fprintf(p.w, "\n-- %s %s\n", heading, strings.Repeat("-", pad))
}

func (p *Printer) line(label, value string) {
	fmt.Fprintf(p.w, "  %-18s %s\n", label, value)
}

func (p *Printer) table(header []string, rows [][]string) {
	t := tablewriter.NewWriter(p.w)
	t.SetHeader(header)
	t.SetBorder(false)
	t.SetAutoWrapText(false)
	t.SetAutoFormatHeaders(false)
	t.SetAlignment(tablewriter.ALIGN_LEFT)
	t.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	t.AppendBulk(rows)
	t.Render()
}

func countRows(counts []stats.Count, total int) [][]string {
	rows := make([][]string, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, []string{c.Name, FormatInt(c.Count), Pct(c.Count, total)})
	}
	return rows
}

func (p *Printer) daySummary(s stats.DaySummary) {
	p.line("Mean", FormatDays(s.Mean))
	p.line("Median", FormatDays(s.Median))
	p.line("Fastest", FormatDays(s.Min))
	p.line("Slowest", FormatDays(s.Max))
	p.line("", fmt.Sprintf("(%d samples)", s.Count))
}

// PRSummary renders the authored-PR section, plus the review-activity
// section when reviewed is non-nil.
func (p *Printer) PRSummary(authored stats.AuthoredStats, reviewed *stats.ReviewedStats) {
	p.title("PR Analysis - " + authored.Author)

	t := authored.Totals
	p.section("PR Counts")
	p.line("Total", FormatInt(t.PRs))
	p.line("Merged", fmt.Sprintf("%s  (%s)", FormatInt(t.Merged), Pct(t.Merged, t.PRs)))
	p.line("Open", FormatInt(t.Open))
	p.line("Closed", FormatInt(t.Closed))
	if t.Draft > 0 {
		p.line("Draft", FormatInt(t.Draft))
	}

	c := authored.Churn
	p.section("Code Churn")
	p.line("Additions", "+"+FormatInt(c.Additions))
	p.line("Deletions", "-"+FormatInt(c.Deletions))
	net := FormatInt(c.Net)
	if c.Net >= 0 {
		net = "+" + net
	}
	p.line("Net", net)
	p.line("Total churn", FormatInt(c.Total)+" lines")
	p.line("Files", FormatInt(c.Files)+" changed")
	p.line("Per PR avg", fmt.Sprintf("+%.1f / -%.1f lines, %.1f files", c.AvgAdditionsPerPR, c.AvgDeletionsPerPR, c.AvgFilesPerPR))

	p.section("PR Size Distribution")
	p.table([]string{"Size", "PRs"}, func() [][]string {
		rows := make([][]string, 0, len(authored.SizeDistribution))
		for _, b := range authored.SizeDistribution {
			rows = append(rows, []string{b.Name, FormatInt(b.Count)})
		}
		return rows
	}())

	if authored.TimeToMergeDays.Count > 0 {
		p.section("Time to Merge")
		p.daySummary(authored.TimeToMergeDays)
	}

	p.section("Repositories")
	repoRows := make([][]string, 0, len(authored.Repos))
	for _, r := range authored.Repos {
		repoRows = append(repoRows, []string{
			r.Repo,
			FormatInt(r.PRs),
			"+" + FormatInt(r.Additions),
			"-" + FormatInt(r.Deletions),
		})
	}
	p.table([]string{"Repo", "PRs", "Added", "Removed"}, repoRows)

	if len(authored.ReceivedDecisions) > 0 {
		p.section("How Your PRs Were Received (merged)")
		p.table([]string{"Decision", "PRs", "Share"}, countRows(authored.ReceivedDecisions, t.Merged))
	}

	if len(authored.TopReviewers) > 0 {
		p.section("Who Reviewed Your Work")
		p.table([]string{"Reviewer", "Reviews"}, func() [][]string {
			rows := make([][]string, 0, len(authored.TopReviewers))
			for _, r := range authored.TopReviewers {
				rows = append(rows, []string{r.Name, FormatInt(r.Count)})
			}
			return rows
		}())
	}

	if reviewed != nil {
		p.section("Your Review Activity")
		p.line("PRs reviewed", FormatInt(reviewed.PRsReviewed))
		if len(reviewed.VerdictsGiven) > 0 {
			p.table([]string{"Verdict given", "Times"}, func() [][]string {
				rows := make([][]string, 0, len(reviewed.VerdictsGiven))
				for _, v := range reviewed.VerdictsGiven {
					rows = append(rows, []string{v.Name, FormatInt(v.Count)})
				}
				return rows
			}())
		}
		if len(reviewed.StrongestVerdict) > 0 {
			p.table([]string{"Strongest verdict", "PRs"}, func() [][]string {
				rows := make([][]string, 0, len(reviewed.StrongestVerdict))
				for _, v := range reviewed.StrongestVerdict {
					rows = append(rows, []string{v.Name, FormatInt(v.Count)})
				}
				return rows
			}())
		}
		if len(reviewed.AuthorsReviewed) > 0 {
			p.table([]string{"Author reviewed", "PRs"}, func() [][]string {
				rows := make([][]string, 0, len(reviewed.AuthorsReviewed))
				for _, a := range reviewed.AuthorsReviewed {
					rows = append(rows, []string{a.Name, FormatInt(a.Count)})
				}
				return rows
			}())
		}
	}

	fmt.Fprintln(p.w)
}

// TicketSummary renders the ticket section for one identity.
func (p *Printer) TicketSummary(author string, s stats.TicketStats) {
	p.title("Ticket Analysis - " + author)
	if s.AssigneeName != "" {
		p.line("Tracker name", s.AssigneeName)
	}

	t := s.Totals
	p.section("Ticket Counts")
	p.line("Total", FormatInt(t.Tickets))
	p.line("Assigned to you", fmt.Sprintf("%s  (%s)", FormatInt(t.Assigned), Pct(t.Assigned, t.Tickets)))
	p.line("Reported by you", fmt.Sprintf("%s  (%s)", FormatInt(t.Reported), Pct(t.Reported, t.Tickets)))
	if t.Both > 0 {
		p.line("Both", FormatInt(t.Both))
	}
	p.line("Resolved", fmt.Sprintf("%s  (%s)", FormatInt(t.Resolved), Pct(t.Resolved, t.Tickets)))
	p.line("Bugs", fmt.Sprintf("%s  (%.1f%%)", FormatInt(t.Bugs), t.BugRatePct))

	p.section("By Issue Type")
	p.table([]string{"Type", "Tickets", "Share"}, countRows(s.ByType, t.Tickets))

	p.section("By Priority")
	p.table([]string{"Priority", "Tickets", "Share"}, countRows(s.ByPriority, t.Tickets))

	p.section("By Project")
	p.table([]string{"Project", "Tickets", "Share"}, countRows(s.ByProject, t.Tickets))

	sp := s.StoryPoints
	p.section("Story Points")
	p.line("Total", strconv.FormatFloat(sp.Total, 'f', -1, 64))
	if sp.Counted > 0 {
		p.line("Mean/ticket", fmt.Sprintf("%.1f", sp.MeanPerTicket))
		p.line("Median", fmt.Sprintf("%.1f", sp.MedianPerTicket))
	}
	if sp.Missing > 0 {
		p.line("", fmt.Sprintf("(missing on %d tickets)", sp.Missing))
	}

	if s.CycleTimeDays.Count > 0 {
		p.section("Cycle Time (created to resolved)")
		p.daySummary(s.CycleTimeDays)
	}

	p.section(fmt.Sprintf("Epics / Initiatives (%d unique)", uniqueEpics(s.Epics)))
	p.table([]string{"Epic", "Tickets"}, func() [][]string {
		rows := make([][]string, 0, len(s.Epics))
		for _, e := range s.Epics {
			rows = append(rows, []string{truncate(e.Name, 50), FormatInt(e.Count)})
		}
		return rows
	}())

	p.section(fmt.Sprintf("Sprints (%d total)", len(s.Sprints)))
	sprintRows := make([][]string, 0, len(s.Sprints))
	for _, sp := range s.Sprints {
		sprintRows = append(sprintRows, []string{
			sp.Sprint,
			FormatInt(sp.Tickets),
			fmt.Sprintf("%.1f", sp.StoryPoints),
		})
	}
	p.table([]string{"Sprint", "Tickets", "Points"}, sprintRows)

	fmt.Fprintln(p.w)
}

// PageSummary renders the documentation-platform section for one
// identity.
func (p *Printer) PageSummary(author string, s stats.PageStats) {
	p.title("Pages Analysis - " + author)
	if s.Since != "" {
		p.line("Since", s.Since)
	}

	p.section("Summary")
	p.line("Pages created", FormatInt(s.Created))
	p.line("Pages edited", FormatInt(s.Edited)+"  (others' pages)")
	p.line("Total touched", FormatInt(s.Total))

	p.section(fmt.Sprintf("By Space (%d spaces)", s.Spaces))
	p.table([]string{"Space", "Pages", "Share"}, countRows(s.BySpace, s.Total))

	p.section("By Content Type")
	p.table([]string{"Type", "Pages", "Share"}, countRows(s.ByType, s.Total))

	if len(s.Timeline) > 0 {
		p.section("Activity Timeline")
		rows := make([][]string, 0, len(s.Timeline))
		for _, m := range s.Timeline {
			rows = append(rows, []string{m.Month, FormatInt(m.Created), FormatInt(m.Edited)})
		}
		p.table([]string{"Month", "Created", "Edited"}, rows)
	}

	if s.Versions.Count > 0 {
		v := s.Versions
		p.section("Created Page Versions")
		p.line("Mean/page", fmt.Sprintf("%.1f", v.Mean))
		p.line("Median", fmt.Sprintf("%.1f", v.Median))
		p.line("Max", FormatInt(v.Max))
		if v.Drafts > 0 {
			p.line("Still at v1-2", FormatInt(v.Drafts))
		}
	}

	p.section(fmt.Sprintf("Pages Created (%d)", len(s.CreatedPages)))
	p.pageList(s.CreatedPages, true)

	p.section(fmt.Sprintf("Pages Edited (%d, not created by you)", len(s.EditedPages)))
	p.pageList(s.EditedPages, false)

	fmt.Fprintln(p.w)
}

// pageList renders one page list; created pages show their version and
// creation date, edited pages their last-modified date.
func (p *Printer) pageList(pages []stats.PageListing, withVersion bool) {
	if len(pages) == 0 {
		fmt.Fprintln(p.w, "  (none)")
		return
	}
	rows := make([][]string, 0, len(pages))
	for _, pg := range pages {
		if withVersion {
			v := ""
			if pg.Version > 0 {
				v = strconv.Itoa(pg.Version)
			}
			rows = append(rows, []string{truncate(pg.Space, 8), v, truncate(pg.Title, 58), pg.Created})
			continue
		}
		date := pg.LastModified
		if date == "" {
			date = pg.Created
		}
		rows = append(rows, []string{truncate(pg.Space, 8), truncate(pg.Title, 60), date})
	}
	if withVersion {
		p.table([]string{"Space", "v", "Title", "Created"}, rows)
		return
	}
	p.table([]string{"Space", "Title", "Modified"}, rows)
}

// StripSummary renders the strip-stage completion line.
func (p *Printer) StripSummary(inputPath, outputPath string, rows, inputColumns, outputColumns int) {
	fmt.Fprintf(p.w, "Stripped %s -> %s: %s rows, %s columns reduced to %d\n",
		inputPath, outputPath, FormatInt(rows), FormatInt(inputColumns), outputColumns)
}

func uniqueEpics(epics []stats.Count) int {
	n := 0
	for _, e := range epics {
		if e.Name != stats.NoEpicLabel {
			n++
		}
	}
	return n
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
