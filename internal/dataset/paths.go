package dataset

import "path/filepath"

// Paths derives the conventional file locations inside the cache
// directory. Every dataset is keyed by the identity (code-hosting
// login) it was fetched for; the primary identity, passed as the empty
// string, keeps the historical bare names so existing fetch output is
// picked up unchanged.
type Paths struct {
	Dir string
}

func (p Paths) join(name string) string {
	dir := p.Dir
	if dir == "" {
		dir = "data"
	}
	return filepath.Join(dir, name)
}

func (p Paths) keyed(author, name string) string {
	if author == "" {
		return p.join(name)
	}
	return p.join(author + "_" + name)
}

// AuthoredPRs is the JSON array of pull requests the identity authored.
func (p Paths) AuthoredPRs(author string) string {
	return p.keyed(author, "prs.json")
}

// ReviewedPRs is the JSON array of pull requests the identity reviewed.
func (p Paths) ReviewedPRs(author string) string {
	return p.keyed(author, "reviewed_prs.json")
}

// Pages is the documentation-platform export JSON.
func (p Paths) Pages(author string) string {
	return p.keyed(author, "confluence.json")
}

// TicketExport is the raw, wide ticket-tracker CSV export.
func (p Paths) TicketExport(author string) string {
	return p.keyed(author, "jira_raw.csv")
}

// Tickets is the stripped ticket CSV produced by the strip stage.
func (p Paths) Tickets(author string) string {
	return p.keyed(author, "jira.csv")
}

// Stats is the JSON stats output for one summary section.
func (p Paths) Stats(author, section string) string {
	return p.keyed(author, section+"_stats.json")
}
