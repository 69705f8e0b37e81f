package dataset_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/benkalmus/contribstats/internal/dataset"
)

func TestPaths(t *testing.T) {
	p := dataset.Paths{Dir: "cache"}

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"primary authored prs", p.AuthoredPRs(""), filepath.Join("cache", "prs.json")},
		{"keyed authored prs", p.AuthoredPRs("bob"), filepath.Join("cache", "bob_prs.json")},
		{"keyed reviewed prs", p.ReviewedPRs("bob"), filepath.Join("cache", "bob_reviewed_prs.json")},
		{"keyed pages", p.Pages("bob"), filepath.Join("cache", "bob_confluence.json")},
		{"keyed ticket export", p.TicketExport("bob"), filepath.Join("cache", "bob_jira_raw.csv")},
		{"keyed tickets", p.Tickets("bob"), filepath.Join("cache", "bob_jira.csv")},
		{"stats section", p.Stats("bob", "pr"), filepath.Join("cache", "bob_pr_stats.json")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Fatalf("got %q want %q", tt.got, tt.want)
			}
		})
	}

	t.Run("empty dir defaults to data", func(t *testing.T) {
		p := dataset.Paths{}
		if got := p.Tickets("bob"); got != filepath.Join("data", "bob_jira.csv") {
			t.Fatalf("got %q", got)
		}
	})
}

func TestLoadAuthoredPRs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prs.json")
	body := `[
  {
    "number": 12,
    "title": "Add retry",
    "state": "MERGED",
    "createdAt": "2025-06-01T10:00:00Z",
    "mergedAt": "2025-06-02T10:00:00Z",
    "additions": 120,
    "deletions": 8,
    "changedFiles": 4,
    "reviewDecision": "APPROVED",
    "reviews": [{"author": "carol", "state": "APPROVED", "submittedAt": "2025-06-01T12:00:00Z"}],
    "labels": ["bug"],
    "author": "bob",
    "repo": "org/widgets"
  }
]`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	prs, err := dataset.LoadAuthoredPRs(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(prs) != 1 {
		t.Fatalf("len=%d want=1", len(prs))
	}
	pr := prs[0]
	if pr.Number != 12 || pr.Repo != "org/widgets" || pr.Author != "bob" {
		t.Fatalf("unexpected pr: %+v", pr)
	}
	if len(pr.Reviews) != 1 || pr.Reviews[0].Author != "carol" {
		t.Fatalf("unexpected reviews: %+v", pr.Reviews)
	}
}

func TestLoadReviewedPRs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reviewed.json")
	body := `[
  {
    "number": 7,
    "state": "MERGED",
    "author": "alice",
    "repo": "org/api",
    "your_reviews": [{"author": "bob", "state": "CHANGES_REQUESTED", "submittedAt": ""}]
  }
]`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	prs, err := dataset.LoadReviewedPRs(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(prs) != 1 || prs[0].Author != "alice" {
		t.Fatalf("unexpected prs: %+v", prs)
	}
	if len(prs[0].YourReviews) != 1 || prs[0].YourReviews[0].State != "CHANGES_REQUESTED" {
		t.Fatalf("unexpected your_reviews: %+v", prs[0].YourReviews)
	}
}

func TestLoadPages(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "confluence.json")
	body := `{
  "since": "2025-05-28",
  "created": [{"title": "RFC 42", "space": "RFC", "created": "2025-06-03", "version_number": 5}],
  "contributed": [{"title": "Runbook", "space": "OPS", "last_modified": "2025-07-01"}]
}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	export, err := dataset.LoadPages(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if export.Since != "2025-05-28" || len(export.Created) != 1 || len(export.Contributed) != 1 {
		t.Fatalf("unexpected export: %+v", export)
	}
	if export.Created[0].VersionNumber == nil || *export.Created[0].VersionNumber != 5 {
		t.Fatalf("unexpected version: %+v", export.Created[0])
	}
	if export.Contributed[0].VersionNumber != nil {
		t.Fatalf("version should be absent: %+v", export.Contributed[0])
	}
}

func TestLoadTickets(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tickets.csv")
	body := "Summary,Sprint,Sprint_2\nfix login,s1,s2\nwrite docs,s3\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	rows, err := dataset.LoadTickets(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len=%d want=2", len(rows))
	}
	if rows[0]["Sprint_2"] != "s2" {
		t.Fatalf("unexpected row: %+v", rows[0])
	}
	// Ragged row: Sprint_2 missing from the record maps to "".
	if got, ok := rows[1]["Sprint_2"]; !ok || got != "" {
		t.Fatalf("unexpected ragged row: %+v", rows[1])
	}
}

func TestWriteJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "stats.json")

	if err := dataset.WriteJSON(path, map[string]int{"tickets": 3}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"tickets\": 3\n}\n"
	if string(b) != want {
		t.Fatalf("got %q want %q", b, want)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("stray temp files: %v", entries)
	}
}
