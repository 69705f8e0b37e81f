package stats

import (
	"sort"
	"strings"

	"github.com/benkalmus/contribstats/internal/dataset"
)

// PRTotals counts authored pull requests by outcome.
type PRTotals struct {
	PRs    int `json:"prs"`
	Merged int `json:"merged"`
	Open   int `json:"open"`
	Closed int `json:"closed"`
	Draft  int `json:"draft"`
}

// Churn aggregates line and file changes across authored pull requests.
type Churn struct {
	Additions int `json:"additions"`
	Deletions int `json:"deletions"`
	Net       int `json:"net"`
	Total     int `json:"total"`
	Files     int `json:"files"`

	AvgAdditionsPerPR float64 `json:"avg_additions_per_pr"`
	AvgDeletionsPerPR float64 `json:"avg_deletions_per_pr"`
	AvgFilesPerPR     float64 `json:"avg_files_per_pr"`
}

// RepoActivity is one repository's share of the authored work.
type RepoActivity struct {
	Repo      string `json:"repo"`
	PRs       int    `json:"prs"`
	Additions int    `json:"additions"`
	Deletions int    `json:"deletions"`
	Files     int    `json:"files"`
}

// AuthoredStats summarizes the pull requests one identity authored.
type AuthoredStats struct {
	Author            string         `json:"author"`
	Totals            PRTotals       `json:"totals"`
	Churn             Churn          `json:"churn"`
	SizeDistribution  []Count        `json:"size_distribution"`
	TimeToMergeDays   DaySummary     `json:"time_to_merge_days"`
	Repos             []RepoActivity `json:"repos"`
	ReceivedDecisions []Count        `json:"received_decisions"`
	TopReviewers      []Count        `json:"top_reviewers_of_your_work"`
}

// SizeBuckets returns the fixed display order of the churn-size
// distribution.
func SizeBuckets() []string {
	return []string{"XS (<=50)", "S (51-200)", "M (201-500)", "L (501-1000)", "XL (>1000)"}
}

func sizeBucket(pr dataset.PullRequest) string {
	c := pr.Additions + pr.Deletions
	switch {
	case c <= 50:
		return "XS (<=50)"
	case c <= 200:
		return "S (51-200)"
	case c <= 500:
		return "M (201-500)"
	case c <= 1000:
		return "L (501-1000)"
	default:
		return "XL (>1000)"
	}
}

// AnalyzeAuthored derives AuthoredStats from a loaded pull-request
// dataset. author is used to exclude self-reviews from the reviewer
// breakdown.
func AnalyzeAuthored(prs []dataset.PullRequest, author string) AuthoredStats {
	out := AuthoredStats{Author: author}
	out.Totals.PRs = len(prs)

	sizeTally := make(map[string]int)
	repoTally := make(map[string]*RepoActivity)
	decisionTally := make(map[string]int)
	reviewerTally := make(map[string]int)
	var mergeDays []float64

	for _, pr := range prs {
		merged := pr.MergedAt != ""
		switch {
		case merged:
			out.Totals.Merged++
		case pr.State == "OPEN":
			out.Totals.Open++
		case pr.State == "CLOSED":
			out.Totals.Closed++
		}
		if pr.IsDraft {
			out.Totals.Draft++
		}

		out.Churn.Additions += pr.Additions
		out.Churn.Deletions += pr.Deletions
		out.Churn.Files += pr.ChangedFiles

		sizeTally[sizeBucket(pr)]++

		r := repoTally[pr.Repo]
		if r == nil {
			r = &RepoActivity{Repo: pr.Repo}
			repoTally[pr.Repo] = r
		}
		r.PRs++
		r.Additions += pr.Additions
		r.Deletions += pr.Deletions
		r.Files += pr.ChangedFiles

		if merged {
			decision := pr.ReviewDecision
			if decision == "" {
				decision = "NONE"
			}
			decisionTally[decision]++
			if d, ok := daysBetween(pr.CreatedAt, pr.MergedAt); ok {
				mergeDays = append(mergeDays, d)
			}
		}

		for _, rv := range pr.Reviews {
			if rv.Author != "" && rv.Author != author {
				reviewerTally[rv.Author]++
			}
		}
	}

	out.Churn.Net = out.Churn.Additions - out.Churn.Deletions
	out.Churn.Total = out.Churn.Additions + out.Churn.Deletions
	if len(prs) > 0 {
		n := float64(len(prs))
		out.Churn.AvgAdditionsPerPR = round1(float64(out.Churn.Additions) / n)
		out.Churn.AvgDeletionsPerPR = round1(float64(out.Churn.Deletions) / n)
		out.Churn.AvgFilesPerPR = round1(float64(out.Churn.Files) / n)
	}

	// Size buckets keep their fixed order, zero buckets included, so
	// summaries line up across peers.
	for _, bucket := range SizeBuckets() {
		out.SizeDistribution = append(out.SizeDistribution, Count{Name: bucket, Count: sizeTally[bucket]})
	}

	out.TimeToMergeDays = summarizeDays(mergeDays)

	for _, r := range repoTally {
		out.Repos = append(out.Repos, *r)
	}
	sort.Slice(out.Repos, func(i, j int) bool {
		if out.Repos[i].PRs != out.Repos[j].PRs {
			return out.Repos[i].PRs > out.Repos[j].PRs
		}
		return out.Repos[i].Repo < out.Repos[j].Repo
	})

	out.ReceivedDecisions = countsByFrequency(decisionTally)
	out.TopReviewers = topN(countsByFrequency(reviewerTally), 10)
	return out
}

// ReviewedStats summarizes the pull requests one identity reviewed for
// others.
type ReviewedStats struct {
	Reviewer         string  `json:"reviewer"`
	PRsReviewed      int     `json:"total_prs_reviewed"`
	VerdictsGiven    []Count `json:"review_verdicts_given"`
	StrongestVerdict []Count `json:"prs_by_strongest_verdict"`
	AuthorsReviewed  []Count `json:"authors_reviewed"`
	ReposReviewed    []Count `json:"repos_reviewed"`
}

// verdictRank orders review states by strength for the per-PR verdict.
func verdictRank(state string) int {
	switch strings.ToUpper(state) {
	case "APPROVED":
		return 3
	case "CHANGES_REQUESTED":
		return 2
	case "COMMENTED":
		return 1
	default:
		return 0
	}
}

// AnalyzeReviewed derives ReviewedStats from a loaded reviewed-PR
// dataset.
func AnalyzeReviewed(prs []dataset.ReviewedPullRequest, reviewer string) ReviewedStats {
	out := ReviewedStats{Reviewer: reviewer, PRsReviewed: len(prs)}

	verdictTally := make(map[string]int)
	strongestTally := make(map[string]int)
	authorTally := make(map[string]int)
	repoTally := make(map[string]int)

	for _, pr := range prs {
		strongest := ""
		for _, rv := range pr.YourReviews {
			verdictTally[rv.State]++
			if verdictRank(rv.State) > verdictRank(strongest) {
				strongest = rv.State
			}
		}
		if strongest != "" || len(pr.YourReviews) > 0 {
			if strongest == "" {
				strongest = pr.YourReviews[0].State
			}
			strongestTally[strongest]++
		}
		if pr.Author != "" && pr.Author != reviewer {
			authorTally[pr.Author]++
		}
		repoTally[pr.Repo]++
	}

	out.VerdictsGiven = countsByFrequency(verdictTally)
	out.StrongestVerdict = countsByFrequency(strongestTally)
	out.AuthorsReviewed = topN(countsByFrequency(authorTally), 10)
	out.ReposReviewed = countsByFrequency(repoTally)
	return out
}
