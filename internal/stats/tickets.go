package stats

import (
	"sort"
	"strconv"
	"strings"
)

// NoEpicLabel groups tickets without a parent epic in the epic
// breakdown.
const NoEpicLabel = "— (no epic)"

// sprintColumns are the deduplicated multi-value sprint columns of the
// stripped ticket schema.
var sprintColumns = []string{"Sprint", "Sprint_2", "Sprint_3"}

// TicketTotals counts tickets by relationship to the identity.
type TicketTotals struct {
	Tickets    int     `json:"tickets"`
	Assigned   int     `json:"assigned"`
	Reported   int     `json:"reported"`
	Both       int     `json:"both"`
	Resolved   int     `json:"resolved"`
	Bugs       int     `json:"bugs"`
	BugRatePct float64 `json:"bug_rate_pct"`
}

// StoryPoints aggregates the story-point custom field.
type StoryPoints struct {
	Total           float64 `json:"total"`
	MeanPerTicket   float64 `json:"mean_per_ticket"`
	MedianPerTicket float64 `json:"median_per_ticket"`
	Counted         int     `json:"counted"`
	Missing         int     `json:"missing_count"`
}

// SprintActivity is one sprint's ticket and story-point share.
type SprintActivity struct {
	Sprint      string  `json:"sprint"`
	Tickets     int     `json:"tickets"`
	StoryPoints float64 `json:"story_points"`
}

// TicketStats summarizes a stripped ticket CSV.
type TicketStats struct {
	AssigneeName  string           `json:"assignee_name"`
	Totals        TicketTotals     `json:"totals"`
	ByType        []Count          `json:"by_type"`
	ByPriority    []Count          `json:"by_priority"`
	ByProject     []Count          `json:"by_project"`
	StoryPoints   StoryPoints      `json:"story_points"`
	CycleTimeDays DaySummary       `json:"cycle_time_days"`
	Epics         []Count          `json:"epics"`
	Sprints       []SprintActivity `json:"sprints"`
}

// InferAssigneeName returns the most frequent non-empty Assignee value,
// which is the issue tracker's display name for the identity (ticket
// exports do not carry the code-hosting login).
func InferAssigneeName(rows []map[string]string) string {
	tally := make(map[string]int)
	for _, r := range rows {
		if name := strings.TrimSpace(r["Assignee"]); name != "" {
			tally[name]++
		}
	}
	counts := countsByFrequency(tally)
	if len(counts) == 0 {
		return ""
	}
	return counts[0].Name
}

func storyPoints(row map[string]string) (float64, bool) {
	raw := strings.TrimSpace(row["Custom field (Story Points)"])
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func ticketSprints(row map[string]string) []string {
	var out []string
	for _, col := range sprintColumns {
		if v := strings.TrimSpace(row[col]); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func orUnknown(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "Unknown"
	}
	return v
}

// AnalyzeTickets derives TicketStats from stripped ticket rows.
// assigneeName is the tracker display name used for the
// assigned/reported breakdown; pass the result of InferAssigneeName
// when it is not known up front.
func AnalyzeTickets(rows []map[string]string, assigneeName string) TicketStats {
	out := TicketStats{AssigneeName: assigneeName}
	out.Totals.Tickets = len(rows)

	typeTally := make(map[string]int)
	priorityTally := make(map[string]int)
	projectTally := make(map[string]int)
	epicTally := make(map[string]int)
	sprintTickets := make(map[string]int)
	sprintPoints := make(map[string]float64)
	var pointValues []float64
	var cycleDays []float64

	for _, r := range rows {
		assignee := strings.TrimSpace(r["Assignee"])
		reporter := strings.TrimSpace(r["Reporter"])
		if assigneeName != "" && assignee == assigneeName {
			out.Totals.Assigned++
		}
		if assigneeName != "" && reporter == assigneeName {
			out.Totals.Reported++
		}
		if assigneeName != "" && assignee == assigneeName && reporter == assigneeName {
			out.Totals.Both++
		}

		issueType := orUnknown(r["Issue Type"])
		typeTally[issueType]++
		priorityTally[orUnknown(r["Priority"])]++
		projectTally[orUnknown(r["Project key"])]++
		if strings.EqualFold(strings.TrimSpace(r["Issue Type"]), "bug") {
			out.Totals.Bugs++
		}

		points, havePoints := storyPoints(r)
		if havePoints {
			pointValues = append(pointValues, points)
		}

		if d, ok := daysBetween(r["Created"], r["Resolved"]); ok {
			cycleDays = append(cycleDays, d)
		}

		epic := strings.TrimSpace(r["Parent summary"])
		if epic == "" {
			epic = NoEpicLabel
		}
		epicTally[epic]++

		for _, sprint := range ticketSprints(r) {
			sprintTickets[sprint]++
			if havePoints {
				sprintPoints[sprint] += points
			}
		}
	}

	if out.Totals.Tickets > 0 {
		out.Totals.BugRatePct = round1(float64(out.Totals.Bugs) / float64(out.Totals.Tickets) * 100)
	}

	out.ByType = countsByFrequency(typeTally)
	out.ByPriority = countsByFrequency(priorityTally)
	out.ByProject = countsByFrequency(projectTally)
	out.Epics = countsByFrequency(epicTally)

	out.StoryPoints.Counted = len(pointValues)
	out.StoryPoints.Missing = len(rows) - len(pointValues)
	if len(pointValues) > 0 {
		var total float64
		for _, v := range pointValues {
			total += v
		}
		out.StoryPoints.Total = round1(total)
		out.StoryPoints.MeanPerTicket = round1(mean(pointValues))
		out.StoryPoints.MedianPerTicket = round1(median(pointValues))
	}

	out.CycleTimeDays = summarizeDays(cycleDays)
	out.Totals.Resolved = out.CycleTimeDays.Count

	// Sprints sort by name so consecutive sprints line up
	// chronologically under the usual naming convention.
	sprints := make([]string, 0, len(sprintTickets))
	for s := range sprintTickets {
		sprints = append(sprints, s)
	}
	sort.Strings(sprints)
	for _, s := range sprints {
		out.Sprints = append(out.Sprints, SprintActivity{
			Sprint:      s,
			Tickets:     sprintTickets[s],
			StoryPoints: round1(sprintPoints[s]),
		})
	}
	return out
}
