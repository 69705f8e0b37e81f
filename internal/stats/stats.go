// Package stats derives contribution summaries from loaded datasets.
// Every analyser is a pure function: same dataset in, same stats out,
// with breakdowns held as ordered slices so rendering and JSON output
// stay deterministic.
package stats

import (
	"math"
	"sort"
	"strings"
	"time"
)

// Count is one name/value pair of an ordered breakdown.
type Count struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// countsByFrequency flattens a tally map into a slice sorted by
// descending count, ties broken by name.
func countsByFrequency(m map[string]int) []Count {
	out := make([]Count, 0, len(m))
	for name, n := range m {
		out = append(out, Count{Name: name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func topN(counts []Count, n int) []Count {
	if len(counts) <= n {
		return counts
	}
	return counts[:n]
}

// DaySummary describes a set of durations measured in days. Count of
// zero means no samples; the other fields are meaningless then.
type DaySummary struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Count  int     `json:"count"`
}

func summarizeDays(vals []float64) DaySummary {
	if len(vals) == 0 {
		return DaySummary{}
	}
	min, max := vals[0], vals[0]
	for _, v := range vals[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return DaySummary{
		Mean:   round1(mean(vals)),
		Median: round1(median(vals)),
		Min:    round1(min),
		Max:    round1(max),
		Count:  len(vals),
	}
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

func median(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// parseWhen parses a platform timestamp. The API side emits RFC 3339;
// ticket exports use a localized "02/Jan/06 3:04 PM" form, sometimes a
// bare date, and numeric zone offsets without a colon. Naive times are
// taken as UTC.
func parseWhen(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	formats := []string{
		time.RFC3339,
		"02/Jan/06 3:04 PM",
		"2006-01-02T15:04:05.000-0700",
		"2006-01-02",
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// daysBetween returns the calendar-day distance between two timestamp
// strings, or false when either fails to parse.
func daysBetween(a, b string) (float64, bool) {
	ta, okA := parseWhen(a)
	tb, okB := parseWhen(b)
	if !okA || !okB {
		return 0, false
	}
	return math.Abs(tb.Sub(ta).Hours()) / 24, true
}
