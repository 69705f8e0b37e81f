package stats

import (
	"regexp"
	"sort"
	"strings"

	"github.com/benkalmus/contribstats/internal/dataset"
)

// PersonalSpaceLabel groups pages in personal spaces (key starting
// with "~") in the by-space breakdown.
const PersonalSpaceLabel = "Personal"

var (
	rfcTitleRe       = regexp.MustCompile(`\bRFC\b`)
	ddPrefixRe       = regexp.MustCompile(`^DD\s*[-–]`)
	designDocRe      = regexp.MustCompile(`(?i)design\s+doc`)
	implementationRe = regexp.MustCompile(`(?i)\bimplement`)
	flowchartRe      = regexp.MustCompile(`(?i)\bflowchart\b|\bdiagram\b`)
)

// ContentType infers a coarse document category from a page title and
// its space key. Titles win over spaces except for the RFC space, where
// everything is an RFC.
func ContentType(title, space string) string {
	switch {
	case strings.EqualFold(space, "RFC") || rfcTitleRe.MatchString(title):
		return "RFC"
	case ddPrefixRe.MatchString(title) || designDocRe.MatchString(title):
		return "Design Doc"
	case implementationRe.MatchString(title):
		return "Implementation"
	case flowchartRe.MatchString(title):
		return "Flowchart / Diagram"
	default:
		return "Other"
	}
}

// MonthActivity is one month's page activity.
type MonthActivity struct {
	Month   string `json:"month"` // YYYY-MM
	Created int    `json:"created"`
	Edited  int    `json:"edited"`
}

// VersionStats summarizes version counts over created pages.
type VersionStats struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Max    int     `json:"max"`
	Drafts int     `json:"drafts"` // pages still at version 1 or 2
	Count  int     `json:"count"`
}

// PageListing is one page in the created or edited lists.
type PageListing struct {
	Space        string `json:"space"`
	Title        string `json:"title"`
	Created      string `json:"created"`                 // YYYY-MM-DD
	LastModified string `json:"last_modified,omitempty"` // YYYY-MM-DD
	Version      int    `json:"version,omitempty"`
}

// PageStats summarizes a documentation-platform export.
type PageStats struct {
	Since        string          `json:"since"`
	Created      int             `json:"pages_created"`
	Edited       int             `json:"pages_edited"`
	Total        int             `json:"total_pages_touched"`
	Spaces       int             `json:"unique_spaces"`
	BySpace      []Count         `json:"by_space"`
	ByType       []Count         `json:"by_content_type"`
	Timeline     []MonthActivity `json:"timeline"`
	Versions     VersionStats    `json:"versions"`
	CreatedPages []PageListing   `json:"created_pages"`
	EditedPages  []PageListing   `json:"edited_pages"`
}

func spaceLabel(key string) string {
	if strings.HasPrefix(key, "~") {
		return PersonalSpaceLabel
	}
	return key
}

func yearMonth(date string) string {
	if len(date) < 7 {
		return ""
	}
	return date[:7]
}

func shortDate(date string) string {
	if len(date) > 10 {
		return date[:10]
	}
	return date
}

// pageListings converts pages to listing rows, newest first. Created
// pages sort by creation date, edited pages by last-modified date;
// equal dates keep the export's order.
func pageListings(pages []dataset.Page, byCreated bool) []PageListing {
	out := make([]PageListing, 0, len(pages))
	for _, p := range pages {
		l := PageListing{
			Space:        p.Space,
			Title:        p.Title,
			Created:      shortDate(p.Created),
			LastModified: shortDate(p.LastModified),
		}
		if p.VersionNumber != nil {
			l.Version = *p.VersionNumber
		}
		out = append(out, l)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if byCreated {
			return out[i].Created > out[j].Created
		}
		return out[i].LastModified > out[j].LastModified
	})
	return out
}

// AnalyzePages derives PageStats from a loaded export.
func AnalyzePages(export dataset.PagesExport) PageStats {
	all := make([]dataset.Page, 0, len(export.Created)+len(export.Contributed))
	all = append(all, export.Created...)
	all = append(all, export.Contributed...)

	out := PageStats{
		Since:   export.Since,
		Created: len(export.Created),
		Edited:  len(export.Contributed),
		Total:   len(all),
	}

	spaceTally := make(map[string]int)
	typeTally := make(map[string]int)
	teamSpaces := make(map[string]bool)
	personal := false
	for _, p := range all {
		spaceTally[spaceLabel(p.Space)]++
		typeTally[ContentType(p.Title, p.Space)]++
		if strings.HasPrefix(p.Space, "~") {
			personal = true
		} else {
			teamSpaces[p.Space] = true
		}
	}
	out.Spaces = len(teamSpaces)
	if personal {
		out.Spaces++
	}
	out.BySpace = countsByFrequency(spaceTally)
	out.ByType = countsByFrequency(typeTally)

	// Timeline: creations count under the page's created month, edits
	// under the last-modified month (falling back to created).
	months := make(map[string]*MonthActivity)
	touch := func(m string) *MonthActivity {
		a := months[m]
		if a == nil {
			a = &MonthActivity{Month: m}
			months[m] = a
		}
		return a
	}
	for _, p := range export.Created {
		if m := yearMonth(p.Created); m != "" {
			touch(m).Created++
		}
	}
	for _, p := range export.Contributed {
		date := p.LastModified
		if date == "" {
			date = p.Created
		}
		if m := yearMonth(date); m != "" {
			touch(m).Edited++
		}
	}
	keys := make([]string, 0, len(months))
	for m := range months {
		keys = append(keys, m)
	}
	sort.Strings(keys)
	for _, m := range keys {
		out.Timeline = append(out.Timeline, *months[m])
	}

	var versions []float64
	for _, p := range export.Created {
		if p.VersionNumber == nil {
			continue
		}
		v := *p.VersionNumber
		versions = append(versions, float64(v))
		if v > out.Versions.Max {
			out.Versions.Max = v
		}
		if v <= 2 {
			out.Versions.Drafts++
		}
	}
	out.Versions.Count = len(versions)
	if len(versions) > 0 {
		out.Versions.Mean = round1(mean(versions))
		out.Versions.Median = round1(median(versions))
	}

	out.CreatedPages = pageListings(export.Created, true)
	out.EditedPages = pageListings(export.Contributed, false)
	return out
}
