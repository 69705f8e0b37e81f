package strip

import "fmt"

// DedupeHeader returns a copy of header where repeated names are made
// unique: the first occurrence of a name is kept unchanged, the second
// becomes name_2, the third name_3, and so on. The empty string is a
// name like any other, so a second empty header cell becomes "_2".
//
// The rule is deterministic and position-stable, which keeps downstream
// column references (e.g. "Sprint_2") reproducible across exports.
func DedupeHeader(header []string) []string {
	seen := make(map[string]int, len(header))
	out := make([]string, 0, len(header))
	for _, h := range header {
		seen[h]++
		if seen[h] == 1 {
			out = append(out, h)
			continue
		}
		out = append(out, fmt.Sprintf("%s_%d", h, seen[h]))
	}
	return out
}
