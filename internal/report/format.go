package report

import (
	"fmt"
	"strconv"
)

// FormatInt renders n with thousands separators ("12,345").
func FormatInt(n int) string {
	s := strconv.Itoa(n)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	if len(s) <= 3 {
		if neg {
			return "-" + s
		}
		return s
	}
	var out []byte
	lead := len(s) % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
	}
	for i := lead; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}

// Pct renders n as a whole-number percentage of total; zero total is
// reported as 0% rather than dividing by zero.
func Pct(n, total int) string {
	if total == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.0f%%", float64(n)/float64(total)*100)
}

// FormatDays renders a day count, switching to minutes below one day.
func FormatDays(days float64) string {
	if days < 1 {
		return fmt.Sprintf("%.0f min", days*24*60)
	}
	return fmt.Sprintf("%.1f days", days)
}
