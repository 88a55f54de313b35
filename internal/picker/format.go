package picker

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ncruces/go-strftime"
)

const (
	// DefaultDisplayFormat renders "October 16, 2026 @ 3:05 PM".
	DefaultDisplayFormat = "MMMM DD, YYYY [@] h:mm A"
	// DateOnlyDisplayFormat is used instead of the display format in date-only mode.
	DateOnlyDisplayFormat = "MMMM DD, YYYY"
	// HeaderMonthFormat labels the calendar header.
	HeaderMonthFormat = "MMMM YYYY"
)

// formatTokens is ordered longest first so that greedy matching picks
// "MMMM" over "MM" over "M".
var formatTokens = []string{
	"YYYY", "MMMM", "dddd",
	"MMM", "ddd",
	"YY", "MM", "Do", "DD", "dd", "HH", "hh", "mm", "ss", "ZZ",
	"M", "D", "d", "H", "h", "m", "s", "A", "a", "Z",
}

// Format renders t with a moment-style layout such as "MMMM DD, YYYY [@] h:mm A".
// Text inside square brackets is copied verbatim. Layouts containing '%' are
// treated as strftime layouts instead.
func Format(t time.Time, layout string) string {
	if strings.Contains(layout, "%") {
		return strftime.Format(layout, t)
	}

	var b strings.Builder
	for i := 0; i < len(layout); {
		if layout[i] == '[' {
			if end := strings.IndexByte(layout[i+1:], ']'); end >= 0 {
				b.WriteString(layout[i+1 : i+1+end])
				i += end + 2
				continue
			}
		}

		token := matchToken(layout[i:])
		if token == "" {
			b.WriteByte(layout[i])
			i++
			continue
		}
		b.WriteString(renderToken(t, token))
		i += len(token)
	}
	return b.String()
}

func matchToken(s string) string {
	for _, tok := range formatTokens {
		if strings.HasPrefix(s, tok) {
			return tok
		}
	}
	return ""
}

func renderToken(t time.Time, token string) string {
	hour12, period := From24Hour(t.Hour())
	switch token {
	case "YYYY":
		return fmt.Sprintf("%04d", t.Year())
	case "YY":
		return fmt.Sprintf("%02d", t.Year()%100)
	case "MMMM":
		return t.Month().String()
	case "MMM":
		return t.Month().String()[:3]
	case "MM":
		return fmt.Sprintf("%02d", int(t.Month()))
	case "M":
		return strconv.Itoa(int(t.Month()))
	case "Do":
		return ordinal(t.Day())
	case "DD":
		return fmt.Sprintf("%02d", t.Day())
	case "D":
		return strconv.Itoa(t.Day())
	case "dddd":
		return t.Weekday().String()
	case "ddd":
		return t.Weekday().String()[:3]
	case "dd":
		return t.Weekday().String()[:2]
	case "d":
		return strconv.Itoa(int(t.Weekday()))
	case "HH":
		return fmt.Sprintf("%02d", t.Hour())
	case "H":
		return strconv.Itoa(t.Hour())
	case "hh":
		return fmt.Sprintf("%02d", hour12)
	case "h":
		return strconv.Itoa(hour12)
	case "mm":
		return fmt.Sprintf("%02d", t.Minute())
	case "m":
		return strconv.Itoa(t.Minute())
	case "ss":
		return fmt.Sprintf("%02d", t.Second())
	case "s":
		return strconv.Itoa(t.Second())
	case "A":
		return period.String()
	case "a":
		return strings.ToLower(period.String())
	case "Z":
		return t.Format("-07:00")
	case "ZZ":
		return t.Format("-0700")
	}
	return token
}

func ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}
