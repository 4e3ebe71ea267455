package normalize

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Spreadsheet serial bounds: 1 is 1900-01-01 and 2958465 is 9999-12-31.
const (
	minSerial = 1
	maxSerial = 2958465
)

var (
	serialPattern   = regexp.MustCompile(`^\d{1,5}(\.\d+)?$`)
	compactPattern  = regexp.MustCompile(`^(\d{4})(\d{2})(\d{2})(\d{2,6}(\.\d+)?)?(\[[^\]]*\])?$`)
	isoPattern      = regexp.MustCompile(`^(\d{4})[-/](\d{1,2})[-/](\d{1,2})(?:$|[ T])`)
	dayFirstPattern = regexp.MustCompile(`^(\d{1,2})[/\-.](\d{1,2})[/\-.](\d{4}|\d{2})(?:$|[ T,])`)
)

var freeFormLayouts = []string{
	time.RFC3339,
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	time.RFC822Z,
	time.RFC822,
	time.ANSIC,
	time.UnixDate,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Jan 2, 2006",
	"Jan 2, 2006 15:04",
	"January 2, 2006",
	"2 Jan 2006",
	"02 Jan 2006",
	"2 January 2006",
	"2006-01-02 15:04:05.999999999 -0700 MST",
}

// Date parses a cell into a calendar date at midnight UTC. Slash, dash and dot
// dates are read day first. Numbers and short digit strings are spreadsheet
// serials. The second result is false when nothing matched.
func Date(v any) (time.Time, bool) {
	switch x := v.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		if x.IsZero() {
			return time.Time{}, false
		}
		return calendarDate(x.Year(), x.Month(), x.Day())
	case *time.Time:
		if x == nil || x.IsZero() {
			return time.Time{}, false
		}
		return calendarDate(x.Year(), x.Month(), x.Day())
	case float64:
		return FromSerial(x)
	case float32:
		return FromSerial(float64(x))
	case int:
		return FromSerial(float64(x))
	case int64:
		return FromSerial(float64(x))
	case string:
		return parseDateText(x)
	default:
		return parseDateText(fmt.Sprint(x))
	}
}

// FromSerial converts a 1900-system spreadsheet serial. Serial 60 is the
// phantom 1900-02-29 and lands on 1900-02-28.
func FromSerial(serial float64) (time.Time, bool) {
	if math.IsNaN(serial) || serial < minSerial || serial >= maxSerial+1 {
		return time.Time{}, false
	}
	days := int(math.Floor(serial))
	base := time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)
	if days < 60 {
		base = base.AddDate(0, 0, 1)
	}
	return base.AddDate(0, 0, days), true
}

func parseDateText(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}

	if serialPattern.MatchString(s) {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return time.Time{}, false
		}
		return FromSerial(f)
	}

	if m := compactPattern.FindStringSubmatch(s); m != nil {
		return calendarDate(atoi(m[1]), time.Month(atoi(m[2])), atoi(m[3]))
	}

	if m := isoPattern.FindStringSubmatch(s); m != nil {
		return calendarDate(atoi(m[1]), time.Month(atoi(m[2])), atoi(m[3]))
	}

	if m := dayFirstPattern.FindStringSubmatch(s); m != nil {
		year := atoi(m[3])
		if len(m[3]) == 2 {
			year = expandTwoDigitYear(year)
		}
		return calendarDate(year, time.Month(atoi(m[2])), atoi(m[1]))
	}

	for _, layout := range freeFormLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return calendarDate(t.Year(), t.Month(), t.Day())
		}
	}
	return time.Time{}, false
}

// calendarDate builds a UTC date and rejects values time.Date would
// normalize, such as 31/02.
func calendarDate(year int, month time.Month, day int) (time.Time, bool) {
	if month < time.January || month > time.December || day < 1 || day > 31 || year < 1 || year > 9999 {
		return time.Time{}, false
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || t.Month() != month {
		return time.Time{}, false
	}
	return t, true
}

// expandTwoDigitYear follows the time package pivot: 69-99 is 19xx.
func expandTwoDigitYear(y int) int {
	if y >= 69 {
		return 1900 + y
	}
	return 2000 + y
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
