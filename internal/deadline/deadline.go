// Package deadline converts free-form deadline text into absolute local times.
//
// Accepted forms, tried in order:
//
//	2025-03-01 18:30   exact local date and time
//	2025-03-01         that day at 23:59:59
//	today, tomorrow, nextweek (any case)
//	+2d 3h 30m         offset from now; units d/day/days, h/hour/hours,
//	                   m/min/mins/minute/minutes; +-2d lies in the past
package deadline

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidFormat is returned when text matches none of the accepted forms.
var ErrInvalidFormat = errors.New("invalid deadline format (use YYYY-MM-DD HH:MM, YYYY-MM-DD, today, tomorrow, nextweek or +<offset> like +2d 3h)")

// Layout is the text layout deadlines are stored in.
const Layout = "2006-01-02 15:04:05 -07:00"

const (
	dateTimeLayout = "2006-01-02 15:04"
	dateLayout     = "2006-01-02"
)

// Parser parses deadline text relative to a clock.
// The zero value uses time.Now and time.Local.
type Parser struct {
	Now      func() time.Time
	Location *time.Location
}

// Parse parses text with the wall clock in the local time zone.
func Parse(text string) (time.Time, error) {
	return Parser{}.Parse(text)
}

// Parse converts text into an absolute time.
func (p Parser) Parse(text string) (time.Time, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return time.Time{}, ErrInvalidFormat
	}
	loc := p.location()
	now := p.now().In(loc)

	if t, err := time.ParseInLocation(dateTimeLayout, s, loc); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(dateLayout, s, loc); err == nil {
		return endOfDay(t), nil
	}

	switch strings.ToLower(s) {
	case "today":
		return endOfDay(now), nil
	case "tomorrow":
		return endOfDay(now.AddDate(0, 0, 1)), nil
	case "nextweek":
		return endOfDay(now.AddDate(0, 0, 7)), nil
	}

	if offset, ok := strings.CutPrefix(s, "+"); ok {
		d, err := parseOffset(offset)
		if err != nil {
			return time.Time{}, err
		}
		return now.Add(d), nil
	}

	return time.Time{}, ErrInvalidFormat
}

func (p Parser) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}

func (p Parser) location() *time.Location {
	if p.Location != nil {
		return p.Location
	}
	return time.Local
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, 0, t.Location())
}

// unitSuffixes is ordered so that longer suffixes are tried first.
var unitSuffixes = []struct {
	suffix string
	unit   time.Duration
}{
	{"minutes", time.Minute},
	{"minute", time.Minute},
	{"hours", time.Hour},
	{"days", 24 * time.Hour},
	{"mins", time.Minute},
	{"hour", time.Hour},
	{"day", 24 * time.Hour},
	{"min", time.Minute},
	{"d", 24 * time.Hour},
	{"h", time.Hour},
	{"m", time.Minute},
}

// parseOffset sums whitespace-separated "<int><unit>" tokens. The unit is
// matched as a suffix and everything before it must be an integer, which may
// be negative. Tokens ending in no known unit add nothing.
func parseOffset(s string) (time.Duration, error) {
	var total time.Duration
	for _, tok := range strings.Fields(s) {
		d, ok, err := parseOffsetToken(tok)
		if err != nil {
			return 0, err
		}
		if !ok {
			continue
		}
		if (d > 0 && total > math.MaxInt64-d) || (d < 0 && total < math.MinInt64-d) {
			return 0, fmt.Errorf("%w: offset %q out of range", ErrInvalidFormat, s)
		}
		total += d
	}
	return total, nil
}

func parseOffsetToken(tok string) (time.Duration, bool, error) {
	lower := strings.ToLower(tok)
	for _, u := range unitSuffixes {
		magnitude, found := strings.CutSuffix(lower, u.suffix)
		if !found {
			continue
		}
		n, err := strconv.ParseInt(magnitude, 10, 64)
		if err != nil {
			return 0, false, fmt.Errorf("%w: bad offset %q", ErrInvalidFormat, tok)
		}
		if n > math.MaxInt64/int64(u.unit) || n < math.MinInt64/int64(u.unit) {
			return 0, false, fmt.Errorf("%w: offset %q out of range", ErrInvalidFormat, tok)
		}
		return time.Duration(n) * u.unit, true, nil
	}
	return 0, false, nil
}

// Format renders t in the stored layout.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// ParseStored parses text previously produced by Format.
func ParseStored(s string) (time.Time, error) {
	return time.Parse(Layout, s)
}

// Overdue reports whether a stored deadline lies before now.
// Text that cannot be parsed is never overdue.
func Overdue(stored string, now time.Time) bool {
	t, err := ParseStored(stored)
	if err != nil {
		return false
	}
	return t.Before(now)
}
