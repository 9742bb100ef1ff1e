package datemath

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DateFormatISO is the wire format for resolved due dates.
const DateFormatISO = "2006-01-02"

// Resolver finds best-effort due dates in free text.
// It is intentionally conservative: it is better to miss a date than to
// mis-schedule a task, so ambiguous numeric patterns are never guessed.
type Resolver struct {
	location *time.Location
}

// NewResolver creates a resolver for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewResolver(timezone string) (*Resolver, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Resolver{location: loc}, nil
}

var (
	todayRe    = regexp.MustCompile(`\btoday\b`)
	tomorrowRe = regexp.MustCompile(`\btomorrow\b`)
	nextWeekRe = regexp.MustCompile(`\bnext week\b`)
	weekdayRe  = regexp.MustCompile(`\b(next\s+)?(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)
)

var weekdayIndex = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ResolveDueDate scans a text segment for a relative date phrase and
// resolves it against the reference time. The second return value is false
// when no date phrase was found. Date arithmetic is calendar-day granular;
// time-of-day in the reference is irrelevant.
func (r *Resolver) ResolveDueDate(segment string, now time.Time) (DueDate, bool) {
	t := strings.ToLower(segment)
	ref := now.In(r.location)

	switch {
	case todayRe.MatchString(t):
		return DueDate{ISODate: isoDate(ref), Confidence: 0.9}, true
	case tomorrowRe.MatchString(t):
		return DueDate{ISODate: isoDate(ref.AddDate(0, 0, 1)), Confidence: 0.9}, true
	case nextWeekRe.MatchString(t):
		return DueDate{ISODate: isoDate(ref.AddDate(0, 0, 7)), Confidence: 0.6}, true
	}

	if m := weekdayRe.FindStringSubmatch(t); m != nil {
		forceNextWeek := m[1] != ""
		target := weekdayIndex[m[2]]

		confidence := 0.8
		if forceNextWeek {
			confidence = 0.7
		}

		return DueDate{
			ISODate:    isoDate(nextWeekday(ref, target, forceNextWeek)),
			Confidence: confidence,
		}, true
	}

	return DueDate{}, false
}

// nextWeekday resolves the next occurrence of target strictly after from.
// A target equal to today's weekday rolls forward a full 7 days; "next"
// adds a further week on top.
func nextWeekday(from time.Time, target time.Weekday, forceNextWeek bool) time.Time {
	delta := (int(target) - int(from.Weekday()) + 7) % 7
	if delta == 0 {
		delta = 7
	}
	if forceNextWeek {
		delta += 7
	}
	return from.AddDate(0, 0, delta)
}

func isoDate(t time.Time) string {
	return t.Format(DateFormatISO)
}
