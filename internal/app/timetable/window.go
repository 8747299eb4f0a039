package timetable

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/yigit/examtable/internal/pkg/apperrors"
)

// DateLayout is the ISO calendar date format accepted for window bounds.
const DateLayout = time.DateOnly

// Window is the inclusive [From, To] calendar range a run operates over.
// A nil bound leaves that side open.
type Window struct {
	From *time.Time
	To   *time.Time
}

// ParseDate parses an ISO date (YYYY-MM-DD) to midnight UTC.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, apperrors.NewInputError(fmt.Sprintf("invalid date %q: expected YYYY-MM-DD", s))
	}
	return d, nil
}

// ParseWindow builds a window from optional ISO date strings. Empty strings leave the bound open.
func ParseWindow(start, end string) (Window, error) {
	var w Window
	if strings.TrimSpace(start) != "" {
		d, err := ParseDate(start)
		if err != nil {
			return Window{}, err
		}
		w.From = &d
	}
	if strings.TrimSpace(end) != "" {
		d, err := ParseDate(end)
		if err != nil {
			return Window{}, err
		}
		w.To = &d
	}
	if w.From != nil && w.To != nil && w.From.After(*w.To) {
		return Window{}, apperrors.NewInputError(fmt.Sprintf("start date %s is after end date %s", start, end))
	}
	return w, nil
}

// RequireWindow is ParseWindow for callers that need both bounds.
func RequireWindow(start, end string) (Window, error) {
	if strings.TrimSpace(start) == "" || strings.TrimSpace(end) == "" {
		return Window{}, apperrors.NewInputError("start date and end date are required")
	}
	return ParseWindow(start, end)
}

// NewWindow returns the bounded window [from, to] truncated to calendar days.
func NewWindow(from, to time.Time) Window {
	f := midnight(from)
	t := midnight(to)
	return Window{From: &f, To: &t}
}

// TrailingWindow returns the window of the last n days ending on now's calendar day.
func TrailingWindow(now time.Time, days int) Window {
	if days < 1 {
		days = 1
	}
	return NewWindow(now.AddDate(0, 0, -(days-1)), now)
}

// Bounded reports whether both sides are set.
func (w Window) Bounded() bool {
	return w.From != nil && w.To != nil
}

// Contains reports whether t falls on a calendar day inside the window.
// The day is taken in t's own location.
func (w Window) Contains(t time.Time) bool {
	d := t.Format(DateLayout)
	if w.From != nil && d < w.From.Format(DateLayout) {
		return false
	}
	if w.To != nil && d > w.To.Format(DateLayout) {
		return false
	}
	return true
}

// Days lists every calendar day of a bounded window in chronological order.
func (w Window) Days() []time.Time {
	if !w.Bounded() {
		return nil
	}
	var days []time.Time
	for d := *w.From; !d.After(*w.To); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// DayCount returns the number of days of a bounded window, 0 otherwise.
func (w Window) DayCount() int {
	if !w.Bounded() {
		return 0
	}
	return int(w.To.Sub(*w.From).Hours()/24) + 1
}

// String renders the window for logs.
func (w Window) String() string {
	from, to := "*", "*"
	if w.From != nil {
		from = w.From.Format(DateLayout)
	}
	if w.To != nil {
		to = w.To.Format(DateLayout)
	}
	return "[" + from + ", " + to + "]"
}

// MarshalJSON renders the bounds as ISO dates.
func (w Window) MarshalJSON() ([]byte, error) {
	out := struct {
		StartDate string `json:"startDate,omitempty"`
		EndDate   string `json:"endDate,omitempty"`
	}{}
	if w.From != nil {
		out.StartDate = w.From.Format(DateLayout)
	}
	if w.To != nil {
		out.EndDate = w.To.Format(DateLayout)
	}
	return json.Marshal(out)
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
