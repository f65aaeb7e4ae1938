package session

import (
	"fmt"
	"strings"
	"time"
)

// DurationPlaceholder is shown for a row whose times do not yet form a
// valid interval.
const DurationPlaceholder = "—"

// FallbackCategory is stored when a row's category is left blank.
const FallbackCategory = "Other"

// Entry is one study session as persisted for a calendar date.
type Entry struct {
	Date            string // YYYY-MM-DD
	Start           string // HH:MM, zero-padded
	End             string // HH:MM, zero-padded
	Category        string
	DurationMinutes int
}

// Row is one editable form row as typed by the user. Notes are
// display-only and never persisted.
type Row struct {
	Start    string
	End      string
	Category string
	Notes    string
}

// ParseClock parses 24-hour wall-clock text like "09:30" or "9:30" into
// minutes since midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid time %q (use HH:MM)", s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock renders minutes since midnight as zero-padded HH:MM.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// minutesApart is the span from start to end in minutes, both counted
// from midnight. An end before the start means the session crossed
// midnight and a day is added.
func minutesApart(start, end int) int {
	if end < start {
		end += 24 * 60
	}
	return end - start
}

// MinutesBetween computes the whole-minute duration between two clock
// texts, wrapping overnight when end is earlier than start.
func MinutesBetween(start, end string) (int, error) {
	s, err := ParseClock(start)
	if err != nil {
		return 0, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return 0, err
	}
	return minutesApart(s, e), nil
}

// FormatMinutes renders a duration like "1h 30m", or "45m" under an hour.
func FormatMinutes(minutes int) string {
	h := minutes / 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, minutes%60)
	}
	return fmt.Sprintf("%dm", minutes%60)
}

// FormatTotal renders a day total, always in the "Xh Ym" form.
func FormatTotal(minutes int) string {
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

// DurationLabel is the per-row duration display: the formatted duration,
// or the placeholder while the times do not parse.
func DurationLabel(start, end string) string {
	m, err := MinutesBetween(start, end)
	if err != nil {
		return DurationPlaceholder
	}
	return FormatMinutes(m)
}

// TotalMinutes sums the durations of all valid rows. Rows showing the
// placeholder contribute nothing.
func TotalMinutes(rows []Row) int {
	total := 0
	for _, r := range rows {
		if m, err := MinutesBetween(r.Start, r.End); err == nil {
			total += m
		}
	}
	return total
}

// Collect validates every row for the given date and returns the parsed
// entries plus the 1-based indices of rows whose times fail to parse.
// Every row is examined so the caller can report all offenders at once;
// a non-empty index list means the set must not be saved.
func Collect(date string, rows []Row) ([]Entry, []int) {
	var entries []Entry
	var bad []int
	for i, r := range rows {
		start, errStart := ParseClock(r.Start)
		end, errEnd := ParseClock(r.End)
		if errStart != nil || errEnd != nil {
			bad = append(bad, i+1)
			continue
		}

		category := strings.TrimSpace(r.Category)
		if category == "" {
			category = FallbackCategory
		}

		entries = append(entries, Entry{
			Date:            date,
			Start:           FormatClock(start),
			End:             FormatClock(end),
			Category:        category,
			DurationMinutes: minutesApart(start, end),
		})
	}
	return entries, bad
}

// RowFromEntry turns a stored entry back into an editable form row.
func RowFromEntry(e Entry) Row {
	return Row{
		Start:    e.Start,
		End:      e.End,
		Category: e.Category,
	}
}
