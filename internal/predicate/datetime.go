package predicate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DatetimeOptions models the space-separated option bag that can follow a
// datetime(...) literal.
type DatetimeOptions struct {
	Formats   []string          // format=FMT, one format per token (repeatable); a format,=FMT1,FMT2 list form is not recognized
	Skips     []string          // skips=T1,T2 — substrings/regexes stripped before parsing
	Timezones map[string]int    // timezone=NAME:OFFSET_SEC,...
	ISO       bool              // iso=true
	DayFirst  bool              // dayfirst=true|false; recorded only, the date layouts tried stay month-first
	Fuzzy     bool              // fuzzy=true
}

// ErrUnparsableDatetime is the *predicate-argument* error for a datetime
// literal that no candidate layout, explicit or inferred, can parse.
type ErrUnparsableDatetime struct {
	Value string
}

func (e *ErrUnparsableDatetime) Error() string {
	return fmt.Sprintf("predicate: unable to parse datetime %q", e.Value)
}

// strftimeToGo translates the small set of strftime-like directives this
// package supports (%m %d %Y %H %M %S %f %p %I %y) into Go's
// reference-time layout, since Go's time package has no strftime-style
// formatter of its own (see DESIGN.md for why no pack library fills this
// gap).
func strftimeToGo(format string) string {
	replacer := strings.NewReplacer(
		"%Y", "2006",
		"%y", "06",
		"%m", "01",
		"%d", "02",
		"%H", "15",
		"%I", "03",
		"%M", "04",
		"%S", "05",
		"%f", "000000",
		"%p", "PM",
	)
	return replacer.Replace(format)
}

// defaultDateLayouts and defaultTimeLayouts cover the default formats:
// MM/DD/YYYY, MM-DD-YYYY for dates, and HH:MM:SS[.ffffff][ AM|PM] in
// either 12h or 24h form for times.
var defaultDateLayouts = []string{"01/02/2006", "01-02-2006", "2006-01-02"}

var defaultTimeLayouts = []string{
	"15:04:05",
	"15:04:05.000000",
	"03:04:05 PM",
	"3:04:05 PM",
	"03:04:05PM",
}

// extraLayouts covers the common human-readable forms seen in practice
// (e.g. "Jun 14 11:30 PM 2021") that are not a plain date or a plain time,
// tried as a last resort before failing.
var extraLayouts = []string{
	"Jan 2 3:04 PM 2006",
	"Jan 2 15:04 2006",
	"Jan 2 3:04:05 PM 2006",
	"Jan 2, 2006 3:04 PM",
	time.RFC1123,
	time.RFC1123Z,
	time.RFC3339,
	time.ANSIC,
}

func candidateLayouts(s string) []string {
	var out []string
	out = append(out, defaultDateLayouts...)
	out = append(out, defaultTimeLayouts...)
	for _, d := range defaultDateLayouts {
		for _, t := range defaultTimeLayouts {
			out = append(out, d+" "+t)
		}
	}
	out = append(out, extraLayouts...)
	return out
}

// parseDate parses a calendar date, the date(v) literal's entry point.
func parseDate(v string) (time.Time, error) {
	for _, layout := range defaultDateLayouts {
		if t, err := time.Parse(layout, strings.TrimSpace(v)); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &ErrUnparsableDatetime{Value: v}
}

// parseTime parses a clock time, the time(v) literal's entry point.
func parseTime(v string) (time.Time, error) {
	for _, layout := range defaultTimeLayouts {
		if t, err := time.Parse(layout, strings.TrimSpace(v)); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &ErrUnparsableDatetime{Value: v}
}

func applySkips(s string, skips []string) string {
	for _, skip := range skips {
		if re, err := regexp.Compile(skip); err == nil {
			s = re.ReplaceAllString(s, "")
			continue
		}
		s = strings.ReplaceAll(s, skip, "")
	}
	return strings.TrimSpace(s)
}

// parseDatetime parses an instant, the datetime(v [options]) literal's
// entry point. Each side of a comparison is resolved independently
// through this cascade (explicit formats, then ISO-8601 when iso=true,
// then the default date/time/combined cascade, then a fuzzy sliding
// window) rather than deriving one shared format for both sides, since a
// single derived format can reject a side that a per-side cascade would
// still accept.
func parseDatetime(raw string, opts DatetimeOptions) (time.Time, error) {
	s := applySkips(raw, opts.Skips)

	for _, format := range opts.Formats {
		if t, err := time.Parse(strftimeToGo(format), s); err == nil {
			return t, nil
		}
	}

	if opts.ISO {
		for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
			if t, err := time.Parse(layout, s); err == nil {
				return t, nil
			}
		}
	}

	for _, layout := range candidateLayouts(s) {
		if t, err := time.Parse(layout, s); err == nil {
			return applyTimezones(t, raw, opts.Timezones), nil
		}
	}

	if opts.Fuzzy {
		if t, ok := fuzzyParse(s); ok {
			return t, nil
		}
	}

	return time.Time{}, &ErrUnparsableDatetime{Value: raw}
}

// applyTimezones shifts t by the offset bound to any zone abbreviation
// named in the timezone= option that appears in the original (pre-parse)
// string s.
func applyTimezones(t time.Time, s string, timezones map[string]int) time.Time {
	for name, offsetSec := range timezones {
		if strings.Contains(s, name) {
			return t.Add(-time.Duration(offsetSec) * time.Second)
		}
	}
	return t
}

// fuzzyParse tolerates surrounding prose by sliding a window over the
// input looking for the longest substring any candidate layout accepts.
func fuzzyParse(s string) (time.Time, bool) {
	fields := strings.Fields(s)
	best := time.Time{}
	found := false
	bestLen := 0
	for i := range fields {
		for j := len(fields); j > i; j-- {
			window := strings.Join(fields[i:j], " ")
			for _, layout := range candidateLayouts(window) {
				if t, err := time.Parse(layout, window); err == nil {
					if !found || len(window) > bestLen {
						best, found, bestLen = t, true, len(window)
					}
				}
			}
		}
	}
	return best, found
}

// isDatetimeOptionToken reports whether part starts with one of the
// recognized option keys (format=, skips=, timezone=, iso=, dayfirst=,
// fuzzy=), case-insensitively.
func isDatetimeOptionToken(part string) bool {
	lower := strings.ToLower(part)
	for _, prefix := range []string{"format=", "skips=", "timezone=", "iso=", "dayfirst=", "fuzzy="} {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}

// parseDatetimeOption parses the `datetime(value [options])` right-hand
// form's option bag: format=FMT, skips=T1,T2, timezone=NAME:
// OFFSET,..., iso=true, dayfirst=true|false, fuzzy=true, space-separated.
func parseDatetimeOption(spec string) (string, DatetimeOptions) {
	parts := strings.Fields(spec)
	if len(parts) == 0 {
		return spec, DatetimeOptions{}
	}
	// The value itself may contain spaces (e.g. "Jun 14 11:30 PM 2021"), so
	// options are recognized only as a trailing run of key=value tokens;
	// everything before that run is rejoined as the value.
	end := len(parts)
	for end > 1 && isDatetimeOptionToken(parts[end-1]) {
		end--
	}
	value := strings.Join(parts[:end], " ")
	opts := DatetimeOptions{Timezones: map[string]int{}}
	for _, part := range parts[end:] {
		switch {
		case strings.HasPrefix(part, "format="):
			opts.Formats = append(opts.Formats, strings.TrimPrefix(part, "format="))
		case strings.HasPrefix(part, "skips="):
			for _, s := range strings.Split(strings.TrimPrefix(part, "skips="), ",") {
				if s = strings.TrimSpace(s); s != "" {
					opts.Skips = append(opts.Skips, s)
				}
			}
		case strings.HasPrefix(part, "timezone="):
			for _, entry := range strings.Split(strings.TrimPrefix(part, "timezone="), ",") {
				kv := strings.SplitN(entry, ":", 2)
				if len(kv) != 2 {
					continue
				}
				name := strings.TrimSpace(kv[0])
				offset, err := strconv.Atoi(strings.TrimSpace(kv[1]))
				if err == nil {
					opts.Timezones[name] = offset
				}
			}
		case strings.EqualFold(part, "iso=true"):
			opts.ISO = true
		case strings.EqualFold(part, "dayfirst=true"):
			opts.DayFirst = true
		case strings.EqualFold(part, "fuzzy=true"):
			opts.Fuzzy = true
		}
	}
	return value, opts
}

// CompareDate implements the date(v) entry point used as a comparator
// family: both sides parse as a calendar date (the default MM/DD/YYYY,
// MM-DD-YYYY formats) and compare by instant at midnight.
func CompareDate(value string, op CompareOp, other string) (bool, error) {
	switch op {
	case OpLT, OpLE, OpGT, OpGE, OpEQ, OpNE:
	default:
		return false, &ErrInvalidOperator{Op: string(op), Family: "compare_date", Expected: []CompareOp{OpLT, OpLE, OpGT, OpGE, OpEQ, OpNE}}
	}
	v, err := parseDate(value)
	if err != nil {
		return false, err
	}
	o, err := parseDate(other)
	if err != nil {
		return false, err
	}
	return compareInstants(v, o, op), nil
}

// CompareTime implements the time(v) entry point used as a comparator
// family: both sides parse as a clock time and compare by instant, with
// the calendar date pinned at the zero date so only time-of-day matters.
func CompareTime(value string, op CompareOp, other string) (bool, error) {
	switch op {
	case OpLT, OpLE, OpGT, OpGE, OpEQ, OpNE:
	default:
		return false, &ErrInvalidOperator{Op: string(op), Family: "compare_time", Expected: []CompareOp{OpLT, OpLE, OpGT, OpGE, OpEQ, OpNE}}
	}
	v, err := parseTime(value)
	if err != nil {
		return false, err
	}
	o, err := parseTime(other)
	if err != nil {
		return false, err
	}
	return compareInstants(v, o, op), nil
}

func compareInstants(v, o time.Time, op CompareOp) bool {
	switch op {
	case OpLT:
		return v.Before(o)
	case OpLE:
		return v.Before(o) || v.Equal(o)
	case OpGT:
		return v.After(o)
	case OpGE:
		return v.After(o) || v.Equal(o)
	case OpEQ:
		return v.Equal(o)
	case OpNE:
		return !v.Equal(o)
	}
	return false
}

// CompareDatetime implements compare_datetime(op, other): both sides parse
// as an instant (via parseDatetime's cascade) and are compared by
// instant, not by string.
func CompareDatetime(value string, op CompareOp, other string) (bool, error) {
	switch op {
	case OpLT, OpLE, OpGT, OpGE, OpEQ, OpNE:
	default:
		return false, &ErrInvalidOperator{Op: string(op), Family: "compare_datetime", Expected: []CompareOp{OpLT, OpLE, OpGT, OpGE, OpEQ, OpNE}}
	}
	otherValue, opts := parseDatetimeOption(other)

	v, err := parseDatetime(value, DatetimeOptions{})
	if err != nil {
		return false, err
	}
	o, err := parseDatetime(otherValue, opts)
	if err != nil {
		return false, err
	}

	return compareInstants(v, o, op), nil
}
