package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateTime parses a JSON date as either date-only ("2006-01-02") or RFC3339.
// Date-only is stored as start of that day in UTC. It also remembers whether
// the field appeared in the body at all, so updates can tell "absent" from
// an explicit null that clears the stored value.
type DateTime struct {
	t   *time.Time
	set bool
}

// NewDateTime wraps t, mostly for tests.
func NewDateTime(t time.Time) DateTime { return DateTime{t: &t, set: true} }

func (d *DateTime) UnmarshalJSON(data []byte) error {
	d.set = true
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil || strings.TrimSpace(*raw) == "" {
		d.t = nil
		return nil
	}
	t, err := ParseDate(strings.TrimSpace(*raw))
	if err != nil {
		return err
	}
	d.t = &t
	return nil
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	if d.t == nil {
		return []byte("null"), nil
	}
	return json.Marshal(d.t)
}

// Ptr returns *time.Time for use in service/domain.
func (d DateTime) Ptr() *time.Time { return d.t }

// Present reports whether the field appeared in the body, including as
// null or "".
func (d DateTime) Present() bool { return d.set }

// ParseDate parses query/body date input. Unlike the JS Date constructor
// there is no epoch sentinel for garbage: malformed input is an error.
func ParseDate(s string) (time.Time, error) {
	layouts := []string{
		"2006-01-02",     // date only
		time.RFC3339,     // 2006-01-02T15:04:05Z07:00
		time.RFC3339Nano, // with nanoseconds
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			// Date-only means start of day UTC.
			if layout == "2006-01-02" {
				parsed = time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
			}
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("use date (YYYY-MM-DD) or RFC3339 datetime")
}
