package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// dateLayouts are the ISO-8601 spellings the onboarding API emits for dates
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.000Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Date is an ISO date that also accepts unix timestamps on decode.
// A date-only value is midnight UTC.
type Date struct {
	time.Time
}

// NewDate wraps t as a Date
func NewDate(t time.Time) *Date {
	return &Date{Time: t}
}

// ParseDate parses an ISO date string in any of the accepted layouts
func ParseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}

// UnmarshalJSON implements json.Unmarshaler
func (d *Date) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			return nil
		}
		t, err := ParseDate(s)
		if err != nil {
			return err
		}
		d.Time = t
		return nil
	}

	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid date value %s: %w", data, err)
	}
	// Values past 1e12 are milliseconds, anything smaller is seconds
	if n > 1_000_000_000_000 {
		d.Time = time.UnixMilli(n).UTC()
	} else {
		d.Time = time.Unix(n, 0).UTC()
	}
	return nil
}

// MarshalJSON implements json.Marshaler
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.UTC().Format(time.RFC3339))
}

// MarshalYAML renders the date the same way as JSON
func (d Date) MarshalYAML() (interface{}, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.UTC().Format(time.RFC3339), nil
}
