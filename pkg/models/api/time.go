package api

import (
	"bytes"
	"fmt"
	"strings"
	"time"
)

const (
	localDateTimeLayout = "2006-01-02T15:04:05"
	localDateLayout     = "2006-01-02"
)

// LocalDateTime is a zone-less timestamp as serialized by the dashboard API
// (2025-01-05T10:30:00). Values are read as UTC.
type LocalDateTime struct {
	time.Time
}

// LocalDate is a calendar date (2025-01-05).
type LocalDate struct {
	time.Time
}

func (t LocalDateTime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.UTC().Format(localDateTimeLayout) + `"`), nil
}

func (t *LocalDateTime) UnmarshalJSON(data []byte) error {
	parsed, err := parseJSONTime(data, localDateTimeLayout+".999999999")
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

func (d LocalDate) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.UTC().Format(localDateLayout) + `"`), nil
}

func (d *LocalDate) UnmarshalJSON(data []byte) error {
	parsed, err := parseJSONTime(data, localDateLayout)
	if err != nil {
		return err
	}
	d.Time = parsed
	return nil
}

// parseJSONTime accepts the zone-less layout, RFC 3339 and null.
func parseJSONTime(data []byte, layout string) (time.Time, error) {
	if bytes.Equal(data, []byte("null")) {
		return time.Time{}, nil
	}

	raw := strings.Trim(string(data), `"`)
	if raw == "" {
		return time.Time{}, nil
	}
	if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("cannot parse %q as %s", raw, layout)
}
