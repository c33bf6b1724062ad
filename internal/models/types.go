package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar-date format used for tenancy windows
const DateLayout = "2006-01-02"

// timestampLayouts are tried in order; values without a zone are read as UTC
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	DateLayout,
}

// ID is a resource identifier. The API emits either strings or integers.
type ID string

func (id ID) String() string { return string(id) }

// UnmarshalJSON accepts a JSON string, a JSON number or null
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// Timestamp is an ISO-8601 instant as exchanged with the API
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps t
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// TimestampPtr wraps t and returns a pointer, handy for nullable fields
func TimestampPtr(t time.Time) *Timestamp {
	ts := NewTimestamp(t)
	return &ts
}

// ParseTimestamp parses the ISO-8601 forms the API and the bid form produce
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("parse timestamp: empty value")
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("parse timestamp %q: unsupported format", s)
}

// UnmarshalJSON accepts null, an empty string or any supported layout
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		t.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	if s == "" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

// MarshalJSON writes RFC 3339 in UTC, or null for the zero value
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.UTC().Format(time.RFC3339Nano))
}
