package models

import (
	"fmt"
	"strings"
	"time"
)

// dateTimeLayouts are the accepted timestamp formats, tried in order.
// Stored documents use the zoneless form; date-only values come from
// filter inputs and are interpreted in local time.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// DateTime is a timestamp that tolerates the timestamp shapes found in
// persisted documents: RFC3339, zoneless ISO, or a bare calendar date.
type DateTime struct {
	time.Time
}

// NewDateTime wraps a time.Time.
func NewDateTime(t time.Time) DateTime {
	return DateTime{Time: t}
}

// Now returns the current wall-clock time as a DateTime.
func Now() DateTime {
	return DateTime{Time: time.Now()}
}

// ParseDateTime parses s using the accepted layouts. Zoneless values are
// interpreted in local time.
func ParseDateTime(s string) (DateTime, error) {
	for _, layout := range dateTimeLayouts {
		if layout == time.RFC3339Nano {
			if t, err := time.Parse(layout, s); err == nil {
				return DateTime{Time: t}, nil
			}
			continue
		}
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return DateTime{Time: t}, nil
		}
	}
	return DateTime{}, fmt.Errorf("unrecognized timestamp %q", s)
}

// MustParseDateTime is ParseDateTime for fixed literals such as seed data.
func MustParseDateTime(s string) DateTime {
	dt, err := ParseDateTime(s)
	if err != nil {
		panic(err)
	}
	return dt
}

// String formats the timestamp in the zoneless form used by stored documents.
func (d DateTime) String() string {
	return d.Format("2006-01-02T15:04:05")
}

// MarshalJSON implements json.Marshaler.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *DateTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*d = DateTime{}
		return nil
	}
	parsed, err := ParseDateTime(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
