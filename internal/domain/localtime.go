package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// localDateTimeLayout is ISO-8601 without a zone. Trailing zero fractional
// digits are dropped when formatting; parsing accepts any fraction.
const localDateTimeLayout = "2006-01-02T15:04:05.999999999"

// minuteLayout is accepted on input only.
const minuteLayout = "2006-01-02T15:04"

// LocalDateTime is a calendar timestamp with no timezone. Values are held in
// UTC purely as a container; no conversion is ever applied.
type LocalDateTime struct {
	time.Time
}

// NewLocalDateTime builds a LocalDateTime from calendar fields
func NewLocalDateTime(year int, month time.Month, day, hour, min, sec int) LocalDateTime {
	return LocalDateTime{Time: time.Date(year, month, day, hour, min, sec, 0, time.UTC)}
}

// ParseLocalDateTime parses "2006-01-02T15:04:05[.fff]" or "2006-01-02T15:04".
// Inputs carrying a zone offset are rejected.
func ParseLocalDateTime(s string) (LocalDateTime, error) {
	t, err := time.Parse(localDateTimeLayout, s)
	if err == nil {
		return LocalDateTime{Time: t}, nil
	}
	if t, err2 := time.Parse(minuteLayout, s); err2 == nil {
		return LocalDateTime{Time: t}, nil
	}
	return LocalDateTime{}, fmt.Errorf("invalid local date-time %q: expected YYYY-MM-DDTHH:MM:SS", s)
}

// String formats the timestamp in its wire form
func (l LocalDateTime) String() string {
	return l.Time.Format(localDateTimeLayout)
}

func (l LocalDateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

func (l *LocalDateTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("local date-time must be a string: %w", err)
	}
	parsed, err := ParseLocalDateTime(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// Value stores the timestamp as TEXT so the driver never applies a zone
func (l LocalDateTime) Value() (driver.Value, error) {
	return l.String(), nil
}

func (l *LocalDateTime) Scan(src any) error {
	switch v := src.(type) {
	case string:
		parsed, err := ParseLocalDateTime(v)
		if err != nil {
			return err
		}
		*l = parsed
	case []byte:
		parsed, err := ParseLocalDateTime(string(v))
		if err != nil {
			return err
		}
		*l = parsed
	case time.Time:
		*l = LocalDateTime{Time: time.Date(v.Year(), v.Month(), v.Day(), v.Hour(), v.Minute(), v.Second(), v.Nanosecond(), time.UTC)}
	default:
		return fmt.Errorf("cannot scan %T into LocalDateTime", src)
	}
	return nil
}
