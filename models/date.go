package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// DateOnly stores a calendar date without a time component. The frontend
// exchanges dates as "YYYY-MM-DD" strings, which time.Time refuses to
// unmarshal, so we wrap it.
type DateOnly struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) DateOnly {
	return DateOnly{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d DateOnly) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *DateOnly) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	d.Time = t
	return nil
}

// Value implements driver.Valuer; zero dates persist as NULL.
func (d DateOnly) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Time, nil
}

// Scan implements sql.Scanner.
func (d *DateOnly) Scan(v interface{}) error {
	switch t := v.(type) {
	case nil:
		d.Time = time.Time{}
	case time.Time:
		d.Time = t
	case string:
		parsed, err := time.Parse(dateLayout, t)
		if err != nil {
			return err
		}
		d.Time = parsed
	default:
		return fmt.Errorf("cannot scan %T into DateOnly", v)
	}
	return nil
}

// GormDataType tells the migrator to use a plain date column.
func (DateOnly) GormDataType() string {
	return "date"
}
