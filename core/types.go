package core

import (
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
)

func init() {
	// amounts are serialized as plain JSON numbers, as the dashboard expects
	decimal.MarshalJSONWithoutQuotes = true
}

var ErrInvalidMonth = errors.New("invalid or missing month; expected YYYY-MM")

const monthLayout = "2006-01"

// Month is a year-month key in "YYYY-MM" form. The zero value is invalid.
type Month string

func ParseMonth(s string) (Month, error) {
	if _, err := time.Parse(monthLayout, s); err != nil {
		return "", ErrInvalidMonth
	}
	return Month(s), nil
}

func (m Month) Time() time.Time {
	t, _ := time.Parse(monthLayout, string(m))
	return t
}

// Label returns the human-readable date-range label for the month, e.g. "January 2026".
func (m Month) Label() string {
	return m.Time().Format("January 2006")
}

func (m Month) Prev() Month {
	return Month(m.Time().AddDate(0, -1, 0).Format(monthLayout))
}

// Contains reports whether t falls within the month.
func (m Month) Contains(t time.Time) bool {
	start := m.Time()
	return !t.Before(start) && t.Before(start.AddDate(0, 1, 0))
}

const dateLayout = "2006-01-02"

// ParseDate parses a "YYYY-MM-DD" value; the empty string parses to an unset time.
func ParseDate(s string) (null.Time, error) {
	if s == "" {
		return null.Time{}, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return null.Time{}, errors.Wrapf(err, "parsing date %q", s)
	}
	return null.TimeFrom(t), nil
}
