package availability

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrMalformedDate = errors.New("malformed civil date")
	ErrMalformedTime = errors.New("malformed civil time")
)

const civilDateLayout = "2006-01-02"

// CivilDate is a calendar date with no attached timezone.
type CivilDate struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseCivilDate accepts only the zero-padded "YYYY-MM-DD" form.
func ParseCivilDate(s string) (CivilDate, error) {
	if len(s) != len(civilDateLayout) {
		return CivilDate{}, fmt.Errorf("%w: %q", ErrMalformedDate, s)
	}
	t, err := time.Parse(civilDateLayout, s)
	if err != nil {
		return CivilDate{}, fmt.Errorf("%w: %q", ErrMalformedDate, s)
	}
	return DateOf(t), nil
}

// DateOf returns the civil date of t in t's own location.
func DateOf(t time.Time) CivilDate {
	y, m, d := t.Date()
	return CivilDate{Year: y, Month: m, Day: d}
}

func (d CivilDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d CivilDate) AddDays(n int) CivilDate {
	return DateOf(time.Date(d.Year, d.Month, d.Day+n, 0, 0, 0, 0, time.UTC))
}

func (d CivilDate) Before(o CivilDate) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

// CivilTime is a wall-clock time of day with minute precision.
type CivilTime struct {
	Hour   int
	Minute int
}

var (
	Midnight = CivilTime{Hour: 0, Minute: 0}
	EndOfDay = CivilTime{Hour: 23, Minute: 59}
)

// ParseCivilTime accepts only the zero-padded 24h "HH:MM" form.
func ParseCivilTime(s string) (CivilTime, error) {
	if len(s) != 5 || s[2] != ':' {
		return CivilTime{}, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return CivilTime{}, fmt.Errorf("%w: %q", ErrMalformedTime, s)
		}
	}
	h := int(s[0]-'0')*10 + int(s[1]-'0')
	m := int(s[3]-'0')*10 + int(s[4]-'0')
	if h > 23 || m > 59 {
		return CivilTime{}, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}
	return CivilTime{Hour: h, Minute: m}, nil
}

func (t CivilTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}
