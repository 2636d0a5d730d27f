package availability

import "time"

// Interval is the absolute span a booking occupies. End may precede Start
// for degenerate input; the resolver does not validate ordering.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t lies in [Start, End], both ends inclusive.
func (i Interval) Contains(t time.Time) bool {
	return !t.Before(i.Start) && !t.After(i.End)
}

// Resolve composes a civil date and time into an instant in loc.
// No timezone conversion happens: the wall clock is taken as-is.
func Resolve(date CivilDate, t CivilTime, loc *time.Location) time.Time {
	return time.Date(date.Year, date.Month, date.Day, t.Hour, t.Minute, 0, 0, loc)
}

// ResolveEnd treats an end time of 00:00 as 23:59 of the same date.
func ResolveEnd(date CivilDate, end CivilTime, loc *time.Location) time.Time {
	if end == Midnight {
		end = EndOfDay
	}
	return Resolve(date, end, loc)
}

// ResolveBooking parses the booking's civil fields and returns its interval.
func ResolveBooking(b Booking, loc *time.Location) (Interval, error) {
	date, err := ParseCivilDate(b.Date)
	if err != nil {
		return Interval{}, err
	}
	start, err := ParseCivilTime(b.StartTime)
	if err != nil {
		return Interval{}, err
	}
	end, err := ParseCivilTime(b.EndTime)
	if err != nil {
		return Interval{}, err
	}
	return Interval{
		Start: Resolve(date, start, loc),
		End:   ResolveEnd(date, end, loc),
	}, nil
}
