package reservation

import (
	"strings"
	"unicode/utf8"

	"lab-dashboard/internal/domain/availability"
)

const (
	MaxOwnerLength = 100
	MaxNoteLength  = 500
)

// Slot is the civil date and wall-clock times a reservation covers.
// Ordering of start and end is not checked: the dashboard has always
// accepted whatever was entered, and 00:00 as an end means end of day.
type Slot struct {
	date  availability.CivilDate
	start availability.CivilTime
	end   availability.CivilTime
}

func NewSlot(date, start, end string) (Slot, error) {
	d, err := availability.ParseCivilDate(date)
	if err != nil {
		return Slot{}, ErrInvalidSlot
	}
	s, err := availability.ParseCivilTime(start)
	if err != nil {
		return Slot{}, ErrInvalidSlot
	}
	e, err := availability.ParseCivilTime(end)
	if err != nil {
		return Slot{}, ErrInvalidSlot
	}
	return Slot{date: d, start: s, end: e}, nil
}

func (s Slot) Date() availability.CivilDate  { return s.date }
func (s Slot) Start() availability.CivilTime { return s.start }
func (s Slot) End() availability.CivilTime   { return s.end }

type Owner struct {
	value string
}

func NewOwner(s string) (Owner, error) {
	t := strings.TrimSpace(s)
	if t == "" || utf8.RuneCountInString(t) > MaxOwnerLength {
		return Owner{}, ErrInvalidOwner
	}
	return Owner{value: t}, nil
}

func (o Owner) String() string { return o.value }

type Note struct {
	value string
}

func NewNote(s string) (Note, error) {
	t := strings.TrimSpace(s)
	if utf8.RuneCountInString(t) > MaxNoteLength {
		return Note{}, ErrNoteTooLong
	}
	return Note{value: t}, nil
}

func (n Note) String() string { return n.value }
func (n Note) IsEmpty() bool  { return n.value == "" }
