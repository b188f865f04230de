package clock

import "time"

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
)

// Clock resolves calendar days in the station time zone.
type Clock struct {
	Loc *time.Location
	Now func() time.Time
}

func New(loc *time.Location) Clock {
	if loc == nil {
		loc = time.UTC
	}
	return Clock{Loc: loc, Now: time.Now}
}

// Fixed always reports t. Used by tests.
func Fixed(t time.Time, loc *time.Location) Clock {
	c := New(loc)
	c.Now = func() time.Time { return t }
	return c
}

// Today is the current station day as YYYY-MM-DD.
func (c Clock) Today() string {
	return c.Day(c.Now())
}

// Day is the station day t falls on.
func (c Clock) Day(t time.Time) string {
	return t.In(c.Loc).Format(DateLayout)
}

func (c Clock) Month() string {
	return c.Now().In(c.Loc).Format(MonthLayout)
}
