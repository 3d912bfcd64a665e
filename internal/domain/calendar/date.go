package calendar

import (
	"time"

	"charter-booking/internal/pkg/errs"
)

const DateLayout = "2006-01-02"

// MaxRangeDays caps stays and query windows coming from callers.
const MaxRangeDays = 366

var (
	ErrInvalidDate  = errs.NewKind("invalid date, expected YYYY-MM-DD", errs.ErrValidation)
	ErrInvalidRange = errs.NewKind("range start must be before end", errs.ErrValidation)
	ErrRangeTooLong = errs.NewKind("range exceeds the maximum number of days", errs.ErrValidation)
)

// Date is a calendar day key: always midnight UTC.
type Date struct {
	t time.Time
}

// NewDate truncates t to its UTC calendar day.
func NewDate(t time.Time) Date {
	u := t.UTC()
	return Date{t: time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, errs.Mark(err, ErrInvalidDate)
	}
	return NewDate(t), nil
}

func (d Date) Time() time.Time { return d.t }

func (d Date) String() string { return d.t.Format(DateLayout) }

func (d Date) IsZero() bool { return d.t.IsZero() }

func (d Date) Before(o Date) bool { return d.t.Before(o.t) }

func (d Date) After(o Date) bool { return d.t.After(o.t) }

func (d Date) Equal(o Date) bool { return d.t.Equal(o.t) }

func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }

// Range is the half-open interval [Start, End) of days.
type Range struct {
	start Date
	end   Date
}

func NewRange(start, end Date) (Range, error) {
	if !start.Before(end) {
		return Range{}, ErrInvalidRange
	}
	return Range{start: start, end: end}, nil
}

// NewBoundedRange is NewRange for caller-supplied input: at most MaxRangeDays days.
// Stored ranges are read back with NewRange.
func NewBoundedRange(start, end Date) (Range, error) {
	r, err := NewRange(start, end)
	if err != nil {
		return Range{}, err
	}
	if r.Nights() > MaxRangeDays {
		return Range{}, errs.Wrapf(ErrRangeTooLong, "%d days, max %d", r.Nights(), MaxRangeDays)
	}
	return r, nil
}

func (r Range) Start() Date { return r.start }

func (r Range) End() Date { return r.end }

func (r Range) Nights() int {
	return int(r.end.t.Sub(r.start.t).Hours() / 24)
}

func (r Range) Contains(d Date) bool {
	return !d.Before(r.start) && d.Before(r.end)
}

// Overlaps uses the half-open rule, so back-to-back ranges do not overlap.
func (r Range) Overlaps(start, end Date) bool {
	return r.start.Before(end) && r.end.After(start)
}

func (r Range) Days() []Date {
	days := make([]Date, 0, r.Nights())
	for d := r.start; d.Before(r.end); d = d.AddDays(1) {
		days = append(days, d)
	}
	return days
}

func (r Range) String() string {
	return "[" + r.start.String() + "," + r.end.String() + ")"
}
