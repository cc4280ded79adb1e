package ifta

import (
	"fmt"
	"time"
)

// Period is one filing quarter.
type Period struct {
	Year    int `json:"year"`
	Quarter int `json:"quarter"`
}

// NewPeriod validates year and quarter.
func NewPeriod(year, quarter int) (Period, error) {
	var errs []string
	if year < 2000 || year > 9999 {
		errs = append(errs, fmt.Sprintf("year %d is out of range", year))
	}
	if quarter < 1 || quarter > 4 {
		errs = append(errs, fmt.Sprintf("quarter must be between 1 and 4, got %d", quarter))
	}
	if len(errs) > 0 {
		return Period{}, NewValidationError(errs...)
	}
	return Period{Year: year, Quarter: quarter}, nil
}

// PeriodOf returns the quarter containing t.
func PeriodOf(t time.Time) Period {
	return Period{Year: t.Year(), Quarter: (int(t.Month())-1)/3 + 1}
}

// Start is the first day of the quarter, UTC midnight.
func (p Period) Start() time.Time {
	return time.Date(p.Year, time.Month(3*(p.Quarter-1)+1), 1, 0, 0, 0, 0, time.UTC)
}

// End is the first instant after the quarter.
func (p Period) End() time.Time {
	return p.Start().AddDate(0, 3, 0)
}

// LastDay is the last calendar day of the quarter.
func (p Period) LastDay() time.Time {
	return p.End().AddDate(0, 0, -1)
}

// DueDate is the legal filing deadline: the last day of the month following the quarter.
func (p Period) DueDate() time.Time {
	return p.End().AddDate(0, 1, 0).AddDate(0, 0, -1)
}

// ReminderDate is the due date minus the internal alerting buffer.
func (p Period) ReminderDate(bufferDays int) time.Time {
	return p.DueDate().AddDate(0, 0, -bufferDays)
}

func (p Period) Next() Period {
	if p.Quarter == 4 {
		return Period{Year: p.Year + 1, Quarter: 1}
	}
	return Period{Year: p.Year, Quarter: p.Quarter + 1}
}

func (p Period) Prev() Period {
	if p.Quarter == 1 {
		return Period{Year: p.Year - 1, Quarter: 4}
	}
	return Period{Year: p.Year, Quarter: p.Quarter - 1}
}

// Before reports whether p is earlier than o.
func (p Period) Before(o Period) bool {
	if p.Year != o.Year {
		return p.Year < o.Year
	}
	return p.Quarter < o.Quarter
}

func (p Period) String() string {
	return fmt.Sprintf("%dQ%d", p.Year, p.Quarter)
}

// DateOnly truncates t to its UTC calendar date.
func DateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate accepts YYYY-MM-DD or RFC 3339 and returns the UTC calendar date.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
