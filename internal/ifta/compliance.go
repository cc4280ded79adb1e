package ifta

import (
	"sort"
	"time"

	"fleetflow/internal/model"
)

// Deadline is one upcoming filing deadline.
type Deadline struct {
	Period
	DueDate      time.Time `json:"due_date"`
	ReminderDate time.Time `json:"reminder_date"`
	DaysUntilDue int       `json:"days_until_due"`
	Filed        bool      `json:"filed"`
}

// ComplianceStatus summarizes a tenant's filing position on a given date.
type ComplianceStatus struct {
	AsOf              time.Time               `json:"as_of"`
	CurrentQuarter    Period                  `json:"current_quarter"`
	UpcomingDeadlines []Deadline              `json:"upcoming_deadlines"`
	OverdueReturns    []model.QuarterlyReturn `json:"overdue_returns"`
}

// Compliance derives deadlines and overdue returns from asOf and the
// tenant's return history. The previous quarter is listed while its
// deadline is still ahead and it is unfiled; the current and next quarter
// are always listed.
//
// Overdue returns come from history only. A past-due quarter that has
// records but was never generated is not reported.
func Compliance(asOf time.Time, bufferDays int, history []model.QuarterlyReturn) ComplianceStatus {
	today := DateOnly(asOf)
	current := PeriodOf(today)

	filed := make(map[Period]bool, len(history))
	for _, r := range history {
		if r.FilingStatus == model.FilingStatusFiled {
			filed[Period{Year: r.Year, Quarter: r.Quarter}] = true
		}
	}

	deadline := func(p Period) Deadline {
		due := p.DueDate()
		return Deadline{
			Period:       p,
			DueDate:      due,
			ReminderDate: p.ReminderDate(bufferDays),
			DaysUntilDue: int(due.Sub(today).Hours() / 24),
			Filed:        filed[p],
		}
	}

	status := ComplianceStatus{
		AsOf:              today,
		CurrentQuarter:    current,
		UpcomingDeadlines: make([]Deadline, 0, 3),
		OverdueReturns:    make([]model.QuarterlyReturn, 0),
	}

	prev := current.Prev()
	if !prev.DueDate().Before(today) && !filed[prev] {
		status.UpcomingDeadlines = append(status.UpcomingDeadlines, deadline(prev))
	}
	status.UpcomingDeadlines = append(status.UpcomingDeadlines, deadline(current), deadline(current.Next()))

	for _, r := range history {
		if r.FilingStatus == model.FilingStatusFiled || !DateOnly(r.DueDate).Before(today) {
			continue
		}
		r.FilingStatus = model.FilingStatusOverdue
		status.OverdueReturns = append(status.OverdueReturns, r)
	}
	sort.Slice(status.OverdueReturns, func(a, b int) bool {
		pa := Period{Year: status.OverdueReturns[a].Year, Quarter: status.OverdueReturns[a].Quarter}
		pb := Period{Year: status.OverdueReturns[b].Year, Quarter: status.OverdueReturns[b].Quarter}
		return pa.Before(pb)
	})

	return status
}
