package statsutil

import (
	"time"

	"opsight/internal/shared/biztime"
)

// Window is the inclusive date range a query aggregates over, as UTC
// instants on business-day boundaries. Explicit records whether the caller
// supplied both bounds; only an explicit window contributes a denominator
// to the submission rate.
type Window struct {
	From     time.Time
	To       time.Time
	Explicit bool
}

// ResolveWindow turns optional caller-supplied dates into a concrete
// window. With both bounds present the window is exactly [start, end] in
// business days. Otherwise the window defaults to the current business
// month up to today, with a present bound still honored.
func ResolveWindow(start, end *time.Time, now time.Time) Window {
	if start != nil && end != nil {
		return Window{
			From:     biztime.StartOfDayUTC(*start),
			To:       biztime.EndOfDayUTC(*end),
			Explicit: true,
		}
	}

	bizNow := biztime.ToBizTimezone(now)
	from := biztime.StartOfMonthUTC(bizNow.Year(), bizNow.Month())
	to := biztime.EndOfDayUTC(now)
	if start != nil {
		from = biztime.StartOfDayUTC(*start)
	}
	if end != nil {
		to = biztime.EndOfDayUTC(*end)
	}
	return Window{From: from, To: to}
}

// MonthWindow returns the window covering one whole business month.
func MonthWindow(year int, month time.Month) Window {
	return Window{
		From:     biztime.StartOfMonthUTC(year, month),
		To:       biztime.EndOfMonthUTC(year, month),
		Explicit: true,
	}
}

// DaysInWindow is the submission rate denominator: the inclusive business
// day span for an explicit window, 0 otherwise.
func (w Window) DaysInWindow() int {
	if !w.Explicit {
		return 0
	}
	return biztime.DaySpanInclusive(w.From, w.To)
}
