package usecase

import (
	"context"
	"fmt"
	"rental_console/internal/domain/entities"
	"rental_console/internal/domain/errs"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// PaymentFilter narrows the payment report. From and To bound the payment
// date and are inclusive whole days.
type PaymentFilter struct {
	Status   entities.PaymentStatus
	OrderID  string
	ClientID string
	From     *time.Time
	To       *time.Time
}

// PendingWindow selects the next payment dates of the pending payment report.
type PendingWindow string

const (
	PendingAll      PendingWindow = ""
	PendingToday    PendingWindow = "today"
	PendingTomorrow PendingWindow = "tomorrow"
	PendingWeek     PendingWindow = "week"
	PendingMonth    PendingWindow = "month"
	PendingYear     PendingWindow = "year"
	PendingCustom   PendingWindow = "custom"
)

// PendingQuery is a pending payment report request. From and To are only
// read for PendingCustom.
type PendingQuery struct {
	Window PendingWindow
	From   *time.Time
	To     *time.Time
}

// DateRange is an inclusive range of whole days.
type DateRange struct {
	From time.Time
	To   time.Time
}

func (r DateRange) contains(t time.Time, loc *time.Location) bool {
	d := dayOf(t, loc)
	return !d.Before(r.From) && !d.After(r.To)
}

// PendingRange resolves a window against now in loc. Weeks start on Sunday.
func PendingRange(q PendingQuery, now time.Time, loc *time.Location) (DateRange, bool, error) {
	today := dayOf(now, loc)
	switch q.Window {
	case PendingAll:
		return DateRange{}, false, nil
	case PendingToday:
		return DateRange{From: today, To: today}, true, nil
	case PendingTomorrow:
		t := today.AddDate(0, 0, 1)
		return DateRange{From: t, To: t}, true, nil
	case PendingWeek:
		start := today.AddDate(0, 0, -int(today.Weekday()))
		return DateRange{From: start, To: start.AddDate(0, 0, 6)}, true, nil
	case PendingMonth:
		start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, loc)
		return DateRange{From: start, To: start.AddDate(0, 1, -1)}, true, nil
	case PendingYear:
		start := time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, loc)
		return DateRange{From: start, To: time.Date(today.Year(), time.December, 31, 0, 0, 0, 0, loc)}, true, nil
	case PendingCustom:
		if q.From == nil || q.To == nil || q.From.IsZero() || q.To.IsZero() {
			return DateRange{}, false, errs.Invalid("from", "from and to are required for a custom range")
		}
		r := DateRange{From: dayOf(*q.From, loc), To: dayOf(*q.To, loc)}
		if r.To.Before(r.From) {
			return DateRange{}, false, errs.Invalid("to", "must not be before from")
		}
		return r, true, nil
	}
	return DateRange{}, false, errs.Invalid("window", "unknown window %q", q.Window)
}

// dayOf is midnight of t's calendar day in loc. A date-only value (UTC
// midnight) names that calendar day in any timezone.
func dayOf(t time.Time, loc *time.Location) time.Time {
	if t.Location() == time.UTC && t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	}
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

func (f PaymentFilter) validate() error {
	if f.Status != "" && !f.Status.Valid() {
		return errs.Invalid("status", "unknown payment status %q", f.Status)
	}
	if f.From != nil && f.To != nil && f.To.Before(*f.From) {
		return errs.Invalid("to", "must not be before from")
	}
	return nil
}

func (f PaymentFilter) match(p entities.Payment, loc *time.Location) bool {
	if f.Status != "" && p.PaymentStatus != f.Status {
		return false
	}
	if id := strings.TrimSpace(f.OrderID); id != "" && p.OrderID != id {
		return false
	}
	if id := strings.TrimSpace(f.ClientID); id != "" && p.ClientID != id {
		return false
	}
	day := dayOf(p.PaymentDate, loc)
	if f.From != nil && day.Before(dayOf(*f.From, loc)) {
		return false
	}
	if f.To != nil && day.After(dayOf(*f.To, loc)) {
		return false
	}
	return true
}

func (u *PaymentUseCase) List(ctx context.Context, filter PaymentFilter) ([]entities.Payment, error) {
	if err := filter.validate(); err != nil {
		return nil, err
	}
	all, err := u.payments.List(ctx)
	if err != nil {
		u.log.WithError(err).Error("[payment][usecase] list failed")
		return nil, err
	}
	out := make([]entities.Payment, 0, len(all))
	for _, p := range all {
		if filter.match(p, u.loc) {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].PaymentDate.After(out[j].PaymentDate) })
	return fresh(ctx, out, nil)
}

// Pending lists the payments whose next payment date falls in the window,
// earliest first.
func (u *PaymentUseCase) Pending(ctx context.Context, q PendingQuery) ([]entities.Payment, error) {
	rng, bounded, err := PendingRange(q, u.now(), u.loc)
	if err != nil {
		return nil, err
	}
	all, err := u.payments.ListUpcoming(ctx)
	if err != nil {
		u.log.WithError(err).Error("[payment][usecase] upcoming list failed")
		return nil, err
	}
	out := make([]entities.Payment, 0, len(all))
	for _, p := range all {
		if p.NextPaymentDate == nil || p.NextPaymentDate.IsZero() {
			continue
		}
		if bounded && !rng.contains(*p.NextPaymentDate, u.loc) {
			continue
		}
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].NextPaymentDate.Before(*out[j].NextPaymentDate) })
	u.log.WithFields(logrus.Fields{"window": q.Window, "count": len(out)}).Debug("[payment][usecase] pending report")
	return fresh(ctx, out, nil)
}

// ExportReport renders the filtered payment report as a spreadsheet.
func (u *PaymentUseCase) ExportReport(ctx context.Context, filter PaymentFilter) ([]byte, error) {
	if u.exporter == nil {
		return nil, ErrReportExporterNotConfigured
	}
	rows, err := u.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	title := "Payment report"
	if filter.From != nil || filter.To != nil {
		title = fmt.Sprintf("Payment report %s to %s", formatDay(filter.From, u.loc), formatDay(filter.To, u.loc))
	}
	data, err := u.exporter.PaymentReport(title, rows)
	if err != nil {
		u.log.WithError(err).Error("[payment][usecase] report export failed")
		return nil, err
	}
	return data, nil
}

func formatDay(t *time.Time, loc *time.Location) string {
	if t == nil || t.IsZero() {
		return "..."
	}
	return dayOf(*t, loc).Format("2006-01-02")
}
