package types

import (
	"time"

	ierr "github.com/inmovia/inmovia/internal/errors"
)

// BillingPeriod is a calendar month in "YYYY-MM" form. Line items generated
// for a period are due on its last calendar day.
type BillingPeriod string

const billingPeriodLayout = "2006-01"

// NewBillingPeriod builds a period from a point in time.
func NewBillingPeriod(t time.Time) BillingPeriod {
	return BillingPeriod(t.UTC().Format(billingPeriodLayout))
}

func (p BillingPeriod) String() string {
	return string(p)
}

func (p BillingPeriod) Validate() error {
	t, err := time.Parse(billingPeriodLayout, string(p))
	if err != nil {
		return ierr.WithError(err).
			WithHintf("Billing period must be a valid year-month, got %q", string(p)).
			Mark(ierr.ErrValidation)
	}
	// time.Parse accepts unpadded months like "2024-1"; only the canonical
	// form is allowed so equal periods derive equal line item ids.
	if t.Format(billingPeriodLayout) != string(p) {
		return ierr.NewError("billing period is not in canonical form").
			WithHintf("Billing period must be in YYYY-MM form, got %q", string(p)).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// LastDay returns the last calendar day of the period's month in UTC.
func (p BillingPeriod) LastDay() time.Time {
	start, err := time.Parse(billingPeriodLayout, string(p))
	if err != nil {
		return time.Time{}
	}
	return start.AddDate(0, 1, -1)
}
