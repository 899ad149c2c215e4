// Package proration computes the prorated first charge of a new client.
//
// A client is billed monthly on a fixed billing day. When service is
// installed on any other day, the days between installation and the next
// billing day are charged at a daily rate of monthlyFee/30, and the first
// full cycle starts on that billing day.
package proration

import (
	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
)

const (
	// MinBillingDay and MaxBillingDay bound the billing day accepted from
	// callers. Days 29-31 do not exist in every month.
	MinBillingDay = 1
	MaxBillingDay = 28

	// DaysPerMonth is the fixed month length used for the daily rate,
	// regardless of the actual length of the month.
	DaysPerMonth = 30
)

var (
	ErrBillingDayOutOfRange = errors.New("billing day must be between 1 and 28")
	ErrNegativeMonthlyFee   = errors.New("monthly fee must not be negative")
)

var daysPerMonth = decimal.NewFromInt(DaysPerMonth)

// Result is the outcome of a proration calculation.
type Result struct {
	ProratedAmount   decimal.Decimal `json:"prorated_amount"`
	DaysCharged      int             `json:"days_charged"`
	FirstBillingDate Date            `json:"first_billing_date"`
}

// Calculate returns the prorated amount, the number of days charged and the
// date of the first full billing cycle for a client installed on
// installationDate and billed on billingDay of every month.
//
// Calculate never fails. billingDay outside [1,28] and negative fees are
// not checked here; see ValidateBillingDay and ValidateMonthlyFee.
func Calculate(installationDate Date, billingDay int, monthlyFee decimal.Decimal) Result {
	installDay := installationDate.Day
	year, month := installationDate.Year, installationDate.Month

	var res Result
	switch {
	case installDay < billingDay:
		// Installation day through the day before this month's cutover.
		res.FirstBillingDate = NewDate(year, month, billingDay)
		res.DaysCharged = billingDay - installDay
	case installDay == billingDay:
		res.FirstBillingDate = NewDate(year, month, billingDay)
		res.DaysCharged = 0
	default:
		// Rest of the installation month, installation day included, plus
		// days 1..billingDay-1 of the next month.
		res.FirstBillingDate = NewDate(year, month+1, billingDay)
		remaining := DaysInMonth(year, month) - installDay + 1
		res.DaysCharged = remaining + (billingDay - 1)
	}

	res.ProratedAmount = Amount(monthlyFee, res.DaysCharged)
	return res
}

// Amount returns monthlyFee/30 * days rounded half-up to cents.
func Amount(monthlyFee decimal.Decimal, days int) decimal.Decimal {
	return monthlyFee.Mul(decimal.NewFromInt(int64(days))).DivRound(daysPerMonth, 2)
}

// InitialBalance is the balance a client starts with after finalization:
// the prorated period, installation, the first full month (prepaid) and any
// additional charges.
func InitialBalance(prorated, installationCost, monthlyFee decimal.Decimal, additional ...decimal.Decimal) decimal.Decimal {
	total := prorated.Add(installationCost).Add(monthlyFee)
	for _, a := range additional {
		total = total.Add(a)
	}
	return total
}

func ValidateBillingDay(day int) error {
	if day < MinBillingDay || day > MaxBillingDay {
		return errors.Wrapf(ErrBillingDayOutOfRange, "got %d", day)
	}
	return nil
}

func ValidateMonthlyFee(fee decimal.Decimal) error {
	if fee.IsNegative() {
		return ErrNegativeMonthlyFee
	}
	return nil
}
