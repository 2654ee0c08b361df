package utils

import (
	"time"

	"biblioteca-backend/internal/domain"
)

const dateLayout = "2006-01-02"

const (
	// LateFeePerDayCents is the flat daily charge for overdue returns.
	LateFeePerDayCents int32 = 50
	// LateFeeCapCents is the maximum fee a single loan can accrue.
	LateFeeCapCents int32 = 5000

	// MinLoanDays and MaxLoanDays bound the agreed loan period.
	MinLoanDays int32 = 1
	MaxLoanDays int32 = 18250 // 50 years
)

// ParseDate converts a yyyy-mm-dd formatted string into a calendar date.
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return time.Time{}, domain.Validationf("invalid date %q, expected yyyy-mm-dd", dateStr)
	}
	return t, nil
}

// DaysBetween returns the whole days from one date to another, negative when
// to precedes from.
func DaysBetween(from, to time.Time) int32 {
	return int32(to.Sub(from).Hours() / 24)
}

// LoanDays validates the agreed loan period and returns its length in days.
func LoanDays(startDate, dueDate string) (int32, error) {
	start, err := ParseDate(startDate)
	if err != nil {
		return 0, err
	}
	due, err := ParseDate(dueDate)
	if err != nil {
		return 0, err
	}
	days := DaysBetween(start, due)
	if days < MinLoanDays {
		return 0, domain.Validationf("a loan must last at least 1 day")
	}
	if days > MaxLoanDays {
		return 0, domain.Validationf("a loan cannot exceed 50 years")
	}
	return days, nil
}

// LateFeeCents computes the overdue fee for a return: 50 cents per late day,
// capped at 5000 cents. On-time or early returns owe nothing.
func LateFeeCents(dueDate, actualReturnDate string) (fee int32, lateDays int32, err error) {
	due, err := ParseDate(dueDate)
	if err != nil {
		return 0, 0, err
	}
	actual, err := ParseDate(actualReturnDate)
	if err != nil {
		return 0, 0, err
	}
	lateDays = DaysBetween(due, actual)
	if lateDays <= 0 {
		return 0, 0, nil
	}
	fee = lateDays * LateFeePerDayCents
	if fee > LateFeeCapCents {
		fee = LateFeeCapCents
	}
	return fee, lateDays, nil
}
