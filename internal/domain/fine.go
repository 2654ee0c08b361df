package domain

type FineStatus string

const (
	FineStatusActive FineStatus = "ACTIVE"
	FineStatusPaid   FineStatus = "PAID"
)

type FineReason string

const (
	FineReasonLateReturn  FineReason = "LATE_RETURN"
	FineReasonDamagedBook FineReason = "DAMAGED_BOOK"
	FineReasonLostBook    FineReason = "LOST_BOOK"
	FineReasonOther       FineReason = "OTHER"
)

// ParseFineReason validates an incoming reason value.
func ParseFineReason(s string) (FineReason, error) {
	switch FineReason(s) {
	case FineReasonLateReturn, FineReasonDamagedBook, FineReasonLostBook, FineReasonOther:
		return FineReason(s), nil
	}
	return "", Validationf("unknown fine reason %q", s)
}

// RequiresLoan reports whether a reason only makes sense against an open loan.
func (r FineReason) RequiresLoan() bool {
	switch r {
	case FineReasonLateReturn, FineReasonDamagedBook, FineReasonLostBook:
		return true
	}
	return false
}

type Fine struct {
	ID          int32      `json:"id"`
	MemberID    int32      `json:"member_id"`
	LoanID      *int32     `json:"loan_id,omitempty"`
	Reason      FineReason `json:"reason"`
	AmountCents int32      `json:"amount_cents"`
	Date        string     `json:"date"`
	Status      FineStatus `json:"status"`
	Member      *Member    `json:"member,omitempty"` // Populated on listings
}
