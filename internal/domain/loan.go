package domain

type LoanStatus string

const (
	LoanStatusOpen   LoanStatus = "OPEN"
	LoanStatusClosed LoanStatus = "CLOSED"
)

type Loan struct {
	ID               int32      `json:"id"`
	BookID           int32      `json:"book_id"`
	MemberID         int32      `json:"member_id"`
	StartDate        string     `json:"start_date"`
	DueDate          string     `json:"due_date"`
	ActualReturnDate *string    `json:"actual_return_date,omitempty"`
	FineAmountCents  int32      `json:"fine_amount_cents"`
	Status           LoanStatus `json:"status"`
	Book             *Book      `json:"book,omitempty"`   // Populated on listings
	Member           *Member    `json:"member,omitempty"` // Populated on listings
}
