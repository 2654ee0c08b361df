package jobs

import (
	"context"
	"time"

	"biblioteca-backend/internal/logger"
)

// ReportOverdueLoans logs every open loan past its due date so librarians can
// chase returns. Loans only transition through the return and fine use cases,
// so this job reads and reports but never mutates state.
func (jr *JobRunner) ReportOverdueLoans() {
	jr.runWithRecovery("ReportOverdueLoans", func() {
		ctx := context.Background()

		today := time.Now().UTC().Format("2006-01-02")
		overdue, err := jr.loanRepo.ListOverdue(ctx, today)
		if err != nil {
			logger.Error("Failed to list overdue loans", "error", err)
			return
		}

		logger.Info("Overdue loans report", "count", len(overdue), "as_of", today)

		for _, loan := range overdue {
			args := []any{
				"loan_id", loan.ID,
				"member_id", loan.MemberID,
				"book_id", loan.BookID,
				"due_date", loan.DueDate,
			}
			if loan.Member != nil {
				args = append(args, "member_number", loan.Member.MemberNumber, "member_name", loan.Member.Name)
			}
			if loan.Book != nil {
				args = append(args, "book_title", loan.Book.Title)
			}
			logger.Warn("Loan overdue", args...)
		}
	})
}
