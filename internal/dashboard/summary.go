package dashboard

import (
	"loandash/domain/loan"

	"github.com/montanaflynn/stats"
)

// approvedStatus is the Loan_Status value of an approved application.
const approvedStatus = "Y"

// Summary holds the headline figures shown above the charts.
type Summary struct {
	Applications     int
	Approved         int
	ApprovalRate     float64 // 0..1
	MedianLoanAmount float64
	MedianIncome     float64
}

// Summarize computes the headline figures of a set of records. Empty input gives zeros.
func Summarize(records []loan.Record) Summary {
	s := Summary{Applications: len(records)}
	if len(records) == 0 {
		return s
	}

	amounts := make([]float64, len(records))
	incomes := make([]float64, len(records))
	for i, r := range records {
		if r.LoanStatus == approvedStatus {
			s.Approved++
		}
		amounts[i] = r.LoanAmount
		incomes[i] = r.ApplicantIncome
	}
	s.ApprovalRate = float64(s.Approved) / float64(s.Applications)

	if m, err := stats.Median(amounts); err == nil {
		s.MedianLoanAmount = m
	}
	if m, err := stats.Median(incomes); err == nil {
		s.MedianIncome = m
	}
	return s
}
