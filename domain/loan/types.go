package loan

import "strconv"

// Column names as they appear in the source file header.
const (
	ColLoanID            = "Loan_ID"
	ColGender            = "Gender"
	ColMarried           = "Married"
	ColDependents        = "Dependents"
	ColEducation         = "Education"
	ColSelfEmployed      = "Self_Employed"
	ColApplicantIncome   = "ApplicantIncome"
	ColCoapplicantIncome = "CoapplicantIncome"
	ColLoanAmount        = "LoanAmount"
	ColLoanAmountTerm    = "Loan_Amount_Term"
	ColCreditHistory     = "Credit_History"
	ColPropertyArea      = "Property_Area"
	ColLoanStatus        = "Loan_Status"
)

// RequiredColumns must be present in every input file.
var RequiredColumns = []string{
	ColGender,
	ColDependents,
	ColSelfEmployed,
	ColApplicantIncome,
	ColLoanAmount,
	ColLoanAmountTerm,
	ColCreditHistory,
	ColPropertyArea,
	ColLoanStatus,
}

// Record is one loan application row after cleaning.
type Record struct {
	LoanID            string
	Gender            string
	Married           string
	Dependents        string
	Education         string
	SelfEmployed      string
	ApplicantIncome   float64
	CoapplicantIncome float64
	LoanAmount        float64
	LoanAmountTerm    float64
	CreditHistory     string
	PropertyArea      string
	LoanStatus        string
}

// MaxDependents is the highest slider position; it stands for "3 or more".
const MaxDependents = 3

// DependentsLabel maps a slider position to the Dependents value it selects.
func DependentsLabel(n int) string {
	if n == MaxDependents {
		return "3+"
	}
	return strconv.Itoa(n)
}

// DependentsOptions lists the slider positions in order.
func DependentsOptions() []int {
	opts := make([]int, 0, MaxDependents+1)
	for i := 0; i <= MaxDependents; i++ {
		opts = append(opts, i)
	}
	return opts
}
