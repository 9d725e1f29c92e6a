package profiling

import (
	"loandash/domain/loan"
	"loandash/internal/errors"
)

// NumericColumns are the loan columns that get a distribution profile
var NumericColumns = []string{
	loan.ColApplicantIncome,
	loan.ColCoapplicantIncome,
	loan.ColLoanAmount,
	loan.ColLoanAmountTerm,
}

// ProfileColumn analyzes a single numeric column
func ProfileColumn(name string, data []float64) (Profile, error) {
	p := Profile{Column: name}
	if len(data) == 0 {
		return p, errors.DataErrorf("%s has no values to profile", name)
	}
	if err := analyze(&p, data); err != nil {
		return p, errors.Wrapf(err, "profile %s", name)
	}
	return p, nil
}

// ProfileRecords profiles every numeric column of records, in NumericColumns order
func ProfileRecords(records []loan.Record) ([]Profile, error) {
	columns := make(map[string][]float64, len(NumericColumns))
	for _, r := range records {
		columns[loan.ColApplicantIncome] = append(columns[loan.ColApplicantIncome], r.ApplicantIncome)
		columns[loan.ColCoapplicantIncome] = append(columns[loan.ColCoapplicantIncome], r.CoapplicantIncome)
		columns[loan.ColLoanAmount] = append(columns[loan.ColLoanAmount], r.LoanAmount)
		columns[loan.ColLoanAmountTerm] = append(columns[loan.ColLoanAmountTerm], r.LoanAmountTerm)
	}

	profiles := make([]Profile, 0, len(NumericColumns))
	for _, name := range NumericColumns {
		p, err := ProfileColumn(name, columns[name])
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}
