package dataset

import (
	"strconv"

	"loandash/adapters/excel"
	"loandash/domain/loan"
	"loandash/internal/errors"
)

// CheckColumns verifies every required column is present
func CheckColumns(table *excel.Table) error {
	var missing []string
	for _, col := range loan.RequiredColumns {
		if !table.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return errors.DataErrorf("missing required columns: %v", missing)
	}
	return nil
}

// Decode converts cleaned table rows into typed records. Row numbers in errors
// are 1-based data rows, not counting the header.
func Decode(table *excel.Table) ([]loan.Record, error) {
	records := make([]loan.Record, 0, len(table.Rows))

	for i, row := range table.Rows {
		d := rowDecoder{row: row, line: i + 1}
		rec := loan.Record{
			LoanID:            row[loan.ColLoanID],
			Gender:            row[loan.ColGender],
			Married:           row[loan.ColMarried],
			Dependents:        row[loan.ColDependents],
			Education:         row[loan.ColEducation],
			SelfEmployed:      row[loan.ColSelfEmployed],
			ApplicantIncome:   d.float(loan.ColApplicantIncome, false),
			CoapplicantIncome: d.float(loan.ColCoapplicantIncome, true),
			LoanAmount:        d.float(loan.ColLoanAmount, false),
			LoanAmountTerm:    d.float(loan.ColLoanAmountTerm, false),
			CreditHistory:     row[loan.ColCreditHistory],
			PropertyArea:      row[loan.ColPropertyArea],
			LoanStatus:        row[loan.ColLoanStatus],
		}
		if d.err != nil {
			return nil, d.err
		}
		records = append(records, rec)
	}

	return records, nil
}

// rowDecoder keeps the first parse error of a row
type rowDecoder struct {
	row  excel.Row
	line int
	err  error
}

func (d *rowDecoder) float(column string, optional bool) float64 {
	if d.err != nil {
		return 0
	}
	raw := d.row[column]
	if IsMissing(raw) {
		if optional {
			return 0
		}
		d.err = errors.DataErrorf("row %d: %s is missing", d.line, column)
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		d.err = errors.DataErrorf("row %d: %s value %q is not numeric", d.line, column, raw)
		return 0
	}
	return v
}
