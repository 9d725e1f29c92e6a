package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"loandash/adapters/excel"
	"loandash/domain/loan"
	"loandash/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "Loan_ID,Gender,Married,Dependents,Education,Self_Employed,ApplicantIncome,CoapplicantIncome,LoanAmount,Loan_Amount_Term,Credit_History,Property_Area,Loan_Status"

// sampleCSV has gaps in every imputed column. Pre-imputation:
// Gender mode Male (4 vs 1), Dependents mode 0 (2 vs 1 each),
// Self_Employed mode No, LoanAmount median of {100,120,150,200} = 135,
// Loan_Amount_Term median of {360,360,180,360,360} = 360, Credit_History mode 1.
var sampleCSV = strings.Join([]string{
	header,
	"LP001,Male,No,0,Graduate,No,5849,0,,360,1,Urban,Y",
	"LP002,Male,Yes,1,Graduate,,4583,1508,100,360,1,Rural,N",
	"LP003,,Yes,0,Graduate,Yes,3000,0,120,,1,Urban,Y",
	"LP004,Male,Yes,,Not Graduate,No,2583,2358,150,180,NA,Urban,Y",
	"LP005,Female,No,3+,Graduate,No,6000,,200,360,0,Semiurban,N",
	"LP006,Male,Yes,2,Graduate,No,5417,4196,NaN,360,1,Semiurban,Y",
}, "\n") + "\n"

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Loan_data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadImputesEveryPolicyColumn(t *testing.T) {
	ds, err := Load(writeCSV(t, sampleCSV))
	require.NoError(t, err)
	require.Equal(t, 6, ds.Len())

	for _, r := range ds.Records() {
		assert.NotEmpty(t, r.Gender)
		assert.NotEmpty(t, r.Dependents)
		assert.NotEmpty(t, r.SelfEmployed)
		assert.NotEmpty(t, r.CreditHistory)
		assert.NotZero(t, r.LoanAmount)
		assert.NotZero(t, r.LoanAmountTerm)
	}

	records := ds.Records()
	assert.Equal(t, "Male", records[2].Gender)
	assert.Equal(t, "0", records[3].Dependents)
	assert.Equal(t, "No", records[1].SelfEmployed)
	assert.Equal(t, 135.0, records[0].LoanAmount)
	assert.Equal(t, 135.0, records[5].LoanAmount)
	assert.Equal(t, 360.0, records[2].LoanAmountTerm)
	assert.Equal(t, "1", records[3].CreditHistory)
	assert.Equal(t, 0.0, records[4].CoapplicantIncome)
}

func TestLoadReport(t *testing.T) {
	ds, err := Load(writeCSV(t, sampleCSV))
	require.NoError(t, err)

	report := ds.Report()
	require.Len(t, report.Fills, len(DefaultPolicy))

	tests := []struct {
		column   string
		value    string
		count    int
		strategy Strategy
	}{
		{loan.ColGender, "Male", 1, StrategyMode},
		{loan.ColDependents, "0", 1, StrategyMode},
		{loan.ColSelfEmployed, "No", 1, StrategyMode},
		{loan.ColLoanAmount, "135", 2, StrategyMedian},
		{loan.ColLoanAmountTerm, "360", 1, StrategyMedian},
		{loan.ColCreditHistory, "1", 1, StrategyMode},
	}
	for _, tt := range tests {
		t.Run(tt.column, func(t *testing.T) {
			fill, ok := report.Fill(tt.column)
			require.True(t, ok)
			assert.Equal(t, tt.value, fill.Value)
			assert.Equal(t, tt.count, fill.Count)
			assert.Equal(t, tt.strategy, fill.Strategy)
		})
	}
	assert.Equal(t, 7, report.Total())
}

func TestAreasAndStatuses(t *testing.T) {
	ds, err := Load(writeCSV(t, sampleCSV))
	require.NoError(t, err)

	assert.Equal(t, []string{"Urban", "Rural", "Semiurban"}, ds.Areas())
	assert.Equal(t, []string{"N", "Y"}, ds.Statuses())
}

func TestRecordsAreCopies(t *testing.T) {
	ds, err := Load(writeCSV(t, sampleCSV))
	require.NoError(t, err)

	records := ds.Records()
	records[0].PropertyArea = "Mutated"
	assert.Equal(t, "Urban", ds.Records()[0].PropertyArea)

	areas := ds.Areas()
	areas[0] = "Mutated"
	assert.Equal(t, "Urban", ds.Areas()[0])
}

func TestModeTieBreaksOnSmallestValue(t *testing.T) {
	fill, err := modeOf([]string{"Yes", "No", "", "Yes", "No"})
	require.NoError(t, err)
	assert.Equal(t, "No", fill)
}

func TestMedianEvenCountAverages(t *testing.T) {
	fill, err := medianOf([]string{"4", "NA", "1", "3", "2"})
	require.NoError(t, err)
	assert.Equal(t, "2.5", fill)
}

func TestIsMissing(t *testing.T) {
	for _, v := range []string{"", "  ", "NA", "na", "N/A", "NaN", "null", "None", "#N/A"} {
		assert.True(t, IsMissing(v), v)
	}
	for _, v := range []string{"0", "No", "3+", "nano"} {
		assert.False(t, IsMissing(v), v)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{
			name:    "missing required column",
			content: "Gender,Dependents\nMale,0\n",
			wantMsg: "missing required columns",
		},
		{
			name:    "non numeric loan amount",
			content: header + "\nLP001,Male,No,0,Graduate,No,5849,0,lots,360,1,Urban,Y\n",
			wantMsg: "not numeric",
		},
		{
			name:    "column with nothing to impute from",
			content: header + "\nLP001,,No,0,Graduate,No,5849,0,100,360,1,Urban,Y\n",
			wantMsg: "cannot impute column Gender",
		},
		{
			name:    "missing applicant income",
			content: header + "\nLP001,Male,No,0,Graduate,No,,0,100,360,1,Urban,Y\n",
			wantMsg: "ApplicantIncome is missing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeCSV(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Equal(t, errors.CodeDataError, errors.GetCode(err))
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
}

func TestImputeLeavesPresentValuesAlone(t *testing.T) {
	table := &excel.Table{
		Headers: []string{loan.ColGender},
		Rows: []excel.Row{
			{loan.ColGender: "Female"},
			{loan.ColGender: "Male"},
			{loan.ColGender: "Male"},
		},
	}
	report, err := Impute(table, []ColumnPolicy{{Column: loan.ColGender, Strategy: StrategyMode}})
	require.NoError(t, err)
	assert.Equal(t, 0, report.Total())
	assert.Equal(t, []string{"Female", "Male", "Male"}, table.Column(loan.ColGender))
}
