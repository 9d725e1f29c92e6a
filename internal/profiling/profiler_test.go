package profiling

import (
	"testing"

	"loandash/domain/loan"
	"loandash/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileColumnFlagsOutlier(t *testing.T) {
	data := []float64{10, 11, 12, 13, 14, 15, 16, 1000}

	p, err := ProfileColumn("LoanAmount", data)
	require.NoError(t, err)

	assert.Equal(t, "LoanAmount", p.Column)
	assert.Equal(t, 8, p.Count)
	assert.Equal(t, 10.0, p.Min)
	assert.Equal(t, 1000.0, p.Max)
	assert.Equal(t, 13.5, p.Median)
	assert.InDelta(t, 136.375, p.Mean, 1e-9)
	assert.Equal(t, 1, p.Outliers)
	assert.Greater(t, p.Skewness, 2.0)
	assert.False(t, p.IsNormal)
}

func TestProfileColumnConstantData(t *testing.T) {
	p, err := ProfileColumn("Loan_Amount_Term", []float64{360, 360, 360, 360})
	require.NoError(t, err)

	assert.Equal(t, 0.0, p.StdDev)
	assert.Equal(t, 0.0, p.Skewness)
	assert.Equal(t, 3.0, p.Kurtosis)
	assert.Equal(t, 0, p.Outliers)
}

func TestProfileColumnEmpty(t *testing.T) {
	_, err := ProfileColumn("ApplicantIncome", nil)
	require.Error(t, err)
	assert.Equal(t, errors.CodeDataError, errors.GetCode(err))
}

func TestProfileColumnKurtosis(t *testing.T) {
	p, err := ProfileColumn("LoanAmount", []float64{1, 2, 3, 4})
	require.NoError(t, err)

	// sample excess kurtosis of 1..4 is -1.2
	assert.InDelta(t, 1.8, p.Kurtosis, 1e-9)
	assert.InDelta(t, 0.0, p.Skewness, 1e-9)
}

func TestProfileColumnSmallSamples(t *testing.T) {
	tests := []struct {
		name     string
		data     []float64
		q25, q75 float64
	}{
		{"single", []float64{120}, 120, 120},
		{"pair", []float64{200, 100}, 100, 200},
		{"triple", []float64{3000, 1000, 2000}, 1000, 3000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ProfileColumn("LoanAmount", tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.q25, p.Q25)
			assert.Equal(t, tt.q75, p.Q75)
			assert.Equal(t, 0, p.Outliers)
		})
	}
}

func TestProfileRecordsCoversNumericColumns(t *testing.T) {
	records := []loan.Record{
		{ApplicantIncome: 1000, CoapplicantIncome: 0, LoanAmount: 100, LoanAmountTerm: 360},
		{ApplicantIncome: 3000, CoapplicantIncome: 500, LoanAmount: 200, LoanAmountTerm: 180},
		{ApplicantIncome: 2000, CoapplicantIncome: 0, LoanAmount: 150, LoanAmountTerm: 360},
	}

	profiles, err := ProfileRecords(records)
	require.NoError(t, err)
	require.Len(t, profiles, len(NumericColumns))

	for i, p := range profiles {
		assert.Equal(t, NumericColumns[i], p.Column)
		assert.Equal(t, 3, p.Count)
	}
	assert.Equal(t, 2000.0, profiles[0].Median)
	assert.Equal(t, 150.0, profiles[2].Mean)
}

func TestProfileRecordsTwoRecords(t *testing.T) {
	records := []loan.Record{
		{ApplicantIncome: 1000, LoanAmount: 100, LoanAmountTerm: 360},
		{ApplicantIncome: 3000, LoanAmount: 200, LoanAmountTerm: 180},
	}

	profiles, err := ProfileRecords(records)
	require.NoError(t, err)
	require.Len(t, profiles, len(NumericColumns))
	assert.Equal(t, 1000.0, profiles[0].Q25)
	assert.Equal(t, 3000.0, profiles[0].Q75)
}

func TestProfileRecordsEmpty(t *testing.T) {
	_, err := ProfileRecords(nil)
	assert.Error(t, err)
}
