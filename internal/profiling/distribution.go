package profiling

import (
	"math"
	"slices"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Profile summarizes the distribution of one numeric column
type Profile struct {
	Column string
	Count  int

	Mean   float64
	StdDev float64
	Min    float64
	Q25    float64
	Median float64
	Q75    float64
	Max    float64

	Skewness float64
	Kurtosis float64 // total, 3 for a normal distribution
	Outliers int     // outside 1.5 IQR of the quartiles

	NormalityP float64
	IsNormal   bool
}

// analyze fills the distribution fields of p from data. data must not be empty.
func analyze(p *Profile, data []float64) error {
	var err error
	p.Count = len(data)

	if p.Mean, err = stats.Mean(data); err != nil {
		return err
	}
	if p.StdDev, err = stats.StandardDeviation(data); err != nil {
		return err
	}
	if p.Min, err = stats.Min(data); err != nil {
		return err
	}
	if p.Max, err = stats.Max(data); err != nil {
		return err
	}
	if p.Median, err = stats.Median(data); err != nil {
		return err
	}

	// Quartiles for IQR-based outlier detection. Empirical quantiles are
	// defined for any n >= 1.
	sorted := slices.Clone(data)
	slices.Sort(sorted)
	p.Q25 = stat.Quantile(0.25, stat.Empirical, sorted, nil)
	p.Q75 = stat.Quantile(0.75, stat.Empirical, sorted, nil)
	p.Outliers = countOutliers(data, p.Q25, p.Q75)

	p.Skewness = calculateSkewness(data, p.Mean, p.StdDev)
	p.Kurtosis = calculateKurtosis(data, p.Mean, p.StdDev)
	p.IsNormal, p.NormalityP = testNormality(len(data), p.Skewness, p.Kurtosis)
	return nil
}

// calculateSkewness computes sample skewness using the adjusted Fisher-Pearson coefficient
func calculateSkewness(data []float64, mean, stdDev float64) float64 {
	if len(data) < 3 || stdDev == 0 {
		return 0
	}

	n := float64(len(data))
	sumCubedDeviations := 0.0
	for _, x := range data {
		deviation := (x - mean) / stdDev
		sumCubedDeviations += deviation * deviation * deviation
	}

	skewness := sumCubedDeviations / n
	return skewness * math.Sqrt(n*(n-1)) / (n - 2)
}

// calculateKurtosis computes the sample excess kurtosis G2 and returns it
// shifted by 3 so a normal distribution reads 3.
func calculateKurtosis(data []float64, mean, stdDev float64) float64 {
	if len(data) < 4 || stdDev == 0 {
		return 3
	}

	n := float64(len(data))
	sumFourthDeviations := 0.0
	for _, x := range data {
		deviation := (x - mean) / stdDev
		sumFourthDeviations += deviation * deviation * deviation * deviation
	}

	g2 := sumFourthDeviations/n - 3
	return ((n+1)*g2+6)*(n-1)/((n-2)*(n-3)) + 3
}

// testNormality is a rough skewness/kurtosis check against a chi-squared
// distribution with two degrees of freedom. It is a screening hint, not a
// Shapiro-Wilk test.
func testNormality(n int, skewness, kurtosis float64) (isNormal bool, pValue float64) {
	if n < 3 {
		return false, 1.0
	}

	testStat := math.Abs(skewness) + math.Abs(kurtosis-3)/2
	chiDist := distuv.ChiSquared{K: 2}
	pValue = 1 - chiDist.CDF(testStat*testStat)

	return pValue > 0.05, pValue
}

// countOutliers counts values outside 1.5 IQR of the quartiles
func countOutliers(data []float64, q25, q75 float64) int {
	iqr := q75 - q25
	lowerBound := q25 - 1.5*iqr
	upperBound := q75 + 1.5*iqr

	outlierCount := 0
	for _, x := range data {
		if x < lowerBound || x > upperBound {
			outlierCount++
		}
	}
	return outlierCount
}
