package treasury

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeBalances(t *testing.T) {
	s := Compute(1000, 400, 700, 250, 300, 150)

	assert.Equal(t, 1000.0, s.TotalIncome)
	assert.Equal(t, 400.0, s.TotalExpense)
	assert.Equal(t, 450.0, s.CurrentCaisseBalance)
	assert.Equal(t, 150.0, s.CurrentBanqueBalance)
	assert.Equal(t, s.CurrentCaisseBalance+s.CurrentBanqueBalance, s.TotalBalance)
	assert.Zero(t, s.SoldeCaisseAnterieur)
	assert.Zero(t, s.SoldeBanqueAnterieur)
}

func TestComputeEmpty(t *testing.T) {
	s := Compute(0, 0, 0, 0, 0, 0)
	assert.Equal(t, Statistics{}, s)
}

func TestBuildMonthlySeriesMergesBothSides(t *testing.T) {
	income := []MonthlyRow{
		{Month: 3, Year: 2026, Total: 500},
		{Month: 2, Year: 2026, Total: 200},
	}
	expense := []MonthlyRow{
		{Month: 3, Year: 2026, Total: 120},
		{Month: 1, Year: 2026, Total: 80},
	}
	series := BuildMonthlySeries(income, expense, time.Now())

	require.Len(t, series, 3)
	// ascending by (year, month)
	assert.Equal(t, 1, series[0].Month)
	assert.Equal(t, 2, series[1].Month)
	assert.Equal(t, 3, series[2].Month)
	// a month present on one side only gets 0 on the other
	assert.Equal(t, 0.0, series[0].Income)
	assert.Equal(t, 80.0, series[0].Expense)
	assert.Equal(t, 200.0, series[1].Income)
	assert.Equal(t, 0.0, series[1].Expense)
	assert.Equal(t, 500.0, series[2].Income)
	assert.Equal(t, 120.0, series[2].Expense)
}

func TestBuildMonthlySeriesTruncatesToSixNewest(t *testing.T) {
	var income []MonthlyRow
	for m := 1; m <= 9; m++ {
		income = append(income, MonthlyRow{Month: m, Year: 2026, Total: float64(m)})
	}
	series := BuildMonthlySeries(income, nil, time.Now())

	require.Len(t, series, 6)
	assert.Equal(t, 4, series[0].Month)
	assert.Equal(t, 9, series[5].Month)
	for i := 1; i < len(series); i++ {
		prev, cur := series[i-1], series[i]
		assert.True(t, prev.Year < cur.Year || (prev.Year == cur.Year && prev.Month < cur.Month))
	}
}

func TestBuildMonthlySeriesSpansYears(t *testing.T) {
	income := []MonthlyRow{
		{Month: 1, Year: 2026, Total: 10},
		{Month: 12, Year: 2025, Total: 20},
	}
	series := BuildMonthlySeries(income, nil, time.Now())

	require.Len(t, series, 2)
	assert.Equal(t, 2025, series[0].Year)
	assert.Equal(t, 12, series[0].Month)
	assert.Equal(t, 2026, series[1].Year)
	assert.Equal(t, 1, series[1].Month)
}

func TestBuildMonthlySeriesEmptySynthesizesCurrentMonth(t *testing.T) {
	now := time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC)
	series := BuildMonthlySeries(nil, nil, now)

	require.Len(t, series, 1)
	assert.Equal(t, 8, series[0].Month)
	assert.Equal(t, 2026, series[0].Year)
	assert.Equal(t, 0.0, series[0].Income)
	assert.Equal(t, 0.0, series[0].Expense)
	assert.Equal(t, "août", series[0].Name)
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "janv.", MonthName(1, 2026))
	assert.Equal(t, "déc.", MonthName(12, 2026))
	// out-of-range months fall back instead of failing the aggregation
	assert.Equal(t, "13/2026", MonthName(13, 2026))
	assert.Equal(t, "0/2026", MonthName(0, 2026))
}
