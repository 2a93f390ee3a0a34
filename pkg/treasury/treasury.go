// Package treasury computes the statistics served by /api/transactions/stats
// and /monthly-stats. The SQL sums live in the handlers; everything here is
// pure so it can be tested without a database.
package treasury

import (
	"fmt"
	"sort"
	"time"
)

// Statistics is the treasury snapshot for the dashboard. The "anterieur"
// balances are legacy fields the frontend still reads; they are always 0.
type Statistics struct {
	TotalIncome          float64 `json:"totalIncome"`
	TotalExpense         float64 `json:"totalExpense"`
	SoldeCaisseAnterieur float64 `json:"soldeCaisseAnterieur"`
	SoldeBanqueAnterieur float64 `json:"soldeBanqueAnterieur"`
	CurrentCaisseBalance float64 `json:"currentCaisseBalance"`
	CurrentBanqueBalance float64 `json:"currentBanqueBalance"`
	TotalBalance         float64 `json:"totalBalance"`
}

// Compute derives account balances from the six scalar sums. Missing data
// must be passed as 0 (COALESCE in the queries guarantees that).
func Compute(totalIncome, totalExpense, incomeCaisse, expenseCaisse, incomeBanque, expenseBanque float64) Statistics {
	caisse := incomeCaisse - expenseCaisse
	banque := incomeBanque - expenseBanque
	return Statistics{
		TotalIncome:          totalIncome,
		TotalExpense:         totalExpense,
		CurrentCaisseBalance: caisse,
		CurrentBanqueBalance: banque,
		TotalBalance:         caisse + banque,
	}
}

// MonthlyRow is one GROUP BY (year, month) sum for a single transaction type.
type MonthlyRow struct {
	Month int
	Year  int
	Total float64
}

// MonthlyStat is one chart point. Name is the French short month name.
type MonthlyStat struct {
	Month   int     `json:"month"`
	Year    int     `json:"year"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Name    string  `json:"name"`
}

// maxMonths bounds the chart series to the most recent periods.
const maxMonths = 6

var frenchMonths = [12]string{
	"janv.", "févr.", "mars", "avr.", "mai", "juin",
	"juil.", "août", "sept.", "oct.", "nov.", "déc.",
}

// MonthName returns the localized short name for a month, falling back to
// "month/year" when the month is out of range.
func MonthName(month, year int) string {
	if month < 1 || month > 12 {
		return fmt.Sprintf("%d/%d", month, year)
	}
	return frenchMonths[month-1]
}

// BuildMonthlySeries merges per-type monthly sums into a single ascending
// series of at most 6 entries. A month present on one side only gets 0 on
// the other. When both inputs are empty the month of now is synthesized at
// 0/0 so the chart never renders empty.
func BuildMonthlySeries(income, expense []MonthlyRow, now time.Time) []MonthlyStat {
	merged := make(map[string]*MonthlyStat)

	upsert := func(r MonthlyRow) *MonthlyStat {
		key := fmt.Sprintf("%04d-%02d", r.Year, r.Month)
		s, ok := merged[key]
		if !ok {
			s = &MonthlyStat{Month: r.Month, Year: r.Year, Name: MonthName(r.Month, r.Year)}
			merged[key] = s
		}
		return s
	}
	for _, r := range income {
		upsert(r).Income = r.Total
	}
	for _, r := range expense {
		upsert(r).Expense = r.Total
	}

	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	if len(keys) > maxMonths {
		keys = keys[:maxMonths]
	}

	// keys are newest-first; emit oldest-first for the chart
	series := make([]MonthlyStat, 0, len(keys))
	for i := len(keys) - 1; i >= 0; i-- {
		series = append(series, *merged[keys[i]])
	}

	if len(series) == 0 {
		m, y := int(now.Month()), now.Year()
		series = append(series, MonthlyStat{Month: m, Year: y, Name: MonthName(m, y)})
	}
	return series
}
