package insight

import "eventdesk/domain"

type BudgetSummary struct {
	TotalBudget    float64 `json:"totalBudget"`
	TotalAllocated float64 `json:"totalAllocated"`
	TotalSpent     float64 `json:"totalSpent"`
	SpentPercent   int     `json:"spentPercent"`
	Remaining      float64 `json:"remaining"`
}

// BudgetLine is one budget row with its burn ratio for a progress bar.
type BudgetLine struct {
	domain.BudgetItem
	Percent int `json:"percent"`
}

// SummarizeBudget sums the budget rows against the event's total budget.
// SpentPercent is 0 when no total budget is set.
func SummarizeBudget(items []domain.BudgetItem, totalBudget float64) BudgetSummary {
	s := BudgetSummary{TotalBudget: totalBudget}
	for _, item := range items {
		s.TotalAllocated += item.Allocated
		s.TotalSpent += item.Spent
	}
	s.SpentPercent = percent(s.TotalSpent, totalBudget)
	s.Remaining = totalBudget - s.TotalSpent
	return s
}

// BudgetLines returns up to limit rows with spent/allocated clamped to 100.
// A limit <= 0 returns every row.
func BudgetLines(items []domain.BudgetItem, limit int) []BudgetLine {
	if limit <= 0 || limit > len(items) {
		limit = len(items)
	}
	r := make([]BudgetLine, 0, limit)
	for _, item := range items[:limit] {
		r = append(r, BudgetLine{BudgetItem: item, Percent: clampPercent(percent(item.Spent, item.Allocated))})
	}
	return r
}
