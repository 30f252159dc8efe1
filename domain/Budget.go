package domain

import "strings"

type BudgetItem struct {
	ID        int     `json:"id" yaml:"id"`
	Category  string  `json:"category" yaml:"category" binding:"required,lte=120"`
	Allocated float64 `json:"allocated" yaml:"allocated" binding:"gte=0"`
	Spent     float64 `json:"spent" yaml:"spent" binding:"gte=0"`
	Notes     string  `json:"notes" yaml:"notes"`
}

func (b BudgetItem) GetID() int { return b.ID }

func (b BudgetItem) WithID(id int) BudgetItem {
	b.ID = id
	return b
}

type BudgetItemCreation struct {
	Category  string  `json:"category" binding:"required,lte=120"`
	Allocated float64 `json:"allocated" binding:"gte=0"`
	Spent     float64 `json:"spent" binding:"gte=0"`
	Notes     string  `json:"notes"`
}

func (c BudgetItemCreation) BuildBudgetItem(id int) BudgetItem {
	return BudgetItem{ID: id, Category: strings.TrimSpace(c.Category), Allocated: c.Allocated, Spent: c.Spent, Notes: c.Notes}
}

type BudgetItemUpdating struct {
	Category  *string  `json:"category"`
	Allocated *float64 `json:"allocated"`
	Spent     *float64 `json:"spent"`
	Notes     *string  `json:"notes"`
}

func (u BudgetItemUpdating) Apply(b BudgetItem) BudgetItem {
	if u.Category != nil {
		b.Category = strings.TrimSpace(*u.Category)
	}
	if u.Allocated != nil {
		b.Allocated = *u.Allocated
	}
	if u.Spent != nil {
		b.Spent = *u.Spent
	}
	if u.Notes != nil {
		b.Notes = *u.Notes
	}
	return b
}

func (b BudgetItem) Normalized() BudgetItem {
	b.Category = strings.TrimSpace(b.Category)
	b.Allocated = nonNegative(b.Allocated)
	b.Spent = nonNegative(b.Spent)
	return b
}

func nonNegative[T int | float64](v T) T {
	if v < 0 {
		return 0
	}
	return v
}
