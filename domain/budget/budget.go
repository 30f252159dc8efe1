package budget

import (
	"eventdesk/authority"
	"eventdesk/domain"
	"eventdesk/domain/entity"
	"eventdesk/persistence"
	"eventdesk/session"

	"github.com/fundwit/go-commons/types"
)

// Kind binds budget rows to manage:finances.
var Kind = entity.Kind[domain.BudgetItem]{
	SourceType:     "BUDGET_ITEM",
	EditPermission: authority.PermManageFinances,
	Collection:     func(d *persistence.ProjectData) *persistence.Collection[domain.BudgetItem] { return &d.BudgetItems },
	Describe:       func(b domain.BudgetItem) string { return b.Category },
}

var (
	QueryBudgetItemsFunc   = QueryBudgetItems
	DetailBudgetItemFunc   = DetailBudgetItem
	CreateBudgetItemFunc   = CreateBudgetItem
	UpdateBudgetItemFunc   = UpdateBudgetItem
	DeleteBudgetItemFunc   = DeleteBudgetItem
	ReplaceBudgetItemsFunc = ReplaceBudgetItems
)

func QueryBudgetItems(projectID types.ID, sec *session.Session) ([]domain.BudgetItem, error) {
	return Kind.Query(projectID, sec)
}

func DetailBudgetItem(projectID types.ID, id int, sec *session.Session) (*domain.BudgetItem, error) {
	return Kind.Detail(projectID, id, sec)
}

func CreateBudgetItem(projectID types.ID, c *domain.BudgetItemCreation, sec *session.Session) (*domain.BudgetItem, error) {
	return Kind.Create(projectID, c.BuildBudgetItem, sec)
}

func UpdateBudgetItem(projectID types.ID, id int, u *domain.BudgetItemUpdating, sec *session.Session) (*domain.BudgetItem, error) {
	return Kind.Update(projectID, id, u.Apply, sec)
}

func DeleteBudgetItem(projectID types.ID, id int, sec *session.Session) error {
	return Kind.Delete(projectID, id, sec)
}

// ReplaceBudgetItems imports a whole budget sheet; negative amounts are clamped to zero.
func ReplaceBudgetItems(projectID types.ID, items []domain.BudgetItem, sec *session.Session) ([]domain.BudgetItem, error) {
	return Kind.ReplaceAll(projectID, items, sec)
}
