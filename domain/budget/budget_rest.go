package budget

import (
	"eventdesk/domain"
	"eventdesk/domain/entity"
	"eventdesk/session"

	"github.com/fundwit/go-commons/types"
	"github.com/gin-gonic/gin"
)

var PathBudgetItems = entity.CollectionPath("budget-items")

func RegisterBudgetRestAPI(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	api := entity.CollectionApi[domain.BudgetItem, domain.BudgetItemCreation, domain.BudgetItemUpdating]{
		Query: func(projectID types.ID, sec *session.Session) ([]domain.BudgetItem, error) {
			return QueryBudgetItemsFunc(projectID, sec)
		},
		Detail: func(projectID types.ID, id int, sec *session.Session) (*domain.BudgetItem, error) {
			return DetailBudgetItemFunc(projectID, id, sec)
		},
		Create: func(projectID types.ID, c *domain.BudgetItemCreation, sec *session.Session) (*domain.BudgetItem, error) {
			return CreateBudgetItemFunc(projectID, c, sec)
		},
		Update: func(projectID types.ID, id int, u *domain.BudgetItemUpdating, sec *session.Session) (*domain.BudgetItem, error) {
			return UpdateBudgetItemFunc(projectID, id, u, sec)
		},
		Delete: func(projectID types.ID, id int, sec *session.Session) error {
			return DeleteBudgetItemFunc(projectID, id, sec)
		},
		Replace: func(projectID types.ID, records []domain.BudgetItem, sec *session.Session) ([]domain.BudgetItem, error) {
			return ReplaceBudgetItemsFunc(projectID, records, sec)
		},
	}
	api.Register(r, PathBudgetItems, middleWares...)
}
