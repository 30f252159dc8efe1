package task

import (
	"eventdesk/bizerror"
	"eventdesk/domain"
	"eventdesk/domain/entity"
	"eventdesk/session"
	"net/http"

	"github.com/fundwit/go-commons/types"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

var (
	PathTasks = entity.CollectionPath("tasks")
)

func RegisterTasksRestAPI(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	api := entity.CollectionApi[domain.Task, domain.TaskCreation, domain.TaskUpdating]{
		Query: func(projectID types.ID, sec *session.Session) ([]domain.Task, error) {
			return QueryTasksFunc(projectID, sec)
		},
		Detail: func(projectID types.ID, id int, sec *session.Session) (*domain.Task, error) {
			return DetailTaskFunc(projectID, id, sec)
		},
		Create: func(projectID types.ID, c *domain.TaskCreation, sec *session.Session) (*domain.Task, error) {
			return CreateTaskFunc(projectID, c, sec)
		},
		Update: func(projectID types.ID, id int, u *domain.TaskUpdating, sec *session.Session) (*domain.Task, error) {
			return UpdateTaskFunc(projectID, id, u, sec)
		},
		Delete: func(projectID types.ID, id int, sec *session.Session) error {
			return DeleteTaskFunc(projectID, id, sec)
		},
		Replace: func(projectID types.ID, records []domain.Task, sec *session.Session) ([]domain.Task, error) {
			return ReplaceTasksFunc(projectID, records, sec)
		},
		Filter: filterByQuery,
	}
	g := api.Register(r, PathTasks, middleWares...)
	g.PUT(":id/toggle", handleToggleTask)
	g.POST(":id/subtasks", handleAddSubtask)
	g.PUT(":id/subtasks/:subtaskId/toggle", handleToggleSubtask)
	g.DELETE(":id/subtasks/:subtaskId", handleRemoveSubtask)
}

func filterByQuery(c *gin.Context, tasks []domain.Task) []domain.Task {
	f := TaskFilter{}
	if err := c.ShouldBindQuery(&f); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
	return FilterTasks(tasks, f)
}

func handleToggleTask(c *gin.Context) {
	projectID, id := entity.BindProjectID(c), entity.BindRecordID(c, entity.RecordIDParam)
	record, err := ToggleTaskStatusFunc(projectID, id, session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, record)
}

func handleAddSubtask(c *gin.Context) {
	projectID, id := entity.BindProjectID(c), entity.BindRecordID(c, entity.RecordIDParam)
	req := domain.SubtaskCreation{}
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
	record, err := AddSubtaskFunc(projectID, id, &req, session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, record)
}

func handleToggleSubtask(c *gin.Context) {
	projectID, id := entity.BindProjectID(c), entity.BindRecordID(c, entity.RecordIDParam)
	subtaskID := entity.BindRecordID(c, "subtaskId")
	record, err := ToggleSubtaskFunc(projectID, id, subtaskID, session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, record)
}

func handleRemoveSubtask(c *gin.Context) {
	projectID, id := entity.BindProjectID(c), entity.BindRecordID(c, entity.RecordIDParam)
	subtaskID := entity.BindRecordID(c, "subtaskId")
	record, err := RemoveSubtaskFunc(projectID, id, subtaskID, session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, record)
}
