package task_test

import (
	"eventdesk/bizerror"
	"eventdesk/common"
	"eventdesk/domain"
	"eventdesk/domain/task"
	"eventdesk/session"
	"eventdesk/testinfra"
	"net/http"
	"net/http/httptest"

	"github.com/fundwit/go-commons/types"
	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("TasksRestAPI", func() {
	var (
		router *gin.Engine
		path   = "/v1/projects/100/tasks"
	)
	BeforeEach(func() {
		router = gin.Default()
		router.Use(bizerror.ErrorHandling())
		task.RegisterTasksRestAPI(router, testinfra.SessionInjector(testinfra.BuildSession(1)))
	})
	AfterEach(func() {
		task.QueryTasksFunc = task.QueryTasks
		task.DetailTaskFunc = task.DetailTask
		task.CreateTaskFunc = task.CreateTask
		task.UpdateTaskFunc = task.UpdateTask
		task.DeleteTaskFunc = task.DeleteTask
		task.ReplaceTasksFunc = task.ReplaceTasks
		task.ToggleTaskStatusFunc = task.ToggleTaskStatus
		task.AddSubtaskFunc = task.AddSubtask
		task.ToggleSubtaskFunc = task.ToggleSubtask
		task.RemoveSubtaskFunc = task.RemoveSubtask
	})

	Describe("HandleQueryTasks", func() {
		BeforeEach(func() {
			task.QueryTasksFunc = func(projectID types.ID, sec *session.Session) ([]domain.Task, error) {
				return []domain.Task{
					{ID: 1, Title: "a", Category: "Logística", Status: domain.TaskStatusDone, Priority: domain.TaskPriorityHigh},
					{ID: 2, Title: "b", Category: "Marketing", Status: domain.TaskStatusPending, Priority: domain.TaskPriorityLow},
				}, nil
			}
		})

		It("should return all tasks", func() {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			status, body, _ := testinfra.ExecuteRequest(req, router)
			Expect(status).To(Equal(http.StatusOK))
			Expect(body).To(MatchJSON(`[
				{"id": 1, "title": "a", "category": "Logística", "status": "done", "priority": "high"},
				{"id": 2, "title": "b", "category": "Marketing", "status": "pending", "priority": "low"}]`))
		})

		It("should filter by category and status", func() {
			req := httptest.NewRequest(http.MethodGet, path+"?category=Marketing&status=all", nil)
			status, body, _ := testinfra.ExecuteRequest(req, router)
			Expect(status).To(Equal(http.StatusOK))
			Expect(body).To(MatchJSON(`[{"id": 2, "title": "b", "category": "Marketing", "status": "pending", "priority": "low"}]`))
		})

		It("should reject a malformed project id", func() {
			req := httptest.NewRequest(http.MethodGet, "/v1/projects/abc/tasks", nil)
			status, body, _ := testinfra.ExecuteRequest(req, router)
			Expect(status).To(Equal(http.StatusBadRequest))
			Expect(body).To(ContainSubstring("common.bad_param"))
		})
	})

	Describe("HandleCreateTask", func() {
		It("should bind the creation payload", func() {
			var payload *domain.TaskCreation
			var project types.ID
			task.CreateTaskFunc = func(projectID types.ID, c *domain.TaskCreation, sec *session.Session) (*domain.Task, error) {
				project, payload = projectID, c
				t := c.BuildTask(1)
				return &t, nil
			}

			req := httptest.NewRequest(http.MethodPost, path, common.StringReader(`{"title": "Catering", "priority": "high"}`))
			status, body, _ := testinfra.ExecuteRequest(req, router)
			Expect(status).To(Equal(http.StatusOK))
			Expect(body).To(MatchJSON(`{"id": 1, "title": "Catering", "category": "General", "status": "pending", "priority": "high"}`))
			Expect(project).To(Equal(types.ID(100)))
			Expect(*payload).To(Equal(domain.TaskCreation{Title: "Catering", Priority: domain.TaskPriorityHigh}))
		})

		It("should reject payloads outside the enum domains", func() {
			req := httptest.NewRequest(http.MethodPost, path, common.StringReader(`{"title": "x", "status": "later"}`))
			status, body, _ := testinfra.ExecuteRequest(req, router)
			Expect(status).To(Equal(http.StatusBadRequest))
			Expect(body).To(ContainSubstring("common.bad_param"))
		})
	})

	Describe("HandleDeleteTask", func() {
		It("should map a missing permission to forbidden", func() {
			task.DeleteTaskFunc = func(projectID types.ID, id int, sec *session.Session) error {
				return bizerror.ErrForbidden
			}
			req := httptest.NewRequest(http.MethodDelete, path+"/3", nil)
			status, _, _ := testinfra.ExecuteRequest(req, router)
			Expect(status).To(Equal(http.StatusForbidden))
		})
	})

	Describe("HandleReplaceTasks", func() {
		It("should pass imported rows through without validation", func() {
			var rows []domain.Task
			task.ReplaceTasksFunc = func(projectID types.ID, records []domain.Task, sec *session.Session) ([]domain.Task, error) {
				rows = records
				return records, nil
			}
			req := httptest.NewRequest(http.MethodPut, path, common.StringReader(`[{"title": "x", "status": "weird"}]`))
			status, _, _ := testinfra.ExecuteRequest(req, router)
			Expect(status).To(Equal(http.StatusOK))
			Expect(rows).To(Equal([]domain.Task{{Title: "x", Status: "weird"}}))
		})
	})

	Describe("Subtask routes", func() {
		It("should route toggles and removals", func() {
			var toggled, removed [2]int
			task.ToggleSubtaskFunc = func(projectID types.ID, taskID, subtaskID int, sec *session.Session) (*domain.Task, error) {
				toggled = [2]int{taskID, subtaskID}
				return &domain.Task{ID: taskID}, nil
			}
			task.RemoveSubtaskFunc = func(projectID types.ID, taskID, subtaskID int, sec *session.Session) (*domain.Task, error) {
				removed = [2]int{taskID, subtaskID}
				return &domain.Task{ID: taskID}, nil
			}
			task.ToggleTaskStatusFunc = func(projectID types.ID, id int, sec *session.Session) (*domain.Task, error) {
				return &domain.Task{ID: id, Status: domain.TaskStatusDone}, nil
			}

			status, _, _ := testinfra.ExecuteRequest(httptest.NewRequest(http.MethodPut, path+"/3/subtasks/4/toggle", nil), router)
			Expect(status).To(Equal(http.StatusOK))
			status, _, _ = testinfra.ExecuteRequest(httptest.NewRequest(http.MethodDelete, path+"/3/subtasks/5", nil), router)
			Expect(status).To(Equal(http.StatusOK))
			status, body, _ := testinfra.ExecuteRequest(httptest.NewRequest(http.MethodPut, path+"/3/toggle", nil), router)
			Expect(status).To(Equal(http.StatusOK))
			Expect(body).To(ContainSubstring(`"status":"done"`))

			Expect(toggled).To(Equal([2]int{3, 4}))
			Expect(removed).To(Equal([2]int{3, 5}))
		})

		It("should bind the subtask payload", func() {
			var payload *domain.SubtaskCreation
			task.AddSubtaskFunc = func(projectID types.ID, taskID int, c *domain.SubtaskCreation, sec *session.Session) (*domain.Task, error) {
				payload = c
				return &domain.Task{ID: taskID}, nil
			}
			req := httptest.NewRequest(http.MethodPost, path+"/3/subtasks", common.StringReader(`{"title": "Cotizar"}`))
			status, _, _ := testinfra.ExecuteRequest(req, router)
			Expect(status).To(Equal(http.StatusOK))
			Expect(*payload).To(Equal(domain.SubtaskCreation{Title: "Cotizar"}))

			req = httptest.NewRequest(http.MethodPost, path+"/3/subtasks", common.StringReader(`{}`))
			status, _, _ = testinfra.ExecuteRequest(req, router)
			Expect(status).To(Equal(http.StatusBadRequest))
		})
	})
})
