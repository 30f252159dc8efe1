package namespace_test

import (
	"eventdesk/bizerror"
	"eventdesk/common"
	"eventdesk/domain"
	"eventdesk/domain/namespace"
	"eventdesk/event"
	"eventdesk/session"
	"eventdesk/testinfra"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/fundwit/go-commons/types"
	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("ProjectRestApi", func() {
	var (
		router *gin.Engine
	)
	BeforeEach(func() {
		router = gin.Default()
		router.Use(bizerror.ErrorHandling())
		namespace.RegisterProjectsRestApis(router, testinfra.SessionInjector(testinfra.BuildSession(1)))
	})
	AfterEach(func() {
		namespace.QueryProjectsFunc = namespace.QueryProjects
		namespace.CreateProjectFunc = namespace.CreateProject
		namespace.UpdateProjectFunc = namespace.UpdateProject
		namespace.UpdateEventConfigFunc = namespace.UpdateEventConfig
		namespace.DeleteProjectFunc = namespace.DeleteProject
		namespace.SwitchToFunc = namespace.SwitchTo
		namespace.QueryActivityFunc = namespace.QueryActivity
	})

	Describe("HandleQueryProjects", func() {
		It("should be able to query projects successfully", func() {
			namespace.QueryProjectsFunc = func(s *session.Session) ([]domain.Project, error) {
				t := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
				return []domain.Project{{ID: 123, OrganizationID: 1, Name: "test", CreateTime: t, Creator: 1}}, nil
			}

			req := httptest.NewRequest(http.MethodGet, namespace.ProjectsApiRoot, nil)
			status, body, _ := testinfra.ExecuteRequest(req, router)
			Expect(status).To(Equal(http.StatusOK))
			Expect(body).To(MatchJSON(`
				[{"id": "123", "organizationId": "1", "name": "test", "createTime": "2021-01-01T00:00:00Z", "creator": "1",
				  "config": {"eventName": "", "eventDate": "", "targetAttendees": 0, "sponsorsTarget": 0, "totalBudget": 0,
				             "universityTarget": 0, "studentTarget": 0,
				             "sponsorTargets": {"Diamond": 0, "Gold": 0, "Silver": 0, "Bronze": 0}}}]
			`))
		})
	})

	Describe("HandleCreateProject", func() {
		It("should be able to create project successfully", func() {
			var payload *domain.ProjectCreating
			namespace.CreateProjectFunc = func(c *domain.ProjectCreating, s *session.Session) (*domain.Project, error) {
				payload = c
				return &domain.Project{ID: 123, Name: c.Name, Creator: 100}, nil
			}

			req := httptest.NewRequest(http.MethodPost, namespace.ProjectsApiRoot, common.StringReader(`{"name": "test project"}`))
			status, body, _ := testinfra.ExecuteRequest(req, router)
			Expect(status).To(Equal(http.StatusOK))
			Expect(body).To(ContainSubstring(`"name":"test project"`))
			Expect(*payload).To(Equal(domain.ProjectCreating{Name: "test project"}))
		})

		It("should reject invalid payloads", func() {
			req := httptest.NewRequest(http.MethodPost, namespace.ProjectsApiRoot, common.StringReader(`{"name": ""}`))
			status, body, _ := testinfra.ExecuteRequest(req, router)
			Expect(status).To(Equal(http.StatusBadRequest))
			Expect(body).To(ContainSubstring("common.bad_param"))
		})
	})

	Describe("HandleUpdateProject", func() {
		It("should be able to update project successfully", func() {
			var resId types.ID
			var payload *domain.ProjectUpdating
			namespace.UpdateProjectFunc = func(id types.ID, d *domain.ProjectUpdating, s *session.Session) error {
				resId = id
				payload = d
				return nil
			}

			req := httptest.NewRequest(http.MethodPut, namespace.ProjectsApiRoot+"/123", common.StringReader(`{"name": "new project name"}`))
			status, body, _ := testinfra.ExecuteRequest(req, router)
			Expect(status).To(Equal(http.StatusOK))
			Expect(body).To(BeEmpty())
			Expect(resId).To(Equal(types.ID(123)))
			Expect(*payload).To(Equal(domain.ProjectUpdating{Name: "new project name"}))
		})
	})

	Describe("HandleUpdateEventConfig", func() {
		It("should bind the config", func() {
			var payload *domain.EventConfig
			namespace.UpdateEventConfigFunc = func(id types.ID, c *domain.EventConfig, s *session.Session) (*domain.Project, error) {
				payload = c
				return &domain.Project{ID: id, Config: *c}, nil
			}

			req := httptest.NewRequest(http.MethodPut, namespace.ProjectsApiRoot+"/123/config", common.StringReader(
				`{"eventName": "Expo", "eventDate": "2026-04-15", "totalBudget": 5000, "sponsorTargets": {"Gold": 3}}`))
			status, _, _ := testinfra.ExecuteRequest(req, router)
			Expect(status).To(Equal(http.StatusOK))
			Expect(*payload).To(Equal(domain.EventConfig{EventName: "Expo", EventDate: "2026-04-15", TotalBudget: 5000,
				SponsorTargets: domain.SponsorTargets{Gold: 3}}))
		})
	})

	Describe("HandleDeleteProject", func() {
		It("should map the last project invariant to a conflict", func() {
			namespace.DeleteProjectFunc = func(id types.ID, s *session.Session) error {
				return bizerror.ErrLastProjectDelete
			}
			req := httptest.NewRequest(http.MethodDelete, namespace.ProjectsApiRoot+"/123", nil)
			status, body, _ := testinfra.ExecuteRequest(req, router)
			Expect(status).To(Equal(http.StatusConflict))
			Expect(body).To(ContainSubstring("project.last_project"))
		})
	})

	Describe("HandleSwitchProject", func() {
		It("should return the resulting workspace", func() {
			namespace.SwitchToFunc = func(id types.ID, s *session.Session) types.ID {
				s.Workspace.MoveTo(456)
				return 456
			}
			req := httptest.NewRequest(http.MethodPost, namespace.ProjectsApiRoot+"/123/switch", nil)
			status, body, _ := testinfra.ExecuteRequest(req, router)
			Expect(status).To(Equal(http.StatusOK))
			Expect(body).To(MatchJSON(`{"currentProjectId": "456", "activeTab": "dashboard"}`))
		})
	})

	Describe("HandleQueryActivity", func() {
		It("should pass the limit", func() {
			var limit int
			namespace.QueryActivityFunc = func(id types.ID, l int, s *session.Session) ([]event.EventRecord, error) {
				limit = l
				return []event.EventRecord{}, nil
			}
			req := httptest.NewRequest(http.MethodGet, namespace.ProjectsApiRoot+"/123/activity?limit=5", nil)
			status, body, _ := testinfra.ExecuteRequest(req, router)
			Expect(status).To(Equal(http.StatusOK))
			Expect(body).To(MatchJSON(`[]`))
			Expect(limit).To(Equal(5))

			req = httptest.NewRequest(http.MethodGet, namespace.ProjectsApiRoot+"/abc/activity", nil)
			status, _, _ = testinfra.ExecuteRequest(req, router)
			Expect(status).To(Equal(http.StatusBadRequest))
		})
	})
})
