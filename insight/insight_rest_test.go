package insight_test

import (
	"eventdesk/authority"
	"eventdesk/bizerror"
	"eventdesk/common"
	"eventdesk/domain"
	"eventdesk/domain/task"
	"eventdesk/insight"
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

var _ = Describe("InsightsRestAPI", func() {
	var (
		router    *gin.Engine
		testStore *testinfra.TestStore
		viewer    *session.Session
	)
	BeforeEach(func() {
		testStore = testinfra.StartTestStore(100, 200)
		viewer = testinfra.BuildSession(3, testinfra.EventRole(100, authority.EventRoleViewer))
		router = gin.Default()
		router.Use(bizerror.ErrorHandling())
		insight.RegisterInsightsRestAPI(router, testinfra.SessionInjector(viewer))

		coordinator := testinfra.BuildSession(2, testinfra.EventRole(100, authority.EventRoleCoordinator))
		for _, date := range []string{"2026-02-10", "2026-03-20", ""} {
			_, err := task.CreateTask(100, &domain.TaskCreation{Title: "t " + date, Date: date}, coordinator)
			Expect(err).To(BeNil())
		}
	})
	AfterEach(func() {
		testinfra.StopTestStore(testStore)
		insight.QueryCalendarFunc = insight.QueryCalendar
		common.NowFunc = time.Now
	})

	It("should serve the timeline in both modes", func() {
		req := httptest.NewRequest(http.MethodGet, "/v1/projects/100/insights/timeline", nil)
		status, body, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusOK))
		Expect(body).To(ContainSubstring(`"label":"Febrero - Marzo"`))
		Expect(body).To(ContainSubstring(`"label":"Sin Fecha"`))

		req = httptest.NewRequest(http.MethodGet, "/v1/projects/100/insights/timeline?mode=months", nil)
		status, body, _ = testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusOK))
		Expect(body).To(ContainSubstring(`"label":"Febrero 2026"`))
		Expect(body).To(ContainSubstring(`"label":"Marzo 2026"`))

		req = httptest.NewRequest(http.MethodGet, "/v1/projects/100/insights/timeline?mode=weeks", nil)
		status, _, _ = testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusBadRequest))
	})

	It("should default the calendar to the current month", func() {
		common.NowFunc = func() time.Time { return time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC) }
		var year int
		var month time.Month
		insight.QueryCalendarFunc = func(projectID types.ID, y int, m time.Month, sec *session.Session) (*insight.MonthView, error) {
			year, month = y, m
			return &insight.MonthView{}, nil
		}

		req := httptest.NewRequest(http.MethodGet, "/v1/projects/100/insights/calendar", nil)
		status, _, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusOK))
		Expect(year).To(Equal(2026))
		Expect(month).To(Equal(time.March))

		req = httptest.NewRequest(http.MethodGet, "/v1/projects/100/insights/calendar?year=2025&month=11", nil)
		status, _, _ = testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusOK))
		Expect(year).To(Equal(2025))
		Expect(month).To(Equal(time.November))

		req = httptest.NewRequest(http.MethodGet, "/v1/projects/100/insights/calendar?month=13", nil)
		status, _, _ = testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusBadRequest))
	})

	It("should serve the calendar grid", func() {
		req := httptest.NewRequest(http.MethodGet, "/v1/projects/100/insights/calendar?year=2026&month=2", nil)
		status, body, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusOK))
		Expect(body).To(ContainSubstring(`"label":"Febrero 2026"`))
		Expect(body).To(ContainSubstring(`"date":"2026-02-10","tasks":[{"id":1`))
	})

	It("should serve the dashboard to members only", func() {
		req := httptest.NewRequest(http.MethodGet, "/v1/projects/100/insights/dashboard", nil)
		status, body, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusOK))
		Expect(body).To(ContainSubstring(`"eventName":"event100"`))
		Expect(body).To(ContainSubstring(`"total":3`))

		req = httptest.NewRequest(http.MethodGet, "/v1/projects/200/insights/dashboard", nil)
		status, _, _ = testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusForbidden))
	})
})
