package servehttp

import (
	"eventdesk/account"
	"eventdesk/bizerror"
	"eventdesk/common"
	"eventdesk/config"
	"eventdesk/domain/alliance"
	"eventdesk/domain/budget"
	"eventdesk/domain/marketing"
	"eventdesk/domain/namespace"
	"eventdesk/domain/speaker"
	"eventdesk/domain/sponsor"
	"eventdesk/domain/strategy"
	"eventdesk/domain/task"
	"eventdesk/domain/team"
	"eventdesk/event"
	"eventdesk/infra/tracing"
	"eventdesk/insight"
	"eventdesk/metrics"
	"eventdesk/persistence"
	"eventdesk/session"
	"eventdesk/sessions"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Bootstrap prepares the process-wide state the engine serves: the activity
// journal, the change handlers and the gauges.
func Bootstrap(cfg *config.Config) {
	event.DefaultJournal = event.NewJournal(cfg.JournalCapacity)
	event.EventHandlers = []event.EventHandler{metrics.MutationEventHandler}
	metrics.ProjectsCurrent.Set(float64(persistence.ActiveStore.Len()))
}

func BuildEngine(cfg *config.Config) *gin.Engine {
	engine := gin.Default()
	engine.Use(tracing.TracingIngress(), metrics.Middleware(), bizerror.ErrorHandling())

	engine.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, common.ServiceName)
	})
	metrics.RegisterMetricsRestApis(engine)

	sessions.RegisterSessionsHandler(engine, sessions.LoginRateLimit(loginLimit(cfg), cfg.LoginBurst))

	auth := session.SimpleAuthFilter(account.MembershipLoader())
	sessions.RegisterSessionHandler(engine, auth)
	account.RegisterUsersHandler(engine, auth)
	namespace.RegisterProjectsRestApis(engine, auth)
	namespace.RegisterProjectMembersRestApis(engine, auth)

	task.RegisterTasksRestAPI(engine, auth)
	budget.RegisterBudgetRestAPI(engine, auth)
	speaker.RegisterSpeakersRestAPI(engine, auth)
	sponsor.RegisterSponsorsRestAPI(engine, auth)
	alliance.RegisterUniversitiesRestAPI(engine, auth)
	team.RegisterTeamRestAPI(engine, auth)
	strategy.RegisterObjectivesRestAPI(engine, auth)
	marketing.RegisterMarketingRestAPI(engine, auth)
	insight.RegisterInsightsRestAPI(engine, auth)

	return engine
}

// a rate of zero disables the login limiter
func loginLimit(cfg *config.Config) rate.Limit {
	if cfg.LoginRatePerMinute == 0 {
		return rate.Inf
	}
	return rate.Limit(cfg.LoginRatePerMinute / 60)
}
