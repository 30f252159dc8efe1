package insight

import (
	"eventdesk/bizerror"
	"eventdesk/common"
	"eventdesk/domain/entity"
	"eventdesk/session"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

var PathInsights = entity.CollectionPath("insights")

type TimelineQuery struct {
	Mode string `form:"mode"`
}

// CalendarQuery defaults to the current month when a field is absent.
type CalendarQuery struct {
	Year  int `form:"year" binding:"omitempty,gte=1970,lte=9999"`
	Month int `form:"month" binding:"omitempty,gte=1,lte=12"`
}

func RegisterInsightsRestAPI(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	g := r.Group(PathInsights, middleWares...)
	g.GET("dashboard", handleQueryDashboard)
	g.GET("timeline", handleQueryTimeline)
	g.GET("calendar", handleQueryCalendar)
}

func handleQueryDashboard(c *gin.Context) {
	projectID := entity.BindProjectID(c)
	v, err := QueryDashboardFunc(projectID, session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, v)
}

func handleQueryTimeline(c *gin.Context) {
	projectID := entity.BindProjectID(c)
	q := TimelineQuery{}
	if err := c.ShouldBindQuery(&q); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
	mode, err := ParseTimelineMode(q.Mode)
	if err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
	phases, err := QueryTimelineFunc(projectID, mode, session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, phases)
}

func handleQueryCalendar(c *gin.Context) {
	projectID := entity.BindProjectID(c)
	q := CalendarQuery{}
	if err := c.ShouldBindQuery(&q); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
	now := common.NowFunc()
	if q.Year == 0 {
		q.Year = now.Year()
	}
	if q.Month == 0 {
		q.Month = int(now.Month())
	}
	v, err := QueryCalendarFunc(projectID, q.Year, time.Month(q.Month), session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, v)
}
