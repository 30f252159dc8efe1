package namespace

import (
	"eventdesk/bizerror"
	"eventdesk/domain"
	"eventdesk/misc"
	"eventdesk/session"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// ProjectIDParam is shared by every route nested under a project.
const ProjectIDParam = "projectId"

var (
	ProjectsApiRoot = "/v1/projects"

	QueryProjectsFunc     = QueryProjects
	DetailProjectFunc     = DetailProject
	CreateProjectFunc     = CreateProject
	UpdateProjectFunc     = UpdateProject
	UpdateEventConfigFunc = UpdateEventConfig
	DeleteProjectFunc     = DeleteProject
	SwitchToFunc          = SwitchTo
	QueryActivityFunc     = QueryActivity
)

func RegisterProjectsRestApis(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	projects := r.Group(ProjectsApiRoot, middleWares...)
	projects.GET("", HandleQueryProjects)
	projects.POST("", HandleCreateProject)
	projects.GET(":projectId", HandleDetailProject)
	projects.PUT(":projectId", HandleUpdateProject)
	projects.DELETE(":projectId", HandleDeleteProject)
	projects.PUT(":projectId/config", HandleUpdateEventConfig)
	projects.POST(":projectId/switch", HandleSwitchProject)
	projects.GET(":projectId/activity", HandleQueryActivity)
}

func HandleQueryProjects(c *gin.Context) {
	result, err := QueryProjectsFunc(session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, &result)
}

func HandleDetailProject(c *gin.Context) {
	id, err := misc.BindingPathParamID(c, ProjectIDParam)
	if err != nil {
		panic(err)
	}
	result, err := DetailProjectFunc(id, session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, result)
}

func HandleCreateProject(c *gin.Context) {
	payload := domain.ProjectCreating{}
	err := c.ShouldBindBodyWith(&payload, binding.JSON)
	if err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
	sec := session.ExtractSessionFromGinContext(c)
	result, err := CreateProjectFunc(&payload, sec)
	if err != nil {
		panic(err)
	}
	session.StoreSession(sec)
	c.JSON(http.StatusOK, result)
}

func HandleUpdateProject(c *gin.Context) {
	id, err := misc.BindingPathParamID(c, ProjectIDParam)
	if err != nil {
		panic(err)
	}

	payload := domain.ProjectUpdating{}
	err = c.ShouldBindBodyWith(&payload, binding.JSON)
	if err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
	err = UpdateProjectFunc(id, &payload, session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.Status(http.StatusOK)
}

func HandleUpdateEventConfig(c *gin.Context) {
	id, err := misc.BindingPathParamID(c, ProjectIDParam)
	if err != nil {
		panic(err)
	}

	payload := domain.EventConfig{}
	err = c.ShouldBindBodyWith(&payload, binding.JSON)
	if err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
	result, err := UpdateEventConfigFunc(id, &payload, session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, result)
}

func HandleDeleteProject(c *gin.Context) {
	id, err := misc.BindingPathParamID(c, ProjectIDParam)
	if err != nil {
		panic(err)
	}
	sec := session.ExtractSessionFromGinContext(c)
	if err := DeleteProjectFunc(id, sec); err != nil {
		panic(err)
	}
	session.StoreSession(sec)
	c.Status(http.StatusOK)
}

func HandleSwitchProject(c *gin.Context) {
	id, err := misc.BindingPathParamID(c, ProjectIDParam)
	if err != nil {
		panic(err)
	}
	sec := session.ExtractSessionFromGinContext(c)
	SwitchToFunc(id, sec)
	session.StoreSession(sec)
	c.JSON(http.StatusOK, &sec.Workspace)
}

func HandleQueryActivity(c *gin.Context) {
	id, err := misc.BindingPathParamID(c, ProjectIDParam)
	if err != nil {
		panic(err)
	}
	limit := 50
	if v := c.Query("limit"); v != "" {
		if limit, err = strconv.Atoi(v); err != nil {
			panic(&bizerror.ErrBadParam{Cause: err})
		}
	}
	result, err := QueryActivityFunc(id, limit, session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, result)
}
