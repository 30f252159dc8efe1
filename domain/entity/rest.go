package entity

import (
	"eventdesk/bizerror"
	"eventdesk/domain/namespace"
	"eventdesk/misc"
	"eventdesk/session"
	"net/http"

	"github.com/fundwit/go-commons/types"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// RecordIDParam names the record id in nested collection routes.
const RecordIDParam = "id"

// CollectionApi is the REST surface of one project collection:
//
//	GET    /v1/projects/:projectId/<path>
//	POST   /v1/projects/:projectId/<path>
//	PUT    /v1/projects/:projectId/<path>        bulk replace
//	GET    /v1/projects/:projectId/<path>/:id
//	PUT    /v1/projects/:projectId/<path>/:id
//	DELETE /v1/projects/:projectId/<path>/:id
type CollectionApi[T, C, U any] struct {
	Query   func(projectID types.ID, sec *session.Session) ([]T, error)
	Detail  func(projectID types.ID, id int, sec *session.Session) (*T, error)
	Create  func(projectID types.ID, c *C, sec *session.Session) (*T, error)
	Update  func(projectID types.ID, id int, u *U, sec *session.Session) (*T, error)
	Delete  func(projectID types.ID, id int, sec *session.Session) error
	Replace func(projectID types.ID, records []T, sec *session.Session) ([]T, error)

	// Filter optionally narrows query results by request parameters.
	Filter func(c *gin.Context, records []T) []T
}

// CollectionPath is the route of a project collection.
func CollectionPath(name string) string {
	return namespace.ProjectsApiRoot + "/:" + namespace.ProjectIDParam + "/" + name
}

func (a CollectionApi[T, C, U]) Register(r *gin.Engine, path string, middleWares ...gin.HandlerFunc) *gin.RouterGroup {
	g := r.Group(path, middleWares...)
	g.GET("", a.handleQuery)
	g.POST("", a.handleCreate)
	g.PUT("", a.handleReplace)
	g.GET(":"+RecordIDParam, a.handleDetail)
	g.PUT(":"+RecordIDParam, a.handleUpdate)
	g.DELETE(":"+RecordIDParam, a.handleDelete)
	return g
}

func (a CollectionApi[T, C, U]) handleQuery(c *gin.Context) {
	projectID := BindProjectID(c)
	result, err := a.Query(projectID, session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	if a.Filter != nil {
		result = a.Filter(c, result)
	}
	c.JSON(http.StatusOK, result)
}

func (a CollectionApi[T, C, U]) handleDetail(c *gin.Context) {
	projectID, id := BindProjectID(c), BindRecordID(c, RecordIDParam)
	result, err := a.Detail(projectID, id, session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, result)
}

func (a CollectionApi[T, C, U]) handleCreate(c *gin.Context) {
	projectID := BindProjectID(c)
	var creation C
	if err := c.ShouldBindBodyWith(&creation, binding.JSON); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
	result, err := a.Create(projectID, &creation, session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, result)
}

func (a CollectionApi[T, C, U]) handleUpdate(c *gin.Context) {
	projectID, id := BindProjectID(c), BindRecordID(c, RecordIDParam)
	var updating U
	if err := c.ShouldBindBodyWith(&updating, binding.JSON); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
	result, err := a.Update(projectID, id, &updating, session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, result)
}

func (a CollectionApi[T, C, U]) handleDelete(c *gin.Context) {
	projectID, id := BindProjectID(c), BindRecordID(c, RecordIDParam)
	if err := a.Delete(projectID, id, session.ExtractSessionFromGinContext(c)); err != nil {
		panic(err)
	}
	c.Status(http.StatusOK)
}

// handleReplace binds without validation; imported rows are coerced and
// validated by the manager.
func (a CollectionApi[T, C, U]) handleReplace(c *gin.Context) {
	projectID := BindProjectID(c)
	records := []T{}
	if err := c.ShouldBindBodyWith(&records, jsonDecoding{}); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
	result, err := a.Replace(projectID, records, session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, result)
}

func BindProjectID(c *gin.Context) types.ID {
	id, err := misc.BindingPathParamID(c, namespace.ProjectIDParam)
	if err != nil {
		panic(err)
	}
	return id
}

func BindRecordID(c *gin.Context, name string) int {
	id, err := misc.BindingPathIntID(c, name)
	if err != nil {
		panic(err)
	}
	return id
}
