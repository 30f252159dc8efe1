package sessions

import (
	"eventdesk/bizerror"
	"eventdesk/session"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type TabSwitch struct {
	Tab string `json:"tab" binding:"required"`
}

func RegisterSessionHandler(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	g := r.Group("/v1/session", middleWares...)
	g.GET("", DetailSessionSecurityContext)
	g.PUT("tab", handleSwitchTab)
}

func DetailSessionSecurityContext(c *gin.Context) {
	d, err := DetailSessionFunc(session.ExtractSessionFromGinContext(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, d)
}

func handleSwitchTab(c *gin.Context) {
	req := TabSwitch{}
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
	sec := session.ExtractSessionFromGinContext(c)
	if err := SwitchTab(req.Tab, sec); err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, sec.Workspace)
}
