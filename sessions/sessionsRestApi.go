package sessions

import (
	"eventdesk/account"
	"eventdesk/bizerror"
	"eventdesk/session"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// RegisterSessionsHandler mounts the anonymous login endpoints; loginMiddleWares
// wrap the login itself, e.g. a rate limiter.
func RegisterSessionsHandler(r *gin.Engine, loginMiddleWares ...gin.HandlerFunc) {
	g := r.Group("/v1/sessions")
	g.POST("", append(loginMiddleWares, SimpleLoginHandler)...)
	g.DELETE("", SimpleLogoutHandler)
	g.GET("users", handleQueryLoginUsers)
}

func SimpleLogoutHandler(c *gin.Context) {
	token, _ := c.Cookie(session.KeySecToken) // ErrNoCookie
	Logout(token)
	c.SetCookie(session.KeySecToken, "", -1, "/", "", false, true)
	c.AbortWithStatus(http.StatusNoContent)
}

func SimpleLoginHandler(c *gin.Context) {
	login := session.LoginRequest{}
	if err := c.ShouldBindBodyWith(&login, binding.JSON); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
	s, err := LoginFunc(&login)
	if err != nil {
		panic(err)
	}
	c.SetCookie(session.KeySecToken, s.Token, int(session.TokenExpiration/time.Second), "/", "", false, true)
	c.JSON(http.StatusOK, s)
}

// the login picker lists every user of the directory
func handleQueryLoginUsers(c *gin.Context) {
	c.JSON(http.StatusOK, account.ActiveDirectory.Users())
}
