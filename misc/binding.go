package misc

import (
	"errors"
	"eventdesk/bizerror"
	"strconv"

	"github.com/fundwit/go-commons/types"
	"github.com/gin-gonic/gin"
)

var errInvalidPathID = errors.New("invalid id")

// BindingPathID parses the ":id" path parameter as an opaque id.
func BindingPathID(c *gin.Context) (types.ID, error) {
	return BindingPathParamID(c, "id")
}

func BindingPathParamID(c *gin.Context, name string) (types.ID, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || v == 0 {
		return 0, &bizerror.ErrBadParam{Cause: errInvalidPathID}
	}
	return types.ID(v), nil
}

// BindingPathIntID parses a project-local numeric record id.
func BindingPathIntID(c *gin.Context, name string) (int, error) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil || v <= 0 {
		return 0, &bizerror.ErrBadParam{Cause: errInvalidPathID}
	}
	return v, nil
}
