package bizerror

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

const CommonInternalServerError = "common.internal_server_error"

func ErrorHandling() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handle(c)
		c.Next()
	}
}

func handle(c *gin.Context) {
	if ret := recover(); ret != nil {
		err, ok := ret.(error)
		if !ok {
			err = errors.New(fmt.Sprintf("%s", ret))
		}
		HandleError(c, err)
	} else {
		if err := c.Errors.Last(); err != nil {
			HandleError(c, err)
		}
	}
}

type statusRule struct {
	target  error
	status  int
	code    string
	message string
}

var sentinelRules = []statusRule{
	{ErrUnauthenticated, http.StatusUnauthorized, "common.unauthenticated", "unauthenticated"},
	{ErrForbidden, http.StatusForbidden, "security.forbidden", "access forbidden"},
	{ErrTooManyRequests, http.StatusTooManyRequests, "common.too_many_requests", "too many requests"},
	{ErrLastProjectDelete, http.StatusConflict, "project.last_project", ErrLastProjectDelete.Error()},
	{ErrLastDirectorRevoke, http.StatusConflict, "project.last_director", ErrLastDirectorRevoke.Error()},
	{ErrProjectMemberSelfGrant, http.StatusForbidden, "project.self_grant", ErrProjectMemberSelfGrant.Error()},
	{ErrNotFound, http.StatusNotFound, "common.record_not_found", "record not found"},
}

func HandleError(c *gin.Context, err error) {
	genericErr := err
	var ginErr *gin.Error
	if errors.As(err, &ginErr) {
		genericErr = ginErr.Err
	}

	var bizErr BizError
	if errors.As(genericErr, &bizErr) {
		respond := bizErr.Respond()
		logrus.Debug(err)
		abort(c, respond.Status, respond.Code, respond.Message, respond.Data)
		return
	}

	// bad request:  io.EOF (no body).
	if errors.Is(genericErr, io.EOF) {
		abort(c, http.StatusBadRequest, "bad_request.body_not_found", "body not found", nil)
		return
	}
	// bad request: json syntax Error
	var syntaxErr *json.SyntaxError
	if errors.As(genericErr, &syntaxErr) {
		abort(c, http.StatusBadRequest, "bad_request.invalid_body_format", "invalid body format", syntaxErr.Error())
		return
	}
	var validationErr validator.ValidationErrors
	if errors.As(genericErr, &validationErr) {
		abort(c, http.StatusBadRequest, "bad_request.validation_failed", "validation failed", validationErr.Error())
		return
	}

	for _, rule := range sentinelRules {
		if errors.Is(genericErr, rule.target) {
			logrus.Debug(err)
			abort(c, rule.status, rule.code, rule.message, nil)
			return
		}
	}

	logrus.Error(err)
	abort(c, http.StatusInternalServerError, CommonInternalServerError, err.Error(), nil)
}

func abort(c *gin.Context, status int, code, message string, data interface{}) {
	c.JSON(status, &ErrorBody{Code: code, Message: message, Data: data})
	c.Abort()
}
