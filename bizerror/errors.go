package bizerror

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("forbidden")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrTooManyRequests = errors.New("too many requests")

	ErrLastProjectDelete      = errors.New("the last project can not be deleted")
	ErrLastDirectorRevoke     = errors.New("the last director of a project can not be revoked")
	ErrProjectMemberSelfGrant = errors.New("project members can not change their own role")
)

type BizError interface {
	Respond() *BizErrorDetail
}

type BizErrorDetail struct {
	Status  int
	Code    string
	Message string

	Data  interface{}
	Cause error
}

type ErrorBody struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

type ErrBadParam struct {
	Cause error
}

func (e *ErrBadParam) Unwrap() error {
	return e.Cause
}
func (e *ErrBadParam) Error() string {
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return "common.bad_param"
}
func (e *ErrBadParam) Respond() *BizErrorDetail {
	message := "common.bad_param"
	if e.Cause != nil {
		message = e.Cause.Error()
	}
	return &BizErrorDetail{Status: http.StatusBadRequest, Code: "common.bad_param", Message: message, Data: nil}
}

// BadParam wraps cause unless it already is a bad-param error.
func BadParam(cause error) error {
	if cause == nil {
		return nil
	}
	var bad *ErrBadParam
	if errors.As(cause, &bad) {
		return cause
	}
	return &ErrBadParam{Cause: cause}
}
