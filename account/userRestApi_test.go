package account_test

import (
	"bytes"
	"eventdesk/account"
	"eventdesk/bizerror"
	"eventdesk/session"
	"eventdesk/testinfra"
	"net/http"
	"net/http/httptest"

	"github.com/fundwit/go-commons/types"
	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("UserRestApi", func() {
	var (
		router *gin.Engine
	)
	BeforeEach(func() {
		router = gin.Default()
		router.Use(bizerror.ErrorHandling())
		account.RegisterUsersHandler(router)
	})
	AfterEach(func() {
		account.QueryUsersFunc = account.QueryUsers
		account.CreateUserFunc = account.CreateUser
		account.UpdateUserFunc = account.UpdateUser
		account.UpdateOrgRoleFunc = account.UpdateOrgRole
	})

	Describe("HandleQueryUsers", func() {
		It("should return 200 when query successful", func() {
			account.QueryUsersFunc = func(sec *session.Session) ([]account.UserInfo, error) {
				return []account.UserInfo{{ID: 123, Name: "test"}}, nil
			}

			req := httptest.NewRequest(http.MethodGet, "/v1/users", nil)
			status, body, _ := testinfra.ExecuteRequest(req, router)
			Expect(status).To(Equal(http.StatusOK))
			Expect(body).To(MatchJSON(`[{"id": "123", "name": "test", "email": "", "nickname": ""}]`))
		})
	})

	Describe("HandleCreateUser", func() {
		It("should return 200 when create successful", func() {
			var payload *account.UserCreation
			account.CreateUserFunc = func(c *account.UserCreation, sec *session.Session) (*account.UserInfo, error) {
				payload = c
				return &account.UserInfo{ID: 123, Name: "test", Nickname: "Test"}, nil
			}

			req := httptest.NewRequest(http.MethodPost, "/v1/users", bytes.NewReader([]byte(
				`{"name":"test", "nickname": "Test", "orgRole": "MEMBER"}`)))
			status, body, _ := testinfra.ExecuteRequest(req, router)
			Expect(status).To(Equal(http.StatusOK))
			Expect(body).To(MatchJSON(`{"id": "123", "name": "test", "email": "", "nickname": "Test"}`))
			Expect(*payload).To(Equal(account.UserCreation{Name: "test", Nickname: "Test", OrgRole: "MEMBER"}))
		})

		It("should return 400 when validation failed", func() {
			called := false
			account.CreateUserFunc = func(c *account.UserCreation, sec *session.Session) (*account.UserInfo, error) {
				called = true
				return nil, nil
			}

			req := httptest.NewRequest(http.MethodPost, "/v1/users", bytes.NewReader([]byte(`{"orgRole": "KING"}`)))
			status, body, _ := testinfra.ExecuteRequest(req, router)
			Expect(status).To(Equal(http.StatusBadRequest))
			Expect(body).To(ContainSubstring(`"code":"common.bad_param"`))
			Expect(called).To(BeFalse())
		})
	})

	Describe("HandleUpdateUser", func() {
		It("should return 200 when update user successful", func() {
			var id types.ID
			var payload *account.UserUpdation
			account.UpdateUserFunc = func(userId types.ID, c *account.UserUpdation, sec *session.Session) error {
				id, payload = userId, c
				return nil
			}

			req := httptest.NewRequest(http.MethodPut, "/v1/users/100", bytes.NewReader([]byte(`{"nickname":"Test"}`)))
			status, body, _ := testinfra.ExecuteRequest(req, router)
			Expect(status).To(Equal(http.StatusOK))
			Expect(body).To(BeZero())
			Expect(id).To(Equal(types.ID(100)))
			Expect(*payload).To(Equal(account.UserUpdation{Nickname: "Test"}))
		})

		It("should map manager errors", func() {
			account.UpdateUserFunc = func(userId types.ID, c *account.UserUpdation, sec *session.Session) error {
				return bizerror.ErrForbidden
			}
			req := httptest.NewRequest(http.MethodPut, "/v1/users/100", bytes.NewReader([]byte(`{"nickname":"Test"}`)))
			status, body, _ := testinfra.ExecuteRequest(req, router)
			Expect(status).To(Equal(http.StatusForbidden))
			Expect(body).To(MatchJSON(`{"code":"security.forbidden","message":"access forbidden","data":null}`))
		})
	})

	Describe("HandleUpdateOrgRole", func() {
		It("should pass the role to the manager", func() {
			var payload *account.OrgRoleUpdation
			account.UpdateOrgRoleFunc = func(userId types.ID, c *account.OrgRoleUpdation, sec *session.Session) error {
				payload = c
				return nil
			}
			req := httptest.NewRequest(http.MethodPut, "/v1/users/5/org-role", bytes.NewReader([]byte(`{"role":"ADMIN"}`)))
			status, _, _ := testinfra.ExecuteRequest(req, router)
			Expect(status).To(Equal(http.StatusOK))
			Expect(payload.Role).To(Equal("ADMIN"))
		})
	})
})
