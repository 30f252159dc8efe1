package namespace_test

import (
	"eventdesk/bizerror"
	"eventdesk/common"
	"eventdesk/domain"
	"eventdesk/domain/namespace"
	"eventdesk/session"
	"eventdesk/testinfra"
	"net/http"
	"net/http/httptest"

	"github.com/fundwit/go-commons/types"
	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("ProjectMembersRestApi", func() {
	var (
		router *gin.Engine
	)
	BeforeEach(func() {
		router = gin.Default()
		router.Use(bizerror.ErrorHandling())
		namespace.RegisterProjectMembersRestApis(router)
	})
	AfterEach(func() {
		namespace.QueryProjectMembersFunc = namespace.QueryProjectMemberDetails
		namespace.CreateProjectMemberFunc = namespace.CreateProjectMember
		namespace.DeleteProjectMemberFunc = namespace.DeleteProjectMember
	})

	Describe("HandleQueryProjectMembers", func() {
		It("should list the members of the project in the path", func() {
			var query *domain.ProjectMemberQuery
			namespace.QueryProjectMembersFunc = func(q *domain.ProjectMemberQuery, sec *session.Session) ([]domain.ProjectMemberDetail, error) {
				query = q
				return []domain.ProjectMemberDetail{{ProjectMember: domain.ProjectMember{ProjectID: 100, MemberID: 2, Role: "DIRECTOR"},
					ProjectName: "p", MemberName: "carlos"}}, nil
			}
			req := httptest.NewRequest(http.MethodGet, "/v1/projects/100/members", nil)
			status, body, _ := testinfra.ExecuteRequest(req, router)
			Expect(status).To(Equal(http.StatusOK))
			Expect(body).To(ContainSubstring(`"memberName":"carlos"`))
			Expect(*query.ProjectID).To(Equal(types.ID(100)))
			Expect(query.MemberID).To(BeNil())
		})

		It("should reject a malformed project id", func() {
			req := httptest.NewRequest(http.MethodGet, "/v1/projects/abc/members", nil)
			status, _, _ := testinfra.ExecuteRequest(req, router)
			Expect(status).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("HandleGrantEventRole", func() {
		It("should take project and member from the path", func() {
			var payload *domain.ProjectMemberCreation
			namespace.CreateProjectMemberFunc = func(d *domain.ProjectMemberCreation, sec *session.Session) error {
				payload = d
				return nil
			}
			req := httptest.NewRequest(http.MethodPut, "/v1/projects/100/members/3", common.StringReader(`{"role": "VIEWER"}`))
			status, _, _ := testinfra.ExecuteRequest(req, router)
			Expect(status).To(Equal(http.StatusOK))
			Expect(*payload).To(Equal(domain.ProjectMemberCreation{ProjectID: 100, MemberID: 3, Role: "VIEWER"}))
		})

		It("should reject unknown roles", func() {
			called := false
			namespace.CreateProjectMemberFunc = func(d *domain.ProjectMemberCreation, sec *session.Session) error {
				called = true
				return nil
			}
			req := httptest.NewRequest(http.MethodPut, "/v1/projects/100/members/3", common.StringReader(`{"role": "OWNER"}`))
			status, _, _ := testinfra.ExecuteRequest(req, router)
			Expect(status).To(Equal(http.StatusBadRequest))
			Expect(called).To(BeFalse())
		})
	})

	Describe("HandleRevokeEventRole", func() {
		It("should map the last director invariant", func() {
			var deletion *domain.ProjectMemberDeletion
			namespace.DeleteProjectMemberFunc = func(d *domain.ProjectMemberDeletion, sec *session.Session) error {
				deletion = d
				return bizerror.ErrLastDirectorRevoke
			}
			req := httptest.NewRequest(http.MethodDelete, "/v1/projects/100/members/2", nil)
			status, body, _ := testinfra.ExecuteRequest(req, router)
			Expect(status).To(Equal(http.StatusConflict))
			Expect(body).To(ContainSubstring("project.last_director"))
			Expect(*deletion).To(Equal(domain.ProjectMemberDeletion{ProjectID: 100, MemberID: 2}))
		})
	})
})
