package namespace_test

import (
	"eventdesk/account"
	"eventdesk/authority"
	"eventdesk/bizerror"
	"eventdesk/domain"
	"eventdesk/domain/namespace"
	"eventdesk/persistence"
	"eventdesk/session"
	"eventdesk/testinfra"

	"github.com/fundwit/go-commons/types"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("ProjectMembers", func() {
	var (
		testStore *testinfra.TestStore
		director  *session.Session
	)
	BeforeEach(func() {
		testStore = testinfra.StartTestStore(100, 200)
		for i, name := range []string{"ana", "carlos", "luis"} {
			Expect(account.ActiveDirectory.AddUser(account.User{ID: types.ID(i + 1), Name: name}, "")).To(Succeed())
		}
		Expect(testStore.Store.Transaction(100, func(d *persistence.ProjectData) error {
			d.Members = []domain.ProjectMember{{ProjectID: 100, MemberID: 2, Role: "DIRECTOR"}}
			return nil
		})).To(Succeed())
		director = testinfra.BuildSession(2, testinfra.EventRole(100, authority.EventRoleDirector))
	})
	AfterEach(func() {
		testinfra.StopTestStore(testStore)
	})

	Describe("CreateProjectMember", func() {
		It("should grant and replace roles", func() {
			Expect(namespace.CreateProjectMember(&domain.ProjectMemberCreation{ProjectID: 100, MemberID: 3, Role: "VIEWER"}, director)).To(Succeed())
			Expect(namespace.CreateProjectMember(&domain.ProjectMemberCreation{ProjectID: 100, MemberID: 3, Role: "COORDINATOR"}, director)).To(Succeed())

			members := testStore.Project(100).Members
			Expect(members).To(HaveLen(2))
			Expect(members[1].MemberID).To(Equal(types.ID(3)))
			Expect(members[1].Role).To(Equal("COORDINATOR"))
		})

		It("should refuse self grants", func() {
			err := namespace.CreateProjectMember(&domain.ProjectMemberCreation{ProjectID: 100, MemberID: 2, Role: "VIEWER"}, director)
			Expect(err).To(Equal(bizerror.ErrProjectMemberSelfGrant))
		})

		It("should refuse to demote the last director", func() {
			owner := testinfra.BuildSession(1, testinfra.EventRole(100, authority.EventRoleDirector))
			err := namespace.CreateProjectMember(&domain.ProjectMemberCreation{ProjectID: 100, MemberID: 2, Role: "VIEWER"}, owner)
			Expect(err).To(Equal(bizerror.ErrLastDirectorRevoke))
		})

		It("should require manage:team and known users", func() {
			coordinator := testinfra.BuildSession(3, testinfra.EventRole(100, authority.EventRoleCoordinator))
			err := namespace.CreateProjectMember(&domain.ProjectMemberCreation{ProjectID: 100, MemberID: 1, Role: "VIEWER"}, coordinator)
			Expect(err).To(Equal(bizerror.ErrForbidden))

			err = namespace.CreateProjectMember(&domain.ProjectMemberCreation{ProjectID: 100, MemberID: 404, Role: "VIEWER"}, director)
			Expect(err).To(Equal(bizerror.ErrNotFound))

			err = namespace.CreateProjectMember(&domain.ProjectMemberCreation{ProjectID: 100, MemberID: 1, Role: "OWNER"}, director)
			Expect(err).To(BeAssignableToTypeOf(&bizerror.ErrBadParam{}))
		})
	})

	Describe("DeleteProjectMember", func() {
		It("should revoke roles and keep the last director", func() {
			Expect(namespace.CreateProjectMember(&domain.ProjectMemberCreation{ProjectID: 100, MemberID: 3, Role: "VIEWER"}, director)).To(Succeed())
			Expect(namespace.DeleteProjectMember(&domain.ProjectMemberDeletion{ProjectID: 100, MemberID: 3}, director)).To(Succeed())
			Expect(namespace.DeleteProjectMember(&domain.ProjectMemberDeletion{ProjectID: 100, MemberID: 3}, director)).To(Succeed())
			Expect(testStore.Project(100).Members).To(HaveLen(1))

			err := namespace.DeleteProjectMember(&domain.ProjectMemberDeletion{ProjectID: 100, MemberID: 2}, director)
			Expect(err).To(Equal(bizerror.ErrLastDirectorRevoke))
		})
	})

	Describe("QueryProjectMemberDetails", func() {
		It("should detail visible memberships", func() {
			details, err := namespace.QueryProjectMemberDetails(&domain.ProjectMemberQuery{}, director)
			Expect(err).To(BeNil())
			Expect(details).To(HaveLen(1))
			Expect(details[0].ProjectName).To(Equal("project100"))
			Expect(details[0].MemberName).To(Equal("carlos"))

			details, err = namespace.QueryProjectMemberDetails(&domain.ProjectMemberQuery{},
				testinfra.BuildSession(3, testinfra.EventRole(200, authority.EventRoleViewer)))
			Expect(err).To(BeNil())
			Expect(details).To(BeEmpty())
		})

		It("should fall back to Unknown names", func() {
			details, err := namespace.DetailProjectMembers([]domain.ProjectMember{{ProjectID: 999, MemberID: 999}})
			Expect(err).To(BeNil())
			Expect(details[0].ProjectName).To(Equal("Unknown"))
			Expect(details[0].MemberName).To(Equal("Unknown"))
		})
	})
})
