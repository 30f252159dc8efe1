package account_test

import (
	"eventdesk/account"
	"eventdesk/authority"
	"eventdesk/bizerror"
	"eventdesk/domain"
	"eventdesk/persistence"
	"eventdesk/session"
	"eventdesk/testinfra"

	"github.com/fundwit/go-commons/types"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("userManage", func() {
	var (
		testStore *testinfra.TestStore
		owner     *session.Session
	)
	BeforeEach(func() {
		testStore = testinfra.StartTestStore(100)
		Expect(account.ActiveDirectory.AddUser(account.User{ID: 1, Name: "ana", Email: "ana@example.com"}, "OWNER")).To(Succeed())
		Expect(account.ActiveDirectory.AddUser(account.User{ID: 2, Name: "luis", Nickname: "Luis"}, "")).To(Succeed())
		owner = testinfra.BuildSession(1, testinfra.OrgRole(testinfra.TestOrganizationID, authority.OrgRoleOwner))
	})
	AfterEach(func() {
		testinfra.StopTestStore(testStore)
	})

	Describe("Directory", func() {
		It("should reject invalid users", func() {
			Expect(account.ActiveDirectory.AddUser(account.User{ID: 1, Name: "dup"}, "")).To(HaveOccurred())
			Expect(account.ActiveDirectory.AddUser(account.User{ID: 3, Name: "x"}, "KING")).To(HaveOccurred())
			Expect(account.ActiveDirectory.AddUser(account.User{Name: "x"}, "")).To(HaveOccurred())
		})

		It("should expose organization memberships", func() {
			Expect(account.ActiveDirectory.OrgMemberships(1)).To(Equal(authority.Memberships{
				{Kind: authority.ScopeOrganization, ScopeID: testinfra.TestOrganizationID, Role: "OWNER"}}))
			Expect(account.ActiveDirectory.OrgMemberships(2)).To(BeEmpty())
		})
	})

	Describe("DisplayName", func() {
		It("should be able to compute display name", func() {
			Expect(account.User{Name: "test", Nickname: "Test"}.DisplayName()).To(Equal("Test"))
			Expect(account.User{Name: "test", Nickname: ""}.DisplayName()).To(Equal("test"))
			Expect(account.UserInfo{Name: "test", Nickname: "Test"}.DisplayName()).To(Equal("Test"))
			Expect(account.UserInfo{Name: "test"}.DisplayName()).To(Equal("test"))
		})
	})

	Describe("QueryUsers", func() {
		It("should be able to query users correctly", func() {
			users, err := account.QueryUsers(owner)
			Expect(err).To(BeNil())
			Expect(users).To(Equal([]account.UserInfo{
				{ID: 1, Name: "ana", Email: "ana@example.com", OrgRole: "OWNER"},
				{ID: 2, Name: "luis", Nickname: "Luis"},
			}))
		})
		It("should reject anonymous sessions", func() {
			_, err := account.QueryUsers(&session.Session{})
			Expect(err).To(Equal(bizerror.ErrUnauthenticated))
		})
	})

	Describe("CreateUser", func() {
		It("should be blocked when user lack of permission", func() {
			u, err := account.CreateUser(&account.UserCreation{Name: "test"}, testinfra.BuildSession(2))
			Expect(err).To(Equal(bizerror.ErrForbidden))
			Expect(u).To(BeNil())
		})

		It("should be able to create users correctly", func() {
			u, err := account.CreateUser(&account.UserCreation{Name: "test", OrgRole: "MEMBER"}, owner)
			Expect(err).To(BeNil())
			Expect(u.ID).ToNot(BeZero())
			Expect(u.OrgRole).To(Equal("MEMBER"))

			found, ok := account.ActiveDirectory.FindUser(u.ID)
			Expect(ok).To(BeTrue())
			Expect(found.Name).To(Equal("test"))
		})

		It("should validate the creation", func() {
			_, err := account.CreateUser(&account.UserCreation{Name: "test", Email: "not-an-email"}, owner)
			Expect(err).To(BeAssignableToTypeOf(&bizerror.ErrBadParam{}))
		})
	})

	Describe("UpdateUser", func() {
		It("should allow users to update themselves", func() {
			Expect(account.UpdateUser(2, &account.UserUpdation{Nickname: "Lucho"}, testinfra.BuildSession(2))).To(Succeed())
			u, _ := account.ActiveDirectory.FindUser(2)
			Expect(u.Nickname).To(Equal("Lucho"))
		})
		It("should forbid updating other users without manage:org", func() {
			Expect(account.UpdateUser(1, &account.UserUpdation{Nickname: "x"}, testinfra.BuildSession(2))).To(Equal(bizerror.ErrForbidden))
		})
		It("should return not found for unknown users", func() {
			Expect(account.UpdateUser(404, &account.UserUpdation{Nickname: "x"}, owner)).To(Equal(bizerror.ErrNotFound))
		})
	})

	Describe("UpdateOrgRole", func() {
		It("should change the role of another user", func() {
			Expect(account.UpdateOrgRole(2, &account.OrgRoleUpdation{Role: "ADMIN"}, owner)).To(Succeed())
			Expect(account.ActiveDirectory.OrgMemberships(2)[0].Role).To(Equal("ADMIN"))
		})
		It("should refuse self grants and unknown users", func() {
			Expect(account.UpdateOrgRole(1, &account.OrgRoleUpdation{Role: "MEMBER"}, owner)).To(Equal(bizerror.ErrProjectMemberSelfGrant))
			Expect(account.UpdateOrgRole(404, &account.OrgRoleUpdation{Role: "MEMBER"}, owner)).To(Equal(bizerror.ErrNotFound))
			Expect(account.UpdateOrgRole(2, &account.OrgRoleUpdation{Role: "MEMBER"}, testinfra.BuildSession(2))).To(Equal(bizerror.ErrForbidden))
		})
	})

	Describe("QueryAccountNames", func() {
		It("should resolve display names of known users", func() {
			names, err := account.QueryAccountNames([]types.ID{1, 2, 3})
			Expect(err).To(BeNil())
			Expect(names).To(Equal(map[types.ID]string{1: "ana", 2: "Luis"}))
		})
	})

	Describe("LoadPermFunc", func() {
		It("should combine organization roles and project members", func() {
			Expect(testStore.Store.Transaction(100, func(d *persistence.ProjectData) error {
				d.Members = append(d.Members, domain.ProjectMember{ProjectID: 100, MemberID: 2, Role: "COORDINATOR"})
				return nil
			})).To(Succeed())

			Expect(account.LoadPermFunc(2)).To(Equal(authority.Memberships{
				{Kind: authority.ScopeEvent, ScopeID: 100, Role: "COORDINATOR"}}))
			Expect(account.MembershipLoader()(1)).To(Equal(authority.Memberships{
				{Kind: authority.ScopeOrganization, ScopeID: testinfra.TestOrganizationID, Role: "OWNER"}}))
		})
	})
})
