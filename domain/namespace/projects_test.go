package namespace_test

import (
	"eventdesk/authority"
	"eventdesk/bizerror"
	"eventdesk/domain"
	"eventdesk/domain/namespace"
	"eventdesk/event"
	"eventdesk/session"
	"eventdesk/testinfra"

	"github.com/fundwit/go-commons/types"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Projects", func() {
	var (
		testStore *testinfra.TestStore
		owner     *session.Session
		director  *session.Session
		viewer    *session.Session
	)
	BeforeEach(func() {
		testStore = testinfra.StartTestStore(100, 200)
		owner = testinfra.BuildSession(1, testinfra.OrgRole(testinfra.TestOrganizationID, authority.OrgRoleOwner))
		director = testinfra.BuildSession(2, testinfra.EventRole(100, authority.EventRoleDirector))
		viewer = testinfra.BuildSession(3, testinfra.EventRole(200, authority.EventRoleViewer))
	})
	AfterEach(func() {
		testinfra.StopTestStore(testStore)
	})

	Describe("CreateProject", func() {
		It("should create an empty current project directed by its creator", func() {
			owner.Workspace = session.Workspace{CurrentProjectID: 100, ActiveTab: session.TabSettings}
			p, err := namespace.CreateProject(&domain.ProjectCreating{Name: "Expo 2027"}, owner)
			Expect(err).To(BeNil())
			Expect(p.ID).ToNot(BeZero())
			Expect(p.OrganizationID).To(Equal(testinfra.TestOrganizationID))
			Expect(p.Config).To(Equal(domain.EventConfig{EventName: "Expo 2027"}))
			Expect(p.Creator).To(Equal(types.ID(1)))

			Expect(owner.Workspace).To(Equal(session.Workspace{CurrentProjectID: p.ID, ActiveTab: session.TabDashboard}))
			Expect(owner.HasPermission(authority.PermManageConfig, authority.EventScope(p.ID))).To(BeTrue())

			d := testStore.Project(p.ID)
			Expect(d.Members).To(HaveLen(1))
			Expect(d.Members[0].MemberID).To(Equal(types.ID(1)))
			Expect(d.Members[0].Role).To(Equal("DIRECTOR"))
			Expect(d.Tasks.Len()).To(BeZero())
			Expect(testStore.Store.Projects()).To(HaveLen(3))
		})

		It("should require create:event in the organization", func() {
			p, err := namespace.CreateProject(&domain.ProjectCreating{Name: "demo"}, director)
			Expect(p).To(BeNil())
			Expect(err).To(Equal(bizerror.ErrForbidden))
			Expect(testStore.Store.Len()).To(Equal(2))
		})

		It("should validate the name", func() {
			_, err := namespace.CreateProject(&domain.ProjectCreating{Name: ""}, owner)
			Expect(err).To(BeAssignableToTypeOf(&bizerror.ErrBadParam{}))
		})
	})

	Describe("QueryProjects", func() {
		It("should list every project for organization members", func() {
			projects, err := namespace.QueryProjects(owner)
			Expect(err).To(BeNil())
			Expect(projects).To(HaveLen(2))
			Expect(projects[0].ID).To(Equal(types.ID(100)))
			Expect(projects[1].ID).To(Equal(types.ID(200)))
		})

		It("should list only the events of event members", func() {
			projects, err := namespace.QueryProjects(viewer)
			Expect(err).To(BeNil())
			Expect(projects).To(HaveLen(1))
			Expect(projects[0].ID).To(Equal(types.ID(200)))
		})

		It("should reject anonymous sessions", func() {
			_, err := namespace.QueryProjects(&session.Session{})
			Expect(err).To(Equal(bizerror.ErrUnauthenticated))
		})
	})

	Describe("DetailProject", func() {
		It("should require view access", func() {
			p, err := namespace.DetailProject(200, viewer)
			Expect(err).To(BeNil())
			Expect(p.Name).To(Equal("project200"))

			_, err = namespace.DetailProject(100, viewer)
			Expect(err).To(Equal(bizerror.ErrForbidden))
			_, err = namespace.DetailProject(999, viewer)
			Expect(err).To(Equal(bizerror.ErrNotFound))
		})
	})

	Describe("UpdateProject", func() {
		It("only organization managers can rename projects", func() {
			err := namespace.UpdateProject(100, &domain.ProjectUpdating{Name: "new name"}, director)
			Expect(err).To(Equal(bizerror.ErrForbidden))

			Expect(namespace.UpdateProject(100, &domain.ProjectUpdating{Name: "new name"}, owner)).To(Succeed())
			Expect(testStore.Project(100).Project.Name).To(Equal("new name"))

			records := event.DefaultJournal.Recent(100, 1)
			Expect(records).To(HaveLen(1))
			Expect(records[0].UpdatedProperties).To(ContainElement(
				event.UpdatedProperty{PropertyName: "name", OldValue: "project100", NewValue: "new name"}))
		})
	})

	Describe("UpdateEventConfig", func() {
		config := domain.EventConfig{EventName: "Expo", EventDate: "2026-04-15", TargetAttendees: 500, TotalBudget: 1000,
			SponsorTargets: domain.SponsorTargets{Diamond: 1, Gold: 2}}

		It("should require manage:config on the event", func() {
			_, err := namespace.UpdateEventConfig(100, &config, testinfra.BuildSession(4, testinfra.EventRole(100, authority.EventRoleCoordinator)))
			Expect(err).To(Equal(bizerror.ErrForbidden))

			p, err := namespace.UpdateEventConfig(100, &config, director)
			Expect(err).To(BeNil())
			Expect(p.Config).To(Equal(config))
			Expect(testStore.Project(100).Project.Config).To(Equal(config))
		})

		It("should leave the config untouched when validation fails", func() {
			invalid := config
			invalid.EventDate = "15/04/2026"
			_, err := namespace.UpdateEventConfig(100, &invalid, director)
			Expect(err).To(BeAssignableToTypeOf(&bizerror.ErrBadParam{}))
			Expect(testStore.Project(100).Project.Config).To(Equal(domain.EventConfig{EventName: "event100"}))
		})
	})

	Describe("DeleteProject", func() {
		It("should move the session away from the deleted project", func() {
			owner.Workspace = session.Workspace{CurrentProjectID: 100, ActiveTab: session.TabSettings}
			Expect(namespace.DeleteProject(100, owner)).To(Succeed())
			Expect(testStore.Store.Has(100)).To(BeFalse())
			Expect(owner.Workspace).To(Equal(session.Workspace{CurrentProjectID: 200, ActiveTab: session.TabDashboard}))
		})

		It("should keep the workspace when another project is deleted", func() {
			owner.Workspace = session.Workspace{CurrentProjectID: 200, ActiveTab: "budget"}
			Expect(namespace.DeleteProject(100, owner)).To(Succeed())
			Expect(owner.Workspace).To(Equal(session.Workspace{CurrentProjectID: 200, ActiveTab: "budget"}))
		})

		It("should refuse to delete the last project", func() {
			Expect(namespace.DeleteProject(100, owner)).To(Succeed())
			Expect(namespace.DeleteProject(200, owner)).To(Equal(bizerror.ErrLastProjectDelete))
			Expect(testStore.Store.Projects()).To(HaveLen(1))
		})

		It("should require manage:org", func() {
			Expect(namespace.DeleteProject(100, director)).To(Equal(bizerror.ErrForbidden))
			Expect(testStore.Store.Has(100)).To(BeTrue())
			Expect(namespace.DeleteProject(999, owner)).To(Equal(bizerror.ErrNotFound))
		})
	})

	Describe("SwitchTo", func() {
		It("should fall back to the first project for unknown ids", func() {
			Expect(namespace.SwitchTo(200, owner)).To(Equal(types.ID(200)))
			Expect(owner.Workspace.CurrentProjectID).To(Equal(types.ID(200)))

			Expect(namespace.SwitchTo(999, owner)).To(Equal(types.ID(100)))
			Expect(owner.Workspace.CurrentProjectID).To(Equal(types.ID(100)))
		})

		It("should reset the settings tab on change", func() {
			owner.Workspace = session.Workspace{CurrentProjectID: 100, ActiveTab: session.TabSettings}
			namespace.SwitchTo(200, owner)
			Expect(owner.Workspace.ActiveTab).To(Equal(session.TabDashboard))
		})
	})

	Describe("CurrentProject", func() {
		It("should repair a dangling pointer", func() {
			owner.Workspace = session.Workspace{CurrentProjectID: 12345, ActiveTab: session.TabSettings}
			p, err := namespace.CurrentProject(owner)
			Expect(err).To(BeNil())
			Expect(p.ID).To(Equal(types.ID(100)))
			Expect(owner.Workspace.ActiveTab).To(Equal(session.TabDashboard))
		})
	})

	Describe("QueryProjectNames", func() {
		It("should resolve known ids", func() {
			names, err := namespace.QueryProjectNames([]types.ID{100, 300})
			Expect(err).To(BeNil())
			Expect(names).To(Equal(map[types.ID]string{100: "project100"}))
		})
	})

	Describe("QueryActivity", func() {
		It("should need view access", func() {
			Expect(namespace.UpdateProject(200, &domain.ProjectUpdating{Name: "renamed"}, owner)).To(Succeed())
			records, err := namespace.QueryActivity(200, 10, viewer)
			Expect(err).To(BeNil())
			Expect(records).ToNot(BeEmpty())
			Expect(records[0].SourceType).To(Equal("PROJECT"))

			_, err = namespace.QueryActivity(100, 10, viewer)
			Expect(err).To(Equal(bizerror.ErrForbidden))
		})
	})
})
