package task_test

import (
	"eventdesk/authority"
	"eventdesk/bizerror"
	"eventdesk/domain"
	"eventdesk/domain/task"
	"eventdesk/session"
	"eventdesk/testinfra"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Subtasks", func() {
	var (
		testStore   *testinfra.TestStore
		coordinator *session.Session
	)
	BeforeEach(func() {
		testStore = testinfra.StartTestStore(100)
		coordinator = testinfra.BuildSession(2, testinfra.EventRole(100, authority.EventRoleCoordinator))
		_, err := task.CreateTask(100, &domain.TaskCreation{Title: "Reservar venue"}, coordinator)
		Expect(err).To(BeNil())
	})
	AfterEach(func() {
		testinfra.StopTestStore(testStore)
	})

	It("should add, toggle and remove subtasks", func() {
		t, err := task.AddSubtask(100, 1, &domain.SubtaskCreation{Title: " Cotizar "}, coordinator)
		Expect(err).To(BeNil())
		t, err = task.AddSubtask(100, 1, &domain.SubtaskCreation{Title: "Firmar"}, coordinator)
		Expect(err).To(BeNil())
		Expect(t.Subtasks).To(Equal([]domain.Subtask{{ID: 1, Title: "Cotizar"}, {ID: 2, Title: "Firmar"}}))

		t, err = task.ToggleSubtask(100, 1, 2, coordinator)
		Expect(err).To(BeNil())
		Expect(t.Subtasks[1].Completed).To(BeTrue())

		t, err = task.RemoveSubtask(100, 1, 1, coordinator)
		Expect(err).To(BeNil())
		Expect(t.Subtasks).To(Equal([]domain.Subtask{{ID: 2, Title: "Firmar", Completed: true}}))

		t, err = task.AddSubtask(100, 1, &domain.SubtaskCreation{Title: "Pagar"}, coordinator)
		Expect(err).To(BeNil())
		Expect(t.Subtasks[1].ID).To(Equal(3))

		stored, _ := testStore.Project(100).Tasks.Find(1)
		Expect(stored.Subtasks).To(HaveLen(2))
	})

	It("should reject unknown subtasks and blank titles", func() {
		_, err := task.ToggleSubtask(100, 1, 9, coordinator)
		Expect(err).To(Equal(bizerror.ErrNotFound))
		_, err = task.RemoveSubtask(100, 1, 9, coordinator)
		Expect(err).To(Equal(bizerror.ErrNotFound))
		_, err = task.AddSubtask(100, 1, &domain.SubtaskCreation{Title: "  "}, coordinator)
		Expect(err).To(BeAssignableToTypeOf(&bizerror.ErrBadParam{}))
		_, err = task.AddSubtask(100, 7, &domain.SubtaskCreation{Title: "x"}, coordinator)
		Expect(err).To(Equal(bizerror.ErrNotFound))
	})
})
