package service

import (
	"context"
	"testing"

	"dochouse/internal/model"

	"github.com/stretchr/testify/assert"
)

// memAppointmentRepo is an in-memory AppointmentRepository for tests
type memAppointmentRepo struct {
	appointments map[string]*model.Appointment
}

func newMemAppointmentRepo() *memAppointmentRepo {
	return &memAppointmentRepo{appointments: map[string]*model.Appointment{}}
}

func (m *memAppointmentRepo) Create(ctx context.Context, a *model.Appointment) error {
	clone := *a
	m.appointments[a.ID] = &clone
	return nil
}

func (m *memAppointmentRepo) FindAll(ctx context.Context) ([]model.Appointment, error) {
	var out []model.Appointment
	for _, a := range m.appointments {
		out = append(out, *a)
	}
	return out, nil
}

func (m *memAppointmentRepo) FindByEmail(ctx context.Context, email string) ([]model.Appointment, error) {
	var out []model.Appointment
	for _, a := range m.appointments {
		if a.Email == email {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (m *memAppointmentRepo) FindByID(ctx context.Context, id string) (*model.Appointment, error) {
	a, ok := m.appointments[id]
	if !ok {
		return nil, nil
	}
	clone := *a
	return &clone, nil
}

func (m *memAppointmentRepo) Delete(ctx context.Context, id string) (int64, error) {
	if _, ok := m.appointments[id]; !ok {
		return 0, nil
	}
	delete(m.appointments, id)
	return 1, nil
}

func newTestAppointmentService() (AppointmentService, *memAppointmentRepo, *memUserRepo) {
	appointmentRepo := newMemAppointmentRepo()
	userRepo := newMemUserRepo()
	return NewAppointmentService(appointmentRepo, userRepo), appointmentRepo, userRepo
}

func seedUser(t *testing.T, repo *memUserRepo, email, role string) *model.User {
	t.Helper()
	user := &model.User{Username: email, Email: email, PasswordHash: "x", Role: role}
	assert.NoError(t, repo.Create(context.Background(), user))
	return user
}

func bookFor(t *testing.T, svc AppointmentService, email string) *model.Appointment {
	t.Helper()
	a, err := svc.BookAppointment(context.Background(), email, model.CreateAppointmentRequest{
		DoctorID:   1,
		DoctorName: "Dr. Strange",
		Date:       "2026-10-01",
		Slot:       "10:00 - 10:30",
	})
	assert.NoError(t, err)
	return a
}

func TestAppointmentService_BookInvalidDate(t *testing.T) {
	svc, _, _ := newTestAppointmentService()

	_, err := svc.BookAppointment(context.Background(), "a@x.com", model.CreateAppointmentRequest{
		DoctorID:   1,
		DoctorName: "Dr. Strange",
		Date:       "01/10/2026",
		Slot:       "10:00 - 10:30",
	})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestAppointmentService_NonAdminSeesOnlyOwn(t *testing.T) {
	svc, _, userRepo := newTestAppointmentService()
	seedUser(t, userRepo, "a@x.com", model.RoleUser)
	seedUser(t, userRepo, "b@x.com", model.RoleUser)

	bookFor(t, svc, "a@x.com")
	bookFor(t, svc, "b@x.com")

	// Even with an explicit filter for someone else's email
	got, err := svc.GetAppointments(context.Background(), "a@x.com", "b@x.com")
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "a@x.com", got[0].Email)
}

func TestAppointmentService_AdminSeesAllOrFiltered(t *testing.T) {
	svc, _, userRepo := newTestAppointmentService()
	seedUser(t, userRepo, "root@x.com", model.RoleAdmin)
	seedUser(t, userRepo, "a@x.com", model.RoleUser)
	seedUser(t, userRepo, "b@x.com", model.RoleUser)

	bookFor(t, svc, "a@x.com")
	bookFor(t, svc, "b@x.com")

	all, err := svc.GetAppointments(context.Background(), "root@x.com", "")
	assert.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := svc.GetAppointments(context.Background(), "root@x.com", "b@x.com")
	assert.NoError(t, err)
	assert.Len(t, filtered, 1)
	assert.Equal(t, "b@x.com", filtered[0].Email)
}

func TestAppointmentService_CancelOwnership(t *testing.T) {
	svc, _, userRepo := newTestAppointmentService()
	seedUser(t, userRepo, "root@x.com", model.RoleAdmin)
	seedUser(t, userRepo, "a@x.com", model.RoleUser)
	seedUser(t, userRepo, "b@x.com", model.RoleUser)

	ctx := context.Background()
	a := bookFor(t, svc, "a@x.com")

	err := svc.CancelAppointment(ctx, a.ID, "b@x.com")
	assert.ErrorIs(t, err, ErrForbidden)

	err = svc.CancelAppointment(ctx, a.ID, "a@x.com")
	assert.NoError(t, err)

	err = svc.CancelAppointment(ctx, a.ID, "a@x.com")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)

	// Admin may cancel anyone's booking
	b := bookFor(t, svc, "b@x.com")
	err = svc.CancelAppointment(ctx, b.ID, "root@x.com")
	assert.NoError(t, err)
}
