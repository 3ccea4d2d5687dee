package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dochouse/internal/model"
	"dochouse/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrForbidden           = errors.New("you do not have permission to access this resource")
	ErrInvalidDate         = errors.New("invalid appointment date, use YYYY-MM-DD")
)

// AppointmentService provides appointment booking services
type AppointmentService interface {
	BookAppointment(ctx context.Context, userEmail string, req model.CreateAppointmentRequest) (*model.Appointment, error)
	GetAppointments(ctx context.Context, callerEmail, emailFilter string) ([]model.Appointment, error)
	CancelAppointment(ctx context.Context, id, callerEmail string) error
}

type appointmentService struct {
	appointmentRepo repository.AppointmentRepository
	userRepo        repository.UserRepository
}

// NewAppointmentService creates a new AppointmentService
func NewAppointmentService(appointmentRepo repository.AppointmentRepository, userRepo repository.UserRepository) AppointmentService {
	return &appointmentService{appointmentRepo: appointmentRepo, userRepo: userRepo}
}

// callerIsAdmin checks the caller's CURRENT stored role. The token's
// role claim is not trusted for this, same as the route guards.
func (s *appointmentService) callerIsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return false, fmt.Errorf("error finding caller: %w", err)
	}
	return user != nil && user.Role == model.RoleAdmin, nil
}

// BookAppointment records a booking under the authenticated user's email
func (s *appointmentService) BookAppointment(ctx context.Context, userEmail string, req model.CreateAppointmentRequest) (*model.Appointment, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	appointment := &model.Appointment{
		ID:         uuid.NewString(),
		Email:      userEmail,
		DoctorID:   req.DoctorID,
		DoctorName: req.DoctorName,
		Date:       date,
		Slot:       req.Slot,
		CreatedAt:  time.Now(),
	}
	if err := s.appointmentRepo.Create(ctx, appointment); err != nil {
		return nil, fmt.Errorf("failed to book appointment: %w", err)
	}
	return appointment, nil
}

// GetAppointments lists appointments. Admins may list everything or
// filter by any email; other callers only ever see their own bookings.
func (s *appointmentService) GetAppointments(ctx context.Context, callerEmail, emailFilter string) ([]model.Appointment, error) {
	isAdmin, err := s.callerIsAdmin(ctx, callerEmail)
	if err != nil {
		return nil, err
	}
	if !isAdmin {
		return s.appointmentRepo.FindByEmail(ctx, callerEmail)
	}
	if emailFilter != "" {
		return s.appointmentRepo.FindByEmail(ctx, emailFilter)
	}
	return s.appointmentRepo.FindAll(ctx)
}

// CancelAppointment deletes a booking, owner-or-admin only
func (s *appointmentService) CancelAppointment(ctx context.Context, id, callerEmail string) error {
	appointment, err := s.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}
	if appointment.Email != callerEmail {
		isAdmin, err := s.callerIsAdmin(ctx, callerEmail)
		if err != nil {
			return err
		}
		if !isAdmin {
			return ErrForbidden
		}
	}

	affected, err := s.appointmentRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}
