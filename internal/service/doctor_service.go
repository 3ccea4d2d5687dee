package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dochouse/internal/model"
	"dochouse/internal/repository"
)

var ErrDoctorNotFound = errors.New("doctor not found")

// DoctorService provides doctor listing services
type DoctorService interface {
	CreateDoctor(ctx context.Context, req model.CreateDoctorRequest) (*model.Doctor, error)
	GetDoctors(ctx context.Context) ([]model.Doctor, error)
	GetDoctorByID(ctx context.Context, id int) (*model.Doctor, error)
	DeleteDoctor(ctx context.Context, id int) error
}

type doctorService struct {
	doctorRepo repository.DoctorRepository
}

// NewDoctorService creates a new DoctorService
func NewDoctorService(doctorRepo repository.DoctorRepository) DoctorService {
	return &doctorService{doctorRepo: doctorRepo}
}

// CreateDoctor adds a new doctor listing
func (s *doctorService) CreateDoctor(ctx context.Context, req model.CreateDoctorRequest) (*model.Doctor, error) {
	doctor := &model.Doctor{
		Name:      req.Name,
		Specialty: req.Specialty,
		PhotoURL:  req.PhotoURL,
		About:     req.About,
		CreatedAt: time.Now(),
	}
	if err := s.doctorRepo.Create(ctx, doctor); err != nil {
		return nil, fmt.Errorf("failed to create doctor: %w", err)
	}
	return doctor, nil
}

// GetDoctors retrieves all doctor listings
func (s *doctorService) GetDoctors(ctx context.Context) ([]model.Doctor, error) {
	return s.doctorRepo.FindAll(ctx)
}

// GetDoctorByID retrieves a single doctor listing
func (s *doctorService) GetDoctorByID(ctx context.Context, id int) (*model.Doctor, error) {
	doctor, err := s.doctorRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	return doctor, nil
}

// DeleteDoctor removes a doctor listing
func (s *doctorService) DeleteDoctor(ctx context.Context, id int) error {
	affected, err := s.doctorRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrDoctorNotFound
	}
	return nil
}
