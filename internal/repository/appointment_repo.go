package repository

import (
	"context"
	"errors"
	"fmt"

	"dochouse/internal/model"

	"github.com/jackc/pgx/v5"
)

// AppointmentRepository defines operations for appointment bookings
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *model.Appointment) error
	FindAll(ctx context.Context) ([]model.Appointment, error)
	FindByEmail(ctx context.Context, email string) ([]model.Appointment, error)
	FindByID(ctx context.Context, id string) (*model.Appointment, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type appointmentRepository struct {
	db DB
}

// NewAppointmentRepository creates a new AppointmentRepository
func NewAppointmentRepository(db DB) AppointmentRepository {
	return &appointmentRepository{db: db}
}

const appointmentColumns = `id, email, doctor_id, doctor_name, date, slot, created_at`

// Create inserts a new appointment booking
func (r *appointmentRepository) Create(ctx context.Context, a *model.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	sql := `INSERT INTO appointments (id, email, doctor_id, doctor_name, date, slot, created_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, sql, a.ID, a.Email, a.DoctorID, a.DoctorName, a.Date, a.Slot, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

func (r *appointmentRepository) queryMany(ctx context.Context, sql string, args ...any) ([]model.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query appointments: %w", err)
	}
	defer rows.Close()

	var appointments []model.Appointment
	for rows.Next() {
		var a model.Appointment
		if err := rows.Scan(&a.ID, &a.Email, &a.DoctorID, &a.DoctorName, &a.Date, &a.Slot, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan appointment row: %w", err)
		}
		appointments = append(appointments, a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating appointment rows: %w", err)
	}
	return appointments, nil
}

// FindAll retrieves all appointments
func (r *appointmentRepository) FindAll(ctx context.Context) ([]model.Appointment, error) {
	return r.queryMany(ctx, `SELECT `+appointmentColumns+` FROM appointments ORDER BY date, slot`)
}

// FindByEmail retrieves appointments booked under an email address
func (r *appointmentRepository) FindByEmail(ctx context.Context, email string) ([]model.Appointment, error) {
	return r.queryMany(ctx, `SELECT `+appointmentColumns+` FROM appointments WHERE email = $1 ORDER BY date, slot`, email)
}

// FindByID retrieves an appointment by its ID
func (r *appointmentRepository) FindByID(ctx context.Context, id string) (*model.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	a := &model.Appointment{}
	sql := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(&a.ID, &a.Email, &a.DoctorID, &a.DoctorName, &a.Date, &a.Slot, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find appointment by ID: %w", err)
	}
	return a, nil
}

// Delete removes an appointment and reports affected rows
func (r *appointmentRepository) Delete(ctx context.Context, id string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tag, err := r.db.Exec(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete appointment: %w", err)
	}
	return tag.RowsAffected(), nil
}
