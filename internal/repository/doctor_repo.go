package repository

import (
	"context"
	"errors"
	"fmt"

	"dochouse/internal/model"

	"github.com/jackc/pgx/v5"
)

// DoctorRepository defines operations for doctor listings
type DoctorRepository interface {
	Create(ctx context.Context, doctor *model.Doctor) error
	FindAll(ctx context.Context) ([]model.Doctor, error)
	FindByID(ctx context.Context, id int) (*model.Doctor, error)
	Delete(ctx context.Context, id int) (int64, error)
}

type doctorRepository struct {
	db DB
}

// NewDoctorRepository creates a new DoctorRepository
func NewDoctorRepository(db DB) DoctorRepository {
	return &doctorRepository{db: db}
}

// Create inserts a new doctor listing
func (r *doctorRepository) Create(ctx context.Context, d *model.Doctor) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	sql := `INSERT INTO doctors (name, specialty, photo_url, about, created_at)
            VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.db.QueryRow(ctx, sql, d.Name, d.Specialty, d.PhotoURL, d.About, d.CreatedAt).Scan(&d.ID)
	if err != nil {
		return fmt.Errorf("failed to create doctor: %w", err)
	}
	return nil
}

// FindAll retrieves all doctor listings
func (r *doctorRepository) FindAll(ctx context.Context) ([]model.Doctor, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	sql := `SELECT id, name, specialty, photo_url, about, created_at FROM doctors ORDER BY name`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query doctors: %w", err)
	}
	defer rows.Close()

	var doctors []model.Doctor
	for rows.Next() {
		var d model.Doctor
		if err := rows.Scan(&d.ID, &d.Name, &d.Specialty, &d.PhotoURL, &d.About, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan doctor row: %w", err)
		}
		doctors = append(doctors, d)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating doctor rows: %w", err)
	}
	return doctors, nil
}

// FindByID retrieves a doctor by ID
func (r *doctorRepository) FindByID(ctx context.Context, id int) (*model.Doctor, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	d := &model.Doctor{}
	sql := `SELECT id, name, specialty, photo_url, about, created_at FROM doctors WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(&d.ID, &d.Name, &d.Specialty, &d.PhotoURL, &d.About, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find doctor by ID: %w", err)
	}
	return d, nil
}

// Delete removes a doctor listing and reports affected rows
func (r *doctorRepository) Delete(ctx context.Context, id int) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tag, err := r.db.Exec(ctx, `DELETE FROM doctors WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete doctor: %w", err)
	}
	return tag.RowsAffected(), nil
}
