package repository

import (
	"context"
	"time"

	"github.com/nutrihz/ConsultBack/internal/models"
)

type CreateAppointmentInput struct {
	UserID          int64
	AppointmentType string
	Slot            string
	ScheduledAt     time.Time
	Notes           *string
}

type AppointmentRepository struct {
	db DBTX
}

func NewAppointmentRepository(db DBTX) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

const appointmentColumns = "id, user_id, appointment_type, slot, scheduled_at, status, notes, created_at, updated_at"

func scanAppointment(row interface{ Scan(dest ...any) error }) (*models.Appointment, error) {
	var appt models.Appointment
	err := row.Scan(
		&appt.ID,
		&appt.UserID,
		&appt.AppointmentType,
		&appt.Slot,
		&appt.ScheduledAt,
		&appt.Status,
		&appt.Notes,
		&appt.CreatedAt,
		&appt.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &appt, nil
}

func (r *AppointmentRepository) Create(ctx context.Context, input CreateAppointmentInput) (*models.Appointment, error) {
	query := `
		INSERT INTO appointments (user_id, appointment_type, slot, scheduled_at, status, notes)
		VALUES ($1, $2, $3, $4, 'pending', $5)
		RETURNING ` + appointmentColumns
	return scanAppointment(r.db.QueryRow(
		ctx,
		query,
		input.UserID,
		input.AppointmentType,
		input.Slot,
		input.ScheduledAt,
		input.Notes,
	))
}

func (r *AppointmentRepository) GetByID(ctx context.Context, appointmentID int64) (*models.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = $1`
	return scanAppointment(r.db.QueryRow(ctx, query, appointmentID))
}

func (r *AppointmentRepository) GetByIDForUpdate(ctx context.Context, appointmentID int64) (*models.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = $1 FOR UPDATE`
	return scanAppointment(r.db.QueryRow(ctx, query, appointmentID))
}

// ListByUser returns the user's appointments newest first, matching the
// dashboard ordering.
func (r *AppointmentRepository) ListByUser(ctx context.Context, userID int64) ([]models.Appointment, error) {
	query := `
		SELECT ` + appointmentColumns + `
		FROM appointments
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	appointments := []models.Appointment{}
	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		appointments = append(appointments, *appt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *AppointmentRepository) UpdateStatusIfCurrent(ctx context.Context, appointmentID int64, currentStatus, nextStatus string) (*models.Appointment, error) {
	query := `
		UPDATE appointments
		SET status = $3, updated_at = NOW()
		WHERE id = $1 AND status = $2
		RETURNING ` + appointmentColumns
	return scanAppointment(r.db.QueryRow(ctx, query, appointmentID, currentStatus, nextStatus))
}
