package repository

import (
	"context"

	"github.com/nutrihz/ConsultBack/internal/models"
)

type CreatePaymentInput struct {
	AppointmentID int64
	UserID        int64
	Amount        float64
	Status        string
	Reference     string
}

type PaymentRepository struct {
	db DBTX
}

func NewPaymentRepository(db DBTX) *PaymentRepository {
	return &PaymentRepository{db: db}
}

const paymentColumns = "id, appointment_id, user_id, amount, status, reference, created_at"

func scanPayment(row interface{ Scan(dest ...any) error }) (*models.Payment, error) {
	var payment models.Payment
	err := row.Scan(
		&payment.ID,
		&payment.AppointmentID,
		&payment.UserID,
		&payment.Amount,
		&payment.Status,
		&payment.Reference,
		&payment.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *PaymentRepository) Create(ctx context.Context, input CreatePaymentInput) (*models.Payment, error) {
	query := `
		INSERT INTO payments (appointment_id, user_id, amount, status, reference)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + paymentColumns
	return scanPayment(r.db.QueryRow(ctx, query, input.AppointmentID, input.UserID, input.Amount, input.Status, input.Reference))
}

func (r *PaymentRepository) GetByAppointmentID(ctx context.Context, appointmentID int64) (*models.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE appointment_id = $1
		ORDER BY id DESC
		LIMIT 1
	`
	return scanPayment(r.db.QueryRow(ctx, query, appointmentID))
}

func (r *PaymentRepository) GetByAppointmentIDForUpdate(ctx context.Context, appointmentID int64) (*models.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE appointment_id = $1
		ORDER BY id DESC
		LIMIT 1
		FOR UPDATE
	`
	return scanPayment(r.db.QueryRow(ctx, query, appointmentID))
}

func (r *PaymentRepository) ListByAppointmentIDs(ctx context.Context, appointmentIDs []int64) (map[int64]models.Payment, error) {
	payments := make(map[int64]models.Payment, len(appointmentIDs))
	if len(appointmentIDs) == 0 {
		return payments, nil
	}

	query := `
		SELECT DISTINCT ON (appointment_id) ` + paymentColumns + `
		FROM payments
		WHERE appointment_id = ANY($1)
		ORDER BY appointment_id, id DESC
	`
	rows, err := r.db.Query(ctx, query, appointmentIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments[payment.AppointmentID] = *payment
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *PaymentRepository) UpdateStatusIfCurrent(ctx context.Context, paymentID int64, currentStatus, nextStatus string) (*models.Payment, error) {
	query := `
		UPDATE payments
		SET status = $3
		WHERE id = $1 AND status = $2
		RETURNING ` + paymentColumns
	return scanPayment(r.db.QueryRow(ctx, query, paymentID, currentStatus, nextStatus))
}
