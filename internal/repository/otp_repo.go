package repository

import (
	"context"
	"time"

	"github.com/nutrihz/ConsultBack/internal/models"
)

type OTPRepository struct {
	db DBTX
}

func NewOTPRepository(db DBTX) *OTPRepository {
	return &OTPRepository{db: db}
}

func (r *OTPRepository) Create(ctx context.Context, contact, codeHash string, expiresAt time.Time) error {
	query := `
		INSERT INTO otp_codes (contact, code_hash, expires_at)
		VALUES ($1, $2, $3)
	`
	_, err := r.db.Exec(ctx, query, contact, codeHash, expiresAt)
	return err
}

// GetActiveByContact returns the newest unconsumed, unexpired code for the
// contact.
func (r *OTPRepository) GetActiveByContact(ctx context.Context, contact string) (*models.OTPCode, error) {
	query := `
		SELECT id, contact, code_hash, expires_at, consumed, created_at
		FROM otp_codes
		WHERE contact = $1 AND consumed = FALSE AND expires_at > NOW()
		ORDER BY id DESC
		LIMIT 1
	`
	var code models.OTPCode
	err := r.db.QueryRow(ctx, query, contact).Scan(
		&code.ID,
		&code.Contact,
		&code.CodeHash,
		&code.ExpiresAt,
		&code.Consumed,
		&code.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &code, nil
}

func (r *OTPRepository) MarkConsumed(ctx context.Context, id int64) error {
	query := `UPDATE otp_codes SET consumed = TRUE WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}
