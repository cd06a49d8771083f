package repository

import (
	"context"

	"github.com/nutrihz/ConsultBack/internal/models"
)

type CreateInquiryInput struct {
	UserID  *int64
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

type InquiryRepository struct {
	db DBTX
}

func NewInquiryRepository(db DBTX) *InquiryRepository {
	return &InquiryRepository{db: db}
}

func (r *InquiryRepository) Create(ctx context.Context, input CreateInquiryInput) (*models.ContactInquiry, error) {
	query := `
		INSERT INTO contact_inquiries (user_id, name, email, phone, subject, message)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, name, email, phone, subject, message, created_at
	`
	var inquiry models.ContactInquiry
	err := r.db.QueryRow(ctx, query, input.UserID, input.Name, input.Email, input.Phone, input.Subject, input.Message).Scan(
		&inquiry.ID,
		&inquiry.UserID,
		&inquiry.Name,
		&inquiry.Email,
		&inquiry.Phone,
		&inquiry.Subject,
		&inquiry.Message,
		&inquiry.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inquiry, nil
}
