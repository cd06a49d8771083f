package repository

import (
	"context"

	"github.com/nutrihz/ConsultBack/internal/models"
)

type ProfileRepository struct {
	db DBTX
}

func NewProfileRepository(db DBTX) *ProfileRepository {
	return &ProfileRepository{db: db}
}

const profileColumns = "id, user_id, full_name, phone, email, kyc_completed, created_at, updated_at"

func scanProfile(row interface{ Scan(dest ...any) error }) (*models.Profile, error) {
	var profile models.Profile
	err := row.Scan(
		&profile.ID,
		&profile.UserID,
		&profile.FullName,
		&profile.Phone,
		&profile.Email,
		&profile.KYCCompleted,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepository) CreateEmpty(ctx context.Context, userID int64) error {
	query := `INSERT INTO profiles (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING`
	_, err := r.db.Exec(ctx, query, userID)
	return err
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID int64) (*models.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1`
	return scanProfile(r.db.QueryRow(ctx, query, userID))
}

type ContactInput struct {
	FullName string
	Phone    string
	Email    string
}

// CompleteKYC stores the registration contact details and flips the
// completion flag in one statement.
func (r *ProfileRepository) CompleteKYC(ctx context.Context, userID int64, input ContactInput) (*models.Profile, error) {
	query := `
		UPDATE profiles
		SET full_name = $1,
			phone = $2,
			email = $3,
			kyc_completed = TRUE,
			updated_at = NOW()
		WHERE user_id = $4
		RETURNING ` + profileColumns
	return scanProfile(r.db.QueryRow(ctx, query, input.FullName, input.Phone, input.Email, userID))
}

type UpdateProfileInput struct {
	FullName *string
	Phone    *string
	Email    *string
}

func (r *ProfileRepository) UpdatePartial(ctx context.Context, userID int64, input UpdateProfileInput) (*models.Profile, error) {
	query := `
		UPDATE profiles
		SET full_name = COALESCE($1, full_name),
			phone = COALESCE($2, phone),
			email = COALESCE($3, email),
			updated_at = NOW()
		WHERE user_id = $4
		RETURNING ` + profileColumns
	return scanProfile(r.db.QueryRow(ctx, query, input.FullName, input.Phone, input.Email, userID))
}
