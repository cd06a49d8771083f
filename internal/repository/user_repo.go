package repository

import (
	"context"

	"github.com/nutrihz/ConsultBack/internal/models"
)

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = "id, email, phone, password_hash, google_sub, role, created_at, updated_at"

func scanUser(row interface{ Scan(dest ...any) error }) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Phone,
		&user.PasswordHash,
		&user.GoogleSub,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) CreateWithPassword(ctx context.Context, email, passwordHash string) (*models.User, error) {
	query := `
		INSERT INTO users (email, password_hash)
		VALUES ($1, $2)
		RETURNING ` + userColumns
	return scanUser(r.db.QueryRow(ctx, query, email, passwordHash))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *UserRepository) GetByPhone(ctx context.Context, phone string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE phone = $1`
	return scanUser(r.db.QueryRow(ctx, query, phone))
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRow(ctx, query, id))
}

// UpsertByGoogleSub creates the OAuth user on first sign-in and links the
// Google subject to an existing email account on subsequent ones.
func (r *UserRepository) UpsertByGoogleSub(ctx context.Context, googleSub, email string) (*models.User, error) {
	query := `
		INSERT INTO users (email, google_sub)
		VALUES ($1, $2)
		ON CONFLICT (email) DO UPDATE SET google_sub = EXCLUDED.google_sub, updated_at = NOW()
		RETURNING ` + userColumns
	return scanUser(r.db.QueryRow(ctx, query, email, googleSub))
}

// UpsertByContact finds or creates the passwordless user behind an OTP
// sign-in. contact is either an email address or a normalized phone number.
func (r *UserRepository) UpsertByContact(ctx context.Context, contact string, isEmail bool) (*models.User, error) {
	var query string
	if isEmail {
		query = `
			INSERT INTO users (email)
			VALUES ($1)
			ON CONFLICT (email) DO UPDATE SET updated_at = NOW()
			RETURNING ` + userColumns
	} else {
		query = `
			INSERT INTO users (phone)
			VALUES ($1)
			ON CONFLICT (phone) DO UPDATE SET updated_at = NOW()
			RETURNING ` + userColumns
	}
	return scanUser(r.db.QueryRow(ctx, query, contact))
}
