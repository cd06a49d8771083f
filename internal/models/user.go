package models

import "time"

type User struct {
	ID           int64     `json:"id"`
	Email        *string   `json:"email"`
	Phone        *string   `json:"phone"`
	PasswordHash *string   `json:"-"`
	GoogleSub    *string   `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Profile struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	FullName     *string   `json:"full_name"`
	Phone        *string   `json:"phone"`
	Email        *string   `json:"email"`
	KYCCompleted bool      `json:"kyc_completed"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
