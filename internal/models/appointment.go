package models

import "time"

type Appointment struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id"`
	AppointmentType string    `json:"appointment_type"`
	Slot            string    `json:"slot"`
	ScheduledAt     time.Time `json:"scheduled_at"`
	Status          string    `json:"status"`
	Notes           *string   `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type Payment struct {
	ID            int64     `json:"id"`
	AppointmentID int64     `json:"appointment_id"`
	UserID        int64     `json:"user_id"`
	Amount        float64   `json:"amount"`
	Status        string    `json:"status"`
	Reference     string    `json:"reference"`
	CreatedAt     time.Time `json:"created_at"`
}

type AppointmentDetail struct {
	Appointment
	Payment *Payment `json:"payment,omitempty"`
}
