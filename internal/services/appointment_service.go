package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nutrihz/ConsultBack/internal/models"
	"github.com/nutrihz/ConsultBack/internal/repository"
)

// Bookable slots, all for the next day. Times are clinic-local (IST).
var TimeSlots = []string{
	"10:00 AM", "11:00 AM", "12:00 PM", "02:00 PM",
	"03:00 PM", "04:00 PM", "05:00 PM", "06:00 PM",
}

var AppointmentTypes = []string{"virtual", "physical"}

var clinicZone = time.FixedZone("IST", 5*3600+1800)

const whatsappMessage = "Hi Dr. Kirti, I've completed the health quiz and paid the registration fees and would like to join the community!"

type AppointmentService struct {
	db              *pgxpool.Pool
	appointmentRepo *repository.AppointmentRepository
	paymentRepo     *repository.PaymentRepository
	gateway         PaymentGateway
	fee             float64
	whatsappPhone   string
	now             func() time.Time
}

func NewAppointmentService(
	db *pgxpool.Pool,
	appointmentRepo *repository.AppointmentRepository,
	paymentRepo *repository.PaymentRepository,
	gateway PaymentGateway,
	fee float64,
	whatsappPhone string,
) *AppointmentService {
	return &AppointmentService{
		db:              db,
		appointmentRepo: appointmentRepo,
		paymentRepo:     paymentRepo,
		gateway:         gateway,
		fee:             fee,
		whatsappPhone:   whatsappPhone,
		now:             time.Now,
	}
}

type BookAppointmentInput struct {
	AppointmentType string
	Slot            string
	Notes           *string
}

// Book reserves a slot for tomorrow and opens a pending payment for it, both
// in one transaction. Missing or off-catalog selections are rejected before
// anything is written.
func (s *AppointmentService) Book(
	ctx context.Context,
	userID int64,
	input BookAppointmentInput,
) (*models.AppointmentDetail, error) {
	if input.AppointmentType == "" || input.Slot == "" {
		return nil, ErrSelectionMissing
	}
	if !contains(AppointmentTypes, input.AppointmentType) {
		return nil, fmt.Errorf("%w: appointment_type must be virtual or physical", ErrInvalidInput)
	}
	scheduledAt, err := s.slotToTime(input.Slot)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	txAppointmentRepo := repository.NewAppointmentRepository(tx)
	txPaymentRepo := repository.NewPaymentRepository(tx)

	appointment, err := txAppointmentRepo.Create(ctx, repository.CreateAppointmentInput{
		UserID:          userID,
		AppointmentType: input.AppointmentType,
		Slot:            input.Slot,
		ScheduledAt:     scheduledAt.UTC(),
		Notes:           input.Notes,
	})
	if err != nil {
		return nil, err
	}

	payment, err := txPaymentRepo.Create(ctx, repository.CreatePaymentInput{
		AppointmentID: appointment.ID,
		UserID:        userID,
		Amount:        s.fee,
		Status:        string(PaymentPending),
		Reference:     uuid.NewString(),
	})
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &models.AppointmentDetail{
		Appointment: *appointment,
		Payment:     payment,
	}, nil
}

// PayResult is the outcome of a payment attempt. RedirectURL carries the
// WhatsApp deep link on success.
type PayResult struct {
	Appointment *models.AppointmentDetail `json:"appointment"`
	Status      PaymentStatus             `json:"status"`
	RedirectURL string                    `json:"redirect_url,omitempty"`
}

// Pay charges the appointment's pending payment through the gateway and, on
// confirmation, flips payment pending->completed and appointment
// pending->confirmed atomically. Re-paying a settled appointment is
// idempotent. The gateway call happens outside any transaction; the
// compare-and-set updates guard against concurrent attempts.
func (s *AppointmentService) Pay(ctx context.Context, userID int64, appointmentID int64) (*PayResult, error) {
	appointment, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment.UserID != userID {
		return nil, ErrForbidden
	}

	payment, err := s.paymentRepo.GetByAppointmentID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if payment.Status == "completed" {
		detail, err := s.Get(ctx, userID, appointmentID)
		if err != nil {
			return nil, err
		}
		return &PayResult{Appointment: detail, Status: PaymentConfirmed, RedirectURL: s.WhatsAppLink()}, nil
	}
	if appointment.Status != "pending" {
		return nil, ErrInvalidStateTransition
	}

	status, err := s.gateway.Charge(ctx, payment.Reference, payment.Amount)
	if err != nil {
		return nil, err
	}

	switch status {
	case PaymentPending:
		detail, err := s.Get(ctx, userID, appointmentID)
		if err != nil {
			return nil, err
		}
		return &PayResult{Appointment: detail, Status: PaymentPending}, nil
	case PaymentFailed:
		if _, err := s.paymentRepo.UpdateStatusIfCurrent(ctx, payment.ID, "pending", "failed"); err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, ErrPaymentDeclined
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	txPaymentRepo := repository.NewPaymentRepository(tx)
	txAppointmentRepo := repository.NewAppointmentRepository(tx)

	// Re-read under lock: the pre-charge snapshot may be stale by now.
	locked, err := txAppointmentRepo.GetByIDForUpdate(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if locked.Status != "pending" {
		return nil, ErrInvalidStateTransition
	}

	if _, err := txPaymentRepo.UpdateStatusIfCurrent(ctx, payment.ID, "pending", "completed"); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvalidStateTransition
		}
		return nil, err
	}
	if _, err := txAppointmentRepo.UpdateStatusIfCurrent(ctx, appointmentID, "pending", "confirmed"); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvalidStateTransition
		}
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	detail, err := s.Get(ctx, userID, appointmentID)
	if err != nil {
		return nil, err
	}
	return &PayResult{Appointment: detail, Status: PaymentConfirmed, RedirectURL: s.WhatsAppLink()}, nil
}

func (s *AppointmentService) Get(ctx context.Context, userID int64, appointmentID int64) (*models.AppointmentDetail, error) {
	appointment, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment.UserID != userID {
		return nil, ErrForbidden
	}

	detail := &models.AppointmentDetail{Appointment: *appointment}
	payment, err := s.paymentRepo.GetByAppointmentID(ctx, appointmentID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	if err == nil {
		detail.Payment = payment
	}
	return detail, nil
}

// ListAppointments returns the user's history newest first, each with its
// latest payment attached.
func (s *AppointmentService) ListAppointments(ctx context.Context, userID int64) ([]models.AppointmentDetail, error) {
	appointments, err := s.appointmentRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	appointmentIDs := make([]int64, 0, len(appointments))
	for _, appointment := range appointments {
		appointmentIDs = append(appointmentIDs, appointment.ID)
	}

	paymentsByAppointment, err := s.paymentRepo.ListByAppointmentIDs(ctx, appointmentIDs)
	if err != nil {
		return nil, err
	}

	details := make([]models.AppointmentDetail, 0, len(appointments))
	for _, appointment := range appointments {
		detail := models.AppointmentDetail{Appointment: appointment}
		if payment, ok := paymentsByAppointment[appointment.ID]; ok {
			paymentCopy := payment
			detail.Payment = &paymentCopy
		}
		details = append(details, detail)
	}
	return details, nil
}

// WhatsAppLink is the deep link clients open after a confirmed booking.
func (s *AppointmentService) WhatsAppLink() string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", s.whatsappPhone, url.QueryEscape(whatsappMessage))
}

// slotToTime anchors a catalog slot to tomorrow in clinic time.
func (s *AppointmentService) slotToTime(slot string) (time.Time, error) {
	if !contains(TimeSlots, slot) {
		return time.Time{}, fmt.Errorf("%w: slot must be one of: %s", ErrInvalidInput, strings.Join(TimeSlots, ", "))
	}
	parsed, err := time.Parse("03:04 PM", slot)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: malformed slot", ErrInvalidInput)
	}
	tomorrow := s.now().In(clinicZone).AddDate(0, 0, 1)
	return time.Date(
		tomorrow.Year(), tomorrow.Month(), tomorrow.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, clinicZone,
	), nil
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
