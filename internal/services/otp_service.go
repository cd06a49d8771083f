package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/nutrihz/ConsultBack/internal/models"
	"github.com/nutrihz/ConsultBack/pkg/utils"
)

const otpTTL = 10 * time.Minute

var ErrInvalidOTP = errors.New("invalid or expired code")

type otpStore interface {
	Create(ctx context.Context, contact, codeHash string, expiresAt time.Time) error
	GetActiveByContact(ctx context.Context, contact string) (*models.OTPCode, error)
	MarkConsumed(ctx context.Context, id int64) error
}

type contactUpserter interface {
	UpsertByContact(ctx context.Context, contact string, isEmail bool) (*models.User, error)
}

type OTPService struct {
	otpRepo     otpStore
	userRepo    contactUpserter
	sms         SMSSender
	mailer      Mailer
	countryCode string
}

func NewOTPService(
	otpRepo otpStore,
	userRepo contactUpserter,
	sms SMSSender,
	mailer Mailer,
	countryCode string,
) *OTPService {
	return &OTPService{
		otpRepo:     otpRepo,
		userRepo:    userRepo,
		sms:         sms,
		mailer:      mailer,
		countryCode: countryCode,
	}
}

// NormalizeContact canonicalizes the login identifier: emails are lowered,
// bare phone numbers pick up the default country code. The second return
// reports whether the contact is an email address.
func (s *OTPService) NormalizeContact(contact string) (string, bool, error) {
	contact = strings.TrimSpace(contact)
	if contact == "" {
		return "", false, fmt.Errorf("%w: contact is required", ErrInvalidInput)
	}
	if strings.Contains(contact, "@") {
		parsed, err := mail.ParseAddress(contact)
		if err != nil {
			return "", false, fmt.Errorf("%w: invalid email", ErrInvalidInput)
		}
		return strings.ToLower(parsed.Address), true, nil
	}
	normalized := utils.NormalizePhone(contact, s.countryCode)
	if !utils.DigitsOnly(normalized) || len(normalized) < 11 {
		return "", false, fmt.Errorf("%w: invalid phone number", ErrInvalidInput)
	}
	return normalized, false, nil
}

// Send issues a fresh one-time code to the contact. Only a hash of the code
// is stored; earlier unconsumed codes stay valid until they expire.
func (s *OTPService) Send(ctx context.Context, contact string) (string, error) {
	normalized, isEmail, err := s.NormalizeContact(contact)
	if err != nil {
		return "", err
	}

	code, err := utils.GenerateOTP()
	if err != nil {
		return "", err
	}
	codeHash, err := utils.HashPassword(code)
	if err != nil {
		return "", err
	}
	if err := s.otpRepo.Create(ctx, normalized, codeHash, time.Now().Add(otpTTL)); err != nil {
		return "", err
	}

	if isEmail {
		body := fmt.Sprintf("<p>Your verification code is <strong>%s</strong>. It expires in 10 minutes.</p>", code)
		if err := s.mailer.Send(ctx, []string{normalized}, "Your verification code", body); err != nil {
			return "", fmt.Errorf("deliver otp email: %w", err)
		}
	} else {
		message := fmt.Sprintf("Your verification code is %s. It expires in 10 minutes.", code)
		if err := s.sms.SendSMS(ctx, normalized, message); err != nil {
			return "", fmt.Errorf("deliver otp sms: %w", err)
		}
	}

	return normalized, nil
}

// Verify checks the code against the newest active one for the contact,
// consumes it, and returns the matching account, creating it on first login.
func (s *OTPService) Verify(ctx context.Context, contact, code string) (*models.User, error) {
	normalized, isEmail, err := s.NormalizeContact(contact)
	if err != nil {
		return nil, err
	}

	active, err := s.otpRepo.GetActiveByContact(ctx, normalized)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvalidOTP
		}
		return nil, err
	}
	if !utils.CheckPassword(code, active.CodeHash) {
		return nil, ErrInvalidOTP
	}
	if err := s.otpRepo.MarkConsumed(ctx, active.ID); err != nil {
		return nil, err
	}

	return s.userRepo.UpsertByContact(ctx, normalized, isEmail)
}
