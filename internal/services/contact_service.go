package services

import (
	"context"
	"fmt"
	"html"
	"log"

	"github.com/nutrihz/ConsultBack/internal/models"
	"github.com/nutrihz/ConsultBack/internal/repository"
)

type inquiryCreator interface {
	Create(ctx context.Context, input repository.CreateInquiryInput) (*models.ContactInquiry, error)
}

type ContactService struct {
	inquiryRepo inquiryCreator
	mailer      Mailer
	inboxEmail  string
}

func NewContactService(inquiryRepo inquiryCreator, mailer Mailer, inboxEmail string) *ContactService {
	return &ContactService{
		inquiryRepo: inquiryRepo,
		mailer:      mailer,
		inboxEmail:  inboxEmail,
	}
}

// Submit stores the inquiry, then notifies the clinic inbox and sends the
// sender an acknowledgement. Mail failures are logged but never surface to
// the caller: the inquiry is already on record.
func (s *ContactService) Submit(ctx context.Context, input repository.CreateInquiryInput) (*models.ContactInquiry, error) {
	inquiry, err := s.inquiryRepo.Create(ctx, input)
	if err != nil {
		return nil, err
	}

	notification := fmt.Sprintf(
		"<h2>New Contact Inquiry</h2><p><strong>Name:</strong> %s</p><p><strong>Email:</strong> %s</p><p><strong>Phone:</strong> %s</p><p><strong>Subject:</strong> %s</p><p>%s</p>",
		html.EscapeString(input.Name),
		html.EscapeString(input.Email),
		html.EscapeString(input.Phone),
		html.EscapeString(input.Subject),
		html.EscapeString(input.Message),
	)
	if err := s.mailer.Send(ctx, []string{s.inboxEmail}, "Contact inquiry: "+input.Subject, notification); err != nil {
		log.Printf("contact inquiry %d: notify inbox: %v", inquiry.ID, err)
	}

	acknowledgement := fmt.Sprintf(
		"<p>Hi %s,</p><p>Thanks for reaching out. We have received your message and will get back to you within 24 hours.</p><p>Warm regards,<br>Dr. Kirti's Clinic</p>",
		html.EscapeString(input.Name),
	)
	if err := s.mailer.Send(ctx, []string{input.Email}, "We received your message", acknowledgement); err != nil {
		log.Printf("contact inquiry %d: acknowledge sender: %v", inquiry.ID, err)
	}

	return inquiry, nil
}
