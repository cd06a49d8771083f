package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/nutrihz/ConsultBack/internal/models"
	"github.com/nutrihz/ConsultBack/internal/repository"
)

type stubInquiryRepo struct {
	createResult *models.ContactInquiry
	createErr    error
	lastCreate   repository.CreateInquiryInput
}

func (r *stubInquiryRepo) Create(_ context.Context, input repository.CreateInquiryInput) (*models.ContactInquiry, error) {
	r.lastCreate = input
	return r.createResult, r.createErr
}

type recordedEmail struct {
	to      []string
	subject string
	html    string
}

type stubMailer struct {
	sent    []recordedEmail
	sendErr error
}

func (m *stubMailer) Send(_ context.Context, to []string, subject, html string) error {
	m.sent = append(m.sent, recordedEmail{to: to, subject: subject, html: html})
	return m.sendErr
}

func TestContactSubmitSendsBothEmails(t *testing.T) {
	repo := &stubInquiryRepo{createResult: &models.ContactInquiry{ID: 7, Name: "Asha", Email: "asha@example.com"}}
	mailer := &stubMailer{}
	service := NewContactService(repo, mailer, "info@nutritionhaizaruri.com")

	inquiry, err := service.Submit(context.Background(), repository.CreateInquiryInput{
		Name:    "Asha",
		Email:   "asha@example.com",
		Subject: "Consultation query",
		Message: "I would like to know more about the plans.",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if inquiry.ID != 7 {
		t.Fatalf("expected inquiry 7, got %d", inquiry.ID)
	}
	if len(mailer.sent) != 2 {
		t.Fatalf("expected 2 emails, got %d", len(mailer.sent))
	}
	if mailer.sent[0].to[0] != "info@nutritionhaizaruri.com" {
		t.Fatalf("notification went to %v", mailer.sent[0].to)
	}
	if mailer.sent[1].to[0] != "asha@example.com" {
		t.Fatalf("acknowledgement went to %v", mailer.sent[1].to)
	}
	if !strings.Contains(mailer.sent[0].html, "Consultation query") {
		t.Fatal("notification is missing the subject")
	}
}

func TestContactSubmitMailFailureIsNotFatal(t *testing.T) {
	repo := &stubInquiryRepo{createResult: &models.ContactInquiry{ID: 8}}
	mailer := &stubMailer{sendErr: errors.New("smtp down")}
	service := NewContactService(repo, mailer, "info@nutritionhaizaruri.com")

	if _, err := service.Submit(context.Background(), repository.CreateInquiryInput{
		Name:    "Ravi",
		Email:   "ravi@example.com",
		Subject: "Question",
		Message: "Is the consultation online?",
	}); err != nil {
		t.Fatalf("Submit should succeed despite mail failure, got %v", err)
	}
}

func TestContactSubmitRepoErrorPropagates(t *testing.T) {
	wantErr := errors.New("insert failed")
	repo := &stubInquiryRepo{createErr: wantErr}
	mailer := &stubMailer{}
	service := NewContactService(repo, mailer, "info@nutritionhaizaruri.com")

	if _, err := service.Submit(context.Background(), repository.CreateInquiryInput{}); !errors.Is(err, wantErr) {
		t.Fatalf("expected repo error, got %v", err)
	}
	if len(mailer.sent) != 0 {
		t.Fatalf("no emails should be sent when the insert fails, got %d", len(mailer.sent))
	}
}
