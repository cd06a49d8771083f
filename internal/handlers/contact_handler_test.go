package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/nutrihz/ConsultBack/internal/models"
	"github.com/nutrihz/ConsultBack/internal/repository"
)

type stubContactService struct {
	submitResult *models.ContactInquiry
	submitErr    error
	lastInput    repository.CreateInquiryInput
	calls        int
}

func (s *stubContactService) Submit(_ context.Context, input repository.CreateInquiryInput) (*models.ContactInquiry, error) {
	s.calls++
	s.lastInput = input
	return s.submitResult, s.submitErr
}

func contactApp(service *stubContactService) *fiber.App {
	handler := NewContactHandler(service)
	app := fiber.New()
	app.Post("/api/contact", handler.Submit)
	return app
}

func postContact(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func TestContactSubmitStoresInquiry(t *testing.T) {
	service := &stubContactService{submitResult: &models.ContactInquiry{ID: 3}}
	app := contactApp(service)

	resp := postContact(t, app, `{
		"name": "Asha Rao",
		"email": "asha@example.com",
		"phone": "9876543210",
		"subject": "Plan question",
		"message": "Do the plans cover vegetarian diets?"
	}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	if service.lastInput.Email != "asha@example.com" {
		t.Fatalf("expected lowered email, got %q", service.lastInput.Email)
	}

	var body struct {
		Success   bool  `json:"success"`
		InquiryID int64 `json:"inquiry_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !body.Success {
		t.Fatal("expected success true")
	}
	if body.InquiryID != 3 {
		t.Fatalf("expected inquiry_id 3, got %d", body.InquiryID)
	}
}

func TestContactSubmitRequiresPhone(t *testing.T) {
	service := &stubContactService{submitResult: &models.ContactInquiry{ID: 6}}
	app := contactApp(service)

	resp := postContact(t, app, `{
		"name": "Asha Rao",
		"email": "asha@example.com",
		"subject": "Plan question",
		"message": "Do the plans cover vegetarian diets?"
	}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("missing phone: expected 400, got %d", resp.StatusCode)
	}
	if service.calls != 0 {
		t.Fatal("missing phone must not reach the service")
	}

	var body struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Success {
		t.Fatal("expected success false on validation failure")
	}
	if body.Error == "" {
		t.Fatal("expected an error message")
	}
}

func TestContactSubmitMessageBounds(t *testing.T) {
	service := &stubContactService{submitResult: &models.ContactInquiry{ID: 4}}
	app := contactApp(service)

	nineChars := strings.Repeat("a", 9)
	resp := postContact(t, app, fmt.Sprintf(`{
		"name": "Asha Rao",
		"email": "asha@example.com",
		"phone": "9876543210",
		"subject": "Plan question",
		"message": %q
	}`, nineChars))
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("9-char message: expected 400, got %d", resp.StatusCode)
	}
	if service.calls != 0 {
		t.Fatal("short message must not reach the service")
	}

	tenChars := strings.Repeat("a", 10)
	resp = postContact(t, app, fmt.Sprintf(`{
		"name": "Asha Rao",
		"email": "asha@example.com",
		"phone": "9876543210",
		"subject": "Plan question",
		"message": %q
	}`, tenChars))
	resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("10-char message: expected 201, got %d", resp.StatusCode)
	}
}

func TestContactSubmitRejectsBadFields(t *testing.T) {
	service := &stubContactService{submitResult: &models.ContactInquiry{ID: 5}}
	app := contactApp(service)

	cases := []struct {
		name string
		body string
	}{
		{"short name", `{"name":"A","email":"a@b.com","phone":"9876543210","subject":"Hello there","message":"A long enough message."}`},
		{"bad email", `{"name":"Asha Rao","email":"not-an-email","phone":"9876543210","subject":"Hello there","message":"A long enough message."}`},
		{"short subject", `{"name":"Asha Rao","email":"a@b.com","phone":"9876543210","subject":"Hey","message":"A long enough message."}`},
		{"bad phone", `{"name":"Asha Rao","email":"a@b.com","phone":"123","subject":"Hello there","message":"A long enough message."}`},
	}
	for _, tc := range cases {
		resp := postContact(t, app, tc.body)
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", tc.name, resp.StatusCode)
		}
	}
	if service.calls != 0 {
		t.Fatalf("invalid payloads must not reach the service, got %d calls", service.calls)
	}
}
