package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/nutrihz/ConsultBack/internal/models"
	"github.com/nutrihz/ConsultBack/internal/repository"
	"github.com/nutrihz/ConsultBack/internal/services"
)

type stubIntakeService struct {
	result      *models.Profile
	err         error
	calls       int
	lastUserID  int64
	lastContact repository.ContactInput
	lastAnswers models.QuizAnswers
}

func (s *stubIntakeService) CompleteRegistration(_ context.Context, userID int64, contact repository.ContactInput, answers models.QuizAnswers) (*models.Profile, error) {
	s.calls++
	s.lastUserID = userID
	s.lastContact = contact
	s.lastAnswers = answers
	return s.result, s.err
}

func registrationApp(service *stubIntakeService) *fiber.App {
	handler := NewRegistrationHandler(service)
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", "42")
		c.Locals("role", "user")
		return c.Next()
	})
	app.Post("/api/v1/registration", handler.Complete)
	return app
}

func postRegistration(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/registration", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

const completeAnswers = `{
	"diet_type": "vegetarian",
	"age": "30",
	"gender": "female",
	"weight": "70",
	"height": "170",
	"occupation": "job",
	"hear_about": "instagram",
	"skin_type": "normal",
	"hair_type": "normal"
}`

func TestRegistrationCompletes(t *testing.T) {
	service := &stubIntakeService{result: &models.Profile{ID: 1, UserID: 42, KYCCompleted: true}}
	app := registrationApp(service)

	resp := postRegistration(t, app, `{
		"full_name": "Asha Rao",
		"phone": "9876543210",
		"email": "Asha@Example.com",
		"answers": `+completeAnswers+`
	}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if service.lastUserID != 42 {
		t.Fatalf("expected user 42, got %d", service.lastUserID)
	}
	if service.lastContact.Email != "asha@example.com" {
		t.Fatalf("expected lowered email, got %q", service.lastContact.Email)
	}
	if service.lastAnswers.DietType != "vegetarian" {
		t.Fatalf("answers not forwarded: %+v", service.lastAnswers)
	}
}

func TestRegistrationShortPhoneNeverReachesService(t *testing.T) {
	service := &stubIntakeService{result: &models.Profile{}}
	app := registrationApp(service)

	resp := postRegistration(t, app, `{
		"full_name": "Asha Rao",
		"phone": "123",
		"email": "asha@example.com",
		"answers": `+completeAnswers+`
	}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if service.calls != 0 {
		t.Fatal("a 3-digit phone must be rejected before persistence")
	}
}

func TestRegistrationIncompleteQuizIsUnprocessable(t *testing.T) {
	service := &stubIntakeService{err: services.ErrQuizIncomplete}
	app := registrationApp(service)

	resp := postRegistration(t, app, `{
		"full_name": "Asha Rao",
		"phone": "9876543210",
		"email": "asha@example.com",
		"answers": {"diet_type": "vegetarian"}
	}`)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.StatusCode)
	}
}
