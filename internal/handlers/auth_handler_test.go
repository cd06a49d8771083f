package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func registerApp() *fiber.App {
	handler := NewAuthHandler(nil, nil, nil, nil, nil, "test-secret")
	app := fiber.New()
	app.Post("/api/auth/register", handler.Register)
	return app
}

func postRegister(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func TestRegisterValidatesBeforeStorage(t *testing.T) {
	// The handler is built with nil storage, so any case that reached the
	// database would panic instead of returning a status.
	app := registerApp()

	cases := []struct {
		name string
		body string
	}{
		{"bad email", `{"email":"not-an-email","password":"longenough","full_name":"Asha Rao"}`},
		{"short password", `{"email":"asha@example.com","password":"short","full_name":"Asha Rao"}`},
		{"one-char full name", `{"email":"asha@example.com","password":"longenough","full_name":"A"}`},
		{"oversized full name", `{"email":"asha@example.com","password":"longenough","full_name":"` + strings.Repeat("a", 101) + `"}`},
	}
	for _, tc := range cases {
		resp := postRegister(t, app, tc.body)
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", tc.name, resp.StatusCode)
		}
	}
}
