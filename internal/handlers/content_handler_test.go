package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestContentEndpoints(t *testing.T) {
	handler := NewContentHandler("https://chat.whatsapp.com/DZf2YjUlHn36DzJA5ZePtL")
	app := fiber.New()
	app.Get("/api/content/faq", handler.FAQ)
	app.Get("/api/content/community", handler.Community)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/content/faq", nil))
	if err != nil {
		t.Fatalf("app.Test faq: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("faq: expected 200, got %d", resp.StatusCode)
	}
	var faqBody struct {
		FAQs []faqEntry `json:"faqs"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&faqBody); err != nil {
		t.Fatalf("decode faq: %v", err)
	}
	if len(faqBody.FAQs) == 0 {
		t.Fatal("faq list is empty")
	}

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/content/community", nil))
	if err != nil {
		t.Fatalf("app.Test community: %v", err)
	}
	defer resp.Body.Close()
	var communityBody struct {
		JoinLink string `json:"join_link"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&communityBody); err != nil {
		t.Fatalf("decode community: %v", err)
	}
	if communityBody.JoinLink != "https://chat.whatsapp.com/DZf2YjUlHn36DzJA5ZePtL" {
		t.Fatalf("unexpected join link: %s", communityBody.JoinLink)
	}
}
