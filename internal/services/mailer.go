package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
)

type Mailer interface {
	Send(ctx context.Context, to []string, subject, html string) error
}

// ResendMailer sends transactional email through the Resend HTTP API.
type ResendMailer struct {
	baseURL    string
	apiKey     string
	from       string
	httpClient *http.Client
}

func NewResendMailer(baseURL, apiKey, from string) *ResendMailer {
	if baseURL == "" {
		baseURL = "https://api.resend.com"
	}
	return &ResendMailer{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		from:       from,
		httpClient: http.DefaultClient,
	}
}

func (m *ResendMailer) Send(ctx context.Context, to []string, subject, html string) error {
	payload := map[string]any{
		"from":    m.from,
		"to":      to,
		"subject": subject,
		"html":    html,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build email request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		responseBody, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("send email: status %d: %s", resp.StatusCode, strings.TrimSpace(string(responseBody)))
	}

	return nil
}

// LogMailer is used when no RESEND_API_KEY is configured. It records what
// would have been sent so local runs keep working without credentials.
type LogMailer struct{}

func (LogMailer) Send(_ context.Context, to []string, subject, _ string) error {
	log.Printf("mailer disabled, dropping email to=%v subject=%q", to, subject)
	return nil
}
