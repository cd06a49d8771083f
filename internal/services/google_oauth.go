package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// GoogleOAuthService drives the server-side authorization code flow against
// Google's OAuth 2.0 endpoints.
type GoogleOAuthService struct {
	authBaseURL  string
	tokenBaseURL string
	clientID     string
	clientSecret string
	redirectURL  string
	httpClient   *http.Client
}

func NewGoogleOAuthService(clientID, clientSecret, redirectURL string) *GoogleOAuthService {
	return &GoogleOAuthService{
		authBaseURL:  "https://accounts.google.com",
		tokenBaseURL: "https://oauth2.googleapis.com",
		clientID:     clientID,
		clientSecret: clientSecret,
		redirectURL:  redirectURL,
	}
}

// WithEndpoints overrides the Google endpoints, used by tests.
func (s *GoogleOAuthService) WithEndpoints(authBaseURL, tokenBaseURL string) *GoogleOAuthService {
	s.authBaseURL = strings.TrimRight(authBaseURL, "/")
	s.tokenBaseURL = strings.TrimRight(tokenBaseURL, "/")
	return s
}

func (s *GoogleOAuthService) Enabled() bool {
	return s.clientID != "" && s.clientSecret != "" && s.redirectURL != ""
}

// AuthURL builds the consent page URL the client is redirected to. The state
// value is round-tripped back on the callback for CSRF checking.
func (s *GoogleOAuthService) AuthURL(state string) string {
	query := url.Values{
		"client_id":     {s.clientID},
		"redirect_uri":  {s.redirectURL},
		"response_type": {"code"},
		"scope":         {"openid email profile"},
		"state":         {state},
		"prompt":        {"consent"},
	}
	return s.authBaseURL + "/o/oauth2/v2/auth?" + query.Encode()
}

type GoogleUser struct {
	Sub   string `json:"sub"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Exchange trades an authorization code for tokens and resolves the Google
// account behind them.
func (s *GoogleOAuthService) Exchange(ctx context.Context, code string) (*GoogleUser, error) {
	form := url.Values{
		"code":          {code},
		"client_id":     {s.clientID},
		"client_secret": {s.clientSecret},
		"redirect_uri":  {s.redirectURL},
		"grant_type":    {"authorization_code"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.tokenBaseURL+"/token", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client().Do(req)
	if err != nil {
		return nil, fmt.Errorf("exchange code: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("exchange code: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var token struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return nil, fmt.Errorf("decode token response: %w", err)
	}
	if token.AccessToken == "" {
		return nil, fmt.Errorf("access token missing from response")
	}

	return s.fetchUser(ctx, token.AccessToken)
}

func (s *GoogleOAuthService) fetchUser(ctx context.Context, accessToken string) (*GoogleUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.tokenBaseURL+"/oauth2/v3/userinfo", nil)
	if err != nil {
		return nil, fmt.Errorf("build userinfo request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := s.client().Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("fetch userinfo: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var user GoogleUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("decode userinfo: %w", err)
	}
	if user.Sub == "" || user.Email == "" {
		return nil, fmt.Errorf("userinfo missing sub or email")
	}
	user.Email = strings.ToLower(user.Email)
	return &user, nil
}

func (s *GoogleOAuthService) client() *http.Client {
	if s.httpClient != nil {
		return s.httpClient
	}
	return http.DefaultClient
}
