package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultFirebaseEndpoint is the Identity Toolkit v1 base URL.
const DefaultFirebaseEndpoint = "https://identitytoolkit.googleapis.com/v1"

// Firebase signs users in with email and password through the Identity
// Toolkit REST API.
type Firebase struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// NewFirebase builds a gateway for the project that owns apiKey. An empty
// endpoint selects DefaultFirebaseEndpoint.
func NewFirebase(endpoint, apiKey string, timeout time.Duration) *Firebase {
	if endpoint == "" {
		endpoint = DefaultFirebaseEndpoint
	}
	return &Firebase{
		endpoint: strings.TrimRight(endpoint, "/"),
		apiKey:   apiKey,
		client:   &http.Client{Timeout: timeout},
	}
}

func (f *Firebase) SignUp(ctx context.Context, email, password string) (string, error) {
	return f.call(ctx, "accounts:signUp", email, password)
}

func (f *Firebase) SignIn(ctx context.Context, email, password string) (string, error) {
	return f.call(ctx, "accounts:signInWithPassword", email, password)
}

type passwordRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type passwordResponse struct {
	LocalID string `json:"localId"`
	Email   string `json:"email"`
	IDToken string `json:"idToken"`
	Error   *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (f *Firebase) call(ctx context.Context, method, email, password string) (string, error) {
	body, err := json.Marshal(passwordRequest{Email: email, Password: password, ReturnSecureToken: true})
	if err != nil {
		return "", internalf("marshal request: %w", err)
	}

	u := f.endpoint + "/" + method + "?key=" + url.QueryEscape(f.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return "", internalf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", wrap(ErrNetwork, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", wrap(ErrNetwork, err)
	}

	var pr passwordResponse
	if err := json.Unmarshal(raw, &pr); err != nil {
		return "", internalf("%s: status %d: unmarshal response: %w", method, resp.StatusCode, err)
	}
	if pr.Error != nil {
		return "", fromCode(pr.Error.Message)
	}
	if resp.StatusCode >= 400 {
		return "", internalf("%s: status %d", method, resp.StatusCode)
	}
	if pr.LocalID == "" {
		return "", internalf("%s: response has no localId", method)
	}
	if err := checkIDToken(pr.IDToken, pr.LocalID); err != nil {
		return "", internalf("%s: %w", method, err)
	}

	return pr.LocalID, nil
}

// checkIDToken makes sure the returned ID token belongs to localID.
// The signature is not verified.
func checkIDToken(token, localID string) error {
	if token == "" {
		return nil
	}

	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return fmt.Errorf("parse id token: %w", err)
	}

	uid, _ := claims["user_id"].(string)
	if uid == "" {
		uid, _ = claims["sub"].(string)
	}
	if uid != localID {
		return fmt.Errorf("id token subject %q does not match %q", uid, localID)
	}
	return nil
}
