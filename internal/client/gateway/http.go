package gateway

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
)

// HTTPGateway is the Gateway implementation over the gateway's HTTP/JSON API.
// It keeps the access token obtained by SignIn and attaches it as a bearer
// token to collection requests and SignOut.
type HTTPGateway struct {
	baseURL     string
	httpClient  *http.Client
	accessToken string
}

// NewHTTPGateway creates a gateway client for the given base URL,
// e.g. "http://127.0.0.1:8080".
func NewHTTPGateway(baseURL string) *HTTPGateway {
	return &HTTPGateway{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// WithTimeout overrides the per-request deadline and returns g for chaining.
func (g *HTTPGateway) WithTimeout(d time.Duration) *HTTPGateway {
	g.httpClient.Timeout = d
	return g
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signInResponse struct {
	SubjectID   string `json:"subject_id"`
	AccessToken string `json:"access_token"`
}

type documentsResponse struct {
	Documents []Document `json:"documents"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (g *HTTPGateway) SignIn(ctx context.Context, email, password string) (*Session, error) {
	body, err := json.Marshal(signInRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/auth/signin", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, g.mapStatus(resp)
	}

	var sr signInResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("decoding sign-in response: %w", err)
	}

	g.accessToken = sr.AccessToken
	return &Session{SubjectID: sr.SubjectID}, nil
}

type signUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
	Kind     string `json:"kind"`
}

// SignUp creates a new account of the given kind ("customer" or
// "freelancer"). It is not part of the Gateway interface: the login and feed
// workflows never call it, only the sign-up screen does.
func (g *HTTPGateway) SignUp(ctx context.Context, email, password, username, kind string) error {
	body, err := json.Marshal(signUpRequest{Email: email, Password: password, Username: username, Kind: kind})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/auth/signup", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return g.mapStatus(resp)
	}
	return nil
}

func (g *HTTPGateway) SignOut(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/auth/signout", nil)
	if err != nil {
		return err
	}
	g.authorize(req)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return g.mapStatus(resp)
	}

	g.accessToken = ""
	return nil
}

func (g *HTTPGateway) QueryByEquality(ctx context.Context, collection, field, value string) ([]Document, error) {
	q := url.Values{}
	q.Set("field", field)
	q.Set("value", value)
	return g.fetchDocuments(ctx, collection, q.Encode())
}

func (g *HTTPGateway) GetAllDocuments(ctx context.Context, collection string) ([]Document, error) {
	return g.fetchDocuments(ctx, collection, "")
}

func (g *HTTPGateway) fetchDocuments(ctx context.Context, collection, rawQuery string) ([]Document, error) {
	u := g.baseURL + "/api/collections/" + url.PathEscape(collection) + "/documents"
	if rawQuery != "" {
		u += "?" + rawQuery
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	g.authorize(req)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, g.mapStatus(resp)
	}

	var dr documentsResponse
	if err := json.NewDecoder(resp.Body).Decode(&dr); err != nil {
		return nil, fmt.Errorf("decoding documents response: %w", err)
	}
	return dr.Documents, nil
}

func (g *HTTPGateway) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/health", nil)
	if err != nil {
		return err
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return g.mapStatus(resp)
	}
	return nil
}

func (g *HTTPGateway) Close() error {
	g.httpClient.CloseIdleConnections()
	return nil
}

func (g *HTTPGateway) authorize(req *http.Request) {
	if g.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+g.accessToken)
	}
}

// mapStatus converts a non-2xx response into a sentinel error, preserving the
// gateway's error message when the body carries the JSON error envelope.
func (g *HTTPGateway) mapStatus(resp *http.Response) error {
	msg := resp.Status
	if b, err := io.ReadAll(io.LimitReader(resp.Body, 4096)); err == nil {
		var er errorResponse
		if json.Unmarshal(b, &er) == nil && er.Error != "" {
			msg = er.Error
		}
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return fmt.Errorf("%w: %s", ErrBadRequest, msg)
	default:
		return fmt.Errorf("%w: %s", ErrServer, msg)
	}
}
