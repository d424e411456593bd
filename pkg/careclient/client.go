package careclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"
)

// User is the signed-in account as reported by the server.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Record is one entity returned by the server. Fields carries the
// entity-specific columns keyed by their JSON names.
type Record struct {
	ID        string
	CreatedAt time.Time
	Fields    map[string]any
}

// Backend is the server surface the client-side components use. *Client is
// the HTTP implementation; tests substitute fakes.
type Backend interface {
	SignUp(ctx context.Context, email, password, fullName string) (*User, error)
	SignIn(ctx context.Context, email, password string) (*User, error)
	SignOut(ctx context.Context) error
	CurrentSession(ctx context.Context) (*User, error)

	CreateRecord(ctx context.Context, collection string, fields map[string]any) (*Record, error)
	ListRecords(ctx context.Context, collection string) ([]*Record, error)
}

// Client talks to an ElderCare Connect server over HTTP. It holds the bearer
// token from the last successful sign-in and is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

const defaultTimeout = 15 * time.Second

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

// SetToken seeds the client with a previously saved token, letting an app
// restore a session across restarts before calling CurrentSession.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Token returns the current bearer token, empty when signed out.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

type sessionPayload struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// SignUp registers an account. A non-empty fullName seeds the new
// user's care profile server side.
func (c *Client) SignUp(ctx context.Context, email, password, fullName string) (*User, error) {
	body := map[string]string{"email": email, "password": password}
	if fullName != "" {
		body["full_name"] = fullName
	}
	var resp sessionPayload
	err := c.do(ctx, http.MethodPost, "/api/v1/auth/signup", body, &resp)
	if err != nil {
		return nil, &AuthError{Op: "signup", Err: err}
	}
	c.SetToken(resp.Token)
	return resp.User, nil
}

func (c *Client) SignIn(ctx context.Context, email, password string) (*User, error) {
	var resp sessionPayload
	err := c.do(ctx, http.MethodPost, "/api/v1/auth/signin",
		map[string]string{"email": email, "password": password}, &resp)
	if err != nil {
		return nil, &AuthError{Op: "signin", Err: err}
	}
	c.SetToken(resp.Token)
	return resp.User, nil
}

// SignOut revokes the session server-side. The token is only cleared when
// the server confirms, so a failed sign-out leaves the client signed in.
func (c *Client) SignOut(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/signout", nil, nil); err != nil {
		return &AuthError{Op: "signout", Err: err}
	}
	c.SetToken("")
	return nil
}

func (c *Client) CurrentSession(ctx context.Context) (*User, error) {
	if c.Token() == "" {
		return nil, ErrNoSession
	}
	var resp sessionPayload
	if err := c.do(ctx, http.MethodGet, "/api/v1/auth/session", nil, &resp); err != nil {
		return nil, ErrNoSession
	}
	return resp.User, nil
}

func (c *Client) CreateRecord(ctx context.Context, collection string, fields map[string]any) (*Record, error) {
	var raw map[string]any
	if err := c.do(ctx, http.MethodPost, "/api/v1/"+collection, fields, &raw); err != nil {
		return nil, err
	}
	return recordFromMap(raw), nil
}

// listPageSize is the page size requested from the server, matching its
// maximum list limit.
const listPageSize = 100

// ListRecords fetches the whole collection, following the server's
// pagination until the last page so callers see every record.
func (c *Client) ListRecords(ctx context.Context, collection string) ([]*Record, error) {
	var records []*Record
	for offset := 0; ; offset += listPageSize {
		var resp struct {
			Data    []map[string]any `json:"data"`
			HasMore bool             `json:"has_more"`
		}
		path := fmt.Sprintf("/api/v1/%s?limit=%d&offset=%d", collection, listPageSize, offset)
		if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
			return nil, err
		}
		for _, raw := range resp.Data {
			records = append(records, recordFromMap(raw))
		}
		if !resp.HasMore {
			return records, nil
		}
	}
}

func recordFromMap(raw map[string]any) *Record {
	rec := &Record{Fields: make(map[string]any, len(raw))}
	for k, v := range raw {
		switch k {
		case "id":
			rec.ID, _ = v.(string)
		case "created_at":
			if s, ok := v.(string); ok {
				rec.CreatedAt, _ = time.Parse(time.RFC3339, s)
			}
		case "user_id":
			// server-side bookkeeping, not a form field
		default:
			rec.Fields[k] = v
		}
	}
	return rec
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Message any `json:"message"`
		}
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Message != nil {
			return fmt.Errorf("%s %s: %d: %v", method, path, resp.StatusCode, apiErr.Message)
		}
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
