// Package api is the HTTP client for the remote sync service. The sync wire
// contract is one authenticated JSON POST per batch: any 2xx means the whole
// batch was applied, anything else means none of it was.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hsaleh/talentdesk/internal/common"
	"github.com/hsaleh/talentdesk/internal/wire"
)

// RequestTimeout bounds every round trip so a dead network cannot suspend
// the calling flow indefinitely; a timeout is reported as a push failure.
const RequestTimeout = 30 * time.Second

// TokenPair is the session credential pair returned by auth endpoints.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// PresignResult carries a presigned upload URL and the storage key the photo
// will live under.
type PresignResult struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type apiError struct {
	Error string `json:"error"`
}

// Client talks to one server endpoint.
type Client struct {
	base string
	http *http.Client
}

func New(endpoint string) *Client {
	return &Client{
		base: strings.TrimRight(endpoint, "/"),
		http: &http.Client{Timeout: RequestTimeout},
	}
}

func (c *Client) Register(ctx context.Context, username, password string) (*TokenPair, error) {
	var pair TokenPair
	err := c.post(ctx, "/api/user/register", "", credentials{Username: username, Password: password}, &pair)
	if err != nil {
		return nil, err
	}
	return &pair, nil
}

func (c *Client) Login(ctx context.Context, username, password string) (*TokenPair, error) {
	var pair TokenPair
	err := c.post(ctx, "/api/user/login", "", credentials{Username: username, Password: password}, &pair)
	if err != nil {
		return nil, err
	}
	return &pair, nil
}

func (c *Client) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	var pair TokenPair
	in := map[string]string{"refreshToken": refreshToken}
	if err := c.post(ctx, "/api/user/refresh", "", in, &pair); err != nil {
		return nil, err
	}
	return &pair, nil
}

// PushBatch submits the full local snapshot in one request.
func (c *Client) PushBatch(ctx context.Context, token string, batch wire.Batch) error {
	return c.post(ctx, "/api/sync/push", token, batch, nil)
}

// PresignPhoto asks the server for a presigned upload slot.
func (c *Client) PresignPhoto(ctx context.Context, token string) (*PresignResult, error) {
	var out PresignResult
	if err := c.post(ctx, "/api/photos/presign", token, struct{}{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PhotoURL asks the server for a presigned download URL for a stored photo.
func (c *Client) PhotoURL(ctx context.Context, token, key string) (string, error) {
	var out struct {
		URL string `json:"url"`
	}
	in := map[string]string{"key": key}
	if err := c.post(ctx, "/api/photos/url", token, in, &out); err != nil {
		return "", err
	}
	return out.URL, nil
}

// UploadPhoto PUTs the photo bytes straight to the presigned URL.
func (c *Client) UploadPhoto(ctx context.Context, presignedURL string, body io.Reader) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, presignedURL, body)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("upload failed: status %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) post(ctx context.Context, path, token string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return common.ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var ae apiError
		if err := json.NewDecoder(resp.Body).Decode(&ae); err == nil && ae.Error != "" {
			return fmt.Errorf("server error (status %d): %s", resp.StatusCode, ae.Error)
		}
		return fmt.Errorf("server error: status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
