// Package webue is a typed client for the WebUE profile management API.
package webue

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
)

const (
	pathLogin            = "/api/login"
	pathProfiles         = "/api/ue_profiles"
	pathProfile          = "/api/ue_profiles/{supi}"
	pathGenerateProfiles = "/api/ue_profiles/generate"
)

// Requester starts requests against the API base address with credentials
// attached. *httpclient.AuthClient satisfies it.
type Requester interface {
	R() *resty.Request
}

// TokenSaver receives the token issued by a successful login.
type TokenSaver interface {
	SaveToken(token string) error
}

// Client calls the WebUE API through an authenticated HTTP client.
type Client struct {
	http   Requester
	tokens TokenSaver
	log    Logger
}

// New returns a Client. tokens may be nil when the caller keeps the token itself.
func New(http Requester, tokens TokenSaver, log Logger) *Client {
	return &Client{http: http, tokens: tokens, log: ensureLogger(log)}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for an access token and hands it to the TokenSaver.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return "", fmt.Errorf("username and password are required")
	}

	var out loginResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(loginRequest{Username: username, Password: password}).
		SetResult(&out).
		Post(pathLogin)
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err := checkResponse(resp); err != nil {
		return "", err
	}
	if out.Token == "" {
		return "", fmt.Errorf("login response carried no token")
	}

	if c.tokens != nil {
		if err := c.tokens.SaveToken(out.Token); err != nil {
			return "", fmt.Errorf("save token: %w", err)
		}
	}
	c.log.InfoObj("login succeeded", "username", username)
	return out.Token, nil
}

// ListProfiles returns every stored UE profile.
func (c *Client) ListProfiles(ctx context.Context) ([]UeProfile, error) {
	var out []UeProfile
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get(pathProfiles)
	if err != nil {
		return nil, fmt.Errorf("list profiles request: %w", err)
	}
	if err := checkResponse(resp); err != nil {
		return nil, err
	}
	c.log.DebugObj("profiles listed", "count", len(out))
	return out, nil
}

// UpdateProfile replaces the profile identified by supi. The profile's own
// Supi must be empty or match.
func (c *Client) UpdateProfile(ctx context.Context, supi string, profile UeProfile) error {
	if supi == "" {
		return fmt.Errorf("supi is required")
	}
	if profile.Supi != "" && profile.Supi != supi {
		return fmt.Errorf("profile supi %q does not match %q", profile.Supi, supi)
	}
	profile.Supi = supi

	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("supi", supi).
		SetBody(profile).
		Put(pathProfile)
	if err != nil {
		return fmt.Errorf("update profile request: %w", err)
	}
	if err := checkResponse(resp); err != nil {
		return err
	}
	c.log.InfoObj("profile updated", "supi", supi)
	return nil
}

// DeleteProfile removes the profile identified by supi.
func (c *Client) DeleteProfile(ctx context.Context, supi string) error {
	if supi == "" {
		return fmt.Errorf("supi is required")
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("supi", supi).
		Delete(pathProfile)
	if err != nil {
		return fmt.Errorf("delete profile request: %w", err)
	}
	if err := checkResponse(resp); err != nil {
		return err
	}
	c.log.InfoObj("profile deleted", "supi", supi)
	return nil
}

// GenerateProfiles asks the backend to create and store new profiles.
func (c *Client) GenerateProfiles(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	if req.NumUEs < 1 {
		return nil, fmt.Errorf("num_ues must be at least 1")
	}

	var out GenerateResult
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post(pathGenerateProfiles)
	if err != nil {
		return nil, fmt.Errorf("generate profiles request: %w", err)
	}
	if err := checkResponse(resp); err != nil {
		return nil, err
	}
	c.log.InfoObj("profiles generated", "generate_meta", map[string]any{
		"requested": req.NumUEs,
		"generated": len(out.Profiles),
	})
	return &out, nil
}
