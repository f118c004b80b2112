package httpclient

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultBaseURL is used when no API address is configured.
const DefaultBaseURL = "http://localhost:8080"

// AuthConfig configures an AuthClient.
type AuthConfig struct {
	BaseURL   string
	Timeout   time.Duration
	Transport http.RoundTripper
}

// AuthClient is a resty client bound to the API base address that authorizes
// every outgoing request with the token currently held by its TokenSource.
type AuthClient struct {
	client  *resty.Client
	baseURL string
}

// ResolveBaseURL returns the trimmed address, or DefaultBaseURL when blank.
func ResolveBaseURL(raw string) string {
	if v := strings.TrimSpace(raw); v != "" {
		return v
	}
	return DefaultBaseURL
}

// NewAuthClient builds the client. tokens may be nil, in which case requests
// are sent without credentials.
func NewAuthClient(cfg AuthConfig, tokens TokenSource, log Logger) *AuthClient {
	log = ensureLogger(log)
	baseURL := ResolveBaseURL(cfg.BaseURL)

	c := newRestyBaseClient(cfg.Timeout)
	if cfg.Transport != nil {
		c.SetTransport(cfg.Transport)
	}
	c.SetBaseURL(baseURL)
	c.OnBeforeRequest(authorizeRequest(tokens))

	log.InfoObj("api client configured", "base_url", baseURL)

	return &AuthClient{client: c, baseURL: baseURL}
}

// newRestyBaseClient creates a new resty.Client with the specified timeout.
func newRestyBaseClient(timeout time.Duration) *resty.Client {
	c := resty.New()
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	return c
}

// authorizeRequest runs before every request is dispatched. Errors from the
// token source are returned as is so resty hands them back to the caller
// without sending anything.
func authorizeRequest(tokens TokenSource) resty.RequestMiddleware {
	return func(_ *resty.Client, req *resty.Request) error {
		if tokens == nil {
			return nil
		}
		token, err := tokens.Token()
		if err != nil {
			return err
		}
		req.Header = Authorize(req.Header, token)
		return nil
	}
}

// BaseURL reports the resolved API address.
func (a *AuthClient) BaseURL() string { return a.baseURL }

// R starts a new request. Paths are resolved against the base URL.
func (a *AuthClient) R() *resty.Request { return a.client.R() }
