package client

import (
	"net/http"
	"strings"
	"time"
)

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client talks to the law-practice management API. Everything it holds is
// transient except the bearer token, which lives in the injected TokenStore
// and outlives the process when a persistent store is used.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenStore
}

// New constructs a Client. baseURL is the API root (for example
// "https://law.example.com/api"); tokens holds the session credential and
// must not be nil.
func New(baseURL string, tokens TokenStore, opts ...Option) *Client {
	if baseURL == "" {
		panic("baseURL cannot be empty")
	}
	if tokens == nil {
		panic("token store cannot be nil")
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		http:    &http.Client{Timeout: 30 * time.Second},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			panic(err)
		}
	}
	return c
}

// TokenStore returns the injected session store.
func (c *Client) TokenStore() TokenStore { return c.tokens }

// token reads the session credential, failing fast with ErrAuthRequired when
// none is held so no network call is attempted.
func (c *Client) token() (string, error) {
	t, ok := c.tokens.Token()
	if !ok {
		return "", ErrAuthRequired
	}
	return t, nil
}
