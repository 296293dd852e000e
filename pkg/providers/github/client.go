package github

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	gh "github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

const (
	defaultBaseURL    = "https://api.github.com"
	defaultAPIVersion = "2022-11-28"
	defaultUserAgent  = "Gh-User-Activity"
	defaultTimeout    = 10 * time.Second
	mediaTypeJSON     = "application/vnd.github+json"
	headerAPIVersion  = "X-GitHub-Api-Version"
)

// Client is the official GitHub SDK client.
type Client = gh.Client

// ClientConfig controls how requests to the GitHub REST API are built.
type ClientConfig struct {
	BaseURL    string
	APIVersion string
	UserAgent  string
	Timeout    time.Duration
}

// NewTokenClient creates a GitHub SDK client authenticated with a bearer token.
func NewTokenClient(ctx context.Context, cfg ClientConfig, token string) (*Client, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, errors.New("github token is required")
	}
	cfg = cfg.withDefaults()

	base := &http.Client{
		Transport: &headerTransport{
			apiVersion: cfg.APIVersion,
			userAgent:  cfg.UserAgent,
		},
	}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, base)
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := oauth2.NewClient(ctx, ts)
	httpClient.Timeout = cfg.Timeout

	var client *gh.Client
	if cfg.BaseURL != defaultBaseURL {
		var err error
		client, err = gh.NewEnterpriseClient(cfg.BaseURL, enterpriseUploadURL(cfg.BaseURL), httpClient)
		if err != nil {
			return nil, err
		}
	} else {
		client = gh.NewClient(httpClient)
	}
	client.UserAgent = cfg.UserAgent
	return client, nil
}

func (c ClientConfig) withDefaults() ClientConfig {
	c.BaseURL = normalizeBaseURL(c.BaseURL)
	if strings.TrimSpace(c.APIVersion) == "" {
		c.APIVersion = defaultAPIVersion
	}
	if strings.TrimSpace(c.UserAgent) == "" {
		c.UserAgent = defaultUserAgent
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	return c
}

func normalizeBaseURL(base string) string {
	base = strings.TrimSpace(base)
	if base == "" {
		return defaultBaseURL
	}
	return strings.TrimRight(base, "/")
}

func enterpriseUploadURL(apiBase string) string {
	base := strings.TrimRight(apiBase, "/")
	switch {
	case strings.HasSuffix(base, "/api/v3"):
		return strings.TrimSuffix(base, "/api/v3") + "/api/uploads"
	case strings.HasSuffix(base, "/api"):
		return strings.TrimSuffix(base, "/api") + "/api/uploads"
	default:
		return base
	}
}
