// Package github posts range summaries as GitHub issue comments.
package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultBaseURL = "https://api.github.com"

	// DefaultTimeout bounds each API request.
	DefaultTimeout = 10 * time.Second

	// requestsPerMinute stays far under the authenticated REST quota.
	requestsPerMinute = 60
)

// Client is a minimal GitHub REST client for issue comments.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a client authenticated with a personal access token.
func NewClient(token string) *Client {
	return &Client{
		baseURL: defaultBaseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Every(time.Minute/requestsPerMinute), 5),
	}
}

// comment is the subset of the issue-comment payload the client reads.
type comment struct {
	ID   int64  `json:"id"`
	Body string `json:"body"`
	User struct {
		Login string `json:"login"`
	} `json:"user"`
}

func (c *Client) do(ctx context.Context, method, url string, payload, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode payload: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", fmt.Sprintf("token %s", c.token))
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", method, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("GitHub API returned status %d for %s %s", resp.StatusCode, method, url)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// CurrentLogin returns the login of the token's user.
func (c *Client) CurrentLogin(ctx context.Context) (string, error) {
	var user struct {
		Login string `json:"login"`
	}
	if err := c.do(ctx, http.MethodGet, c.baseURL+"/user", nil, &user); err != nil {
		return "", err
	}
	return user.Login, nil
}

// findSummaryComment returns the first comment on the issue that carries the
// marker and was authored by login, or nil when none exists.
func (c *Client) findSummaryComment(ctx context.Context, owner, repo string, issue int, marker, login string) (*comment, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/issues/%d/comments", c.baseURL, owner, repo, issue)
	var comments []comment
	if err := c.do(ctx, http.MethodGet, url, nil, &comments); err != nil {
		return nil, err
	}
	for i := range comments {
		if strings.Contains(comments[i].Body, marker) && (login == "" || comments[i].User.Login == login) {
			return &comments[i], nil
		}
	}
	return nil, nil
}

// PostOrUpdate publishes body on the issue. When a prior comment carrying the
// marker exists it is updated in place, otherwise a new comment is created.
func (c *Client) PostOrUpdate(ctx context.Context, repoFull string, issue int, marker, body string) error {
	owner, repo, ok := strings.Cut(repoFull, "/")
	if !ok || owner == "" || repo == "" {
		return fmt.Errorf("repository must be in owner/repo form, got '%s'", repoFull)
	}

	login, err := c.CurrentLogin(ctx)
	if err != nil {
		return err
	}

	existing, err := c.findSummaryComment(ctx, owner, repo, issue, marker, login)
	if err != nil {
		return err
	}

	payload := map[string]string{"body": body}
	if existing != nil {
		url := fmt.Sprintf("%s/repos/%s/%s/issues/comments/%d", c.baseURL, owner, repo, existing.ID)
		return c.do(ctx, http.MethodPatch, url, payload, nil)
	}
	url := fmt.Sprintf("%s/repos/%s/%s/issues/%d/comments", c.baseURL, owner, repo, issue)
	return c.do(ctx, http.MethodPost, url, payload, nil)
}
