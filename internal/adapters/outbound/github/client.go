package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	gh "github.com/google/go-github/v80/github"
)

// IssuesAdapter is the subset of the go-github issues API used to publish
// pull request comments.
type IssuesAdapter interface {
	ListComments(ctx context.Context, owner, repo string, number int, opts *gh.IssueListCommentsOptions) ([]*gh.IssueComment, *gh.Response, error)
	CreateComment(ctx context.Context, owner, repo string, number int, comment *gh.IssueComment) (*gh.IssueComment, *gh.Response, error)
	EditComment(ctx context.Context, owner, repo string, commentID int64, comment *gh.IssueComment) (*gh.IssueComment, *gh.Response, error)
}

// Client implements domain.CommentPublisher on top of go-github.
type Client struct {
	issues IssuesAdapter
}

type authTransport struct {
	token string
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("Authorization", "Bearer "+t.token)
	return http.DefaultTransport.RoundTrip(req)
}

// New creates a client for the public API, or for apiURL when it is set
// (GitHub Enterprise, or the GITHUB_API_URL of the runner).
func New(token, apiURL string) (*Client, error) {
	var httpClient *http.Client
	if token != "" {
		httpClient = &http.Client{
			Transport: &authTransport{
				token: token,
			},
		}
	}
	client := gh.NewClient(httpClient)

	if apiURL != "" {
		base, err := url.Parse(strings.TrimSuffix(apiURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("parsing API URL: %w", err)
		}
		client.BaseURL = base
	}

	return &Client{issues: client.Issues}, nil
}
