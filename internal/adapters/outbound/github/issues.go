package github

import (
	"context"

	gh "github.com/google/go-github/v80/github"

	"github.com/mmasias/evaluacion-automatica/internal/domain"
)

const perPage = 100

// ListComments returns every comment of the pull request, following pagination.
func (c *Client) ListComments(ctx context.Context, pr domain.PullRequestRef) ([]domain.Comment, error) {
	opts := &gh.IssueListCommentsOptions{ListOptions: gh.ListOptions{PerPage: perPage}}

	var comments []domain.Comment
	for {
		page, resp, err := c.issues.ListComments(ctx, pr.Owner, pr.Repo, pr.Number, opts)
		if err != nil {
			return nil, err
		}
		for _, ic := range page {
			comments = append(comments, toComment(ic))
		}
		if resp == nil || resp.NextPage == 0 {
			return comments, nil
		}
		opts.Page = resp.NextPage
	}
}

func (c *Client) CreateComment(ctx context.Context, pr domain.PullRequestRef, body string) (domain.Comment, error) {
	created, _, err := c.issues.CreateComment(ctx, pr.Owner, pr.Repo, pr.Number, &gh.IssueComment{Body: gh.Ptr(body)})
	if err != nil {
		return domain.Comment{}, err
	}
	return toComment(created), nil
}

func (c *Client) UpdateComment(ctx context.Context, pr domain.PullRequestRef, id int64, body string) (domain.Comment, error) {
	edited, _, err := c.issues.EditComment(ctx, pr.Owner, pr.Repo, id, &gh.IssueComment{Body: gh.Ptr(body)})
	if err != nil {
		return domain.Comment{}, err
	}
	return toComment(edited), nil
}

func toComment(ic *gh.IssueComment) domain.Comment {
	return domain.Comment{
		ID:   ic.GetID(),
		Body: ic.GetBody(),
		URL:  ic.GetHTMLURL(),
	}
}
