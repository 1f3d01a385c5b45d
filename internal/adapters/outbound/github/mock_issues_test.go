package github

import (
	"context"

	gh "github.com/google/go-github/v80/github"
	"github.com/stretchr/testify/mock"
)

type mockIssues struct {
	mock.Mock
}

func (m *mockIssues) ListComments(ctx context.Context, owner, repo string, number int, opts *gh.IssueListCommentsOptions) ([]*gh.IssueComment, *gh.Response, error) {
	args := m.Called(ctx, owner, repo, number, opts)
	comments, _ := args.Get(0).([]*gh.IssueComment)
	resp, _ := args.Get(1).(*gh.Response)
	return comments, resp, args.Error(2)
}

func (m *mockIssues) CreateComment(ctx context.Context, owner, repo string, number int, comment *gh.IssueComment) (*gh.IssueComment, *gh.Response, error) {
	args := m.Called(ctx, owner, repo, number, comment)
	created, _ := args.Get(0).(*gh.IssueComment)
	resp, _ := args.Get(1).(*gh.Response)
	return created, resp, args.Error(2)
}

func (m *mockIssues) EditComment(ctx context.Context, owner, repo string, commentID int64, comment *gh.IssueComment) (*gh.IssueComment, *gh.Response, error) {
	args := m.Called(ctx, owner, repo, commentID, comment)
	edited, _ := args.Get(0).(*gh.IssueComment)
	resp, _ := args.Get(1).(*gh.Response)
	return edited, resp, args.Error(2)
}
