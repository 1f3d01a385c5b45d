package application_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmasias/evaluacion-automatica/internal/application"
	"github.com/mmasias/evaluacion-automatica/internal/domain"
)

type fakePublisher struct {
	comments []domain.Comment
	listErr  error
	created  []string
	updated  map[int64]string
}

func (f *fakePublisher) ListComments(context.Context, domain.PullRequestRef) ([]domain.Comment, error) {
	return f.comments, f.listErr
}

func (f *fakePublisher) CreateComment(_ context.Context, _ domain.PullRequestRef, body string) (domain.Comment, error) {
	f.created = append(f.created, body)
	return domain.Comment{ID: 99, Body: body}, nil
}

func (f *fakePublisher) UpdateComment(_ context.Context, _ domain.PullRequestRef, id int64, body string) (domain.Comment, error) {
	if f.updated == nil {
		f.updated = map[int64]string{}
	}
	f.updated[id] = body
	return domain.Comment{ID: id, Body: body}, nil
}

var pr = domain.PullRequestRef{Owner: "mmasias", Repo: "prg1-entrega", Number: 7}

func TestPublish_CreatesWhenNoPreviousReport(t *testing.T) {
	pub := &fakePublisher{comments: []domain.Comment{{ID: 1, Body: "LGTM"}}}
	svc := application.NewCommentService(pub, nil)

	c, err := svc.Publish(context.Background(), pr, "## Informe")
	require.NoError(t, err)

	assert.Equal(t, int64(99), c.ID)
	require.Len(t, pub.created, 1)
	assert.Contains(t, pub.created[0], domain.CommentMarker)
	assert.Empty(t, pub.updated)
}

func TestPublish_UpdatesPreviousReport(t *testing.T) {
	pub := &fakePublisher{comments: []domain.Comment{
		{ID: 1, Body: "LGTM"},
		{ID: 5, Body: "viejo\n" + domain.CommentMarker},
		{ID: 8, Body: "otro\n" + domain.CommentMarker},
	}}
	svc := application.NewCommentService(pub, nil)

	body := "nuevo\n\n" + domain.CommentMarker + "\n"
	c, err := svc.Publish(context.Background(), pr, body)
	require.NoError(t, err)

	assert.Equal(t, int64(5), c.ID)
	assert.Equal(t, map[int64]string{5: body}, pub.updated)
	assert.Empty(t, pub.created)
}

func TestPublish_RejectsEmptyBody(t *testing.T) {
	pub := &fakePublisher{}
	_, err := application.NewCommentService(pub, nil).Publish(context.Background(), pr, "  \n")
	require.Error(t, err)
	assert.Empty(t, pub.created)
}

func TestPublish_ListFailure(t *testing.T) {
	pub := &fakePublisher{listErr: errors.New("401 Bad credentials")}
	_, err := application.NewCommentService(pub, nil).Publish(context.Background(), pr, "informe")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listing comments")
	assert.Contains(t, err.Error(), "Bad credentials")
}
