package domain

import "context"

// ConfigSource provides the base criteria for a subject.
type ConfigSource interface {
	Fetch(ctx context.Context, subject string) (Criteria, error)
}

// LocalConfigLoader reads the repository-local override file.
type LocalConfigLoader interface {
	Load(path string) (Criteria, error)
}

// CriteriaValidator checks the shape of merged criteria.
type CriteriaValidator interface {
	Validate(c Criteria) error
}

// ProcessRunner executes external commands such as the Java toolchain.
// Non-zero exits and timeouts are reported in the result; the error is
// reserved for commands that could not be run at all.
type ProcessRunner interface {
	Run(ctx context.Context, spec ProcessSpec) (ProcessResult, error)
}

// SourceScanner lists source files below a directory of a project.
type SourceScanner interface {
	JavaSources(projectPath, sourceDir string) ([]string, error)
}

// Revision identifies the checked-out commit.
type Revision struct {
	Hash   string `json:"hash"`
	Branch string `json:"branch,omitempty"`
}

// Short returns the abbreviated commit hash.
func (r Revision) Short() string {
	if len(r.Hash) > 7 {
		return r.Hash[:7]
	}
	return r.Hash
}

// GitInfo provides version-control information about a project.
type GitInfo interface {
	Revision(projectPath string) (Revision, error)
}

// PullRequestRef identifies a pull request.
type PullRequestRef struct {
	Owner  string
	Repo   string
	Number int
}

// CommentMarker tags comments published by this tool so later runs update
// them in place.
const CommentMarker = "<!-- evaluacion-automatica -->"

// Comment is a pull-request conversation comment.
type Comment struct {
	ID   int64
	Body string
	URL  string
}

// CommentPublisher reads and writes pull-request comments.
type CommentPublisher interface {
	ListComments(ctx context.Context, pr PullRequestRef) ([]Comment, error)
	CreateComment(ctx context.Context, pr PullRequestRef, body string) (Comment, error)
	UpdateComment(ctx context.Context, pr PullRequestRef, id int64, body string) (Comment, error)
}
