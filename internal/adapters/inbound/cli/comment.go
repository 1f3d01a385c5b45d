package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mmasias/evaluacion-automatica/internal/adapters/outbound/comment"
	"github.com/mmasias/evaluacion-automatica/internal/adapters/outbound/config"
	"github.com/mmasias/evaluacion-automatica/internal/adapters/outbound/github"
	"github.com/mmasias/evaluacion-automatica/internal/application"
	"github.com/mmasias/evaluacion-automatica/internal/domain"
)

func newCommentCmd() *cobra.Command {
	var (
		path string
		repo string
		pr   int
		file string
	)

	cmd := &cobra.Command{
		Use:   "comment",
		Short: "Publish the validation report on the pull request",
		Long: "Post the report written by validate as a pull request comment. A previous report left by this tool " +
			"is edited in place. Requires GITHUB_TOKEN.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			if repo == "" {
				repo = a.env.GithubRepository
			}
			if pr == 0 {
				pr = a.env.PullRequest
			}
			if pr <= 0 {
				return fmt.Errorf("pull request number is required (--pr or PR_NUMBER)")
			}
			owner, name, err := config.SplitRepository(repo)
			if err != nil {
				return err
			}
			if a.env.GithubToken == "" {
				return fmt.Errorf("GITHUB_TOKEN is required")
			}

			if !filepath.IsAbs(file) {
				file = filepath.Join(path, file)
			}
			body, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("reading report: %w", err)
			}

			client, err := github.New(a.env.GithubToken, a.env.GithubAPIURL)
			if err != nil {
				return err
			}

			published, err := application.NewCommentService(client, &a.logger).Publish(
				cmd.Context(),
				domain.PullRequestRef{Owner: owner, Repo: name, Number: pr},
				string(body),
			)
			if err != nil {
				return fmt.Errorf("comment failed: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), published.URL)
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", ".", "Submission path")
	cmd.Flags().StringVar(&repo, "repo", "", "Repository as owner/name (default from GITHUB_REPOSITORY)")
	cmd.Flags().IntVar(&pr, "pr", 0, "Pull request number (default from PR_NUMBER)")
	cmd.Flags().StringVar(&file, "file", comment.DefaultArtifact, "Report to publish, relative to --path")

	return cmd
}
