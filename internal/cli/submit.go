package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ryo246912/gh-pr-review/internal/models"
	"github.com/ryo246912/gh-pr-review/internal/policy"
	"github.com/ryo246912/gh-pr-review/internal/ref"
	"github.com/ryo246912/gh-pr-review/internal/review"
	"github.com/ryo246912/gh-pr-review/internal/service"
)

func NewSubmitCmd() *cobra.Command {
	var repoFlag string
	var commentsFile string
	var event string
	var body string
	var commitSHA string
	var yes bool
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "submit <pr-number> --repo <owner/repo> --comments-file <path>",
		Short: "Submit one comment-only review with inline comments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd.Context())
			if err != nil {
				return err
			}

			// Everything below runs before any network call; the first
			// request happens only once the submission is fully validated.
			if err := review.ValidateEvent(event); err != nil {
				return err
			}

			number, err := strconv.Atoi(args[0])
			if err != nil || number <= 0 {
				return fmt.Errorf("%w: PR number must be a positive integer, got %q", ref.ErrMalformed, args[0])
			}
			owner, repo, err := ref.ParseRepo(repoFlag)
			if err != nil {
				return err
			}
			r := ref.Ref{Owner: owner, Repo: repo, Number: number}

			comments, err := review.LoadComments(commentsFile)
			if err != nil {
				return err
			}

			if app.Config.Policy.Path != "" {
				pol, err := policy.Load(app.Config.Policy.Path)
				if err != nil {
					return err
				}
				if err := review.CheckPolicy(comments, pol); err != nil {
					return err
				}
			}

			log.Debug("validated submission", "ref", r.String(), "comments", len(comments), "dryRun", dryRun)

			if dryRun {
				req := review.BuildRequest(comments, event, body, commitSHA)
				return renderDryRun(cmd, r, req)
			}

			svc, err := newService()
			if err != nil {
				return err
			}
			resp, err := svc.SubmitReview(service.SubmitOptions{
				Ref:         r,
				Comments:    comments,
				Event:       event,
				Body:        body,
				CommitSHA:   commitSHA,
				SkipConfirm: yes || !app.Config.Submit.Confirm,
			})
			if err != nil {
				return err
			}

			if resp.HTMLURL != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Submitted review with %d comments: %s\n", len(comments), resp.HTMLURL)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Submitted review with %d comments (id %d)\n", len(comments), resp.ID)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&repoFlag, "repo", "", "Target repository in owner/repo form")
	cmd.Flags().StringVar(&commentsFile, "comments-file", "", "JSON file with [{path, line, body, start_line?}] entries")
	cmd.Flags().StringVar(&event, "event", review.EventComment, "Review event; only COMMENT is accepted")
	cmd.Flags().StringVar(&body, "body", "", "Optional overall review summary")
	cmd.Flags().StringVar(&commitSHA, "commit-sha", "", "Commit SHA to anchor the review (defaults to PR head)")
	cmd.Flags().BoolVar(&yes, "yes", false, "Skip confirmation prompt")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate and print the payload; do not post")
	_ = cmd.MarkFlagRequired("repo")
	_ = cmd.MarkFlagRequired("comments-file")
	return cmd
}

func renderDryRun(cmd *cobra.Command, r ref.Ref, req models.ReviewRequest) error {
	encoded, err := json.MarshalIndent(req, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode review payload: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "DRY RUN: not posting to %s\n%s\n", r.String(), string(encoded))
	return nil
}
