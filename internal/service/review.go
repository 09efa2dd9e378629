package service

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/ryo246912/gh-pr-review/internal/diff"
	"github.com/ryo246912/gh-pr-review/internal/github"
	"github.com/ryo246912/gh-pr-review/internal/models"
	"github.com/ryo246912/gh-pr-review/internal/ref"
	"github.com/ryo246912/gh-pr-review/internal/review"
	"github.com/ryo246912/gh-pr-review/internal/ui"
)

// ReviewService contains the business logic for the three operations
type ReviewService struct {
	client   github.GitHubClient
	prompter ui.Prompter
}

// NewReviewService creates a new service instance
func NewReviewService(client github.GitHubClient, prompter ui.Prompter) *ReviewService {
	return &ReviewService{client: client, prompter: prompter}
}

// PRInfo assembles the full snapshot: core metadata, changed files,
// submitted reviews and inline threads. Produced fresh on every call.
func (s *ReviewService) PRInfo(r ref.Ref) (models.PRInfo, error) {
	info, err := s.client.GetPullRequest(r)
	if err != nil {
		return models.PRInfo{}, err
	}

	files, err := s.client.ListChangedFiles(r)
	if err != nil {
		return models.PRInfo{}, fmt.Errorf("failed to list changed files: %w", err)
	}
	info.Files = files

	reviews, err := s.client.ListReviews(r)
	if err != nil {
		return models.PRInfo{}, fmt.Errorf("failed to list reviews: %w", err)
	}
	info.Reviews = reviews

	threads, err := s.client.ListReviewThreads(r)
	if err != nil {
		return models.PRInfo{}, fmt.Errorf("failed to list review threads: %w", err)
	}
	info.Threads = threads

	log.Debug("fetched PR info", "ref", r.String(), "files", len(files), "reviews", len(reviews), "threads", len(threads))
	return info, nil
}

// PRDiff fetches the unified diff, optionally scoped to one path
func (s *ReviewService) PRDiff(r ref.Ref, filePath string) (string, error) {
	diffText, err := s.client.GetDiff(r)
	if err != nil {
		return "", err
	}
	if filePath == "" {
		return diffText, nil
	}
	return diff.FilterByPath(diffText, filePath)
}

// SubmitOptions carries everything needed for one review submission
type SubmitOptions struct {
	Ref         ref.Ref
	Comments    []models.ReviewComment
	Event       string
	Body        string
	CommitSHA   string
	SkipConfirm bool
}

// SubmitReview posts one comment-only review with all inline comments
// attached atomically. Event validation happens before any client call, and
// exactly one CreateReview call is made on success; nothing is retried.
func (s *ReviewService) SubmitReview(opts SubmitOptions) (models.ReviewResponse, error) {
	if err := review.ValidateEvent(opts.Event); err != nil {
		return models.ReviewResponse{}, err
	}
	if len(opts.Comments) == 0 {
		return models.ReviewResponse{}, fmt.Errorf("%w: no comments to submit", review.ErrInvalidCommentFile)
	}

	commitSHA := opts.CommitSHA
	if commitSHA == "" {
		info, err := s.client.GetPullRequest(opts.Ref)
		if err != nil {
			return models.ReviewResponse{}, fmt.Errorf("failed to resolve head commit: %w", err)
		}
		commitSHA = info.HeadRefOid
	}

	if !opts.SkipConfirm {
		confirmed, err := s.prompter.ConfirmSubmit(opts.Ref.String(), len(opts.Comments))
		if err != nil {
			return models.ReviewResponse{}, fmt.Errorf("failed to confirm submission: %w", err)
		}
		if !confirmed {
			return models.ReviewResponse{}, fmt.Errorf("review submission cancelled")
		}
	}

	req := review.BuildRequest(opts.Comments, opts.Event, opts.Body, commitSHA)
	log.Debug("submitting review", "ref", opts.Ref.String(), "commit", commitSHA, "comments", len(req.Comments))

	resp, err := s.client.CreateReview(opts.Ref, req)
	if err != nil {
		return models.ReviewResponse{}, err
	}
	return resp, nil
}
