package github

import (
	"github.com/ryo246912/gh-pr-review/internal/models"
	"github.com/ryo246912/gh-pr-review/internal/ref"
)

// GitHubClient defines the interface for GitHub operations
type GitHubClient interface {
	GetPullRequest(r ref.Ref) (models.PRInfo, error)
	ListChangedFiles(r ref.Ref) ([]models.ChangedFile, error)
	ListReviews(r ref.Ref) ([]models.ReviewEntry, error)
	ListReviewThreads(r ref.Ref) ([]models.ReviewThread, error)
	GetDiff(r ref.Ref) (string, error)
	CreateReview(r ref.Ref, req models.ReviewRequest) (models.ReviewResponse, error)
}

// Ensure Client implements GitHubClient interface
var _ GitHubClient = (*Client)(nil)
