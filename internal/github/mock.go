package github

import (
	"fmt"

	"github.com/ryo246912/gh-pr-review/internal/models"
	"github.com/ryo246912/gh-pr-review/internal/ref"
)

// MockClient implements GitHubClient for testing
type MockClient struct {
	// Control test behavior
	PullRequest       models.PRInfo
	PullRequestError  error
	ChangedFiles      []models.ChangedFile
	ChangedFilesError error
	Reviews           []models.ReviewEntry
	ReviewsError      error
	Threads           []models.ReviewThread
	ThreadsError      error
	Diff              string
	DiffError         error
	Review            models.ReviewResponse
	ReviewError       error

	// Track method calls
	GetPullRequestCalled    bool
	ListChangedFilesCalled  bool
	ListReviewsCalled       bool
	ListReviewThreadsCalled bool
	GetDiffCalled           bool
	CreateReviewCalled      bool

	// Store call arguments for verification
	LastRef     ref.Ref
	LastRequest models.ReviewRequest
}

func (m *MockClient) GetPullRequest(r ref.Ref) (models.PRInfo, error) {
	m.GetPullRequestCalled = true
	m.LastRef = r
	return m.PullRequest, m.PullRequestError
}

func (m *MockClient) ListChangedFiles(r ref.Ref) ([]models.ChangedFile, error) {
	m.ListChangedFilesCalled = true
	m.LastRef = r
	return m.ChangedFiles, m.ChangedFilesError
}

func (m *MockClient) ListReviews(r ref.Ref) ([]models.ReviewEntry, error) {
	m.ListReviewsCalled = true
	m.LastRef = r
	return m.Reviews, m.ReviewsError
}

func (m *MockClient) ListReviewThreads(r ref.Ref) ([]models.ReviewThread, error) {
	m.ListReviewThreadsCalled = true
	m.LastRef = r
	return m.Threads, m.ThreadsError
}

func (m *MockClient) GetDiff(r ref.Ref) (string, error) {
	m.GetDiffCalled = true
	m.LastRef = r
	return m.Diff, m.DiffError
}

func (m *MockClient) CreateReview(r ref.Ref, req models.ReviewRequest) (models.ReviewResponse, error) {
	m.CreateReviewCalled = true
	m.LastRef = r
	m.LastRequest = req
	return m.Review, m.ReviewError
}

// AnyCallMade reports whether any client method was invoked. Used to assert
// that validation failures never reach the network.
func (m *MockClient) AnyCallMade() bool {
	return m.GetPullRequestCalled ||
		m.ListChangedFilesCalled ||
		m.ListReviewsCalled ||
		m.ListReviewThreadsCalled ||
		m.GetDiffCalled ||
		m.CreateReviewCalled
}

// Reset clears all tracking data for fresh test
func (m *MockClient) Reset() {
	m.GetPullRequestCalled = false
	m.ListChangedFilesCalled = false
	m.ListReviewsCalled = false
	m.ListReviewThreadsCalled = false
	m.GetDiffCalled = false
	m.CreateReviewCalled = false
	m.LastRef = ref.Ref{}
	m.LastRequest = models.ReviewRequest{}
}

// Helper functions for creating test data
func CreateTestFiles(count int) []models.ChangedFile {
	files := make([]models.ChangedFile, count)
	for i := 0; i < count; i++ {
		files[i] = models.ChangedFile{
			Path:      fmt.Sprintf("pkg/file%d.go", i+1),
			Additions: (i + 1) * 2,
			Deletions: i,
		}
	}
	return files
}

func CreateTestComments(count int) []models.ReviewComment {
	comments := make([]models.ReviewComment, count)
	for i := 0; i < count; i++ {
		comments[i] = models.ReviewComment{
			Path: fmt.Sprintf("pkg/file%d.go", i+1),
			Line: (i + 1) * 10,
			Body: fmt.Sprintf("finding %d", i+1),
		}
	}
	return comments
}
