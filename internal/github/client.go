package github

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/cli/go-gh/v2/pkg/api"
	graphql "github.com/cli/shurcooL-graphql"
	"github.com/ryo246912/gh-pr-review/internal/models"
	"github.com/ryo246912/gh-pr-review/internal/ref"
)

const diffMediaType = "application/vnd.github.v3.diff"

// Client wraps the GitHub API clients provided by go-gh. Credentials come
// from the ambient gh session; this package never manages them itself.
type Client struct {
	rest *api.RESTClient
	diff *api.RESTClient
	gql  *api.GraphQLClient
}

func NewClient() (*Client, error) {
	restClient, err := api.DefaultRESTClient()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthenticationRequired, err)
	}

	diffClient, err := api.NewRESTClient(api.ClientOptions{
		Headers: map[string]string{"Accept": diffMediaType},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthenticationRequired, err)
	}

	gqlClient, err := api.DefaultGraphQLClient()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthenticationRequired, err)
	}

	return &Client{rest: restClient, diff: diffClient, gql: gqlClient}, nil
}

// GetPullRequest fetches the core PR metadata (no files, reviews or threads)
func (c *Client) GetPullRequest(r ref.Ref) (models.PRInfo, error) {
	var pull struct {
		Number    int    `json:"number"`
		Title     string `json:"title"`
		Body      string `json:"body"`
		State     string `json:"state"`
		Merged    bool   `json:"merged"`
		HTMLURL   string `json:"html_url"`
		Additions int    `json:"additions"`
		Deletions int    `json:"deletions"`
		User      struct {
			Login string `json:"login"`
		} `json:"user"`
		Head struct {
			Ref string `json:"ref"`
			SHA string `json:"sha"`
		} `json:"head"`
		Base struct {
			Ref string `json:"ref"`
		} `json:"base"`
	}

	path := fmt.Sprintf("repos/%s/pulls/%d", r.RepoPath(), r.Number)
	if err := c.rest.Get(path, &pull); err != nil {
		return models.PRInfo{}, mapAPIError(err, r.String())
	}

	state := pull.State
	if pull.Merged {
		state = "merged"
	}

	return models.PRInfo{
		Number:      pull.Number,
		Title:       pull.Title,
		Body:        pull.Body,
		State:       state,
		Author:      pull.User.Login,
		HeadRefName: pull.Head.Ref,
		HeadRefOid:  pull.Head.SHA,
		BaseRefName: pull.Base.Ref,
		URL:         pull.HTMLURL,
		Additions:   pull.Additions,
		Deletions:   pull.Deletions,
	}, nil
}

// ListChangedFiles fetches the PR's changed-file list in diff order
func (c *Client) ListChangedFiles(r ref.Ref) ([]models.ChangedFile, error) {
	var files []models.ChangedFile
	for page := 1; ; page++ {
		var batch []struct {
			Filename  string `json:"filename"`
			Additions int    `json:"additions"`
			Deletions int    `json:"deletions"`
		}
		path := fmt.Sprintf("repos/%s/pulls/%d/files?per_page=100&page=%d", r.RepoPath(), r.Number, page)
		if err := c.rest.Get(path, &batch); err != nil {
			return nil, mapAPIError(err, r.String())
		}
		for _, f := range batch {
			files = append(files, models.ChangedFile{
				Path:      f.Filename,
				Additions: f.Additions,
				Deletions: f.Deletions,
			})
		}
		if len(batch) < 100 {
			break
		}
	}
	return files, nil
}

// ListReviews fetches already-submitted reviews on the PR
func (c *Client) ListReviews(r ref.Ref) ([]models.ReviewEntry, error) {
	var reviews []struct {
		State       string `json:"state"`
		SubmittedAt string `json:"submitted_at"`
		Body        string `json:"body"`
		User        struct {
			Login string `json:"login"`
		} `json:"user"`
	}
	path := fmt.Sprintf("repos/%s/pulls/%d/reviews", r.RepoPath(), r.Number)
	if err := c.rest.Get(path, &reviews); err != nil {
		return nil, mapAPIError(err, r.String())
	}

	entries := make([]models.ReviewEntry, 0, len(reviews))
	for _, review := range reviews {
		entries = append(entries, models.ReviewEntry{
			Author:      review.User.Login,
			State:       review.State,
			SubmittedAt: review.SubmittedAt,
			Body:        review.Body,
		})
	}
	return entries, nil
}

// ListReviewThreads fetches existing inline discussion threads via GraphQL
func (c *Client) ListReviewThreads(r ref.Ref) ([]models.ReviewThread, error) {
	var q struct {
		Repository struct {
			PullRequest struct {
				ReviewThreads struct {
					Nodes []struct {
						IsResolved bool
						Path       string
						Line       *int
						Comments   struct {
							Nodes []struct {
								Author struct {
									Login string
								}
								Body string
							}
						} `graphql:"comments(first: 1)"`
					}
				} `graphql:"reviewThreads(first: 100)"`
			} `graphql:"pullRequest(number: $number)"`
		} `graphql:"repository(owner: $owner, name: $name)"`
	}

	variables := map[string]interface{}{
		"owner":  graphql.String(r.Owner),
		"name":   graphql.String(r.Repo),
		"number": graphql.Int(r.Number),
	}

	if err := c.gql.Query("PullRequestReviewThreads", &q, variables); err != nil {
		return nil, mapAPIError(err, r.String())
	}

	threads := make([]models.ReviewThread, 0, len(q.Repository.PullRequest.ReviewThreads.Nodes))
	for _, node := range q.Repository.PullRequest.ReviewThreads.Nodes {
		thread := models.ReviewThread{
			Path:     node.Path,
			Resolved: node.IsResolved,
		}
		if node.Line != nil {
			thread.Line = *node.Line
		}
		if len(node.Comments.Nodes) > 0 {
			thread.Author = node.Comments.Nodes[0].Author.Login
			thread.Excerpt = excerpt(node.Comments.Nodes[0].Body)
		}
		threads = append(threads, thread)
	}
	return threads, nil
}

func excerpt(body string) string {
	const max = 120
	if len(body) > max {
		return body[:max-3] + "..."
	}
	return body
}

// GetDiff fetches the unified diff for the whole PR using the diff media type
func (c *Client) GetDiff(r ref.Ref) (string, error) {
	path := fmt.Sprintf("repos/%s/pulls/%d", r.RepoPath(), r.Number)
	resp, err := c.diff.Request("GET", path, nil)
	if err != nil {
		return "", mapAPIError(err, r.String())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading diff for %s: %v", ErrTransportFailure, r.String(), err)
	}
	return string(body), nil
}

// CreateReview posts one review with all inline comments attached. Exactly
// one submission call is made; there is no per-comment fallback.
func (c *Client) CreateReview(r ref.Ref, req models.ReviewRequest) (models.ReviewResponse, error) {
	jsonBody, err := json.Marshal(req)
	if err != nil {
		return models.ReviewResponse{}, fmt.Errorf("failed to encode review request: %w", err)
	}

	path := fmt.Sprintf("repos/%s/pulls/%d/reviews", r.RepoPath(), r.Number)
	var resp models.ReviewResponse
	if err := c.rest.Post(path, bytes.NewReader(jsonBody), &resp); err != nil {
		return models.ReviewResponse{}, mapReviewError(err, r.String())
	}
	return resp, nil
}
