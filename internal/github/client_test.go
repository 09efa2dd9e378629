package github

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/cli/go-gh/v2/pkg/api"
)

func TestMapAPIError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{
			name:     "401 maps to authentication required",
			err:      &api.HTTPError{StatusCode: 401, Message: "Bad credentials"},
			expected: ErrAuthenticationRequired,
		},
		{
			name:     "404 maps to reference not found",
			err:      &api.HTTPError{StatusCode: 404, Message: "Not Found"},
			expected: ErrReferenceNotFound,
		},
		{
			name:     "500 maps to transport failure",
			err:      &api.HTTPError{StatusCode: 500, Message: "oops"},
			expected: ErrTransportFailure,
		},
		{
			name:     "non-HTTP error maps to transport failure",
			err:      fmt.Errorf("dial tcp: connection refused"),
			expected: ErrTransportFailure,
		},
		{
			name:     "wrapped 404 still maps",
			err:      fmt.Errorf("request: %w", &api.HTTPError{StatusCode: 404}),
			expected: ErrReferenceNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapAPIError(tt.err, "octocat/hello-world#42")
			if !errors.Is(got, tt.expected) {
				t.Errorf("mapAPIError() = %v, want kind %v", got, tt.expected)
			}
		})
	}
}

func TestMapReviewError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{
			name: "422 mentioning line maps to line not in diff",
			err: &api.HTTPError{
				StatusCode: 422,
				Message:    "Validation Failed",
				Errors: []api.HTTPErrorItem{
					{Message: "Line must be part of the diff", Resource: "PullRequestReviewComment"},
				},
			},
			expected: ErrLineNotInDiff,
		},
		{
			name: "422 mentioning position maps to line not in diff",
			err: &api.HTTPError{
				StatusCode: 422,
				Message:    "Position is invalid",
			},
			expected: ErrLineNotInDiff,
		},
		{
			name: "unrelated 422 maps to transport failure",
			err: &api.HTTPError{
				StatusCode: 422,
				Message:    "Review cannot be empty",
			},
			expected: ErrTransportFailure,
		},
		{
			name:     "404 still maps to reference not found",
			err:      &api.HTTPError{StatusCode: 404, Message: "Not Found"},
			expected: ErrReferenceNotFound,
		},
		{
			name:     "401 still maps to authentication required",
			err:      &api.HTTPError{StatusCode: 401, Message: "Bad credentials"},
			expected: ErrAuthenticationRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapReviewError(tt.err, "octocat/hello-world#42")
			if !errors.Is(got, tt.expected) {
				t.Errorf("mapReviewError() = %v, want kind %v", got, tt.expected)
			}
		})
	}
}

func TestExcerpt(t *testing.T) {
	short := "looks wrong"
	if got := excerpt(short); got != short {
		t.Errorf("excerpt(short) = %q", got)
	}

	long := strings.Repeat("x", 500)
	got := excerpt(long)
	if len(got) != 120 {
		t.Errorf("excerpt(long) length = %d, want 120", len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("excerpt(long) = %q, want ... suffix", got)
	}
}
