package github

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/cli/go-gh/v2/pkg/api"
)

// Failure kinds surfaced to the caller. No retries happen anywhere; every
// failure propagates immediately with a wrapped, human-readable message.
var (
	ErrReferenceNotFound      = errors.New("pull request not found")
	ErrAuthenticationRequired = errors.New("github authentication required")
	ErrLineNotInDiff          = errors.New("comment line is outside the visible diff")
	ErrTransportFailure       = errors.New("github request failed")
)

// mapAPIError translates go-gh HTTP errors into our failure kinds
func mapAPIError(err error, target string) error {
	var httpErr *api.HTTPError
	if errors.As(err, &httpErr) {
		switch httpErr.StatusCode {
		case http.StatusUnauthorized:
			return fmt.Errorf("%w: %s", ErrAuthenticationRequired, httpErr.Message)
		case http.StatusNotFound:
			return fmt.Errorf("%w: %s (or you lack read access)", ErrReferenceNotFound, target)
		}
	}
	return fmt.Errorf("%w: %s: %v", ErrTransportFailure, target, err)
}

// mapReviewError additionally recognizes the platform's 422 rejection of
// comments anchored outside the diff's visible range.
func mapReviewError(err error, target string) error {
	var httpErr *api.HTTPError
	if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusUnprocessableEntity {
		if mentionsLine(httpErr) {
			return fmt.Errorf("%w: %s: %s", ErrLineNotInDiff, target, httpErr.Message)
		}
		return fmt.Errorf("%w: %s: %s", ErrTransportFailure, target, httpErr.Message)
	}
	return mapAPIError(err, target)
}

func mentionsLine(httpErr *api.HTTPError) bool {
	if containsLineHint(httpErr.Message) {
		return true
	}
	for _, item := range httpErr.Errors {
		if containsLineHint(item.Message) || item.Resource == "PullRequestReviewComment" {
			return true
		}
	}
	return false
}

func containsLineHint(message string) bool {
	lower := strings.ToLower(message)
	return strings.Contains(lower, "line") || strings.Contains(lower, "position")
}
