package review

import (
	"fmt"
	"strings"

	"github.com/ryo246912/gh-pr-review/internal/models"
	"github.com/ryo246912/gh-pr-review/internal/policy"
)

// EventComment is the only review event this tool will ever submit. Approval
// and change requests stay with the human reviewer.
const EventComment = "COMMENT"

// ValidateEvent rejects any event other than COMMENT before network work
func ValidateEvent(event string) error {
	if strings.ToUpper(strings.TrimSpace(event)) != EventComment {
		return fmt.Errorf("unsupported review event %q: this tool only submits %s reviews", event, EventComment)
	}
	return nil
}

// CheckPolicy rejects comments whose category the configured policy
// excludes. Fail-closed: a policy violation aborts the whole submission
// instead of silently dropping entries, preserving all-or-nothing semantics.
func CheckPolicy(comments []models.ReviewComment, pol policy.Policy) error {
	var rejected []string
	for i, c := range comments {
		if !pol.Allows(c.Category) {
			rejected = append(rejected, fmt.Sprintf("entry %d (%s:%d, category %q)", i+1, c.Path, c.Line, c.Category))
		}
	}
	if len(rejected) > 0 {
		return fmt.Errorf("%w: review policy excludes %s", ErrInvalidCommentFile, strings.Join(rejected, ", "))
	}
	return nil
}

// BuildRequest shapes validated comments into the GitHub review payload.
// Every comment anchors to the new side of the diff; ranges carry a
// start_side as well.
func BuildRequest(comments []models.ReviewComment, event, body, commitSHA string) models.ReviewRequest {
	formatted := make([]models.RequestComment, 0, len(comments))
	for _, c := range comments {
		rc := models.RequestComment{
			Path: c.Path,
			Line: c.Line,
			Body: c.Body,
			Side: "RIGHT",
		}
		if c.StartLine != 0 && c.StartLine != c.Line {
			rc.StartLine = c.StartLine
			rc.StartSide = "RIGHT"
		}
		formatted = append(formatted, rc)
	}
	return models.ReviewRequest{
		CommitID: commitSHA,
		Event:    strings.ToUpper(strings.TrimSpace(event)),
		Body:     body,
		Comments: formatted,
	}
}
