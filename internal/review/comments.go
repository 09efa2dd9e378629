package review

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ryo246912/gh-pr-review/internal/models"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ErrInvalidCommentFile indicates the comments file is missing, malformed,
// empty, or contains an entry that fails validation.
var ErrInvalidCommentFile = errors.New("invalid comments file")

// commentsSchema is the structural contract for the comments file: a
// non-empty array of {path, line, body, start_line?, category?} objects.
const commentsSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "minItems": 1,
  "items": {
    "type": "object",
    "required": ["path", "line", "body"],
    "additionalProperties": false,
    "properties": {
      "path": {"type": "string", "minLength": 1},
      "line": {"type": "integer", "minimum": 1},
      "body": {"type": "string", "minLength": 1},
      "start_line": {"type": "integer", "minimum": 1},
      "category": {"type": "string"}
    }
  }
}`

var compiledSchema = jsonschema.MustCompileString("comments.schema.json", commentsSchema)

// LoadComments reads and validates the comments file. The whole file is read
// into memory before submission; nothing is streamed.
func LoadComments(path string) ([]models.ReviewComment, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCommentFile, err)
	}

	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: not valid JSON: %v", ErrInvalidCommentFile, err)
	}
	if err := compiledSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCommentFile, err)
	}

	var comments []models.ReviewComment
	if err := json.Unmarshal(raw, &comments); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCommentFile, err)
	}
	if err := validateComments(comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// validateComments covers the semantic checks the schema cannot express
func validateComments(comments []models.ReviewComment) error {
	if len(comments) == 0 {
		return fmt.Errorf("%w: no comments", ErrInvalidCommentFile)
	}
	for i, c := range comments {
		if strings.TrimSpace(c.Path) == "" {
			return fmt.Errorf("%w: entry %d has an empty path", ErrInvalidCommentFile, i+1)
		}
		if c.Line < 1 {
			return fmt.Errorf("%w: entry %d has line %d, must be >= 1", ErrInvalidCommentFile, i+1, c.Line)
		}
		if strings.TrimSpace(c.Body) == "" {
			return fmt.Errorf("%w: entry %d has an empty body", ErrInvalidCommentFile, i+1)
		}
		if c.StartLine != 0 && c.StartLine > c.Line {
			return fmt.Errorf("%w: entry %d has start_line %d after line %d", ErrInvalidCommentFile, i+1, c.StartLine, c.Line)
		}
	}
	return nil
}
