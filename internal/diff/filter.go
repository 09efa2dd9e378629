package diff

import (
	"errors"
	"fmt"
	"strings"
)

// ErrFileNotInDiff indicates the requested path has no hunks in the diff
var ErrFileNotInDiff = errors.New("file not present in diff")

// FilterByPath returns only the diff --git block(s) touching path. The diff
// is otherwise treated as an opaque blob; blocks are delimited by their
// "diff --git a/... b/..." headers. Rename blocks match on either side.
func FilterByPath(diffText, path string) (string, error) {
	path = normalize(path)
	if path == "" {
		return "", fmt.Errorf("%w: empty path", ErrFileNotInDiff)
	}

	var b strings.Builder
	inTarget := false
	matched := false

	for _, line := range strings.Split(diffText, "\n") {
		if strings.HasPrefix(line, "diff --git ") {
			oldPath, newPath := headerPaths(line)
			inTarget = oldPath == path || newPath == path
			if inTarget {
				matched = true
			}
		}
		if inTarget {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	if !matched {
		return "", fmt.Errorf("%w: %s", ErrFileNotInDiff, path)
	}
	return strings.TrimSuffix(b.String(), "\n") + "\n", nil
}

// headerPaths extracts the a/ and b/ paths from a diff --git header line
func headerPaths(line string) (oldPath, newPath string) {
	parts := strings.Split(line, " ")
	if len(parts) < 4 {
		return "", ""
	}
	oldPath = strings.TrimPrefix(parts[2], "a/")
	newPath = strings.TrimPrefix(parts[3], "b/")
	return oldPath, newPath
}

func normalize(path string) string {
	path = strings.TrimSpace(path)
	path = strings.TrimPrefix(path, "./")
	path = strings.TrimPrefix(path, "a/")
	path = strings.TrimPrefix(path, "b/")
	return path
}
