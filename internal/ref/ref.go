package ref

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// ErrMalformed indicates the input could not be normalized to (owner, repo, number)
var ErrMalformed = errors.New("malformed pull request reference")

// Ref is a fully resolved pull request reference
type Ref struct {
	Owner  string
	Repo   string
	Number int
}

func (r Ref) String() string {
	return fmt.Sprintf("%s/%s#%d", r.Owner, r.Repo, r.Number)
}

// RepoPath returns the "owner/repo" form used in REST paths
func (r Ref) RepoPath() string {
	return fmt.Sprintf("%s/%s", r.Owner, r.Repo)
}

var shortRefRe = regexp.MustCompile(`^([^/\s]+)/([^#\s]+)#([0-9]+)$`)

// Parse normalizes a PR reference given as a full URL
// (https://github.com/owner/repo/pull/123) or the short owner/repo#123 form.
// Bare numbers need a repository context; see Resolve.
func Parse(input string) (Ref, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return Ref{}, fmt.Errorf("%w: empty input", ErrMalformed)
	}

	if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
		return parseURL(input)
	}

	if m := shortRefRe.FindStringSubmatch(input); m != nil {
		number, err := strconv.Atoi(m[3])
		if err != nil || number <= 0 {
			return Ref{}, fmt.Errorf("%w: %q", ErrMalformed, input)
		}
		return Ref{Owner: m[1], Repo: m[2], Number: number}, nil
	}

	return Ref{}, fmt.Errorf("%w: %q", ErrMalformed, input)
}

func parseURL(input string) (Ref, error) {
	parsed, err := url.Parse(input)
	if err != nil {
		return Ref{}, fmt.Errorf("%w: %q", ErrMalformed, input)
	}
	parts := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	if len(parts) < 4 || parts[2] != "pull" {
		return Ref{}, fmt.Errorf("%w: %q is not a pull request URL", ErrMalformed, input)
	}
	number, err := strconv.Atoi(parts[3])
	if err != nil || number <= 0 {
		return Ref{}, fmt.Errorf("%w: %q", ErrMalformed, input)
	}
	return Ref{Owner: parts[0], Repo: parts[1], Number: number}, nil
}

// ParseRepo splits an "owner/repo" argument
func ParseRepo(input string) (owner, repo string, err error) {
	input = strings.TrimSpace(input)
	owner, repo, ok := strings.Cut(input, "/")
	if !ok || owner == "" || repo == "" || strings.Contains(repo, "/") {
		return "", "", fmt.Errorf("%w: repository must be owner/repo, got %q", ErrMalformed, input)
	}
	return owner, repo, nil
}

// Resolve normalizes any accepted reference form. Bare numbers are scoped to
// the repository returned by current; when no ambient repository is available
// the reference is malformed and no further work happens.
func Resolve(input string, current func() (Ref, error)) (Ref, error) {
	input = strings.TrimSpace(input)
	if number, err := strconv.Atoi(input); err == nil {
		if number <= 0 {
			return Ref{}, fmt.Errorf("%w: PR number must be positive", ErrMalformed)
		}
		cur, err := current()
		if err != nil {
			return Ref{}, fmt.Errorf("%w: bare PR number %d needs a repository context: %v", ErrMalformed, number, err)
		}
		cur.Number = number
		return cur, nil
	}
	return Parse(input)
}
