package cli

import (
	"github.com/cli/go-gh/v2/pkg/repository"

	"github.com/ryo246912/gh-pr-review/internal/github"
	"github.com/ryo246912/gh-pr-review/internal/ref"
	"github.com/ryo246912/gh-pr-review/internal/service"
	"github.com/ryo246912/gh-pr-review/internal/ui"
)

// currentRepoRef resolves the ambient repository from the local git context.
// Used only for bare-number references; everything else carries its own repo.
func currentRepoRef() (ref.Ref, error) {
	repo, err := repository.Current()
	if err != nil {
		return ref.Ref{}, err
	}
	return ref.Ref{Owner: repo.Owner, Repo: repo.Name}, nil
}

// resolveRef normalizes the positional PR argument before any network work
func resolveRef(arg string) (ref.Ref, error) {
	return ref.Resolve(arg, currentRepoRef)
}

// newService wires the real GitHub client and prompter. Constructed per
// invocation; client creation fails early when no gh credential is available.
func newService() (*service.ReviewService, error) {
	client, err := github.NewClient()
	if err != nil {
		return nil, err
	}
	return service.NewReviewService(client, &ui.DefaultPrompter{}), nil
}
