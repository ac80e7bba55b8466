package usecase

import (
	"context"
	"errors"
	"slices"

	"github.com/fedora-notofonts/notofonts/pkg/domain/interfaces"
	"github.com/fedora-notofonts/notofonts/pkg/domain/model"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

type releaseUseCase struct {
	githubClient interfaces.GitHubClient
	organization string
	exclude      []string
}

// ReleaseOption is a functional option for the release use case
type ReleaseOption func(*releaseUseCase)

// WithOrganization sets the organization whose repositories are resolved
func WithOrganization(org string) ReleaseOption {
	return func(uc *releaseUseCase) {
		uc.organization = org
	}
}

// WithExcludeList replaces the default list of repositories that are never resolved
func WithExcludeList(exclude []string) ReleaseOption {
	return func(uc *releaseUseCase) {
		uc.exclude = slices.Clone(exclude)
	}
}

// NewRelease creates a new instance of ReleaseUseCase
func NewRelease(githubClient interfaces.GitHubClient, opts ...ReleaseOption) interfaces.ReleaseUseCase {
	uc := &releaseUseCase{
		githubClient: githubClient,
		organization: model.DefaultOrganization,
		exclude:      slices.Clone(model.DefaultExcludeList),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// ResolveAll resolves releases of the catalog repositories one by one, in
// catalog order. Malformed releases are skipped and reported as warnings;
// an included repository missing from the catalog is an error.
func (uc *releaseUseCase) ResolveAll(ctx context.Context, include []string, mode model.Mode) (*model.Resolution, error) {
	logger := ctxlog.From(ctx)

	repos, err := uc.fetchCatalog(ctx, include)
	if err != nil {
		return nil, err
	}

	candidates := FilterRepositories(repos, include, uc.exclude)
	logger.Debug("Filtered repository catalog",
		"organization", uc.organization,
		"catalog_size", len(repos),
		"candidates", len(candidates),
		"mode", mode.String(),
	)

	resolution := &model.Resolution{
		Result: make(model.ResolutionResult),
	}

	for _, repo := range candidates {
		groups, warnings, err := uc.resolveRepository(ctx, repo.Name, mode)
		if err != nil {
			return nil, err
		}

		for _, w := range warnings {
			logger.Warn("Release skipped",
				"repository", w.Repository,
				"title", w.Title,
				"error", w.Err,
			)
		}
		resolution.Warnings = append(resolution.Warnings, warnings...)

		if len(groups) == 0 {
			continue
		}
		resolution.Result[repo.Name] = groups
	}

	logger.Info("Resolved releases",
		"organization", uc.organization,
		"repositories", len(resolution.Result),
		"warnings", len(resolution.Warnings),
	)

	return resolution, nil
}

func (uc *releaseUseCase) fetchCatalog(ctx context.Context, include []string) ([]*model.Repository, error) {
	if useCatalogListing(include) {
		repos, err := uc.githubClient.ListRepositories(ctx, uc.organization, "public")
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list repositories", goerr.V("organization", uc.organization))
		}

		for _, name := range include {
			if !slices.ContainsFunc(repos, func(r *model.Repository) bool { return r != nil && r.Name == name }) {
				return nil, goerr.Wrap(model.ErrRepositoryNotFound, "included repository is not in the catalog",
					goerr.V("organization", uc.organization),
					goerr.V("repository", name),
				)
			}
		}
		return repos, nil
	}

	repos := make([]*model.Repository, 0, len(include))
	for _, name := range include {
		repo, err := uc.githubClient.GetRepository(ctx, uc.organization, name)
		if err != nil {
			if errors.Is(err, model.ErrRepositoryNotFound) {
				return nil, goerr.Wrap(err, "included repository is not in the catalog",
					goerr.V("organization", uc.organization),
					goerr.V("repository", name),
				)
			}
			return nil, goerr.Wrap(err, "failed to get repository",
				goerr.V("organization", uc.organization),
				goerr.V("repository", name),
			)
		}
		repos = append(repos, repo)
	}
	return repos, nil
}

// resolveRepository parses and resolves the releases of a single repository.
// A repository without any usable release yields an empty map.
func (uc *releaseUseCase) resolveRepository(ctx context.Context, repo string, mode model.Mode) (map[string][]*model.Release, []model.Warning, error) {
	raws, err := uc.githubClient.ListReleases(ctx, uc.organization, repo)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to list releases",
			goerr.V("organization", uc.organization),
			goerr.V("repository", repo),
		)
	}
	if len(raws) == 0 {
		ctxlog.From(ctx).Debug("No releases in repository", "repository", repo)
		return nil, nil, nil
	}

	var warnings []model.Warning
	releases := make([]*model.Release, 0, len(raws))
	for _, raw := range raws {
		if raw == nil {
			continue
		}

		rel, err := ParseRelease(repo, raw)
		if err != nil {
			warnings = append(warnings, model.Warning{
				Repository: repo,
				Title:      raw.DisplayTitle(),
				Err:        err,
			})
			continue
		}
		releases = append(releases, rel)
	}

	groups, dropped := Resolve(releases, mode)
	return groups, append(warnings, dropped...), nil
}
