package interfaces

import (
	"context"
	"io"

	"github.com/fedora-notofonts/notofonts/pkg/domain/model"
)

// GitHubClient defines the release-hosting operations used for resolution.
// Implementations return fully materialized sequences: pagination is their concern.
type GitHubClient interface {
	// ListRepositories lists repositories of an organization with the given visibility type
	ListRepositories(ctx context.Context, org, visibility string) ([]*model.Repository, error)

	// GetRepository looks up a single repository. A missing repository is model.ErrRepositoryNotFound
	GetRepository(ctx context.Context, org, name string) (*model.Repository, error)

	// ListReleases lists every release of a repository
	ListReleases(ctx context.Context, org, repo string) ([]*model.RawRelease, error)

	// DownloadAsset writes the content at a release asset download URL to w
	DownloadAsset(ctx context.Context, url string, w io.Writer) error
}
