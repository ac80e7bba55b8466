package usecase

import (
	"slices"

	"github.com/fedora-notofonts/notofonts/pkg/domain/model"
)

// FilterRepositories selects candidate repositories, keeping input order.
// Rules apply in order: excluded names are dropped unconditionally, archived
// repositories are dropped, and a non-empty include list keeps only its names.
func FilterRepositories(repos []*model.Repository, include, exclude []string) []*model.Repository {
	var filtered []*model.Repository
	for _, repo := range repos {
		if repo == nil || slices.Contains(exclude, repo.Name) {
			continue
		}
		if repo.Archived {
			continue
		}
		if len(include) > 0 && !slices.Contains(include, repo.Name) {
			continue
		}
		filtered = append(filtered, repo)
	}
	return filtered
}

// useCatalogListing tells whether the whole catalog should be listed rather
// than each included repository looked up by name.
func useCatalogListing(include []string) bool {
	return len(include) == 0 || len(include) > model.IncludeLookupThreshold
}
