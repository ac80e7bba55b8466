package usecase

import (
	"github.com/fedora-notofonts/notofonts/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

// Resolve groups releases of one repository by logical name and reduces each
// group according to mode. Input order is not assumed to be sorted; it only
// decides ties, where the release seen first wins. Releases dropped as
// duplicates are returned as warnings. Resolve does no I/O.
func Resolve(releases []*model.Release, mode model.Mode) (map[string][]*model.Release, []model.Warning) {
	groups := make(map[string][]*model.Release)
	var warnings []model.Warning

	for _, rel := range releases {
		group := groups[rel.Name]

		switch mode {
		case model.ModeLatest:
			if len(group) == 0 {
				groups[rel.Name] = []*model.Release{rel}
			} else if rel.Version.GreaterThan(group[0].Version) {
				group[0] = rel
			}

		case model.ModeEvery:
			groups[rel.Name] = append(group, rel)

		default:
			if dup := findVersion(group, rel.Version); dup != nil {
				warnings = append(warnings, model.Warning{
					Repository: rel.Repository,
					Title:      rel.Title,
					Err: goerr.Wrap(model.ErrDuplicateVersion, "release dropped",
						goerr.V("kept", dup.Title),
						goerr.V("canonical_version", rel.Version.Canonical()),
					),
				})
				continue
			}
			groups[rel.Name] = append(group, rel)
		}
	}

	return groups, warnings
}

func findVersion(group []*model.Release, v model.Version) *model.Release {
	for _, rel := range group {
		if rel.Version.Equal(v) {
			return rel
		}
	}
	return nil
}

// ParseRelease builds a Release from a raw API release. Failures wrap
// model.ErrMalformedTag or model.ErrUnparsableVersion.
func ParseRelease(repo string, raw *model.RawRelease) (*model.Release, error) {
	title := raw.DisplayTitle()

	parts, err := model.ParseTag(title)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse release title", goerr.V("repository", repo))
	}

	version, err := model.ParseVersion(parts.Version)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse release version",
			goerr.V("repository", repo),
			goerr.V("title", title),
		)
	}

	return &model.Release{
		Repository: repo,
		Title:      title,
		Name:       parts.Name,
		Version:    version,
		Assets:     append([]model.Asset(nil), raw.Assets...),
	}, nil
}

// Latest returns the greatest release of a group, the first one on ties
func Latest(releases []*model.Release) *model.Release {
	var latest *model.Release
	for _, rel := range releases {
		if latest == nil || rel.Version.GreaterThan(latest.Version) {
			latest = rel
		}
	}
	return latest
}
