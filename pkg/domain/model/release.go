package model

import (
	"maps"
	"slices"
)

// Asset is a downloadable file attached to a release
type Asset struct {
	Name string
	URL  string
	Size int64
}

// RawRelease is a release as returned by the hosting API, before tag parsing
type RawRelease struct {
	Title   string  // Release name
	TagName string  // Git tag of the release
	Assets  []Asset // Attached files
}

// DisplayTitle returns the title used for tag parsing. GitHub shows the tag
// name when a release has no name, and so does this.
func (r *RawRelease) DisplayTitle() string {
	if r.Title != "" {
		return r.Title
	}
	return r.TagName
}

// Repository describes a repository in the organization catalog
type Repository struct {
	Name     string
	Archived bool
}

// Release is a parsed release of a repository. It is built once per raw
// release and must not be modified afterwards.
type Release struct {
	Repository string  // Owning repository
	Title      string  // Original release title, <Name>-v<Version>
	Name       string  // Logical project name
	Version    Version // Parsed version
	Assets     []Asset
}

// Mode selects how many releases are kept per logical name
type Mode int

const (
	// ModeAll keeps every release with a distinct canonical version
	ModeAll Mode = iota
	// ModeLatest keeps only the highest version per logical name
	ModeLatest
	// ModeEvery keeps every parsed release, canonical duplicates included
	ModeEvery
)

func (m Mode) String() string {
	switch m {
	case ModeAll:
		return "all"
	case ModeLatest:
		return "latest"
	case ModeEvery:
		return "every"
	default:
		return "unknown"
	}
}

// ResolutionResult maps repository name -> logical name -> selected releases.
// Neither the inner map nor the release slices are ever empty.
type ResolutionResult map[string]map[string][]*Release

// Releases returns all releases of a repository across its logical names,
// ordered by logical name.
func (r ResolutionResult) Releases(repo string) []*Release {
	groups, ok := r[repo]
	if !ok {
		return nil
	}

	var releases []*Release
	for _, name := range slices.Sorted(maps.Keys(groups)) {
		releases = append(releases, groups[name]...)
	}
	return releases
}

// Repositories returns repository names of the result in lexical order
func (r ResolutionResult) Repositories() []string {
	return slices.Sorted(maps.Keys(r))
}

// Warning is a release that was dropped during resolution
type Warning struct {
	Repository string
	Title      string
	Err        error
}

// Resolution is the output of a resolution run
type Resolution struct {
	Result   ResolutionResult
	Warnings []Warning
}

// DefaultOrganization is the GitHub organization hosting the Noto font projects
const DefaultOrganization = "notofonts"

// DefaultExcludeList holds repositories of the organization that are not font projects
var DefaultExcludeList = []string{"noto-fonts", "noto-sans-nushu", "test"}

// IncludeLookupThreshold is the include list size above which the whole
// catalog is listed instead of looking up every repository by name.
const IncludeLookupThreshold = 50
