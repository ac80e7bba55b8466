package model

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrMalformedTag means a release title does not follow <name>-v<version>
	ErrMalformedTag = goerr.New("release title is not like NAME-vVERSION")

	// ErrUnparsableVersion means the version part of a title has no canonical form
	ErrUnparsableVersion = goerr.New("unparsable release version")

	// ErrDuplicateVersion means another release of the same logical name already has this canonical version
	ErrDuplicateVersion = goerr.New("duplicated release version")

	// ErrRepositoryNotFound means an explicitly requested repository is not in the catalog
	ErrRepositoryNotFound = goerr.New("repository not found")

	// ErrEmptyResult means a requested project resolved to no release at all
	ErrEmptyResult = goerr.New("no releases found")

	// ErrReleaseTagNotFound means the requested release tag is not available in a project
	ErrReleaseTagNotFound = goerr.New("release tag is not available")
)
