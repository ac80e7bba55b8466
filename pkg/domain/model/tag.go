package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// TagSeparator splits a release title into logical name and version
const TagSeparator = "-v"

// TagParts is the result of parsing a release title
type TagParts struct {
	Name    string
	Version string
}

// ParseTag splits title at the rightmost "-v" that is followed by a non-empty
// remainder. A name that itself contains "-v" therefore stays intact, e.g.
// "foo-v2-bar-v1.0" yields name "foo-v2-bar" and version "1.0".
func ParseTag(title string) (*TagParts, error) {
	rest := title
	for {
		idx := strings.LastIndex(rest, TagSeparator)
		if idx < 0 {
			return nil, goerr.Wrap(ErrMalformedTag, "no separator in title", goerr.V("title", title))
		}

		version := title[idx+len(TagSeparator):]
		if version == "" {
			rest = title[:idx]
			continue
		}

		name := title[:idx]
		if name == "" {
			return nil, goerr.Wrap(ErrMalformedTag, "empty project name", goerr.V("title", title))
		}

		return &TagParts{Name: name, Version: version}, nil
	}
}

// String rebuilds the release title
func (p *TagParts) String() string {
	return p.Name + TagSeparator + p.Version
}
