package model

import (
	"strings"

	pep440 "github.com/aquasecurity/go-pep440-version"
	"github.com/m-mizutani/goerr/v2"
)

// Version is a parsed, ordered release version following PEP 440: numeric
// release segments with missing trailing segments treated as zero, then
// pre-release, post-release, development release and local segments.
type Version struct {
	raw    string
	parsed pep440.Version
}

// ParseVersion parses the version part of a release title
func ParseVersion(raw string) (Version, error) {
	v, err := pep440.Parse(raw)
	if err != nil {
		return Version{}, goerr.Wrap(ErrUnparsableVersion, err.Error(), goerr.V("version", raw))
	}
	return Version{raw: raw, parsed: v}, nil
}

// MustParseVersion is like ParseVersion but panics on error
func MustParseVersion(raw string) Version {
	v, err := ParseVersion(raw)
	if err != nil {
		panic(err)
	}
	return v
}

// Raw returns the version string as it appeared in the release title
func (v Version) Raw() string {
	return v.raw
}

// String returns the raw version string
func (v Version) String() string {
	return v.raw
}

// Canonical returns the normalized form: trailing zero release segments
// dropped (keeping at least major.minor) followed by the normalized
// pre, post, dev and local parts. Two versions that compare equal share the
// same canonical form.
func (v Version) Canonical() string {
	full := v.parsed.String()
	if full == "" {
		return ""
	}

	base := v.parsed.BaseVersion()
	suffix := strings.TrimPrefix(full, base)

	var epoch string
	if i := strings.Index(base, "!"); i >= 0 {
		epoch, base = base[:i+1], base[i+1:]
	}

	segments := strings.Split(base, ".")
	for len(segments) > 2 && segments[len(segments)-1] == "0" {
		segments = segments[:len(segments)-1]
	}
	for len(segments) < 2 {
		segments = append(segments, "0")
	}

	return epoch + strings.Join(segments, ".") + suffix
}

// IsPrerelease reports whether the version is a pre or development release
func (v Version) IsPrerelease() bool {
	return v.parsed.IsPreRelease()
}

// Compare returns -1, 0 or 1 when v is lower than, equal to or greater than o
func (v Version) Compare(o Version) int {
	return v.parsed.Compare(o.parsed)
}

// Equal reports whether both versions have the same canonical value
func (v Version) Equal(o Version) bool {
	return v.Compare(o) == 0
}

// GreaterThan reports whether v sorts above o
func (v Version) GreaterThan(o Version) bool {
	return v.Compare(o) > 0
}

// CompareVersions parses and compares two version strings
func CompareVersions(a, b string) (int, error) {
	va, err := ParseVersion(a)
	if err != nil {
		return 0, err
	}
	vb, err := ParseVersion(b)
	if err != nil {
		return 0, err
	}
	return va.Compare(vb), nil
}
