package model_test

import (
	"errors"
	"testing"

	"github.com/fedora-notofonts/notofonts/pkg/domain/model"
	"github.com/m-mizutani/gt"
)

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{name: "numeric not lexical", a: "1.10.0", b: "1.2.0", want: 1},
		{name: "lower patch", a: "1.2.0", b: "1.2.1", want: -1},
		{name: "missing trailing segment", a: "1.0", b: "1.0.0", want: 0},
		{name: "four segments equal", a: "1.0.0.0", b: "1", want: 0},
		{name: "four segments greater", a: "1.0.0.1", b: "1.0", want: 1},
		{name: "zero padded", a: "2.001", b: "2.1", want: 0},
		{name: "zero padded ordering", a: "2.010", b: "2.001", want: 1},
		{name: "prerelease below release", a: "1.0-rc1", b: "1.0", want: -1},
		{name: "prerelease without hyphen", a: "1.0a1", b: "1.0", want: -1},
		{name: "prerelease with jagged segments", a: "1.0.0.0-rc1", b: "1.0", want: -1},
		{name: "prerelease ordering", a: "1.0-rc2", b: "1.0-rc1", want: 1},
		{name: "prerelease above previous release", a: "1.1-beta", b: "1.0", want: 1},
		{name: "post release above release", a: "1.0post1", b: "1.0", want: 1},
		{name: "dotted post release", a: "1.0.post1", b: "1.0", want: 1},
		{name: "implicit post release", a: "1.0-1", b: "1.0", want: 1},
		{name: "post release spellings", a: "1.0.post1", b: "1.0-r1", want: 0},
		{name: "post release below next release", a: "1.0.post2", b: "1.0.1", want: -1},
		{name: "dev release below prerelease", a: "1.0.dev1", b: "1.0a1", want: -1},
		{name: "dev release above previous release", a: "1.1.dev1", b: "1.0", want: 1},
		{name: "local version above public", a: "1.0+local", b: "1.0", want: 1},
		{name: "local versions ordered", a: "1.0+build.2", b: "1.0+build.1", want: 1},
		{name: "numeric local above alphanumeric", a: "1.0+2", b: "1.0+abc", want: 1},
		{name: "epoch wins", a: "1!0.1", b: "2.0", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := model.CompareVersions(tt.a, tt.b)
			gt.NoError(t, err)
			gt.Value(t, got).Equal(tt.want)

			reverse, err := model.CompareVersions(tt.b, tt.a)
			gt.NoError(t, err)
			gt.Value(t, reverse).Equal(-tt.want)
		})
	}
}

func TestCompareVersions_TotalOrder(t *testing.T) {
	raws := []string{
		"0.1", "1.0.dev1", "1.0-alpha", "1.0-rc1", "1.0", "1.0+local", "1.0.post1",
		"1.0.1", "1.2", "1.10", "2.000", "2.001.1", "10", "1!0.1",
	}

	versions := make([]model.Version, len(raws))
	for i, raw := range raws {
		versions[i] = model.MustParseVersion(raw)
	}

	for i := range versions {
		gt.Value(t, versions[i].Compare(versions[i])).Equal(0)

		for j := range versions {
			got := versions[i].Compare(versions[j])
			switch {
			case i < j:
				gt.Value(t, got).Equal(-1)
			case i > j:
				gt.Value(t, got).Equal(1)
			}

			for k := range versions {
				if got < 0 && versions[j].Compare(versions[k]) < 0 {
					gt.Value(t, versions[i].Compare(versions[k])).Equal(-1)
				}
			}
		}
	}
}

func TestParseVersion_Invalid(t *testing.T) {
	for _, raw := range []string{"", "abc", "1..2", "v", "1.0 beta", "1.0-foo", "1.0+"} {
		t.Run(raw, func(t *testing.T) {
			_, err := model.ParseVersion(raw)
			gt.Error(t, err)
			gt.True(t, errors.Is(err, model.ErrUnparsableVersion))
		})
	}

	_, err := model.CompareVersions("1.0", "nope")
	gt.True(t, errors.Is(err, model.ErrUnparsableVersion))
}

func TestVersion_Canonical(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "1.0.0", want: "1.0"},
		{raw: "1", want: "1.0"},
		{raw: "2.010", want: "2.10"},
		{raw: "1.2.3.0", want: "1.2.3"},
		{raw: "1.0-rc1", want: "1.0rc1"},
		{raw: "1.0.0RC1", want: "1.0rc1"},
		{raw: "1.0.0-1", want: "1.0.post1"},
		{raw: "1.0.dev2", want: "1.0.dev2"},
		{raw: "1.0+Build", want: "1.0+build"},
		{raw: "1!2.0.0", want: "1!2.0"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			v := model.MustParseVersion(tt.raw)
			gt.Value(t, v.Canonical()).Equal(tt.want)
			gt.Value(t, v.Raw()).Equal(tt.raw)
		})
	}

	gt.True(t, model.MustParseVersion("1.0-rc1").IsPrerelease())
	gt.True(t, model.MustParseVersion("1.0.dev1").IsPrerelease())
	gt.False(t, model.MustParseVersion("1.0").IsPrerelease())
	gt.False(t, model.MustParseVersion("1.0.post1").IsPrerelease())
}
