package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSemver(t *testing.T) {
	tests := []struct {
		in   string
		want Semver
	}{
		{"1.2.3", Semver{Major: 1, Minor: 2, Patch: 3}},
		{"0.0.1", Semver{Patch: 1}},
		{"10.20.30", Semver{Major: 10, Minor: 20, Patch: 30}},
		{"1.2.3-beta.4", Semver{Major: 1, Minor: 2, Patch: 3, Beta: true, Prerelease: 4}},
		{"1.2.3-alpha.1", Semver{Major: 1, Minor: 2, Patch: 3, Alpha: true, Prerelease: 1}},
	}
	for _, tc := range tests {
		got, err := ParseSemver(tc.in)
		require.NoError(t, err, "parsing %q", tc.in)
		assert.Equal(t, tc.want, got, "parsing %q", tc.in)
	}
}

func TestParseSemverErrors(t *testing.T) {
	for _, in := range []string{"", "1", "1.2", "1.2.3.4", "a.b.c", "1.x.3", "1.2.3-rc.1", "1.2.3-beta", "1.2.3-beta.x"} {
		_, err := ParseSemver(in)
		assert.Error(t, err, "parsing %q", in)
	}
}

func TestSemverString(t *testing.T) {
	for _, in := range []string{"1.2.3", "0.0.1", "1.2.3-beta.4", "1.2.3-alpha.1"} {
		s, err := ParseSemver(in)
		require.NoError(t, err)
		assert.Equal(t, in, s.String())
	}
}

func TestSemverCompare(t *testing.T) {
	// Oldest to newest; alpha precedes beta precedes the release.
	ordered := []string{
		"0.9.9",
		"1.0.0-alpha.1",
		"1.0.0-alpha.2",
		"1.0.0-beta.1",
		"1.0.0",
		"1.0.1",
		"1.1.0",
		"2.0.0",
	}
	for i, a := range ordered {
		va, err := ParseSemver(a)
		require.NoError(t, err)
		assert.Equal(t, 0, va.Compare(va), "%s against itself", a)
		for _, b := range ordered[i+1:] {
			vb, err := ParseSemver(b)
			require.NoError(t, err)
			assert.Equal(t, -1, va.Compare(vb), "%s vs %s", a, b)
			assert.Equal(t, 1, vb.Compare(va), "%s vs %s", b, a)
		}
	}
}

func TestSemverSatisfies(t *testing.T) {
	tests := []struct {
		version string
		rng     string
		want    bool
	}{
		{"1.2.3", "^1.0.0", true},
		{"1.2.3", "^1.2.3", true},
		{"1.2.3", "^1.2.4", false},
		{"2.0.0", "^1.9.9", false},
		{"1.2.3", "~1.1.0", false},
		{"1.2.3", "~1.2.0", true},
		{"1.2.3", "~1.2.4", false},
		{"1.2.3", ">1.2.2", true},
		{"1.2.3", ">1.2.3", false},
		{"1.2.3", "<2.0.0", true},
		{"1.2.3", "<1.2.3", false},
		{"1.2.3", "1.2.3", true},
		{"1.2.3", "1.2.4", false},
		{"1.0.0-beta.1", "<1.0.0", true},
	}
	for _, tc := range tests {
		v, err := ParseSemver(tc.version)
		require.NoError(t, err)
		got, err := v.Satisfies(tc.rng)
		require.NoError(t, err, "%s satisfies %s", tc.version, tc.rng)
		assert.Equal(t, tc.want, got, "%s satisfies %s", tc.version, tc.rng)
	}

	v, _ := ParseSemver("1.2.3")
	_, err := v.Satisfies("^nonsense")
	assert.Error(t, err)
}
