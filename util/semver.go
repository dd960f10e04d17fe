package util

import (
	"fmt"
	"strconv"
	"strings"
)

// Semver is a MAJOR.MINOR.PATCH version with an optional alpha/beta
// prerelease tag, the only two tags releases of this project use.
type Semver struct {
	Major      int
	Minor      int
	Patch      int
	Beta       bool
	Alpha      bool
	Prerelease int
}

// ParseSemver reads "1.2.3", "1.2.3-beta.4" or "1.2.3-alpha.4". Anything
// else is an error; a leading "v" is the caller's to trim.
func ParseSemver(version string) (Semver, error) {
	s := Semver{}
	core, pre, hasPre := strings.Cut(version, "-")

	nums := strings.Split(core, ".")
	if len(nums) != 3 {
		return Semver{}, fmt.Errorf("invalid version %q: want MAJOR.MINOR.PATCH", version)
	}
	var err error
	if s.Major, err = strconv.Atoi(nums[0]); err != nil {
		return Semver{}, fmt.Errorf("invalid major in %q: %w", version, err)
	}
	if s.Minor, err = strconv.Atoi(nums[1]); err != nil {
		return Semver{}, fmt.Errorf("invalid minor in %q: %w", version, err)
	}
	if s.Patch, err = strconv.Atoi(nums[2]); err != nil {
		return Semver{}, fmt.Errorf("invalid patch in %q: %w", version, err)
	}

	if hasPre {
		label, num, ok := strings.Cut(pre, ".")
		if !ok {
			return Semver{}, fmt.Errorf("invalid prerelease %q: want beta.N or alpha.N", pre)
		}
		switch label {
		case "beta":
			s.Beta = true
		case "alpha":
			s.Alpha = true
		default:
			return Semver{}, fmt.Errorf("invalid prerelease type %q", label)
		}
		if s.Prerelease, err = strconv.Atoi(num); err != nil {
			return Semver{}, fmt.Errorf("invalid prerelease number in %q: %w", pre, err)
		}
	}

	return s, nil
}

func (s Semver) String() string {
	str := strconv.Itoa(s.Major) + "." + strconv.Itoa(s.Minor) + "." + strconv.Itoa(s.Patch)
	if s.Beta {
		str += "-beta." + strconv.Itoa(s.Prerelease)
	} else if s.Alpha {
		str += "-alpha." + strconv.Itoa(s.Prerelease)
	}
	return str
}

// preRank orders prerelease tags: alpha before beta before the release.
func (s Semver) preRank() int {
	switch {
	case s.Alpha:
		return 0
	case s.Beta:
		return 1
	}
	return 2
}

// Compare returns -1, 0 or 1 as s is older than, equal to or newer than o.
// A prerelease precedes its release, alpha precedes beta, and prerelease
// numbers order within the same tag.
func (s Semver) Compare(o Semver) int {
	pairs := [][2]int{
		{s.Major, o.Major},
		{s.Minor, o.Minor},
		{s.Patch, o.Patch},
		{s.preRank(), o.preRank()},
		{s.Prerelease, o.Prerelease},
	}
	for _, p := range pairs {
		if p[0] < p[1] {
			return -1
		}
		if p[0] > p[1] {
			return 1
		}
	}
	return 0
}

// Satisfies reports whether s matches the range expression rng:
//
//	~X.Y.Z   same major and minor, at least as new
//	^X.Y.Z   same major, at least as new
//	>X.Y.Z   strictly newer
//	<X.Y.Z   strictly older
//	X.Y.Z    exactly equal
func (s Semver) Satisfies(rng string) (bool, error) {
	var op byte
	if len(rng) > 0 {
		switch rng[0] {
		case '~', '^', '>', '<':
			op = rng[0]
			rng = rng[1:]
		}
	}

	c, err := ParseSemver(rng)
	if err != nil {
		return false, err
	}

	switch op {
	case '~':
		return s.Major == c.Major && s.Minor == c.Minor && s.Compare(c) >= 0, nil
	case '^':
		return s.Major == c.Major && s.Compare(c) >= 0, nil
	case '>':
		return s.Compare(c) > 0, nil
	case '<':
		return s.Compare(c) < 0, nil
	}
	return s.Compare(c) == 0, nil
}
