package model

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// VersionRange is a set of model versions.
//
// Accepted forms:
//
//	""             every version
//	"1.0.0"        exactly 1.0.0
//	"1.0.0+"       1.0.0 and later
//	"1.0.0/2.0.0"  1.0.0 through 2.0.0, inclusive
type VersionRange struct {
	From, To string // canonical semver ("v1.0.0"), To empty means unbounded
	any      bool
}

// AllVersions is the range matching every version.
var AllVersions = VersionRange{any: true}

// ParseVersionRange parses s in one of the forms documented on VersionRange.
func ParseVersionRange(s string) (VersionRange, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return AllVersions, nil
	}
	if strings.HasSuffix(s, "+") {
		from, err := canonicalVersion(strings.TrimSuffix(s, "+"))
		if err != nil {
			return VersionRange{}, err
		}
		return VersionRange{From: from}, nil
	}
	if lo, hi, ok := strings.Cut(s, "/"); ok {
		from, err := canonicalVersion(lo)
		if err != nil {
			return VersionRange{}, err
		}
		to, err := canonicalVersion(hi)
		if err != nil {
			return VersionRange{}, err
		}
		if semver.Compare(from, to) > 0 {
			return VersionRange{}, fmt.Errorf("empty version range %q", s)
		}
		return VersionRange{From: from, To: to}, nil
	}
	v, err := canonicalVersion(s)
	if err != nil {
		return VersionRange{}, err
	}
	return VersionRange{From: v, To: v}, nil
}

// MustParseVersionRange is like ParseVersionRange but panics on error.
func MustParseVersionRange(s string) VersionRange {
	r, err := ParseVersionRange(s)
	if err != nil {
		panic(err)
	}
	return r
}

// Contains reports whether version is in r. An empty version matches
// every range, so an unversioned generation run sees the whole model.
func (r VersionRange) Contains(version string) bool {
	if r.IsAll() || version == "" {
		return true
	}
	v, err := canonicalVersion(version)
	if err != nil {
		return false
	}
	if semver.Compare(v, r.From) < 0 {
		return false
	}
	return r.To == "" || semver.Compare(v, r.To) <= 0
}

// IsAll reports whether r matches every version.
func (r VersionRange) IsAll() bool {
	return r.any || r.From == ""
}

func (r VersionRange) String() string {
	switch {
	case r.IsAll():
		return ""
	case r.To == "":
		return strings.TrimPrefix(r.From, "v") + "+"
	case r.From == r.To:
		return strings.TrimPrefix(r.From, "v")
	default:
		return strings.TrimPrefix(r.From, "v") + "/" + strings.TrimPrefix(r.To, "v")
	}
}

// ValidVersion reports whether v is a usable model version.
func ValidVersion(v string) bool {
	_, err := canonicalVersion(v)
	return err == nil
}

func canonicalVersion(v string) (string, error) {
	v = strings.TrimSpace(v)
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return "", fmt.Errorf("invalid version %q", strings.TrimPrefix(v, "v"))
	}
	return semver.Canonical(v), nil
}
