package dialect

import (
	"fmt"
	"regexp"
	"strconv"

	"golang.org/x/mod/semver"

	"github.com/syssam/sqldialect"
)

// Version is a backend release, as reported by the server.
type Version struct {
	Major int
	Minor int
	Micro int
}

// MakeVersion returns a Version. The optional trailing values are the minor
// and micro components.
func MakeVersion(major int, rest ...int) Version {
	v := Version{Major: major}
	if len(rest) > 0 {
		v.Minor = rest[0]
	}
	if len(rest) > 1 {
		v.Micro = rest[1]
	}
	return v
}

// versionRe matches the first dotted version in banners such as
// "CockroachDB CCL v23.1.11 (x86_64-pc-linux-gnu, built 2023/09/27 ...)".
var versionRe = regexp.MustCompile(`v?(\d+)\.(\d+)(?:\.(\d+))?`)

// ParseVersion extracts a Version from a version string or server banner.
func ParseVersion(s string) (Version, error) {
	m := versionRe.FindStringSubmatch(s)
	if m == nil {
		return Version{}, sqldialect.NewInvalidArgumentError("parse version", "version", s)
	}
	var (
		v   Version
		err error
	)
	parts := []*int{&v.Major, &v.Minor, &v.Micro}
	for i, part := range m[1:4] {
		if part == "" {
			continue
		}
		if *parts[i], err = strconv.Atoi(part); err != nil {
			return Version{}, sqldialect.NewInvalidArgumentError("parse version", "version", s)
		}
	}
	return v, nil
}

// semver returns the canonical semantic version form, e.g. "v20.1.0".
func (v Version) semver() string {
	return fmt.Sprintf("v%d.%d.%d", v.Major, v.Minor, v.Micro)
}

// String returns the version as "major.minor.micro".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Micro)
}

// Compare returns -1, 0 or +1 depending on whether v is before, equal to, or
// after o.
func (v Version) Compare(o Version) int {
	return semver.Compare(v.semver(), o.semver())
}

// IsSameOrAfter reports whether v is at or after major[.minor[.micro]].
func (v Version) IsSameOrAfter(major int, rest ...int) bool {
	return v.Compare(MakeVersion(major, rest...)) >= 0
}

// IsBefore reports whether v is strictly before major[.minor[.micro]].
func (v Version) IsBefore(major int, rest ...int) bool {
	return !v.IsSameOrAfter(major, rest...)
}
