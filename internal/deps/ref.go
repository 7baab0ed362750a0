// Copyright 2025 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package deps

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/pkg/errors"
)

// systemVersion marks references that install nothing and only check the
// host.
const systemVersion = "system"

// ErrNotSemver is returned by Ref.SemVer for versions that are not
// semantic versions, such as "system".
var ErrNotSemver = errors.New("version is not a semantic version")

// Ref is a version reference of the form name/version.
type Ref struct {
	Name    string
	Version string
}

// ParseRef parses "name/version". The version must be a semantic version
// unless it is "system".
func ParseRef(s string) (Ref, error) {
	name, version, found := strings.Cut(s, "/")
	if !found || name == "" || version == "" || strings.Contains(version, "/") {
		return Ref{}, errors.Errorf("invalid version reference %q, want name/version", s)
	}
	r := Ref{Name: name, Version: version}
	if !r.IsPhantom() {
		if _, err := semver.NewVersion(version); err != nil {
			return Ref{}, errors.Errorf("invalid version reference %q: %v", s, err)
		}
	}
	return r, nil
}

// MustParseRef is ParseRef for literals known to be valid.
func MustParseRef(s string) Ref {
	r, err := ParseRef(s)
	if err != nil {
		panic(err)
	}
	return r
}

func (r Ref) String() string { return r.Name + "/" + r.Version }

// IsPhantom reports whether r is a sanity-check reference that installs
// nothing.
func (r Ref) IsPhantom() bool { return r.Version == systemVersion }

// SemVer parses the version part. Short versions like "0.16" are accepted
// and padded.
func (r Ref) SemVer() (*semver.Version, error) {
	if r.IsPhantom() {
		return nil, errors.WithStack(ErrNotSemver)
	}
	v, err := semver.NewVersion(r.Version)
	if err != nil {
		return nil, errors.Wrapf(ErrNotSemver, "%s: %v", r, err)
	}
	return v, nil
}

func (r Ref) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

func (r *Ref) UnmarshalText(b []byte) error {
	parsed, err := ParseRef(string(b))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
