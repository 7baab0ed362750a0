// Copyright 2025 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package options

import (
	"maps"
	"slices"
	"strconv"
	"strings"
)

// MPUnitsStdFormat makes mp-units use std::format instead of fmt.
const MPUnitsStdFormat = "mp-units:std_format"

type packageOption struct {
	allowed []string
	def     string
	// normalize maps accepted spellings onto a canonical value.
	normalize func(string) (string, bool)
}

var packageOptions = map[string]packageOption{
	MPUnitsStdFormat: {
		allowed:   []string{"True", "False"},
		def:       "False",
		normalize: normalizeBool,
	},
}

func defaultPackageOptions() map[string]string {
	m := make(map[string]string, len(packageOptions))
	for key, decl := range packageOptions {
		m[key] = decl.def
	}
	return m
}

// canonicalPackageKey accepts both "pkg:opt" and the pattern form
// "pkg/*:opt".
func canonicalPackageKey(key string) string {
	pkg, opt, found := strings.Cut(key, ":")
	if !found {
		return key
	}
	return strings.TrimSuffix(pkg, "/*") + ":" + opt
}

// IsPackageOption reports whether key names a declared pass-through option.
func IsPackageOption(key string) bool {
	_, ok := packageOptions[canonicalPackageKey(key)]
	return ok
}

func normalizeBool(v string) (string, bool) {
	b, err := strconv.ParseBool(v)
	if err != nil {
		return v, false
	}
	if b {
		return "True", true
	}
	return "False", true
}

// PackageOptionKeys lists the declared pass-through options in sorted order.
func PackageOptionKeys() []string {
	return slices.Sorted(maps.Keys(packageOptions))
}
