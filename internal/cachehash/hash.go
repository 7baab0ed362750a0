// Copyright 2025 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

// Package cachehash generates non-cryptographic cache keys.
//
// The functions in this package make no guarantees about the underlying hashing
// algorithm. It should only be used for caching, where it's ok if the hash for
// a given input changes.
package cachehash

import (
	"encoding/hex"
	"hash"
	"hash/fnv"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/pkg/errors"
)

// Bytes returns a hex-encoded hash of b.
func Bytes(b []byte) (string, error) {
	h := newHash()
	h.Write(b)
	return hex.EncodeToString(h.Sum(nil)), nil
}

// JSON marshals a to canonical JSON and returns its hex-encoded hash.
func JSON(a any) (string, error) {
	b, err := json.Marshal(a)
	if err != nil {
		return "", errors.Wrap(err, "marshal to json for hashing")
	}
	return JSONBytes(b)
}

// JSONBytes canonicalizes the raw JSON bytes in b and returns its hex-encoded
// hash. It modifies b in place.
func JSONBytes(b []byte) (string, error) {
	v := jsontext.Value(b)
	if err := v.Canonicalize(); err != nil {
		return "", errors.Wrap(err, "canonicalize json for hashing")
	}
	return Bytes(v)
}

func newHash() hash.Hash { return fnv.New64a() }
