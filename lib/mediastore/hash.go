// Copyright 2026 The OneDate Authors
// SPDX-License-Identifier: Apache-2.0

package mediastore

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"
)

// Hash is a 32-byte BLAKE3 digest of an object's uncompressed bytes.
type Hash [32]byte

// objectDomainKey is the 32-byte key for BLAKE3 keyed hashing. Domain
// separation keeps media object hashes distinct from any other hashes
// of the same bytes. The value is the ASCII domain name, zero-padded
// to 32 bytes, so it is readable in hex dumps.
var objectDomainKey = [32]byte{
	'o', 'n', 'e', 'd', 'a', 't', 'e', '.', 'm', 'e', 'd', 'i', 'a', '.',
	'o', 'b', 'j', 'e', 'c', 't', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// HashObject computes the media-domain BLAKE3 keyed hash of data.
func HashObject(data []byte) Hash {
	hasher, err := blake3.NewKeyed(objectDomainKey[:])
	if err != nil {
		panic("mediastore: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(data)
	var hash Hash
	copy(hash[:], hasher.Sum(nil))
	return hash
}

// String returns the hex encoding of the hash. This is the object ID
// used in URLs and on disk.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// ParseHash parses a 64-character hex string into a Hash.
func ParseHash(hexString string) (Hash, error) {
	var hash Hash
	decoded, err := hex.DecodeString(hexString)
	if err != nil {
		return hash, fmt.Errorf("parsing media object hash: %w", err)
	}
	if len(decoded) != 32 {
		return hash, fmt.Errorf("media object hash is %d bytes, want 32", len(decoded))
	}
	copy(hash[:], decoded)
	return hash, nil
}
