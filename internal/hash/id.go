// Package hash provides the xxHash64 identifiers used for registry shape keys
// and snapshot checksums.
package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Sum computes the xxHash64 of data.
func Sum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Key accumulates heterogeneous fields into a single xxHash64 value.
// The zero value is not usable; call NewKey.
type Key struct {
	d   *xxhash.Digest
	buf [8]byte
}

// NewKey returns an empty key builder.
func NewKey() *Key {
	return &Key{d: xxhash.New()}
}

// String mixes s into the key, length prefixed so that ("ab","c") and
// ("a","bc") differ.
func (k *Key) String(s string) *Key {
	k.Uint(uint64(len(s)))
	_, _ = k.d.WriteString(s)

	return k
}

// Uint mixes v into the key.
func (k *Key) Uint(v uint64) *Key {
	binary.LittleEndian.PutUint64(k.buf[:], v)
	_, _ = k.d.Write(k.buf[:])

	return k
}

// Bool mixes b into the key.
func (k *Key) Bool(b bool) *Key {
	if b {
		return k.Uint(1)
	}

	return k.Uint(0)
}

// Sum64 returns the accumulated hash.
func (k *Key) Sum64() uint64 {
	return k.d.Sum64()
}
