// Package endian selects the byte order of snapshot headers and payloads.
//
// Snapshots are little-endian unless written with snapshot.WithBigEndian; the
// choice is recorded in the header flags so readers pick the matching engine:
//
//	engine := endian.ForFlag(flags&snapshot.FlagBigEndian != 0)
//	nbins := engine.Uint32(b)
package endian

import "encoding/binary"

// EndianEngine combines the read/write and append operations of a byte order.
// binary.LittleEndian and binary.BigEndian satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// ForFlag returns the big-endian engine when big is set and the little-endian
// engine otherwise.
func ForFlag(big bool) EndianEngine {
	if big {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeLittleEndian reports whether the host stores integers little-endian.
func IsNativeLittleEndian() bool {
	return binary.NativeEndian.Uint16([]byte{1, 0}) == 1
}
