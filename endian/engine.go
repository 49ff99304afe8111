// Package endian provides byte order utilities for the binary framing used
// by table fingerprints.
//
// EndianEngine merges the ByteOrder and AppendByteOrder interfaces from
// encoding/binary so one value covers both in-place and append-style
// encoding. binary.LittleEndian and binary.BigEndian satisfy it directly.
package endian

import "encoding/binary"

// EndianEngine combines binary.ByteOrder and binary.AppendByteOrder.
//
// The returned engines are stateless and safe for concurrent use.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine, the default for
// all framing in this module.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
