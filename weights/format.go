// Package weights implements a binary weights file: named tensors stored as
// 64-byte aligned records, used to seed the constants and variables of a
// graph.
//
// File format:
//
//	[header (64B)]
//	[record_metadata_0 (64B)] [dims_0 + name_0] [data_0 (64B aligned)]
//	[record_metadata_1 (64B)] [dims_1 + name_1] [data_1 (64B aligned)]
//	...
//
// All integers are little-endian. Data types use the MPSDataType encoding.
package weights

import "github.com/google/uuid"

const (
	// Alignment is the byte alignment of every section of the file.
	Alignment = 64

	// Magic opens every weights file ("MPSW").
	Magic uint32 = 0x5753504D

	// Version is the current format version.
	Version uint32 = 1

	// RecordSentinel validates record metadata entries.
	RecordSentinel uint32 = 0xDEADBEEF

	// Ext is the conventional weights file extension.
	Ext = ".mpsw"
)

// Header is the 64 bytes file header.
type Header struct {
	Magic    uint32
	Version  uint32
	Count    uint32 // Number of records.
	_        uint32
	ID       uuid.UUID // Identifies the file, e.g. to match a serialized executable.
	Reserved [32]byte
}

// RecordMetadata is the 64 bytes header of a record. The record dimensions
// (Rank int64 values) and its name (NameLength bytes) follow it.
type RecordMetadata struct {
	Sentinel    uint32
	DataType    uint32
	SizeInBytes uint64
	Offset      uint64 // Absolute file offset of the data.
	NameLength  uint32
	Rank        uint32
	Reserved    [32]byte
}

// alignTo returns the smallest multiple of alignment >= offset.
func alignTo(offset, alignment uint64) uint64 {
	if alignment == 0 {
		return offset
	}
	if rem := offset % alignment; rem != 0 {
		return offset + alignment - rem
	}
	return offset
}
