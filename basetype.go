// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package typedesc

// BaseType is the scalar kind at the heart of a TypeDesc.
//
// The numeric tag values are part of the wire/ABI contract and must not
// be reordered.
type BaseType uint8

const (
	BaseUnknown BaseType = iota // unknown type
	BaseNone                    // void/no type
	BaseUInt8                   // 8-bit unsigned int, 0..255
	BaseInt8                    // 8-bit signed int, -128..127
	BaseUInt16                  // 16-bit unsigned int
	BaseInt16                   // 16-bit signed int
	BaseUInt32                  // 32-bit unsigned int
	BaseInt32                   // 32-bit signed int
	BaseUInt64                  // 64-bit unsigned int
	BaseInt64                   // 64-bit signed int
	BaseHalf                    // 16-bit IEEE float
	BaseFloat                   // 32-bit IEEE float
	BaseDouble                  // 64-bit IEEE float
	BaseString                  // interned character string, stored as a handle
	BasePtr                     // a raw pointer value
	BaseUStringHash             // the hash of an interned string
	LastBase
)

// handleSize is the in-buffer width of String, Ptr, and UStringHash
// elements. Buffers always store a fixed 8-byte handle for these kinds,
// independent of the host pointer width, so descriptor-tagged blobs have
// a stable layout across platforms.
const handleSize = 8

var baseTypeSizes = [LastBase]int{
	BaseUnknown:     0,
	BaseNone:        0,
	BaseUInt8:       1,
	BaseInt8:        1,
	BaseUInt16:      2,
	BaseInt16:       2,
	BaseUInt32:      4,
	BaseInt32:       4,
	BaseUInt64:      8,
	BaseInt64:       8,
	BaseHalf:        2,
	BaseFloat:       4,
	BaseDouble:      8,
	BaseString:      handleSize,
	BasePtr:         handleSize,
	BaseUStringHash: handleSize,
}

// Canonical lowercase spellings; the 32-bit integer kinds print as the
// legacy "int"/"uint" spellings.
var baseTypeNames = [LastBase]string{
	BaseUnknown:     "unknown",
	BaseNone:        "none",
	BaseUInt8:       "uint8",
	BaseInt8:        "int8",
	BaseUInt16:      "uint16",
	BaseInt16:       "int16",
	BaseUInt32:      "uint",
	BaseInt32:       "int",
	BaseUInt64:      "uint64",
	BaseInt64:       "int64",
	BaseHalf:        "half",
	BaseFloat:       "float",
	BaseDouble:      "double",
	BaseString:      "string",
	BasePtr:         "pointer",
	BaseUStringHash: "ustringhash",
}

// String returns the canonical lowercase name of the base type.
func (b BaseType) String() string {
	if b < LastBase {
		return baseTypeNames[b]
	}
	return "unknown"
}

// Size returns the byte width of one scalar of this kind. String, Ptr,
// and UStringHash are represented by an 8-byte handle in buffers.
func (b BaseType) Size() int {
	if b < LastBase {
		return baseTypeSizes[b]
	}
	return 0
}

// IsFloatingPoint reports whether the base type is half, float, or double.
func (b BaseType) IsFloatingPoint() bool {
	return b == BaseHalf || b == BaseFloat || b == BaseDouble
}

// IsSigned reports whether the base type is a signed integer kind.
func (b BaseType) IsSigned() bool {
	return b == BaseInt8 || b == BaseInt16 || b == BaseInt32 || b == BaseInt64
}

func (b BaseType) isUnsignedInt() bool {
	return b == BaseUInt8 || b == BaseUInt16 || b == BaseUInt32 || b == BaseUInt64
}

func (b BaseType) isInt() bool {
	return b.IsSigned() || b.isUnsignedInt()
}

func (b BaseType) isNumeric() bool {
	return b.isInt() || b.IsFloatingPoint()
}

// intWidth returns the byte width of an integer kind, 0 otherwise.
func (b BaseType) intWidth() int {
	if b.isInt() {
		return baseTypeSizes[b]
	}
	return 0
}

var signedOfWidth = map[int]BaseType{
	1: BaseInt8,
	2: BaseInt16,
	4: BaseInt32,
	8: BaseInt64,
}

// MergeBaseTypes returns a base type that can represent values of both a
// and b without loss of range or precision, where one exists, or the
// best guess otherwise. The promotion lattice:
//
//   - equal kinds merge to themselves; Unknown and None defer to the
//     other side
//   - Double absorbs every numeric kind
//   - Float absorbs Half and integers up to 16 bits (exact in a 24-bit
//     mantissa); wider integers push the result to Double
//   - Half absorbs 8-bit integers; 16-bit integers push to Float,
//     wider ones to Double
//   - integers of the same signedness merge to the wider width
//   - mixed-sign integers merge to a signed kind wide enough for the
//     unsigned range (double the unsigned width); when that would need
//     more than 64 bits the result is Double, the best guess available
//   - String, Ptr, and UStringHash merge only with themselves; any
//     other pairing yields Unknown
//
// MergeBaseTypes is commutative and idempotent.
func MergeBaseTypes(a, b BaseType) BaseType {
	if a == b {
		return a
	}
	if a == BaseUnknown || a == BaseNone {
		return b
	}
	if b == BaseUnknown || b == BaseNone {
		return a
	}
	if !a.isNumeric() || !b.isNumeric() {
		return BaseUnknown
	}
	if a == BaseDouble || b == BaseDouble {
		return BaseDouble
	}
	if a == BaseFloat || b == BaseFloat {
		other := a
		if other == BaseFloat {
			other = b
		}
		if other == BaseHalf || other.intWidth() <= 2 {
			return BaseFloat
		}
		return BaseDouble
	}
	if a == BaseHalf || b == BaseHalf {
		other := a
		if other == BaseHalf {
			other = b
		}
		switch other.intWidth() {
		case 1:
			return BaseHalf
		case 2:
			return BaseFloat
		default:
			return BaseDouble
		}
	}
	// Both are integers now.
	aw, bw := a.intWidth(), b.intWidth()
	if a.IsSigned() == b.IsSigned() {
		wider := a
		if bw > aw {
			wider = b
		}
		return wider
	}
	// Mixed signedness: a signed kind covering the unsigned range.
	sw, uw := aw, bw
	if a.isUnsignedInt() {
		sw, uw = bw, aw
	}
	need := 2 * uw
	if sw > need {
		need = sw
	}
	if t, ok := signedOfWidth[need]; ok {
		return t
	}
	return BaseDouble
}

// MergeBaseTypes3 folds MergeBaseTypes left to right over three kinds.
func MergeBaseTypes3(a, b, c BaseType) BaseType {
	return MergeBaseTypes(MergeBaseTypes(a, b), c)
}
