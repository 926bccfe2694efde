// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package typedesc describes the binary shape of data reachable only
// through untyped ("blind") buffers.
//
// A TypeDesc is a small, fixed-layout value that tags a blob of memory
// with enough information for independent modules (attribute stores,
// pixel-format tables, metadata readers/writers) to agree on what the
// bytes mean without sharing compile-time type information. It is not
// meant to be comprehensive: there is no provision for structs, unions,
// pointers-to-structures, or nested type definitions. Just simple
// integer and floating point kinds, common aggregates such as 3-vectors
// and 4x4 matrices, and arrays thereof.
//
// Descriptors round-trip through a short textual grammar:
//
//	t := typedesc.Parse("float[4]")
//	t.String() // "float[4]"
//
// and buffers described by one descriptor convert generically into
// buffers described by another:
//
//	err := typedesc.ConvertBuffer(typedesc.TypeInt, src, typedesc.TypeString, dst, 1)
//
// TypeDesc values are immutable plain data: safe to copy, compare with
// ==, and read from any number of goroutines without synchronization.
package typedesc

import (
	"errors"
	"math"
)

// Aggregate describes whether a TypeDesc is a simple scalar of one of
// the base types, or one of several fixed aggregates. Its value is the
// number of scalar values composing one logical element.
//
// Aggregates and arrays are different: NewArray(BaseFloat, 3) is an
// array of three floats, New(BaseFloat, AggVec3, SemNone, 0) is a
// single 3-component vector, and New(BaseFloat, AggVec3, SemNone, 3)
// is an array of three such vectors.
type Aggregate uint8

const (
	AggScalar   Aggregate = 1  // a single scalar value (the default)
	AggVec2     Aggregate = 2  // 2 values representing a 2D vector
	AggVec3     Aggregate = 3  // 3 values representing a 3D vector
	AggVec4     Aggregate = 4  // 4 values representing a 4D vector
	AggMatrix33 Aggregate = 9  // 9 values representing a 3x3 matrix
	AggMatrix44 Aggregate = 16 // 16 values representing a 4x4 matrix
)

// IsValid reports whether a is one of the six legal arities.
func (a Aggregate) IsValid() bool {
	switch a {
	case AggScalar, AggVec2, AggVec3, AggVec4, AggMatrix33, AggMatrix44:
		return true
	}
	return false
}

// VecSemantics hints at what an aggregate represents, for example
// whether a spatial 3-vector should transform as a point, a direction,
// or a surface normal. It never affects byte layout or size; only
// equivalence classification and pretty-printing.
type VecSemantics uint8

const (
	SemNone     VecSemantics = iota // no semantic hint
	SemColor                        // color
	SemPoint                        // point: a spatial location
	SemVector                       // vector: a spatial direction
	SemNormal                       // normal: a surface normal
	SemTimeCode                     // uint[2] holding a packed SMPTE timecode
	SemKeyCode                      // int[7] holding an SMPTE keycode
	SemRational                     // a 2-vector holding val[0]/val[1]
	SemBox                          // a vec2[2] or vec3[2] min/max bounds
)

// ErrUnsized is returned by size-dependent queries on a descriptor
// whose array length is unspecified.
var ErrUnsized = errors.New("typedesc: array of unspecified length")

// TypeDesc describes the shape of one value: a base scalar kind, an
// aggregate arity, an advisory semantics hint, and an array length.
//
// ArrayLen == 0 means not an array, > 0 a fixed-size array of that many
// elements, and < 0 an array of unspecified length. Size-dependent
// queries on an unsized descriptor return ErrUnsized.
//
// Use TypeUnknown rather than the zero value for an explicitly invalid
// descriptor; the zero value has a zero Aggregate, which no legal
// descriptor carries.
type TypeDesc struct {
	BaseType     BaseType
	Aggregate    Aggregate
	VecSemantics VecSemantics
	ArrayLen     int32
}

// New constructs a descriptor from its four fields.
func New(base BaseType, agg Aggregate, sem VecSemantics, arrayLen int) TypeDesc {
	return TypeDesc{BaseType: base, Aggregate: agg, VecSemantics: sem, ArrayLen: int32(arrayLen)}
}

// NewScalar constructs a scalar descriptor of the given base type with
// no semantics and no array-ness.
func NewScalar(base BaseType) TypeDesc {
	return TypeDesc{BaseType: base, Aggregate: AggScalar}
}

// NewArray constructs an array of n non-aggregate scalars. n < 0 marks
// an array of unspecified length.
func NewArray(base BaseType, n int) TypeDesc {
	return TypeDesc{BaseType: base, Aggregate: AggScalar, ArrayLen: int32(n)}
}

// NewAggregate constructs a single aggregate element with no semantics.
func NewAggregate(base BaseType, agg Aggregate) TypeDesc {
	return TypeDesc{BaseType: base, Aggregate: agg}
}

// NumElements returns 1 if the descriptor is not an array, or the array
// length. It fails with ErrUnsized for arrays of unspecified length.
func (t TypeDesc) NumElements() (int, error) {
	if t.ArrayLen < 0 {
		return 0, ErrUnsized
	}
	if t.ArrayLen == 0 {
		return 1, nil
	}
	return int(t.ArrayLen), nil
}

// BaseValues returns the total number of scalar values: the aggregate
// arity multiplied by the number of elements.
func (t TypeDesc) BaseValues() (int, error) {
	n, err := t.NumElements()
	if err != nil {
		return 0, err
	}
	return n * int(t.Aggregate), nil
}

// IsArray reports whether the descriptor describes an array.
func (t TypeDesc) IsArray() bool { return t.ArrayLen != 0 }

// IsSizedArray reports whether the descriptor describes an array of
// known length.
func (t TypeDesc) IsSizedArray() bool { return t.ArrayLen > 0 }

// IsUnsizedArray reports whether the descriptor describes an array
// whose length is unspecified.
func (t TypeDesc) IsUnsizedArray() bool { return t.ArrayLen < 0 }

// Size returns the total byte size of a value of this type. The result
// clamps to the maximum representable byte count rather than wrapping
// if the product would overflow. It fails with ErrUnsized for arrays of
// unspecified length.
func (t TypeDesc) Size() (int, error) {
	n, err := t.NumElements()
	if err != nil {
		return 0, err
	}
	es := t.ElementSize()
	if es > 0 && n > math.MaxInt/es {
		return math.MaxInt, nil
	}
	return n * es, nil
}

// ElementSize returns the byte size of one element, ignoring array-ness.
func (t TypeDesc) ElementSize() int {
	return int(t.Aggregate) * t.BaseType.Size()
}

// ElementType returns the same descriptor with the array-ness stripped.
func (t TypeDesc) ElementType() TypeDesc {
	t.ArrayLen = 0
	return t
}

// ScalarType returns just the underlying scalar kind, stripped of both
// array-ness and aggregate-ness.
func (t TypeDesc) ScalarType() TypeDesc {
	return NewScalar(t.BaseType)
}

// IsUnknown reports whether the base type is Unknown.
func (t TypeDesc) IsUnknown() bool { return t.BaseType == BaseUnknown }

// IsValid reports whether the descriptor describes a known type; it is
// the truthiness check for TypeDesc.
func (t TypeDesc) IsValid() bool { return t.BaseType != BaseUnknown }

// Equivalent reports whether two descriptors match on base type and
// aggregate, with either identical array lengths or one side sized and
// the other unsized. Semantics hints are ignored, so Equivalent is
// coarser than ==.
func (t TypeDesc) Equivalent(o TypeDesc) bool {
	return t.BaseType == o.BaseType && t.Aggregate == o.Aggregate &&
		(t.ArrayLen == o.ArrayLen ||
			(t.IsUnsizedArray() && o.IsSizedArray()) ||
			(t.IsSizedArray() && o.IsUnsizedArray()))
}

// Compare orders descriptors lexicographically over (BaseType,
// Aggregate, VecSemantics, ArrayLen), returning -1, 0, or +1. The
// ordering is total and suitable for sorted containers.
func (t TypeDesc) Compare(o TypeDesc) int {
	switch {
	case t.BaseType != o.BaseType:
		if t.BaseType < o.BaseType {
			return -1
		}
		return 1
	case t.Aggregate != o.Aggregate:
		if t.Aggregate < o.Aggregate {
			return -1
		}
		return 1
	case t.VecSemantics != o.VecSemantics:
		if t.VecSemantics < o.VecSemantics {
			return -1
		}
		return 1
	case t.ArrayLen != o.ArrayLen:
		if t.ArrayLen < o.ArrayLen {
			return -1
		}
		return 1
	}
	return 0
}

// Less reports whether t orders before o.
func (t TypeDesc) Less(o TypeDesc) bool { return t.Compare(o) < 0 }

// IsVec2 reports whether t is a single 2-vector of the given base type,
// ignoring semantics.
func (t TypeDesc) IsVec2(base BaseType) bool {
	return t.Aggregate == AggVec2 && t.BaseType == base && !t.IsArray()
}

// IsVec3 reports whether t is a single 3-vector of the given base type,
// ignoring semantics.
func (t TypeDesc) IsVec3(base BaseType) bool {
	return t.Aggregate == AggVec3 && t.BaseType == base && !t.IsArray()
}

// IsVec4 reports whether t is a single 4-vector of the given base type,
// ignoring semantics.
func (t TypeDesc) IsVec4(base BaseType) bool {
	return t.Aggregate == AggVec4 && t.BaseType == base && !t.IsArray()
}

// IsBox2 reports whether t is a vec2[2] of the given base type with box
// semantics, i.e. a 2D min/max bounds.
func (t TypeDesc) IsBox2(base BaseType) bool {
	return t.Aggregate == AggVec2 && t.BaseType == base && t.ArrayLen == 2 &&
		t.VecSemantics == SemBox
}

// IsBox3 reports whether t is a vec3[2] of the given base type with box
// semantics, i.e. a 3D min/max bounds.
func (t TypeDesc) IsBox3(base BaseType) bool {
	return t.Aggregate == AggVec3 && t.BaseType == base && t.ArrayLen == 2 &&
		t.VecSemantics == SemBox
}

// Named descriptors for commonly used types.
var (
	TypeUnknown     = TypeDesc{BaseType: BaseUnknown, Aggregate: AggScalar}
	TypeFloat       = NewScalar(BaseFloat)
	TypeColor       = New(BaseFloat, AggVec3, SemColor, 0)
	TypePoint       = New(BaseFloat, AggVec3, SemPoint, 0)
	TypeVector      = New(BaseFloat, AggVec3, SemVector, 0)
	TypeNormal      = New(BaseFloat, AggVec3, SemNormal, 0)
	TypeMatrix33    = NewAggregate(BaseFloat, AggMatrix33)
	TypeMatrix44    = NewAggregate(BaseFloat, AggMatrix44)
	TypeMatrix      = TypeMatrix44
	TypeFloat2      = NewAggregate(BaseFloat, AggVec2)
	TypeVector2     = New(BaseFloat, AggVec2, SemVector, 0)
	TypeFloat4      = NewAggregate(BaseFloat, AggVec4)
	TypeVector4     = TypeFloat4
	TypeString      = NewScalar(BaseString)
	TypeInt         = NewScalar(BaseInt32)
	TypeUInt        = NewScalar(BaseUInt32)
	TypeInt32       = TypeInt
	TypeUInt32      = TypeUInt
	TypeInt16       = NewScalar(BaseInt16)
	TypeUInt16      = NewScalar(BaseUInt16)
	TypeInt8        = NewScalar(BaseInt8)
	TypeUInt8       = NewScalar(BaseUInt8)
	TypeInt64       = NewScalar(BaseInt64)
	TypeUInt64      = NewScalar(BaseUInt64)
	TypeVector2i    = NewAggregate(BaseInt32, AggVec2)
	TypeVector3i    = NewAggregate(BaseInt32, AggVec3)
	TypeBox2        = New(BaseFloat, AggVec2, SemBox, 2)
	TypeBox3        = New(BaseFloat, AggVec3, SemBox, 2)
	TypeBox2i       = New(BaseInt32, AggVec2, SemBox, 2)
	TypeBox3i       = New(BaseInt32, AggVec3, SemBox, 2)
	TypeHalf        = NewScalar(BaseHalf)
	TypeTimeCode    = New(BaseUInt32, AggScalar, SemTimeCode, 2)
	TypeKeyCode     = New(BaseInt32, AggScalar, SemKeyCode, 7)
	TypeRational    = New(BaseInt32, AggVec2, SemRational, 0)
	TypePointer     = NewScalar(BasePtr)
	TypeUStringHash = NewScalar(BaseUStringHash)
)
