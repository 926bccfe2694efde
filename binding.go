// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package typedesc

import "github.com/x448/float16"

// Fixed-layout value types for the common aggregates, so native Go data
// can be bound to descriptors through TypeDescOf.
type (
	Vec2     [2]float32
	Vec3     [3]float32
	Vec4     [4]float32
	Vec2i    [2]int32
	Vec3i    [3]int32
	Color    [3]float32
	Matrix33 [9]float32
	Matrix44 [16]float32

	Box2  [2]Vec2
	Box3  [2]Vec3
	Box2i [2]Vec2i
	Box3i [2]Vec3i
)

// BaseTypeOf returns the base type describing the scalar Go type T, or
// BaseUnknown if T has no descriptor binding.
func BaseTypeOf[T any]() BaseType {
	var z T
	switch any(z).(type) {
	case uint8:
		return BaseUInt8
	case int8:
		return BaseInt8
	case uint16:
		return BaseUInt16
	case int16:
		return BaseInt16
	case uint32:
		return BaseUInt32
	case int32:
		return BaseInt32
	case uint64:
		return BaseUInt64
	case int64:
		return BaseInt64
	case float16.Float16:
		return BaseHalf
	case float32:
		return BaseFloat
	case float64:
		return BaseDouble
	case string:
		return BaseString
	case StringHandle:
		return BaseUStringHash
	case uintptr:
		return BasePtr
	}
	return BaseUnknown
}

// TypeDescOf returns the descriptor bound to the Go type T: scalars map
// through BaseTypeOf, the aggregate value types above map to the named
// descriptors (Vec3 to TypeVector, Color to TypeColor, and so on).
// Unsupported types map to TypeUnknown.
func TypeDescOf[T any]() TypeDesc {
	var z T
	switch any(z).(type) {
	case Vec2:
		return TypeVector2
	case Vec3:
		return TypeVector
	case Vec4:
		return TypeVector4
	case Vec2i:
		return TypeVector2i
	case Vec3i:
		return TypeVector3i
	case Color:
		return TypeColor
	case Matrix33:
		return TypeMatrix33
	case Matrix44:
		return TypeMatrix44
	case Box2:
		return TypeBox2
	case Box3:
		return TypeBox3
	case Box2i:
		return TypeBox2i
	case Box3i:
		return TypeBox3i
	}
	if b := BaseTypeOf[T](); b != BaseUnknown {
		return NewScalar(b)
	}
	return TypeUnknown
}
