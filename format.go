// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package typedesc

import "strconv"

var aggNames = map[Aggregate]string{
	AggVec2:     "vec2",
	AggVec3:     "vec3",
	AggVec4:     "vec4",
	AggMatrix33: "matrix33",
	AggMatrix44: "matrix44",
}

// String returns the canonical shortest spelling of the descriptor,
// for example "float", "int[5]", "normal", "vec2int". The spelling
// reproduces the descriptor as closely as the grammar allows; semantics
// hints without a named alias are dropped.
func (t TypeDesc) String() string {
	// Aliases that fold in the array length.
	switch t {
	case TypeTimeCode:
		return "timecode"
	case TypeKeyCode:
		return "keycode"
	case TypeBox2:
		return "box2"
	case TypeBox3:
		return "box3"
	case TypeBox2i:
		return "box2i"
	case TypeBox3i:
		return "box3i"
	}
	s := t.ElementType().elementName()
	if t.ArrayLen > 0 {
		s += "[" + strconv.Itoa(int(t.ArrayLen)) + "]"
	} else if t.ArrayLen < 0 {
		s += "[]"
	}
	return s
}

// elementName spells a non-array descriptor: a semantic alias where one
// matches exactly, the bare base name for scalars, or the generic
// aggregate-plus-base spelling.
func (t TypeDesc) elementName() string {
	switch t {
	case TypeColor:
		return "color"
	case TypePoint:
		return "point"
	case TypeVector:
		return "vector"
	case TypeNormal:
		return "normal"
	case TypeVector2:
		return "vector2"
	case TypeRational:
		return "rational"
	case TypeMatrix33:
		return "matrix33"
	case TypeMatrix44:
		return "matrix"
	}
	if t.Aggregate == AggScalar || !t.Aggregate.IsValid() {
		return t.BaseType.String()
	}
	return aggNames[t.Aggregate] + t.BaseType.String()
}
