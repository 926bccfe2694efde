// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package typedesc

import (
	"strconv"
	"strings"
)

// Accepted spellings for scalar base types, including legacy synonyms.
var baseSpellings = map[string]BaseType{
	"unknown":     BaseUnknown,
	"none":        BaseNone,
	"uint8":       BaseUInt8,
	"uchar":       BaseUInt8,
	"int8":        BaseInt8,
	"char":        BaseInt8,
	"uint16":      BaseUInt16,
	"ushort":      BaseUInt16,
	"int16":       BaseInt16,
	"short":       BaseInt16,
	"uint":        BaseUInt32,
	"uint32":      BaseUInt32,
	"int":         BaseInt32,
	"int32":       BaseInt32,
	"uint64":      BaseUInt64,
	"ulonglong":   BaseUInt64,
	"int64":       BaseInt64,
	"longlong":    BaseInt64,
	"half":        BaseHalf,
	"float":       BaseFloat,
	"double":      BaseDouble,
	"string":      BaseString,
	"pointer":     BasePtr,
	"ustringhash": BaseUStringHash,
}

var aggSpellings = map[string]Aggregate{
	"vec2":     AggVec2,
	"vec3":     AggVec3,
	"vec4":     AggVec4,
	"matrix33": AggMatrix33,
	"matrix44": AggMatrix44,
}

// typeNames maps every legal spelling (before the optional array
// suffix) to its descriptor. Built once at init.
var typeNames = map[string]TypeDesc{}

func init() {
	for name, base := range baseSpellings {
		typeNames[name] = NewScalar(base)
	}
	// Generic aggregate spellings: aggregate name followed by base name,
	// e.g. "vec2int", "matrix33double".
	for aggName, agg := range aggSpellings {
		for baseName, base := range baseSpellings {
			if base == BaseUnknown || base == BaseNone {
				continue
			}
			typeNames[aggName+baseName] = NewAggregate(base, agg)
		}
	}
	// Semantic aliases override base, aggregate, and semantics together.
	// Some fold in a fixed array length as well (timecode, keycode, box).
	for name, t := range map[string]TypeDesc{
		"color":    TypeColor,
		"point":    TypePoint,
		"vector":   TypeVector,
		"normal":   TypeNormal,
		"vector2":  TypeVector2,
		"matrix":   TypeMatrix44,
		"matrix33": TypeMatrix33,
		"matrix44": TypeMatrix44,
		"rational": TypeRational,
		"timecode": TypeTimeCode,
		"keycode":  TypeKeyCode,
		"box2":     TypeBox2,
		"box3":     TypeBox3,
		"box2i":    TypeBox2i,
		"box3i":    TypeBox3i,
	} {
		typeNames[name] = t
	}
}

func skipSpace(s string, pos int) int {
	for pos < len(s) && (s[pos] == ' ' || s[pos] == '\t') {
		pos++
	}
	return pos
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentRune(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

// FromString parses the longest valid prefix of s that forms a legal
// type spelling: a base name or semantic alias, optionally followed by
// an array suffix "[N]" or "[]". It returns the number of bytes
// consumed. Parsing is all-or-nothing: on success the receiver is
// replaced with the parsed descriptor, on failure it returns 0 and
// leaves the receiver completely untouched.
func (t *TypeDesc) FromString(s string) int {
	pos := skipSpace(s, 0)
	start := pos
	if pos >= len(s) || !isIdentStart(s[pos]) {
		return 0
	}
	for pos < len(s) && isIdentRune(s[pos]) {
		pos++
	}
	parsed, ok := typeNames[s[start:pos]]
	if !ok {
		return 0
	}

	// Optional array suffix. Once '[' is consumed the suffix must
	// complete, otherwise the whole parse fails.
	if p := skipSpace(s, pos); p < len(s) && s[p] == '[' {
		p = skipSpace(s, p+1)
		ds := p
		for p < len(s) && s[p] >= '0' && s[p] <= '9' {
			p++
		}
		digits := s[ds:p]
		p = skipSpace(s, p)
		if p >= len(s) || s[p] != ']' {
			return 0
		}
		p++
		if digits == "" {
			parsed.ArrayLen = -1
		} else {
			n, err := strconv.ParseInt(digits, 10, 32)
			if err != nil {
				return 0
			}
			parsed.ArrayLen = int32(n)
		}
		pos = p
	}

	*t = parsed
	return pos
}

// Parse parses s in its entirety as a type spelling and returns the
// descriptor, or TypeUnknown if s is not a legal spelling (trailing
// whitespace is permitted).
func Parse(s string) TypeDesc {
	var t TypeDesc
	n := t.FromString(s)
	if n == 0 || strings.TrimRight(s[n:], " \t") != "" {
		return TypeUnknown
	}
	return t
}
