// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package typedesc

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	"github.com/x448/float16"
)

// FormatFlags control miscellaneous Render behavior.
type FormatFlags int

const (
	// EscapeStrings backslash-escapes quotes, backslashes, and control
	// characters in rendered string values.
	EscapeStrings FormatFlags = 1 << iota
	// QuoteSingleString applies StringFormat even to a lone scalar
	// string, which otherwise renders bare.
	QuoteSingleString
)

// Formatting configures how Render turns a described value into text.
// The per-kind formats use fmt.Sprintf verbs.
type Formatting struct {
	IntFormat    string // signed integer kinds
	UintFormat   string // unsigned integer kinds
	FloatFormat  string // half, float, double
	StringFormat string // string and resolvable hashed-string values
	PtrFormat    string // pointers and unresolvable handles

	// Aggregates are multi-part values such as vec3. These mark the
	// start, the separation between scalars, and the end.
	AggregateBegin string
	AggregateSep   string
	AggregateEnd   string

	// For arrays: the start, the separation between elements, the end.
	ArrayBegin string
	ArraySep   string
	ArrayEnd   string

	Flags FormatFlags
}

// DefaultFormatting returns the default rendering configuration:
// "%g" floats, quoted strings, "(1,2,3)" aggregates, "{...}" arrays.
func DefaultFormatting() Formatting {
	return Formatting{
		IntFormat:      "%d",
		UintFormat:     "%d",
		FloatFormat:    "%g",
		StringFormat:   "\"%s\"",
		PtrFormat:      "0x%x",
		AggregateBegin: "(",
		AggregateSep:   ",",
		AggregateEnd:   ")",
		ArrayBegin:     "{",
		ArraySep:       ",",
		ArrayEnd:       "}",
		Flags:          EscapeStrings,
	}
}

// Render returns the textual form of one value of type t stored in
// data, according to f. Arrays of aggregates nest: array delimiters
// wrap separator-joined aggregate-wrapped elements. It returns "" when
// t is an unsized array or data is too small for the described value.
func Render(t TypeDesc, data []byte, f Formatting) string {
	n, err := t.NumElements()
	if err != nil {
		return ""
	}
	es := t.ElementSize()
	if len(data) < n*es {
		return ""
	}
	// A lone scalar string renders bare unless asked otherwise.
	bare := t.BaseType == BaseString && t.Aggregate == AggScalar && !t.IsArray() &&
		f.Flags&QuoteSingleString == 0

	var b strings.Builder
	if t.IsArray() {
		b.WriteString(f.ArrayBegin)
	}
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(f.ArraySep)
		}
		f.renderElement(&b, t, data[i*es:], bare)
	}
	if t.IsArray() {
		b.WriteString(f.ArrayEnd)
	}
	return b.String()
}

func (f Formatting) renderElement(b *strings.Builder, t TypeDesc, data []byte, bare bool) {
	agg := int(t.Aggregate)
	bs := t.BaseType.Size()
	if agg > 1 {
		b.WriteString(f.AggregateBegin)
	}
	for j := 0; j < agg; j++ {
		if j > 0 {
			b.WriteString(f.AggregateSep)
		}
		b.WriteString(f.renderScalar(t.BaseType, data[j*bs:], bare))
	}
	if agg > 1 {
		b.WriteString(f.AggregateEnd)
	}
}

func (f Formatting) renderScalar(base BaseType, p []byte, bare bool) string {
	switch base {
	case BaseUInt8:
		return fmt.Sprintf(f.UintFormat, p[0])
	case BaseInt8:
		return fmt.Sprintf(f.IntFormat, int8(p[0]))
	case BaseUInt16:
		return fmt.Sprintf(f.UintFormat, binary.LittleEndian.Uint16(p))
	case BaseInt16:
		return fmt.Sprintf(f.IntFormat, int16(binary.LittleEndian.Uint16(p)))
	case BaseUInt32:
		return fmt.Sprintf(f.UintFormat, binary.LittleEndian.Uint32(p))
	case BaseInt32:
		return fmt.Sprintf(f.IntFormat, int32(binary.LittleEndian.Uint32(p)))
	case BaseUInt64:
		return fmt.Sprintf(f.UintFormat, binary.LittleEndian.Uint64(p))
	case BaseInt64:
		return fmt.Sprintf(f.IntFormat, int64(binary.LittleEndian.Uint64(p)))
	case BaseHalf:
		return fmt.Sprintf(f.FloatFormat, float16.Frombits(binary.LittleEndian.Uint16(p)).Float32())
	case BaseFloat:
		return fmt.Sprintf(f.FloatFormat, math.Float32frombits(binary.LittleEndian.Uint32(p)))
	case BaseDouble:
		return fmt.Sprintf(f.FloatFormat, math.Float64frombits(binary.LittleEndian.Uint64(p)))
	case BaseString, BaseUStringHash:
		h := StringHandle(binary.LittleEndian.Uint64(p))
		s, ok := h.Lookup()
		if !ok {
			return fmt.Sprintf(f.PtrFormat, uint64(h))
		}
		if f.Flags&EscapeStrings != 0 {
			s = escapeString(s)
		}
		if bare {
			return s
		}
		return fmt.Sprintf(f.StringFormat, s)
	case BasePtr:
		return fmt.Sprintf(f.PtrFormat, binary.LittleEndian.Uint64(p))
	}
	return ""
}

func escapeString(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
