// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package typedesc

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/x448/float16"
)

// ErrUnsupportedConversion is returned by ConvertBuffer for type
// pairings that have no defined conversion.
var ErrUnsupportedConversion = errors.New("typedesc: unsupported conversion")

// ErrShortBuffer is returned when a caller-supplied buffer is smaller
// than the described data.
var ErrShortBuffer = errors.New("typedesc: buffer too small for described data")

// ConvertBuffer copies n logical elements (each ElementSize bytes) from
// a buffer described by srcType into a buffer described by dstType.
// Buffers use a fixed little-endian scalar layout; String, Ptr, and
// UStringHash scalars are 8-byte handles.
//
// If the two types are equivalent the data is copied byte for byte.
// Otherwise each element converts per scalar according to dstType's
// base kind:
//
//   - a string destination always succeeds, receiving the default
//     textual rendering of the source element (interned, with its
//     handle written to dst);
//   - a 32-bit integer destination accepts any numeric source via
//     best-effort cast (no range checking; sign and overflow are the
//     caller's responsibility), and a string source whose full contents
//     form a valid integer literal;
//   - a floating-point destination accepts any numeric source via
//     cast, and a string source that parses as a float literal;
//   - every other pairing fails with ErrUnsupportedConversion.
//
// Conversion is best-effort: if element k fails, elements before k
// remain converted in dst and elements from k on are untouched.
func ConvertBuffer(srcType TypeDesc, src []byte, dstType TypeDesc, dst []byte, n int) error {
	if n < 0 {
		return fmt.Errorf("typedesc: negative element count %d", n)
	}
	if n == 0 {
		return nil
	}
	srcES, dstES := srcType.ElementSize(), dstType.ElementSize()
	if len(src) < n*srcES || len(dst) < n*dstES {
		return ErrShortBuffer
	}
	if srcType.Equivalent(dstType) {
		copy(dst[:n*dstES], src[:n*srcES])
		return nil
	}
	st, dt := srcType.ElementType(), dstType.ElementType()
	for i := 0; i < n; i++ {
		if err := convertElement(st, src[i*srcES:], dt, dst[i*dstES:]); err != nil {
			return err
		}
	}
	return nil
}

func convertElement(st TypeDesc, src []byte, dt TypeDesc, dst []byte) error {
	// String destination: render the whole source element.
	if dt.BaseType == BaseString && dt.Aggregate == AggScalar {
		s := Render(st, src[:st.ElementSize()], DefaultFormatting())
		binary.LittleEndian.PutUint64(dst, uint64(Intern(s)))
		return nil
	}
	if st.Aggregate != dt.Aggregate {
		return fmt.Errorf("typedesc: %s to %s: aggregate mismatch: %w", st, dt, ErrUnsupportedConversion)
	}
	sbs, dbs := st.BaseType.Size(), dt.BaseType.Size()
	for j := 0; j < int(dt.Aggregate); j++ {
		if err := convertScalar(st.BaseType, src[j*sbs:], dt.BaseType, dst[j*dbs:]); err != nil {
			return err
		}
	}
	return nil
}

func convertScalar(sb BaseType, src []byte, db BaseType, dst []byte) error {
	switch db {
	case BaseInt32, BaseUInt32:
		v, err := scalarAsInt64(sb, src)
		if err != nil {
			return err
		}
		binary.LittleEndian.PutUint32(dst, uint32(v))
		return nil
	case BaseHalf, BaseFloat, BaseDouble:
		v, err := scalarAsFloat64(sb, src)
		if err != nil {
			return err
		}
		switch db {
		case BaseHalf:
			binary.LittleEndian.PutUint16(dst, float16.Fromfloat32(float32(v)).Bits())
		case BaseFloat:
			binary.LittleEndian.PutUint32(dst, math.Float32bits(float32(v)))
		case BaseDouble:
			binary.LittleEndian.PutUint64(dst, math.Float64bits(v))
		}
		return nil
	}
	return fmt.Errorf("typedesc: %s to %s: %w", sb, db, ErrUnsupportedConversion)
}

// scalarAsInt64 reads one scalar of kind b as a signed 64-bit integer.
// Wider and unsigned kinds cast without range checking; floats
// truncate; strings must parse in full as an integer literal.
func scalarAsInt64(b BaseType, p []byte) (int64, error) {
	switch b {
	case BaseUInt8:
		return int64(p[0]), nil
	case BaseInt8:
		return int64(int8(p[0])), nil
	case BaseUInt16:
		return int64(binary.LittleEndian.Uint16(p)), nil
	case BaseInt16:
		return int64(int16(binary.LittleEndian.Uint16(p))), nil
	case BaseUInt32:
		return int64(binary.LittleEndian.Uint32(p)), nil
	case BaseInt32:
		return int64(int32(binary.LittleEndian.Uint32(p))), nil
	case BaseUInt64:
		return int64(binary.LittleEndian.Uint64(p)), nil
	case BaseInt64:
		return int64(binary.LittleEndian.Uint64(p)), nil
	case BaseHalf:
		return int64(float16.Frombits(binary.LittleEndian.Uint16(p)).Float32()), nil
	case BaseFloat:
		return int64(math.Float32frombits(binary.LittleEndian.Uint32(p))), nil
	case BaseDouble:
		return int64(math.Float64frombits(binary.LittleEndian.Uint64(p))), nil
	case BaseString:
		s, err := stringScalar(p)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("typedesc: %q is not an integer: %w", s, ErrUnsupportedConversion)
		}
		return v, nil
	}
	return 0, fmt.Errorf("typedesc: %s to integer: %w", b, ErrUnsupportedConversion)
}

// scalarAsFloat64 reads one scalar of kind b as a float64. Integer
// kinds cast; strings must parse in full as a float literal.
func scalarAsFloat64(b BaseType, p []byte) (float64, error) {
	switch b {
	case BaseUInt8:
		return float64(p[0]), nil
	case BaseInt8:
		return float64(int8(p[0])), nil
	case BaseUInt16:
		return float64(binary.LittleEndian.Uint16(p)), nil
	case BaseInt16:
		return float64(int16(binary.LittleEndian.Uint16(p))), nil
	case BaseUInt32:
		return float64(binary.LittleEndian.Uint32(p)), nil
	case BaseInt32:
		return float64(int32(binary.LittleEndian.Uint32(p))), nil
	case BaseUInt64:
		return float64(binary.LittleEndian.Uint64(p)), nil
	case BaseInt64:
		return float64(int64(binary.LittleEndian.Uint64(p))), nil
	case BaseHalf:
		return float64(float16.Frombits(binary.LittleEndian.Uint16(p)).Float32()), nil
	case BaseFloat:
		return float64(math.Float32frombits(binary.LittleEndian.Uint32(p))), nil
	case BaseDouble:
		return math.Float64frombits(binary.LittleEndian.Uint64(p)), nil
	case BaseString:
		s, err := stringScalar(p)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0, fmt.Errorf("typedesc: %q is not a float: %w", s, ErrUnsupportedConversion)
		}
		return v, nil
	}
	return 0, fmt.Errorf("typedesc: %s to float: %w", b, ErrUnsupportedConversion)
}

func stringScalar(p []byte) (string, error) {
	h := StringHandle(binary.LittleEndian.Uint64(p))
	s, ok := h.Lookup()
	if !ok {
		return "", fmt.Errorf("typedesc: unresolvable string handle %#x: %w", uint64(h), ErrUnsupportedConversion)
	}
	return s, nil
}
