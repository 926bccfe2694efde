package typedesc

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/x448/float16"
)

func TestConvertIdentity(t *testing.T) {
	src := floatBuf(1, 2, 3, 4, 5, 6)
	for _, n := range []int{0, 1, 2} {
		dst := make([]byte, len(src))
		if err := ConvertBuffer(TypePoint, src, TypePoint, dst, n); err != nil {
			t.Fatalf("n=%d: unexpected error: %v", n, err)
		}
		want := make([]byte, len(src))
		copy(want, src[:n*12])
		if !bytes.Equal(dst, want) {
			t.Errorf("n=%d: identity copy mismatch", n)
		}
	}
}

func TestConvertEquivalentTypes(t *testing.T) {
	// Equivalent but not equal: semantics and sized/unsized differences
	// still take the raw-copy path.
	src := floatBuf(1, 2, 3)
	dst := make([]byte, 12)
	if err := ConvertBuffer(TypePoint, src, TypeVector, dst, 1); err != nil {
		t.Fatalf("point to vector: %v", err)
	}
	if !bytes.Equal(dst, src) {
		t.Error("point to vector: expected byte-exact copy")
	}

	dst2 := make([]byte, 8)
	if err := ConvertBuffer(NewArray(BaseInt32, -1), intBuf(5, 6), NewArray(BaseInt32, 2), dst2, 2); err != nil {
		t.Fatalf("unsized to sized: %v", err)
	}
	if !bytes.Equal(dst2, intBuf(5, 6)) {
		t.Error("unsized to sized: expected byte-exact copy")
	}
}

func TestConvertStringToNumber(t *testing.T) {
	dst := make([]byte, 4)
	if err := ConvertBuffer(TypeString, stringBuf("42"), TypeInt, dst, 1); err != nil {
		t.Fatalf("\"42\" to int: %v", err)
	}
	if got := int32(binary.LittleEndian.Uint32(dst)); got != 42 {
		t.Errorf("\"42\" to int = %d", got)
	}

	if err := ConvertBuffer(TypeString, stringBuf("abc"), TypeInt, dst, 1); !errors.Is(err, ErrUnsupportedConversion) {
		t.Errorf("\"abc\" to int: expected ErrUnsupportedConversion, got %v", err)
	}
	if err := ConvertBuffer(TypeString, stringBuf("3.5"), TypeInt, dst, 1); err == nil {
		t.Error("\"3.5\" to int: expected failure")
	}

	fdst := make([]byte, 4)
	if err := ConvertBuffer(TypeString, stringBuf("2.5"), TypeFloat, fdst, 1); err != nil {
		t.Fatalf("\"2.5\" to float: %v", err)
	}
	if got := math.Float32frombits(binary.LittleEndian.Uint32(fdst)); got != 2.5 {
		t.Errorf("\"2.5\" to float = %g", got)
	}
	if err := ConvertBuffer(TypeString, stringBuf("two"), TypeFloat, fdst, 1); err == nil {
		t.Error("\"two\" to float: expected failure")
	}
}

func TestConvertNumberToString(t *testing.T) {
	dst := make([]byte, 8)
	if err := ConvertBuffer(TypeInt, intBuf(-7), TypeString, dst, 1); err != nil {
		t.Fatalf("int to string: %v", err)
	}
	h := StringHandle(binary.LittleEndian.Uint64(dst))
	if s := h.String(); s != "-7" {
		t.Errorf("int to string = %q, expected \"-7\"", s)
	}

	// Aggregate sources render whole elements.
	if err := ConvertBuffer(TypePoint, floatBuf(1, 2, 3), TypeString, dst, 1); err != nil {
		t.Fatalf("point to string: %v", err)
	}
	h = StringHandle(binary.LittleEndian.Uint64(dst))
	if s := h.String(); s != "(1,2,3)" {
		t.Errorf("point to string = %q", s)
	}
}

func TestConvertNumericCasts(t *testing.T) {
	dst4 := make([]byte, 4)

	if err := ConvertBuffer(TypeFloat, floatBuf(3.9), TypeInt, dst4, 1); err != nil {
		t.Fatalf("float to int: %v", err)
	}
	if got := int32(binary.LittleEndian.Uint32(dst4)); got != 3 {
		t.Errorf("float 3.9 to int = %d, expected truncation to 3", got)
	}

	if err := ConvertBuffer(TypeUInt8, []byte{200}, TypeFloat, dst4, 1); err != nil {
		t.Fatalf("uint8 to float: %v", err)
	}
	if got := math.Float32frombits(binary.LittleEndian.Uint32(dst4)); got != 200 {
		t.Errorf("uint8 200 to float = %g", got)
	}

	if err := ConvertBuffer(TypeInt, intBuf(-3), TypeUInt, dst4, 1); err != nil {
		t.Fatalf("int to uint: %v", err)
	}
	if got := binary.LittleEndian.Uint32(dst4); got != 0xfffffffd {
		t.Errorf("int -3 to uint = %#x, no range checking expected", got)
	}

	dst2 := make([]byte, 2)
	if err := ConvertBuffer(TypeFloat, floatBuf(1.5), TypeHalf, dst2, 1); err != nil {
		t.Fatalf("float to half: %v", err)
	}
	if got := float16.Frombits(binary.LittleEndian.Uint16(dst2)).Float32(); got != 1.5 {
		t.Errorf("float 1.5 to half = %g", got)
	}

	dst8 := make([]byte, 8)
	if err := ConvertBuffer(TypeHalf, halfBuf(0.5), NewScalar(BaseDouble), dst8, 1); err != nil {
		t.Fatalf("half to double: %v", err)
	}
	if got := math.Float64frombits(binary.LittleEndian.Uint64(dst8)); got != 0.5 {
		t.Errorf("half 0.5 to double = %g", got)
	}
}

func TestConvertAggregateElementwise(t *testing.T) {
	// vec3 of int to vec3 of float, two array elements.
	src := intBuf(1, 2, 3, 4, 5, 6)
	dst := make([]byte, 24)
	if err := ConvertBuffer(NewAggregate(BaseInt32, AggVec3), src, NewAggregate(BaseFloat, AggVec3), dst, 2); err != nil {
		t.Fatalf("vec3int to vec3float: %v", err)
	}
	if !bytes.Equal(dst, floatBuf(1, 2, 3, 4, 5, 6)) {
		t.Error("vec3int to vec3float: wrong values")
	}
}

func TestConvertUnsupported(t *testing.T) {
	dst := make([]byte, 8)
	tests := []struct {
		src, dst TypeDesc
		buf      []byte
	}{
		{TypeFloat, TypeInt16, floatBuf(1)},        // only 32-bit int destinations
		{TypeFloat, TypeInt64, floatBuf(1)},
		{TypeInt, TypePointer, intBuf(1)},
		{TypeString, TypeUStringHash, stringBuf("x")},
		{TypePoint, TypeFloat, floatBuf(1, 2, 3)},  // aggregate mismatch
	}

	for _, tt := range tests {
		if err := ConvertBuffer(tt.src, tt.buf, tt.dst, dst, 1); !errors.Is(err, ErrUnsupportedConversion) {
			t.Errorf("%s to %s: expected ErrUnsupportedConversion, got %v", tt.src, tt.dst, err)
		}
	}
}

func TestConvertPartialWrite(t *testing.T) {
	// Conversion is best-effort: elements before the first failure stay
	// converted, later ones are untouched.
	src := stringBuf("10", "oops", "30")
	dst := intBuf(-1, -1, -1)
	err := ConvertBuffer(TypeString, src, TypeInt, dst, 3)
	if !errors.Is(err, ErrUnsupportedConversion) {
		t.Fatalf("expected ErrUnsupportedConversion, got %v", err)
	}
	if got := int32(binary.LittleEndian.Uint32(dst)); got != 10 {
		t.Errorf("element 0 = %d, expected 10 (already converted)", got)
	}
	if got := int32(binary.LittleEndian.Uint32(dst[8:])); got != -1 {
		t.Errorf("element 2 = %d, expected untouched -1", got)
	}
}

func TestConvertShortBuffer(t *testing.T) {
	if err := ConvertBuffer(TypeFloat, floatBuf(1), TypeFloat, make([]byte, 2), 1); !errors.Is(err, ErrShortBuffer) {
		t.Errorf("short dst: expected ErrShortBuffer, got %v", err)
	}
	if err := ConvertBuffer(TypeFloat, floatBuf(1), TypeFloat, make([]byte, 8), 2); !errors.Is(err, ErrShortBuffer) {
		t.Errorf("short src: expected ErrShortBuffer, got %v", err)
	}
	if err := ConvertBuffer(TypeFloat, nil, TypeFloat, nil, -1); err == nil {
		t.Error("negative n: expected error")
	}
}
