package typedesc

import (
	"testing"

	"github.com/x448/float16"
)

func TestBaseTypeOf(t *testing.T) {
	if got := BaseTypeOf[uint8](); got != BaseUInt8 {
		t.Errorf("uint8 = %s", got)
	}
	if got := BaseTypeOf[int32](); got != BaseInt32 {
		t.Errorf("int32 = %s", got)
	}
	if got := BaseTypeOf[float16.Float16](); got != BaseHalf {
		t.Errorf("float16 = %s", got)
	}
	if got := BaseTypeOf[float64](); got != BaseDouble {
		t.Errorf("float64 = %s", got)
	}
	if got := BaseTypeOf[string](); got != BaseString {
		t.Errorf("string = %s", got)
	}
	if got := BaseTypeOf[StringHandle](); got != BaseUStringHash {
		t.Errorf("StringHandle = %s", got)
	}
	if got := BaseTypeOf[uintptr](); got != BasePtr {
		t.Errorf("uintptr = %s", got)
	}
	if got := BaseTypeOf[bool](); got != BaseUnknown {
		t.Errorf("bool = %s, expected unknown", got)
	}
}

func TestTypeDescOf(t *testing.T) {
	tests := []struct {
		got, want TypeDesc
	}{
		{TypeDescOf[float32](), TypeFloat},
		{TypeDescOf[int32](), TypeInt},
		{TypeDescOf[Vec2](), TypeVector2},
		{TypeDescOf[Vec3](), TypeVector},
		{TypeDescOf[Vec4](), TypeVector4},
		{TypeDescOf[Vec3i](), TypeVector3i},
		{TypeDescOf[Color](), TypeColor},
		{TypeDescOf[Matrix33](), TypeMatrix33},
		{TypeDescOf[Matrix44](), TypeMatrix44},
		{TypeDescOf[Box2](), TypeBox2},
		{TypeDescOf[Box3i](), TypeBox3i},
		{TypeDescOf[struct{ X int }](), TypeUnknown},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %+v, expected %+v", tt.got, tt.want)
		}
	}
}

func TestBindingSizesMatchDescriptors(t *testing.T) {
	// The in-memory size of each bound aggregate type matches its
	// descriptor's size, so bound values can back blind buffers.
	checks := []struct {
		goSize int
		desc   TypeDesc
	}{
		{4 * 2, TypeDescOf[Vec2]()},
		{4 * 3, TypeDescOf[Vec3]()},
		{4 * 16, TypeDescOf[Matrix44]()},
		{4 * 2 * 2, TypeDescOf[Box2]()},
	}
	for _, c := range checks {
		size, err := c.desc.Size()
		if err != nil {
			t.Fatalf("%s: %v", c.desc, err)
		}
		if size != c.goSize {
			t.Errorf("%s: descriptor size %d, Go size %d", c.desc, size, c.goSize)
		}
	}
}
