package typedesc

import "testing"

func BenchmarkParse(b *testing.B) {
	inputs := []string{"float", "float[4]", "point", "matrix", "vec2int[16]"}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Parse(inputs[i%len(inputs)])
	}
}

func BenchmarkString(b *testing.B) {
	descs := []TypeDesc{TypeFloat, NewArray(BaseFloat, 4), TypePoint, TypeMatrix44}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = descs[i%len(descs)].String()
	}
}

func BenchmarkConvertIdentity(b *testing.B) {
	src := make([]byte, 12*1024)
	dst := make([]byte, 12*1024)
	b.SetBytes(int64(len(src)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := ConvertBuffer(TypePoint, src, TypePoint, dst, 1024); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkConvertIntToFloat(b *testing.B) {
	src := intBuf(make([]int32, 1024)...)
	dst := make([]byte, 4*1024)
	b.SetBytes(int64(len(src)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := ConvertBuffer(TypeInt, src, TypeFloat, dst, 1024); err != nil {
			b.Fatal(err)
		}
	}
}
