package wire

import (
	"math"
	"testing"
)

func TestUint16_RoundTrip(t *testing.T) {
	tests := []uint16{0, 1, 0x7fff, 0x8000, 0xffff}
	for _, v := range tests {
		buf := make([]byte, 2)
		PutUint16(buf, v)
		if got := Uint16(buf); got != v {
			t.Errorf("Uint16(PutUint16(%d)) = %d", v, got)
		}
	}
}

func TestInt16_RoundTrip(t *testing.T) {
	tests := []int16{0, 1, -1, math.MinInt16, math.MaxInt16}
	for _, v := range tests {
		buf := make([]byte, 2)
		PutUint16(buf, uint16(v))
		if got := Int16(buf); got != v {
			t.Errorf("Int16(PutUint16(uint16(%d))) = %d", v, got)
		}
	}
}

func TestUint32_RoundTrip(t *testing.T) {
	tests := []uint32{0, 1, 0x7fffffff, 0x80000000, 0xffffffff}
	for _, v := range tests {
		buf := make([]byte, 4)
		PutUint32(buf, v)
		if got := Uint32(buf); got != v {
			t.Errorf("Uint32(PutUint32(%d)) = %d", v, got)
		}
	}
}

func TestInt32_RoundTrip(t *testing.T) {
	tests := []int32{0, 1, -1, math.MinInt32, math.MaxInt32}
	for _, v := range tests {
		buf := make([]byte, 4)
		PutUint32(buf, uint32(v))
		if got := Int32(buf); got != v {
			t.Errorf("Int32(PutUint32(uint32(%d))) = %d", v, got)
		}
	}
}

func TestUint64_RoundTrip(t *testing.T) {
	tests := []uint64{0, 1, 0x7fffffffffffffff, 0x8000000000000000, 0xffffffffffffffff}
	for _, v := range tests {
		buf := make([]byte, 8)
		PutUint64(buf, v)
		if got := Uint64(buf); got != v {
			t.Errorf("Uint64(PutUint64(%d)) = %d", v, got)
		}
	}
}

func TestInt64_RoundTrip(t *testing.T) {
	tests := []int64{0, 1, -1, math.MinInt64, math.MaxInt64}
	for _, v := range tests {
		buf := make([]byte, 8)
		PutUint64(buf, uint64(v))
		if got := Int64(buf); got != v {
			t.Errorf("Int64(PutUint64(uint64(%d))) = %d", v, got)
		}
	}
}

func TestUint32_BigEndianByteOrder(t *testing.T) {
	buf := make([]byte, 4)
	PutUint32(buf, 0x01020304)
	want := []byte{0x01, 0x02, 0x03, 0x04}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("byte %d: got 0x%02x, want 0x%02x", i, buf[i], want[i])
		}
	}
}

func TestFloat32_RoundTrip(t *testing.T) {
	tests := []float32{
		0, -0, 1, -1, 1.25, -123456.75,
		math.MaxFloat32, math.SmallestNonzeroFloat32,
		float32(math.Inf(1)), float32(math.Inf(-1)),
	}
	for _, v := range tests {
		buf := make([]byte, 4)
		PutFloat32(buf, v)
		if got := Float32(buf); got != v {
			t.Errorf("Float32(PutFloat32(%v)) = %v", v, got)
		}
	}
}

func TestFloat32_NaN(t *testing.T) {
	buf := make([]byte, 4)
	PutFloat32(buf, float32(math.NaN()))
	got := Float32(buf)
	if !math.IsNaN(float64(got)) {
		t.Fatalf("expected NaN, got %v", got)
	}
}

func TestFloat64_RoundTrip(t *testing.T) {
	tests := []float64{
		0, -0, 1, -1, 2.375, -123456789.125,
		math.MaxFloat64, math.SmallestNonzeroFloat64,
		math.Inf(1), math.Inf(-1),
	}
	for _, v := range tests {
		buf := make([]byte, 8)
		PutFloat64(buf, v)
		if got := Float64(buf); got != v {
			t.Errorf("Float64(PutFloat64(%v)) = %v", v, got)
		}
	}
}

func TestFloat64_NaN(t *testing.T) {
	buf := make([]byte, 8)
	PutFloat64(buf, math.NaN())
	got := Float64(buf)
	if !math.IsNaN(got) {
		t.Fatalf("expected NaN, got %v", got)
	}
}
