package utils

import (
	"bytes"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

var alignTests = []struct {
	in  int
	out int
}{
	{0, 0},
	{1, 4},
	{4, 4},
	{5, 8},
	{72, 72},
	{74, 76},
}

func TestGetAlignedSize(t *testing.T) {
	for _, test := range alignTests {
		if result := GetAlignedSize(test.in); result != test.out {
			t.Errorf("GetAlignedSize(%d)=%d; expected %d", test.in, result, test.out)
		}
		if result := len(PadBytes(make([]byte, test.in), 0)); result != test.out {
			t.Errorf("len(PadBytes(%d))=%d; expected %d", test.in, result, test.out)
		}
	}
}

func TestPadBytesFill(t *testing.T) {
	result := PadBytes([]byte("{}"), ' ')
	if !bytes.Equal(result, []byte("{}  ")) {
		t.Errorf("PadBytes(\"{}\", ' ')=%q; expected %q", result, "{}  ")
	}
}

func TestAsBytes(t *testing.T) {
	result := AsBytes([]uint16{1, 0x0203})
	if !bytes.Equal(result, []byte{1, 0, 3, 2}) {
		t.Errorf("AsBytes([]uint16)=% x", result)
	}
	result = AsBytes([]float32{1})
	if !bytes.Equal(result, []byte{0, 0, 0x80, 0x3f}) {
		t.Errorf("AsBytes([]float32{1})=% x", result)
	}
}

func TestBoundsVec3(t *testing.T) {
	min, max := BoundsVec3([]mgl32.Vec3{{1, -2, 3}, {-1, 2, 0}, {0, 0, 5}})
	if min != (mgl32.Vec3{-1, -2, 0}) || max != (mgl32.Vec3{1, 2, 5}) {
		t.Errorf("BoundsVec3 = %v %v", min, max)
	}
	min, max = BoundsVec3(nil)
	if min != (mgl32.Vec3{}) || max != (mgl32.Vec3{}) {
		t.Errorf("BoundsVec3(nil) = %v %v", min, max)
	}
}
