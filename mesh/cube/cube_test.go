package cube

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestBuildCounts(t *testing.T) {
	for _, winding := range []Winding{WindingDefault, WindingFlipped} {
		m := Build(winding)
		if m.VertexCount() != 24 {
			t.Errorf("%v: VertexCount()=%d; expected 24", winding, m.VertexCount())
		}
		if m.IndexCount() != 36 {
			t.Errorf("%v: IndexCount()=%d; expected 36", winding, m.IndexCount())
		}
		if len(m.Normals) != len(m.Positions) {
			t.Errorf("%v: normals length %d != positions length %d", winding, len(m.Normals), len(m.Positions))
		}
		if len(m.UVs) != 24*2 {
			t.Errorf("%v: uvs length %d; expected 48", winding, len(m.UVs))
		}
		for i, index := range m.Indices {
			if index > 23 {
				t.Errorf("%v: index %d = %d out of range", winding, i, index)
			}
		}
	}
}

var windingTests = []struct {
	winding Winding
	face    int
	out     [6]uint16
}{
	{WindingDefault, 0, [6]uint16{0, 2, 1, 0, 3, 2}},
	{WindingDefault, 1, [6]uint16{4, 6, 5, 4, 7, 6}},
	{WindingDefault, 5, [6]uint16{20, 22, 21, 20, 23, 22}},
	{WindingFlipped, 0, [6]uint16{0, 1, 2, 0, 2, 3}},
	{WindingFlipped, 3, [6]uint16{12, 13, 14, 12, 14, 15}},
}

func TestBuildWinding(t *testing.T) {
	for _, test := range windingTests {
		m := Build(test.winding)
		var got [6]uint16
		copy(got[:], m.Indices[test.face*6:test.face*6+6])
		if got != test.out {
			t.Errorf("Build(%v) face %d indices=%v; expected %v", test.winding, test.face, got, test.out)
		}
	}
}

func TestFaceUVCoverage(t *testing.T) {
	m := Build(WindingDefault)
	want := map[mgl32.Vec2]bool{{0, 0}: true, {0, 1}: true, {1, 0}: true, {1, 1}: true}
	for iFace := 0; iFace < FacesCount; iFace++ {
		got := make(map[mgl32.Vec2]bool)
		for iCorner := 0; iCorner < CornersPerFace; iCorner++ {
			got[m.UV(iFace*CornersPerFace+iCorner)] = true
		}
		if len(got) != len(want) {
			t.Errorf("face %d uv set %v; expected %v", iFace, got, want)
			continue
		}
		for uv := range want {
			if !got[uv] {
				t.Errorf("face %d misses uv %v", iFace, uv)
			}
		}
	}
}

func TestFacePlanes(t *testing.T) {
	m := Build(WindingDefault)
	for i := 0; i < m.VertexCount(); i++ {
		p := m.Position(i)
		n := mgl32.Vec3{m.Normals[i*3], m.Normals[i*3+1], m.Normals[i*3+2]}
		if n.Len() != 1 {
			t.Errorf("vertex %d normal %v is not unit", i, n)
		}
		// every corner lies on the plane its normal points away from
		if d := p.Dot(n); d != HalfSize {
			t.Errorf("vertex %d position %v dot normal %v = %v; expected %v", i, p, n, d, HalfSize)
		}
	}
}

// +1 when a triangle is counter-clockwise seen from outside its face, -1 otherwise.
var orientationTests = []struct {
	winding Winding
	faces   [FacesCount]float32
}{
	{WindingDefault, [FacesCount]float32{-1, 1, -1, -1, -1, -1}},
	{WindingFlipped, [FacesCount]float32{1, -1, 1, 1, 1, 1}},
}

func TestWindingOrientation(t *testing.T) {
	for _, test := range orientationTests {
		m := Build(test.winding)
		for iFace := 0; iFace < FacesCount; iFace++ {
			for iTri := 0; iTri < 2; iTri++ {
				tri := m.Indices[iFace*IndexesPerFace+iTri*3:][:3]
				a, b, c := m.Position(int(tri[0])), m.Position(int(tri[1])), m.Position(int(tri[2]))
				n := mgl32.Vec3{m.Normals[int(tri[0])*3], m.Normals[int(tri[0])*3+1], m.Normals[int(tri[0])*3+2]}
				if d := b.Sub(a).Cross(c.Sub(a)).Dot(n); d != test.faces[iFace] {
					t.Errorf("%v face %d triangle %v orientation %v; expected %v", test.winding, iFace, tri, d, test.faces[iFace])
				}
			}
		}
	}
}

func TestTrianglesUnknownWinding(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Triangles() of unknown winding did not panic")
		}
	}()
	Winding(7).Triangles()
}

func TestBounds(t *testing.T) {
	m := Build(WindingDefault)
	min, max := m.Bounds()
	if min != (mgl32.Vec3{-0.5, -0.5, -0.5}) {
		t.Errorf("min=%v; expected -0.5 on each axis", min)
	}
	if max != (mgl32.Vec3{0.5, 0.5, 0.5}) {
		t.Errorf("max=%v; expected 0.5 on each axis", max)
	}
	for i := 0; i < m.VertexCount(); i++ {
		p := m.Position(i)
		for axis := 0; axis < 3; axis++ {
			if p[axis] < min[axis] || p[axis] > max[axis] {
				t.Errorf("vertex %d %v outside bounds %v..%v", i, p, min, max)
			}
		}
	}
}

func TestBuildDeterministic(t *testing.T) {
	a, b := Build(WindingDefault), Build(WindingDefault)
	for i := range a.Positions {
		if a.Positions[i] != b.Positions[i] {
			t.Fatalf("positions differ at %d", i)
		}
	}
	for i := range a.Indices {
		if a.Indices[i] != b.Indices[i] {
			t.Fatalf("indices differ at %d", i)
		}
	}
}
