package cube

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/mogaika/cubeglb/utils"
)

const (
	FacesCount     = 6
	CornersPerFace = 4
	IndexesPerFace = 6

	VerticesCount = FacesCount * CornersPerFace
	IndexesCount  = FacesCount * IndexesPerFace

	HalfSize = 0.5
)

// Face is one side of the cube. Corners and UVs are listed in the same order.
type Face struct {
	Name    string
	Normal  mgl32.Vec3
	Corners [CornersPerFace]mgl32.Vec3
	UVs     [CornersPerFace]mgl32.Vec2
}

// Winding selects which side of a triangle is front-facing for the target renderer.
type Winding int

const (
	WindingDefault Winding = iota
	WindingFlipped
)

var windingTriangles = map[Winding][IndexesPerFace]uint16{
	WindingDefault: {0, 2, 1, 0, 3, 2},
	WindingFlipped: {0, 1, 2, 0, 2, 3},
}

// Triangles returns local corner indices of both face triangles. Panics on unknown winding.
func (w Winding) Triangles() [IndexesPerFace]uint16 {
	tris, ok := windingTriangles[w]
	if !ok {
		panic(fmt.Sprintf("unknown winding %d", int(w)))
	}
	return tris
}

func (w Winding) String() string {
	switch w {
	case WindingDefault:
		return "default"
	case WindingFlipped:
		return "flipped"
	}
	return fmt.Sprintf("Winding(%d)", int(w))
}

var quadUVs = [CornersPerFace]mgl32.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

// Faces returns cube sides in emit order: top, bottom, front, back, right, left.
func Faces() []Face {
	const h = HalfSize
	return []Face{
		{
			Name:    "top",
			Normal:  mgl32.Vec3{0, 1, 0},
			Corners: [4]mgl32.Vec3{{-h, h, h}, {h, h, h}, {h, h, -h}, {-h, h, -h}},
			UVs:     [4]mgl32.Vec2{{0, 1}, {1, 1}, {1, 0}, {0, 0}},
		},
		{
			Name:    "bottom",
			Normal:  mgl32.Vec3{0, -1, 0},
			Corners: [4]mgl32.Vec3{{-h, -h, h}, {h, -h, h}, {h, -h, -h}, {-h, -h, -h}},
			UVs:     quadUVs,
		},
		{
			Name:    "front",
			Normal:  mgl32.Vec3{0, 0, 1},
			Corners: [4]mgl32.Vec3{{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h}},
			UVs:     quadUVs,
		},
		{
			Name:    "back",
			Normal:  mgl32.Vec3{0, 0, -1},
			Corners: [4]mgl32.Vec3{{h, -h, -h}, {-h, -h, -h}, {-h, h, -h}, {h, h, -h}},
			UVs:     quadUVs,
		},
		{
			Name:    "right",
			Normal:  mgl32.Vec3{1, 0, 0},
			Corners: [4]mgl32.Vec3{{h, -h, h}, {h, -h, -h}, {h, h, -h}, {h, h, h}},
			UVs:     quadUVs,
		},
		{
			Name:    "left",
			Normal:  mgl32.Vec3{-1, 0, 0},
			Corners: [4]mgl32.Vec3{{-h, -h, -h}, {-h, -h, h}, {-h, h, h}, {-h, h, -h}},
			UVs:     quadUVs,
		},
	}
}

// Mesh holds flat attribute streams, ready to be packed as is.
type Mesh struct {
	Positions []float32
	Normals   []float32
	UVs       []float32
	Indices   []uint16
}

func (m *Mesh) VertexCount() int { return len(m.Positions) / 3 }
func (m *Mesh) IndexCount() int  { return len(m.Indices) }

func (m *Mesh) Position(i int) mgl32.Vec3 {
	return mgl32.Vec3{m.Positions[i*3], m.Positions[i*3+1], m.Positions[i*3+2]}
}

func (m *Mesh) UV(i int) mgl32.Vec2 {
	return mgl32.Vec2{m.UVs[i*2], m.UVs[i*2+1]}
}

// Build emits every face corner as a separate vertex, so faces never share UVs.
func Build(winding Winding) *Mesh {
	m := &Mesh{
		Positions: make([]float32, 0, VerticesCount*3),
		Normals:   make([]float32, 0, VerticesCount*3),
		UVs:       make([]float32, 0, VerticesCount*2),
		Indices:   make([]uint16, 0, IndexesCount),
	}

	tris := winding.Triangles()
	var base uint16
	for _, face := range Faces() {
		for iCorner, corner := range face.Corners {
			uv := face.UVs[iCorner]
			m.Positions = append(m.Positions, corner[0], corner[1], corner[2])
			m.Normals = append(m.Normals, face.Normal[0], face.Normal[1], face.Normal[2])
			m.UVs = append(m.UVs, uv[0], uv[1])
		}
		for _, local := range tris {
			m.Indices = append(m.Indices, base+local)
		}
		base += CornersPerFace
	}

	return m
}

// Bounds returns per-axis min and max over all emitted positions.
func (m *Mesh) Bounds() (min, max mgl32.Vec3) {
	points := make([]mgl32.Vec3, m.VertexCount())
	for i := range points {
		points[i] = m.Position(i)
	}
	return utils.BoundsVec3(points)
}
