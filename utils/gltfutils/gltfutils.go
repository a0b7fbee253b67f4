package gltfutils

import (
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
)

// Summary is what an independent glTF reader sees in a written asset.
type Summary struct {
	Generator string

	Accessors   int
	BufferViews int
	Buffers     int
	Meshes      int
	Materials   int
	Nodes       int
	Scenes      int

	VertexCount int
	IndexCount  int
	BufferSize  int

	Min []float64
	Max []float64

	ViewOffsets []int
}

// Inspect loads path with the qmuntal/gltf decoder and summarizes the first mesh primitive.
func Inspect(path string) (*Summary, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %q", path)
	}
	return Summarize(doc)
}

func Summarize(doc *gltf.Document) (*Summary, error) {
	s := &Summary{
		Generator:   doc.Asset.Generator,
		Accessors:   len(doc.Accessors),
		BufferViews: len(doc.BufferViews),
		Buffers:     len(doc.Buffers),
		Meshes:      len(doc.Meshes),
		Materials:   len(doc.Materials),
		Nodes:       len(doc.Nodes),
		Scenes:      len(doc.Scenes),
	}

	for _, bv := range doc.BufferViews {
		s.ViewOffsets = append(s.ViewOffsets, int(bv.ByteOffset))
	}
	if len(doc.Buffers) != 0 {
		s.BufferSize = len(doc.Buffers[0].Data)
	}

	if len(doc.Meshes) == 0 || len(doc.Meshes[0].Primitives) == 0 {
		return nil, errors.New("document has no mesh primitive")
	}
	primitive := doc.Meshes[0].Primitives[0]

	posIndex, ok := primitive.Attributes["POSITION"]
	if !ok || int(posIndex) >= len(doc.Accessors) {
		return nil, errors.New("primitive has no POSITION accessor")
	}
	pos := doc.Accessors[posIndex]
	s.VertexCount = int(pos.Count)
	for _, v := range pos.Min {
		s.Min = append(s.Min, float64(v))
	}
	for _, v := range pos.Max {
		s.Max = append(s.Max, float64(v))
	}

	if primitive.Indices != nil {
		if int(*primitive.Indices) >= len(doc.Accessors) {
			return nil, errors.Errorf("indices accessor %d out of range", *primitive.Indices)
		}
		s.IndexCount = int(doc.Accessors[*primitive.Indices].Count)
	}

	return s, nil
}

// Validate checks the summary against the fixed cube layout.
func (s *Summary) Validate(vertexCount, indexCount int) error {
	counts := []struct {
		name string
		got  int
		want int
	}{
		{"accessors", s.Accessors, 4},
		{"buffer views", s.BufferViews, 4},
		{"buffers", s.Buffers, 1},
		{"meshes", s.Meshes, 1},
		{"materials", s.Materials, 1},
		{"nodes", s.Nodes, 1},
		{"scenes", s.Scenes, 1},
		{"vertices", s.VertexCount, vertexCount},
		{"indices", s.IndexCount, indexCount},
	}
	for _, c := range counts {
		if c.got != c.want {
			return errors.Errorf("%s count %d, expected %d", c.name, c.got, c.want)
		}
	}
	for i, offset := range s.ViewOffsets {
		if offset%4 != 0 {
			return errors.Errorf("buffer view %d offset %d is not aligned", i, offset)
		}
	}
	if len(s.Min) != 3 || len(s.Max) != 3 {
		return errors.New("positions accessor has no bounds")
	}
	return nil
}
