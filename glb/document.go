package glb

import (
	"github.com/mogaika/cubeglb/mesh/cube"
	"github.com/mogaika/cubeglb/utils"
)

const (
	ComponentUnsignedShort = 5123
	ComponentFloat         = 5126

	TypeScalar = "SCALAR"
	TypeVec2   = "VEC2"
	TypeVec3   = "VEC3"

	AttributePosition  = "POSITION"
	AttributeNormal    = "NORMAL"
	AttributeTexCoord0 = "TEXCOORD_0"
)

// Accessor slots, fixed by the order segments are appended to the buffer.
const (
	AccessorIndices = iota
	AccessorPositions
	AccessorNormals
	AccessorUVs
)

const DefaultMaterialName = "CubeMaterial"

type AssetInfo struct {
	Version   string `json:"version"`
	Generator string `json:"generator,omitempty"`
}

type Scene struct {
	Nodes []int `json:"nodes"`
}

type Node struct {
	Mesh int `json:"mesh"`
}

type Primitive struct {
	Attributes map[string]int `json:"attributes"`
	Indices    int            `json:"indices"`
	Material   int            `json:"material"`
}

type Mesh struct {
	Primitives []Primitive `json:"primitives"`
}

type PBRMetallicRoughness struct {
	BaseColorFactor [4]float32 `json:"baseColorFactor"`
	MetallicFactor  float32    `json:"metallicFactor"`
	RoughnessFactor float32    `json:"roughnessFactor"`
}

// Material fields are always written, defaults included.
type Material struct {
	Name                 string               `json:"name"`
	PBRMetallicRoughness PBRMetallicRoughness `json:"pbrMetallicRoughness"`
	DoubleSided          bool                 `json:"doubleSided"`
}

type Accessor struct {
	BufferView    int       `json:"bufferView"`
	ComponentType int       `json:"componentType"`
	Count         int       `json:"count"`
	Type          string    `json:"type"`
	Min           []float32 `json:"min,omitempty"`
	Max           []float32 `json:"max,omitempty"`
}

type BufferView struct {
	Buffer     int `json:"buffer"`
	ByteOffset int `json:"byteOffset"`
	ByteLength int `json:"byteLength"`
}

type BufferInfo struct {
	ByteLength int `json:"byteLength"`
}

// Document is the JSON chunk. Field order is the serialization order.
type Document struct {
	Asset       AssetInfo    `json:"asset"`
	Scene       int          `json:"scene"`
	Scenes      []Scene      `json:"scenes"`
	Nodes       []Node       `json:"nodes"`
	Meshes      []Mesh       `json:"meshes"`
	Materials   []Material   `json:"materials"`
	Accessors   []Accessor   `json:"accessors"`
	BufferViews []BufferView `json:"bufferViews"`
	Buffers     []BufferInfo `json:"buffers"`
}

func DefaultMaterial() Material {
	return Material{
		Name: DefaultMaterialName,
		PBRMetallicRoughness: PBRMetallicRoughness{
			BaseColorFactor: [4]float32{1, 1, 1, 1},
			MetallicFactor:  0,
			RoughnessFactor: 1,
		},
		DoubleSided: false,
	}
}

// NewDocument describes m as laid out in buf. Views must be in accessor slot order.
func NewDocument(m *cube.Mesh, buf *Buffer, generator string) *Document {
	min, max := m.Bounds()

	doc := &Document{
		Asset:  AssetInfo{Version: "2.0", Generator: generator},
		Scene:  0,
		Scenes: []Scene{{Nodes: []int{0}}},
		Nodes:  []Node{{Mesh: 0}},
		Meshes: []Mesh{{
			Primitives: []Primitive{{
				Attributes: map[string]int{
					AttributePosition:  AccessorPositions,
					AttributeNormal:    AccessorNormals,
					AttributeTexCoord0: AccessorUVs,
				},
				Indices:  AccessorIndices,
				Material: 0,
			}},
		}},
		Materials: []Material{DefaultMaterial()},
		Accessors: []Accessor{
			AccessorIndices: {
				BufferView:    AccessorIndices,
				ComponentType: ComponentUnsignedShort,
				Count:         m.IndexCount(),
				Type:          TypeScalar,
			},
			AccessorPositions: {
				BufferView:    AccessorPositions,
				ComponentType: ComponentFloat,
				Count:         m.VertexCount(),
				Type:          TypeVec3,
				Min:           utils.Vec3ToSlice(min),
				Max:           utils.Vec3ToSlice(max),
			},
			AccessorNormals: {
				BufferView:    AccessorNormals,
				ComponentType: ComponentFloat,
				Count:         m.VertexCount(),
				Type:          TypeVec3,
			},
			AccessorUVs: {
				BufferView:    AccessorUVs,
				ComponentType: ComponentFloat,
				Count:         m.VertexCount(),
				Type:          TypeVec2,
			},
		},
		Buffers: []BufferInfo{{ByteLength: buf.Len()}},
	}

	for _, v := range buf.Views() {
		doc.BufferViews = append(doc.BufferViews, BufferView{
			Buffer:     0,
			ByteOffset: v.Offset,
			ByteLength: v.Length,
		})
	}

	return doc
}
