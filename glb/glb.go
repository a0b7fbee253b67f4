// Package glb packs a cube mesh into a binary glTF 2.0 container.
package glb

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/mogaika/cubeglb/mesh/cube"
	"github.com/mogaika/cubeglb/utils"
)

const (
	Magic   = 0x46546C67 // "glTF"
	Version = 2

	ChunkTypeJSON = 0x4E4F534A // "JSON"
	ChunkTypeBIN  = 0x004E4942 // "BIN\0"

	HEADER_SIZE       = 12
	CHUNK_HEADER_SIZE = 8
)

type Header struct {
	Magic   uint32
	Version uint32
	Length  uint32
}

type ChunkHeader struct {
	Length uint32
	Type   uint32
}

// Asset is an encoded container together with the document it carries.
type Asset struct {
	Bytes       []byte
	Document    *Document
	JSONLength  int
	BinLength   int
	VertexCount int
	IndexCount  int
}

// Encode packs index, position, normal and uv streams in that order and wraps
// them with the metadata document into a two chunk container.
func Encode(m *cube.Mesh, generator string) (*Asset, error) {
	var buf Buffer
	buf.Append(m.Indices)
	buf.Append(m.Positions)
	buf.Append(m.Normals)
	buf.Append(m.UVs)

	doc := NewDocument(m, &buf, generator)

	rawJson, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal document")
	}
	rawJson = utils.PadBytes(rawJson, ' ')

	bin := buf.Bytes()
	total := HEADER_SIZE + CHUNK_HEADER_SIZE + len(rawJson) + CHUNK_HEADER_SIZE + len(bin)

	out := make([]byte, 0, total)
	out = append(out, utils.AsBytes(&Header{
		Magic:   Magic,
		Version: Version,
		Length:  uint32(total),
	})...)
	out = appendChunk(out, ChunkTypeJSON, rawJson)
	out = appendChunk(out, ChunkTypeBIN, bin)

	return &Asset{
		Bytes:       out,
		Document:    doc,
		JSONLength:  len(rawJson),
		BinLength:   len(bin),
		VertexCount: m.VertexCount(),
		IndexCount:  m.IndexCount(),
	}, nil
}

func appendChunk(out []byte, chunkType uint32, payload []byte) []byte {
	out = append(out, utils.AsBytes(&ChunkHeader{Length: uint32(len(payload)), Type: chunkType})...)
	return append(out, payload...)
}

// Container is a parsed glb file, chunks are not copied.
type Container struct {
	Header Header
	JSON   []byte
	BIN    []byte
}

// Parse splits data into header, JSON and BIN chunks checking lengths and alignment.
func Parse(data []byte) (*Container, error) {
	if len(data) < HEADER_SIZE {
		return nil, errors.Errorf("file too short: %d bytes", len(data))
	}

	c := &Container{}
	utils.ReadBytes(&c.Header, data[:HEADER_SIZE])
	if c.Header.Magic != Magic {
		return nil, errors.Errorf("invalid magic 0x%.8x", c.Header.Magic)
	}
	if c.Header.Version != Version {
		return nil, errors.Errorf("unsupported version %d", c.Header.Version)
	}
	if int(c.Header.Length) != len(data) {
		return nil, errors.Errorf("header length %d != file size %d", c.Header.Length, len(data))
	}

	pos := HEADER_SIZE
	for pos < len(data) {
		if pos+CHUNK_HEADER_SIZE > len(data) {
			return nil, errors.Errorf("truncated chunk header at 0x%x", pos)
		}
		var ch ChunkHeader
		utils.ReadBytes(&ch, data[pos:pos+CHUNK_HEADER_SIZE])
		pos += CHUNK_HEADER_SIZE

		if ch.Length%utils.WORD_SIZE != 0 {
			return nil, errors.Errorf("chunk 0x%.8x length %d is not aligned", ch.Type, ch.Length)
		}
		end := pos + int(ch.Length)
		if end > len(data) {
			return nil, errors.Errorf("chunk 0x%.8x at 0x%x overflows file", ch.Type, pos)
		}

		switch ch.Type {
		case ChunkTypeJSON:
			c.JSON = data[pos:end]
		case ChunkTypeBIN:
			c.BIN = data[pos:end]
		default:
			return nil, errors.Errorf("unknown chunk type 0x%.8x", ch.Type)
		}
		pos = end
	}

	if c.JSON == nil {
		return nil, errors.New("missing JSON chunk")
	}
	return c, nil
}

// Document decodes the JSON chunk.
func (c *Container) Document() (*Document, error) {
	var doc Document
	if err := json.Unmarshal(c.JSON, &doc); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal document")
	}
	return &doc, nil
}
