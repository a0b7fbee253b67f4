package glb

import (
	"github.com/mogaika/cubeglb/utils"
)

// View is a byte range inside the binary payload.
type View struct {
	Offset int
	Length int
}

// Buffer packs segments back to back, each starting on a word boundary.
type Buffer struct {
	data  []byte
	views []View
}

// Append packs data little-endian, zero-pads it and returns its range.
// The returned length includes padding.
func (b *Buffer) Append(data interface{}) View {
	packed := utils.AsBytes(data)
	raw := make([]byte, utils.GetAlignedSize(len(packed)))
	copy(raw, packed)

	v := View{Offset: len(b.data), Length: len(raw)}
	b.data = append(b.data, raw...)
	b.views = append(b.views, v)
	return v
}

func (b *Buffer) Views() []View { return b.views }
func (b *Buffer) Bytes() []byte { return b.data }
func (b *Buffer) Len() int      { return len(b.data) }
