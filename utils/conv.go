package utils

import (
	"bytes"
	"encoding/binary"
)

const WORD_SIZE = 4

func GetAlignedSize(size int) int {
	return (size + WORD_SIZE - 1) / WORD_SIZE * WORD_SIZE
}

// PadBytes appends pad bytes until len is word aligned.
func PadBytes(bs []byte, pad byte) []byte {
	for len(bs)%WORD_SIZE != 0 {
		bs = append(bs, pad)
	}
	return bs
}

func AsBytes(data interface{}) []byte {
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, data); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

func ReadBytes(out interface{}, raw []byte) {
	if err := binary.Read(bytes.NewReader(raw), binary.LittleEndian, out); err != nil {
		panic(err)
	}
}
