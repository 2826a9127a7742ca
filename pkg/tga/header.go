package tga

import (
	"bytes"
	"encoding/binary"
)

const (
	HeaderSize = 18

	imageTypeTrueColor = 2
	pixelDepth         = 32
	alphaDepth         = 8
	originTopLeft      = 1 << 5
)

// header is the on-disk layout, every multi-byte field little-endian.
type header struct {
	IDLength     uint8
	ColorMapType uint8
	ImageType    uint8
	ColorMapSpec [5]uint8
	XOrigin      uint16
	YOrigin      uint16
	Width        uint16
	Height       uint16
	PixelDepth   uint8
	Descriptor   uint8
}

func newHeader(width, height uint16) header {
	return header{
		ImageType:  imageTypeTrueColor,
		Width:      width,
		Height:     height,
		PixelDepth: pixelDepth,
		// bits 3-0 alpha depth, bit 5 top-left origin so rows are stored as given
		Descriptor: alphaDepth | originTopLeft,
	}
}

func (h header) bytes() []byte {
	var buf bytes.Buffer
	buf.Grow(HeaderSize)
	_ = binary.Write(&buf, binary.LittleEndian, h)
	return buf.Bytes()
}
