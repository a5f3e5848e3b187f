package core

import (
	"image/color"
	"slices"
	"testing"
)

func TestFillBinaryRGBA(t *testing.T) {
	on := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	off := color.RGBA{A: 255}
	cells := []uint8{1, 0, 0, 1}
	buf := make([]byte, BytesPerCell*len(cells))

	FillBinaryRGBA(buf, cells, on, off)

	want := []byte{
		255, 255, 255, 255,
		0, 0, 0, 255,
		0, 0, 0, 255,
		255, 255, 255, 255,
	}
	if !slices.Equal(buf, want) {
		t.Fatalf("buf=%v, want %v", buf, want)
	}
}
