package core

import "image/color"

// BytesPerCell is the size of one packed RGBA pixel.
const BytesPerCell = 4

// FillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
// buf must hold at least BytesPerCell*len(cells) bytes.
func FillBinaryRGBA(buf []byte, cells []uint8, on, off color.RGBA) {
	for i, c := range cells {
		base := i * BytesPerCell
		if c != 0 {
			buf[base+0] = on.R
			buf[base+1] = on.G
			buf[base+2] = on.B
			buf[base+3] = on.A
			continue
		}
		buf[base+0] = off.R
		buf[base+1] = off.G
		buf[base+2] = off.B
		buf[base+3] = off.A
	}
}
