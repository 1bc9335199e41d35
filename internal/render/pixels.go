package render

// fillCells expands binary cell data into opaque grayscale RGBA pixels and
// paints the cursor cell red when cursor is a valid index. buf must hold
// 4*len(cells) bytes.
func fillCells(buf []byte, cells []uint8, cursor int) {
	for i, c := range cells {
		v := byte(0)
		if c != 0 {
			v = 0xff
		}
		base := i * 4
		buf[base+0] = v
		buf[base+1] = v
		buf[base+2] = v
		buf[base+3] = 0xff
	}
	if cursor >= 0 && cursor < len(cells) {
		base := cursor * 4
		buf[base+0] = 0xd4
		buf[base+1] = 0x3a
		buf[base+2] = 0x3a
	}
}
