package render

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// EncodePBM writes the snapshot as a binary PBM (P4): one bit per cell,
// rows packed MSB-first and padded to whole bytes. PBM ink convention puts
// the 1 bit on black, so marked cells carry the 1.
func EncodePBM(wr io.Writer, w, h int, cells []bool) error {
	if len(cells) != w*h {
		return fmt.Errorf("snapshot has %d cells, want %d", len(cells), w*h)
	}
	bw := bufio.NewWriter(wr)
	fmt.Fprintf(bw, "P4\n%d %d\n", w, h)
	row := make([]byte, (w+7)/8)
	for y := 0; y < h; y++ {
		for i := range row {
			row[i] = 0
		}
		for x := 0; x < w; x++ {
			if !cells[y*w+x] {
				row[x/8] |= 0x80 >> (x % 8)
			}
		}
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// DecodePBM reads a binary PBM back into a row-major snapshot, true for
// white. It accepts the output of EncodePBM and any other comment-free P4
// file.
func DecodePBM(r io.Reader) (w, h int, cells []bool, err error) {
	br := bufio.NewReader(r)
	var magic string
	if _, err = fmt.Fscan(br, &magic); err != nil {
		return 0, 0, nil, err
	}
	if magic != "P4" {
		return 0, 0, nil, fmt.Errorf("not a binary PBM: magic %q", magic)
	}
	if _, err = fmt.Fscan(br, &w, &h); err != nil {
		return 0, 0, nil, err
	}
	if w <= 0 || h <= 0 {
		return 0, 0, nil, fmt.Errorf("bad PBM dimensions %dx%d", w, h)
	}
	// exactly one whitespace byte separates the header from the raster
	if _, err = br.ReadByte(); err != nil {
		return 0, 0, nil, err
	}
	cells = make([]bool, w*h)
	row := make([]byte, (w+7)/8)
	for y := 0; y < h; y++ {
		if _, err = io.ReadFull(br, row); err != nil {
			return 0, 0, nil, err
		}
		for x := 0; x < w; x++ {
			black := row[x/8]&(0x80>>(x%8)) != 0
			cells[y*w+x] = !black
		}
	}
	return w, h, cells, nil
}

// WritePBM encodes the snapshot into a file at path.
func WritePBM(path string, w, h int, cells []bool) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := EncodePBM(f, w, h, cells); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
