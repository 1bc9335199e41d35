package render

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGrayImageLuminance(t *testing.T) {
	cells := []bool{true, false, false, true}
	img, err := GrayImage(2, 2, cells)
	if err != nil {
		t.Fatal(err)
	}
	want := []uint8{0xff, 0x00, 0x00, 0xff}
	if diff := cmp.Diff(want, img.Pix); diff != "" {
		t.Fatalf("pixel mismatch (-want +got):\n%s", diff)
	}
}

func TestGrayImageLengthMismatch(t *testing.T) {
	if _, err := GrayImage(2, 2, make([]bool, 3)); err == nil {
		t.Fatal("GrayImage accepted a short snapshot")
	}
}

func TestEncodePNGDecodes(t *testing.T) {
	cells := []bool{true, false, true, true, false, true}
	var buf bytes.Buffer
	if err := EncodePNG(&buf, 3, 2, cells); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decoding our own PNG: %v", err)
	}
	r, _, _, _ := img.At(1, 0).RGBA()
	if r != 0 {
		t.Fatalf("marked cell decoded with luminance %d, want 0", r)
	}
	r, _, _, _ = img.At(0, 0).RGBA()
	if r != 0xffff {
		t.Fatalf("white cell decoded with luminance %d, want max", r)
	}
}

func TestPBMRoundTrip(t *testing.T) {
	// 10 wide so rows pad to two bytes with dangling bits
	const w, h = 10, 3
	cells := make([]bool, w*h)
	for i := range cells {
		cells[i] = i%3 != 0
	}

	var buf bytes.Buffer
	if err := EncodePBM(&buf, w, h, cells); err != nil {
		t.Fatal(err)
	}

	gotW, gotH, got, err := DecodePBM(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if gotW != w || gotH != h {
		t.Fatalf("decoded dimensions %dx%d, want %dx%d", gotW, gotH, w, h)
	}
	if diff := cmp.Diff(cells, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodePBMRejectsOtherFormats(t *testing.T) {
	if _, _, _, err := DecodePBM(strings.NewReader("P6\n1 1\n255\n\x00\x00\x00")); err == nil {
		t.Fatal("DecodePBM accepted a PPM header")
	}
}

func TestEncodePBMLengthMismatch(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodePBM(&buf, 4, 4, make([]bool, 7)); err == nil {
		t.Fatal("EncodePBM accepted a short snapshot")
	}
}

func TestFillCells(t *testing.T) {
	buf := make([]byte, 8)
	fillCells(buf, []uint8{0, 1}, 1)
	want := []byte{
		0x00, 0x00, 0x00, 0xff, // black cell
		0xd4, 0x3a, 0x3a, 0xff, // cursor over the white cell
	}
	if diff := cmp.Diff(want, buf); diff != "" {
		t.Fatalf("buffer mismatch (-want +got):\n%s", diff)
	}
}
