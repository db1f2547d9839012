package export

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/tdewolff/test"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 12, 8))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	img.Set(3, 4, color.Black)
	return img
}

func TestEncodePNGLossless(t *testing.T) {
	src := testImage()
	var buf bytes.Buffer
	test.Error(t, EncodePNG(&buf, src))

	dec, err := png.Decode(&buf)
	test.Error(t, err)
	test.T(t, dec.Bounds(), src.Bounds())
	for y := 0; y < 8; y++ {
		for x := 0; x < 12; x++ {
			r1, g1, b1, a1 := src.At(x, y).RGBA()
			r2, g2, b2, a2 := dec.At(x, y).RGBA()
			test.That(t, r1 == r2 && g1 == g2 && b1 == b2 && a1 == a2, "pixel", x, y, "differs")
		}
	}
}

func TestWritePDF(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "1700000000000.png")
	f, err := os.Create(in)
	test.Error(t, err)
	test.Error(t, EncodePNG(f, testImage()))
	test.Error(t, f.Close())

	out := filepath.Join(dir, "out.pdf")
	test.Error(t, WritePDF(out, in))

	b, err := os.ReadFile(out)
	test.Error(t, err)
	test.That(t, bytes.HasPrefix(b, []byte("%PDF-")), "output is not a PDF")
}

func TestWritePDFMissingInput(t *testing.T) {
	dir := t.TempDir()
	err := WritePDF(filepath.Join(dir, "out.pdf"), filepath.Join(dir, "missing.png"))
	test.That(t, err != nil, "expected an error for a missing picture")
}
