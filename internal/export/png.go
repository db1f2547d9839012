package export

import (
	"image"
	"image/png"
	"io"
)

// EncodePNG writes img losslessly. PNG has no quality knob, so "full quality"
// only means the default compression level.
func EncodePNG(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.DefaultCompression}
	return enc.Encode(w, img)
}
