package export

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// WritePDF places a saved PNG on a single page that has exactly the size of
// the picture, one pixel per point.
func WritePDF(out, pngPath string) error {
	p := gofpdf.New("P", "pt", "A4", "")
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	info := p.RegisterImageOptions(pngPath, opts)
	if err := p.Error(); err != nil {
		return fmt.Errorf("could not read %s: %w", pngPath, err)
	}
	w, h := info.Width(), info.Height()
	p.AddPageFormat("P", gofpdf.SizeType{Wd: w, Ht: h})
	p.ImageOptions(pngPath, 0, 0, w, h, false, opts, 0, "")
	return p.OutputFileAndClose(out)
}
