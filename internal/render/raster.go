// Package render rasterizes a stroke path onto a white bitmap.
package render

import (
	"image"
	"image/color"
	"image/draw"

	"Doodle/internal/state"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// Background is the color behind every stroke, both on screen and in saved
// pictures.
var Background color.Color = color.White

// Rasterize draws path with style onto a new w×h image. Path coordinates are
// multiplied by scale, so the same path can be drawn at screen pixel density
// or at its unit size.
func Rasterize(path *state.Path, style state.Style, w, h int, scale float32) *image.RGBA {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)
	if w == 0 || h == 0 || path.Empty() || style.Width <= 0 {
		return img
	}

	mask := image.NewAlpha(img.Bounds())
	scanner := rasterx.NewScannerGV(w, h, mask, mask.Bounds())
	stroker := rasterx.NewStroker(w, h, scanner)
	width := fixed.Int26_6(style.Width * scale * 64)
	stroker.SetStroke(width, 4*64, capFunc(style.Cap), nil, gapFunc(style.Join), joinMode(style.Join))
	stroker.SetColor(color.Opaque)

	open := false
	for _, s := range path.Segments() {
		switch s.Kind {
		case state.MoveTo:
			if open {
				stroker.Stop(false)
			}
			stroker.Start(toFixed(s.To, scale))
			open = true
		case state.LineTo:
			stroker.Line(toFixed(s.To, scale))
		case state.QuadTo:
			stroker.QuadBezier(toFixed(s.Ctrl, scale), toFixed(s.To, scale))
		}
	}
	if open {
		stroker.Stop(false)
	}
	stroker.Draw()

	if !style.AntiAlias {
		threshold(mask)
	}
	draw.DrawMask(img, img.Bounds(), image.NewUniform(style.Color), image.Point{}, mask, image.Point{}, draw.Over)
	return img
}

func toFixed(p state.Point, scale float32) fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(p.X * scale * 64),
		Y: fixed.Int26_6(p.Y * scale * 64),
	}
}

// threshold turns anti-aliased coverage into hard edges.
func threshold(mask *image.Alpha) {
	for i, a := range mask.Pix {
		if a >= 0x80 {
			mask.Pix[i] = 0xff
		} else {
			mask.Pix[i] = 0
		}
	}
}

func capFunc(c state.Cap) rasterx.CapFunc {
	switch c {
	case state.CapButt:
		return rasterx.ButtCap
	case state.CapSquare:
		return rasterx.SquareCap
	}
	return rasterx.RoundCap
}

func joinMode(j state.Join) rasterx.JoinMode {
	switch j {
	case state.JoinBevel:
		return rasterx.Bevel
	case state.JoinMiter:
		return rasterx.Miter
	}
	return rasterx.Round
}

func gapFunc(j state.Join) rasterx.GapFunc {
	if j == state.JoinRound {
		return rasterx.RoundGap
	}
	return rasterx.FlatGap
}
