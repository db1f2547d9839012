package ui

import (
	"image"
	"log/slog"
	"math"

	"Doodle/internal/gallery"
	"Doodle/internal/render"
	"Doodle/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// CanvasView is the drawing surface: one freehand path fed by mouse drags or
// touches, drawn with a fixed brush, which can be cleared or saved as a PNG.
type CanvasView struct {
	widget.BaseWidget
	tracker *state.Tracker
	style   state.Style
	saver   *gallery.Saver
	cache   *image.RGBA
	// scale is device pixels per fyne unit, as last seen by the renderer.
	scale float32
	log   *slog.Logger
}

var _ fyne.Widget = (*CanvasView)(nil)
var _ fyne.Draggable = (*CanvasView)(nil)
var _ desktop.Mouseable = (*CanvasView)(nil)
var _ mobile.Touchable = (*CanvasView)(nil)

func NewCanvasView(style state.Style, tolerance float32, saver *gallery.Saver) *CanvasView {
	v := &CanvasView{
		tracker: state.NewTracker(tolerance),
		style:   style,
		saver:   saver,
		scale:   1,
		log:     slog.Default().With("component", "canvas"),
	}
	v.ExtendBaseWidget(v)
	return v
}

func (v *CanvasView) Path() *state.Path           { return v.tracker.Path() }
func (v *CanvasView) TouchState() state.TouchState { return v.tracker.State() }

func (v *CanvasView) handle(kind state.TouchKind, pos fyne.Position) {
	if v.tracker.Handle(state.TouchEvent{Kind: kind, At: state.Point{X: pos.X, Y: pos.Y}}) {
		v.cache = nil
		v.Refresh()
	}
}

// Clear is called by the host's clear action.
func (v *CanvasView) Clear() {
	v.cache = nil
	v.tracker.Reset()
	v.Refresh()
	v.log.Debug("[CANVAS] cleared")
}

// Save is called by the host's save action. Failures are reported to the
// user by the saver and never returned to the host.
func (v *CanvasView) Save() {
	if v.saver == nil {
		v.log.Error("[CANVAS] save requested but no saver configured")
		return
	}
	path, err := v.saver.Save(v.Snapshot())
	if err != nil {
		v.log.Info("[CANVAS] save did not complete", "err", err)
		return
	}
	v.log.Debug("[CANVAS] saved", "path", path)
}

// Snapshot returns the surface rendered at its displayed pixel size on a
// white background. The bitmap is cached until the path or the size changes.
func (v *CanvasView) Snapshot() *image.RGBA {
	scale := v.scale
	size := v.Size()
	w := int(math.Round(float64(size.Width * scale)))
	h := int(math.Round(float64(size.Height * scale)))
	if v.cache == nil || v.cache.Bounds() != image.Rect(0, 0, w, h) {
		v.cache = render.Rasterize(v.tracker.Path(), v.style, w, h, scale)
	}
	return v.cache
}

func (v *CanvasView) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		v.handle(state.TouchDown, e.Position)
	}
}

func (v *CanvasView) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		v.handle(state.TouchUp, e.Position)
	}
}

func (v *CanvasView) Dragged(e *fyne.DragEvent) {
	v.handle(state.TouchMove, e.Position)
}

// DragEnd also fires after MouseUp on desktop; the tracker ignores an up
// while idle.
func (v *CanvasView) DragEnd() {
	v.handle(state.TouchUp, fyne.Position{})
}

func (v *CanvasView) TouchDown(e *mobile.TouchEvent) {
	v.handle(state.TouchDown, e.Position)
}

func (v *CanvasView) TouchUp(e *mobile.TouchEvent) {
	v.handle(state.TouchUp, e.Position)
}

func (v *CanvasView) TouchCancel(e *mobile.TouchEvent) {
	v.handle(state.TouchUp, e.Position)
}

func (v *CanvasView) CreateRenderer() fyne.WidgetRenderer {
	r := &canvasViewRenderer{view: v}
	r.raster = canvas.NewRaster(r.draw)
	return r
}

type canvasViewRenderer struct {
	view   *CanvasView
	raster *canvas.Raster
}

// draw renders at the pixel size the driver asks for, which differs from the
// widget size on high density screens.
func (r *canvasViewRenderer) draw(w, h int) image.Image {
	scale := float32(1)
	if size := r.view.Size(); size.Width > 0 {
		scale = float32(w) / size.Width
		r.view.scale = scale
	}
	return render.Rasterize(r.view.tracker.Path(), r.view.style, w, h, scale)
}

func (r *canvasViewRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.raster}
}

func (r *canvasViewRenderer) Refresh() {
	r.raster.Refresh()
}

func (r *canvasViewRenderer) Layout(size fyne.Size) {
	r.raster.Resize(size)
}

func (r *canvasViewRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *canvasViewRenderer) Destroy() {}
