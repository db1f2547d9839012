package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// hostScreen is the single screen of the app: the drawing surface with a
// Clear and a Save button above it and a status line below.
type hostScreen struct {
	view   *CanvasView
	clear  *widget.Button
	save   *widget.Button
	status *widget.Label
}

func newHostScreen(view *CanvasView, status *widget.Label) *hostScreen {
	return &hostScreen{
		view:   view,
		clear:  widget.NewButtonWithIcon("Clear", theme.DeleteIcon(), view.Clear),
		save:   widget.NewButtonWithIcon("Save", theme.DocumentSaveIcon(), view.Save),
		status: status,
	}
}

func (h *hostScreen) Content() fyne.CanvasObject {
	toolbar := container.NewHBox(h.clear, h.save, layout.NewSpacer())
	return container.NewBorder(toolbar, h.status, nil, nil, h.view)
}
