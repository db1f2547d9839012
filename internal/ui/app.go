package ui

import (
	"Doodle/internal/config"
	"Doodle/internal/gallery"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/widget"
)

const AppID = "io.github.doodle"

// RunApp opens the doodle window and blocks until it is closed. index may be
// nil, in which case saved pictures are not catalogued.
func RunApp(cfg *config.Config, index gallery.Indexer) error {
	style, err := cfg.Style()
	if err != nil {
		return err
	}

	myApp := app.NewWithID(AppID)
	myWindow := myApp.NewWindow("Doodle")
	myWindow.Resize(fyne.NewSize(480, 800))

	status := widget.NewLabel("Ready")
	feedback := &windowFeedback{win: myWindow, status: status}
	policy := gallery.Policy{
		StrictPermissions: cfg.StrictPermissions,
		ToastOnFailure:    cfg.ToastOnFailure,
	}
	saver := gallery.NewSaver(cfg.AlbumDir(), gallery.DiskStorage{}, index, feedback, policy)

	view := NewCanvasView(style, cfg.Tolerance, saver)
	myWindow.SetContent(newHostScreen(view, status).Content())
	myWindow.ShowAndRun()
	return nil
}
