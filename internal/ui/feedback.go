package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// windowFeedback shows save results: alerts as modal dialogs, toasts as a
// desktop notification mirrored in the status line.
type windowFeedback struct {
	win    fyne.Window
	status *widget.Label
}

func (f *windowFeedback) Alert(title, message string) {
	dialog.ShowInformation(title, message, f.win)
}

func (f *windowFeedback) Toast(message string) {
	f.status.SetText(message)
	if a := fyne.CurrentApp(); a != nil {
		a.SendNotification(fyne.NewNotification("Doodle", message))
	}
}
