package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// DisplayController holds the Previous/Next buttons and the position indicator between them.
type DisplayController struct {
	container      *fyne.Container
	PreviousButton *widget.Button
	NextButton     *widget.Button
	positionLabel  *widget.Label

	previousHandler func()
	nextHandler     func()
}

func NewDisplayController() *DisplayController {
	dc := &DisplayController{}

	dc.PreviousButton = widget.NewButton("Previous", dc.onPrevious)
	dc.PreviousButton.Importance = widget.HighImportance

	dc.NextButton = widget.NewButton("Next", dc.onNext)
	dc.NextButton.Importance = widget.HighImportance

	dc.positionLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Monospace: true})

	dc.container = container.NewPadded(container.NewHBox(
		dc.PreviousButton,
		layout.NewSpacer(),
		dc.positionLabel,
		layout.NewSpacer(),
		dc.NextButton,
	))

	return dc
}

func (dc *DisplayController) GetContainer() *fyne.Container {
	return dc.container
}

func (dc *DisplayController) SetPreviousHandler(handler func()) {
	dc.previousHandler = handler
}

func (dc *DisplayController) SetNextHandler(handler func()) {
	dc.nextHandler = handler
}

func (dc *DisplayController) SetPosition(text string) {
	dc.positionLabel.SetText(text)
}

func (dc *DisplayController) Position() string {
	return dc.positionLabel.Text
}

func (dc *DisplayController) onPrevious() {
	if dc.previousHandler != nil {
		dc.previousHandler()
	}
}

func (dc *DisplayController) onNext() {
	if dc.nextHandler != nil {
		dc.nextHandler()
	}
}
