package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ArtworkDescriptor shows the title and the "artist year" caption.
type ArtworkDescriptor struct {
	container    *fyne.Container
	titleLabel   *widget.Label
	captionLabel *widget.Label
}

func NewArtworkDescriptor() *ArtworkDescriptor {
	titleLabel := widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	titleLabel.Wrapping = fyne.TextWrapWord

	captionLabel := widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{})
	captionLabel.Wrapping = fyne.TextWrapWord

	card := widget.NewCard("", "", container.NewVBox(titleLabel, captionLabel))

	return &ArtworkDescriptor{
		container:    container.NewPadded(card),
		titleLabel:   titleLabel,
		captionLabel: captionLabel,
	}
}

func (ad *ArtworkDescriptor) GetContainer() *fyne.Container {
	return ad.container
}

func (ad *ArtworkDescriptor) SetArtwork(title, caption string) {
	ad.titleLabel.SetText(title)
	ad.captionLabel.SetText(caption)
}

func (ad *ArtworkDescriptor) Title() string {
	return ad.titleLabel.Text
}

func (ad *ArtworkDescriptor) Caption() string {
	return ad.captionLabel.Text
}
