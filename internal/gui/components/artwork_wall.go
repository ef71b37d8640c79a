package components

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

const (
	WallMinWidth  = 320
	WallMinHeight = 360
	wallPadding   = 16
)

// ArtworkWall frames the current artwork image.
type ArtworkWall struct {
	container *fyne.Container
	image     *canvas.Image
}

func NewArtworkWall() *ArtworkWall {
	img := canvas.NewImageFromImage(nil)
	img.FillMode = canvas.ImageFillContain
	img.ScaleMode = canvas.ImageScaleSmooth
	img.SetMinSize(fyne.NewSize(WallMinWidth, WallMinHeight))

	frame := canvas.NewRectangle(color.White)
	frame.StrokeColor = color.NRGBA{R: 0xd3, G: 0xd3, B: 0xd3, A: 0xff}
	frame.StrokeWidth = 2
	frame.CornerRadius = 4

	mainContainer := container.NewStack(
		frame,
		container.NewPadded(container.NewPadded(img)),
	)

	return &ArtworkWall{
		container: mainContainer,
		image:     img,
	}
}

func (aw *ArtworkWall) GetContainer() *fyne.Container {
	return aw.container
}

// SetImage swaps the displayed image. A nil image clears the wall so a stale painting
// is never shown under another artwork's title.
func (aw *ArtworkWall) SetImage(img image.Image) {
	aw.image.Image = img
	aw.image.Refresh()
}

func (aw *ArtworkWall) Image() image.Image {
	return aw.image.Image
}
