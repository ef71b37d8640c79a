package gui

import (
	"errors"
	"image"
	"testing"

	"artspace/internal/events"
	"artspace/internal/gallery"
	"artspace/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestManager_Render(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	m := NewManager(test.NewWindow(nil), logger.Nop{})
	artwork := gallery.DefaultCatalog().At(2)
	img := image.NewRGBA(image.Rect(0, 0, 3, 4))

	m.Render(events.ArtworkChanged{Artwork: artwork, Position: 2, Total: 3}, img)

	assert.Equal(t, "Portrait of Pablo Picasso", m.descriptor.Title())
	assert.Equal(t, "Juan Gris January–February 1912", m.descriptor.Caption())
	assert.Equal(t, "3 / 3", m.controls.Position())
	assert.Same(t, img, m.CurrentImage())

	m.Render(events.ArtworkChanged{Artwork: gallery.DefaultCatalog().At(0), Position: 0, Total: 3}, nil)
	assert.Equal(t, "Paris Street; Rainy Day", m.CurrentTitle())
	assert.Nil(t, m.CurrentImage())
}

func TestManager_RenderAfterShutdownIsIgnored(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	m := NewManager(test.NewWindow(nil), logger.Nop{})
	m.Shutdown()
	m.Shutdown()

	m.Render(events.ArtworkChanged{Artwork: gallery.DefaultCatalog().At(0), Position: 0, Total: 3}, nil)
	assert.Empty(t, m.descriptor.Title())
}

func TestManager_Handlers(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	w := test.NewWindow(nil)
	m := NewManager(w, logger.Nop{})
	w.SetContent(m.GetMainContainer())
	m.BindKeys(w.Canvas())

	var calls []string
	m.SetPreviousHandler(func() { calls = append(calls, "previous") })
	m.SetNextHandler(func() { calls = append(calls, "next") })

	test.Tap(m.controls.NextButton)
	test.Tap(m.controls.PreviousButton)
	m.handleKey(&fyne.KeyEvent{Name: fyne.KeyRight})
	m.handleKey(&fyne.KeyEvent{Name: fyne.KeyLeft})
	m.handleKey(&fyne.KeyEvent{Name: fyne.KeyUp})

	assert.Equal(t, []string{"next", "previous", "next", "previous"}, calls)
}

func TestManager_ShowError(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	m := NewManager(nil, logger.Nop{})
	assert.NotPanics(t, func() {
		m.ShowError("asset", errors.New("missing"))
		m.NotifyError(errors.New("missing"))
	})
}
