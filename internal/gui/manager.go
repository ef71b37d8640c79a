package gui

import (
	"image"

	"artspace/internal/events"
	"artspace/internal/gui/components"
	"artspace/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
)

// Manager binds the gallery components to a window. All methods must run on the UI thread.
type Manager struct {
	window     fyne.Window
	logger     logger.Logger
	isShutdown bool

	wall       *components.ArtworkWall
	descriptor *components.ArtworkDescriptor
	controls   *components.DisplayController

	previousHandler func()
	nextHandler     func()
}

func NewManager(window fyne.Window, log logger.Logger) *Manager {
	manager := &Manager{
		window:     window,
		logger:     log,
		wall:       components.NewArtworkWall(),
		descriptor: components.NewArtworkDescriptor(),
		controls:   components.NewDisplayController(),
	}

	manager.controls.SetPreviousHandler(manager.onPrevious)
	manager.controls.SetNextHandler(manager.onNext)

	return manager
}

func (m *Manager) GetMainContainer() *fyne.Container {
	return container.NewBorder(
		nil,
		m.controls.GetContainer(),
		nil, nil,
		container.NewVBox(
			layout.NewSpacer(),
			container.NewPadded(m.wall.GetContainer()),
			m.descriptor.GetContainer(),
			layout.NewSpacer(),
		),
	)
}

func (m *Manager) SetPreviousHandler(handler func()) {
	m.previousHandler = handler
}

func (m *Manager) SetNextHandler(handler func()) {
	m.nextHandler = handler
}

// BindKeys maps the left and right arrow keys to previous and next.
func (m *Manager) BindKeys(c fyne.Canvas) {
	c.SetOnTypedKey(m.handleKey)
}

func (m *Manager) handleKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyLeft:
		m.onPrevious()
	case fyne.KeyRight:
		m.onNext()
	}
}

// Render shows the artwork carried by event. img may be nil when the asset failed to resolve;
// the wall is then cleared and the texts are still updated.
func (m *Manager) Render(event events.ArtworkChanged, img image.Image) {
	if m.isShutdown {
		return
	}

	m.wall.SetImage(img)
	m.descriptor.SetArtwork(event.Artwork.Title, event.Artwork.Caption())
	m.controls.SetPosition(event.Label())

	m.logger.Debug("GUIManager", "artwork rendered", map[string]interface{}{
		"title":    event.Artwork.Title,
		"position": event.Position,
	})
}

// CurrentTitle is the title currently on screen.
func (m *Manager) CurrentTitle() string {
	return m.descriptor.Title()
}

// CurrentImage is the image currently on the wall, nil when cleared.
func (m *Manager) CurrentImage() image.Image {
	return m.wall.Image()
}

func (m *Manager) ShowError(title string, err error) {
	m.logger.Error("GUIManager", err, map[string]interface{}{
		"title": title,
	})

	m.NotifyError(err)
}

// NotifyError shows err in a dialog without logging it.
func (m *Manager) NotifyError(err error) {
	if m.window != nil {
		dialog.ShowError(err, m.window)
	}
}

func (m *Manager) Shutdown() {
	if m.isShutdown {
		return
	}

	m.isShutdown = true
	m.logger.Info("GUIManager", "shutdown initiated", nil)
}

func (m *Manager) onPrevious() {
	if m.previousHandler != nil {
		m.previousHandler()
	}
}

func (m *Manager) onNext() {
	if m.nextHandler != nil {
		m.nextHandler()
	}
}
