package app

import (
	"image"

	"artspace/internal/controllers"
	"artspace/internal/events"
	"artspace/internal/gui"
	"artspace/internal/logger"
)

type imageResolver interface {
	Resolve(key string) (image.Image, error)
}

// Handlers connects user actions to the controller and artwork changes back to the view.
type Handlers struct {
	controller *controllers.GalleryController
	resolver   imageResolver
	guiManager *gui.Manager
	logger     logger.Logger
}

func NewHandlers(controller *controllers.GalleryController, resolver imageResolver, guiManager *gui.Manager, log logger.Logger) *Handlers {
	return &Handlers{
		controller: controller,
		resolver:   resolver,
		guiManager: guiManager,
		logger:     log,
	}
}

func (h *Handlers) HandlePrevious() {
	h.controller.Previous()
}

func (h *Handlers) HandleNext() {
	h.controller.Next()
}

// HandleArtworkChanged runs on the UI thread. A missing asset clears the wall and still
// renders the texts.
func (h *Handlers) HandleArtworkChanged(event events.ArtworkChanged) {
	img, err := h.resolver.Resolve(event.Artwork.ImageKey)
	if err != nil {
		h.logger.Warning("Handlers", "artwork image unavailable", map[string]interface{}{
			"key":   event.Artwork.ImageKey,
			"title": event.Artwork.Title,
			"error": err.Error(),
		})
		h.guiManager.NotifyError(err)
	}

	h.guiManager.Render(event, img)
}
