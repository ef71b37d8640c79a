package controllers

import (
	"artspace/internal/events"
	"artspace/internal/gallery"
	"artspace/internal/logger"
)

// Publisher receives artwork changes so views can re-render.
type Publisher interface {
	PublishArtworkChanged(event events.ArtworkChanged)
}

// GalleryController owns the navigator for one presentation session. It must only be
// driven from the UI thread.
type GalleryController struct {
	navigator *gallery.Navigator
	publisher Publisher
	logger    logger.Logger
}

func NewGalleryController(navigator *gallery.Navigator, publisher Publisher, log logger.Logger) *GalleryController {
	return &GalleryController{
		navigator: navigator,
		publisher: publisher,
		logger:    log,
	}
}

func (gc *GalleryController) Current() gallery.Artwork {
	return gc.navigator.Current()
}

func (gc *GalleryController) Next() {
	gc.navigator.Next()
	gc.logger.Debug("GalleryController", "next", map[string]interface{}{
		"position": gc.navigator.Position(),
	})
	gc.publish()
}

func (gc *GalleryController) Previous() {
	gc.navigator.Previous()
	gc.logger.Debug("GalleryController", "previous", map[string]interface{}{
		"position": gc.navigator.Position(),
	})
	gc.publish()
}

// Refresh republishes the current artwork without moving, used for the first render.
func (gc *GalleryController) Refresh() {
	gc.publish()
}

func (gc *GalleryController) publish() {
	gc.publisher.PublishArtworkChanged(events.ArtworkChanged{
		Artwork:  gc.navigator.Current(),
		Position: gc.navigator.Position(),
		Total:    gc.navigator.Len(),
	})
}
