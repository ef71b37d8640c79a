package app

import (
	"context"
	"fmt"

	"artspace/internal/assets"
	"artspace/internal/config"
	"artspace/internal/controllers"
	"artspace/internal/events"
	"artspace/internal/gallery"
	"artspace/internal/gui"
	"artspace/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName    = "Art Space"
	AppID      = "com.example.artspace"
	AppVersion = "1.0.0"

	eventQueueSize = 16
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	guiManager *gui.Manager
	controller *controllers.GalleryController
	broker     *events.Broker
	resolver   *assets.Resolver
	logger     logger.Logger
	lifecycle  *Lifecycle
}

// NewApplication builds the Fyne app around catalog. It fails with gallery.ErrInvalidCatalog
// when the catalog cannot be navigated.
func NewApplication(cfg config.Config, catalog *gallery.Catalog, log logger.Logger) (*Application, error) {
	return newApplication(app.NewWithID(AppID), cfg, catalog, log)
}

func newApplication(fyneApp fyne.App, cfg config.Config, catalog *gallery.Catalog, log logger.Logger) (*Application, error) {
	navigator, err := gallery.NewNavigator(catalog)
	if err != nil {
		return nil, fmt.Errorf("create navigator: %w", err)
	}

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(float32(cfg.WindowWidth), float32(cfg.WindowHeight)))
	window.CenterOnScreen()
	window.SetMaster()

	log.Info("Application", "starting application", map[string]interface{}{
		"version":       AppVersion,
		"window_width":  cfg.WindowWidth,
		"window_height": cfg.WindowHeight,
		"artworks":      catalog.Len(),
	})

	broker := events.NewBroker(eventQueueSize, log)
	resolver := assets.NewResolver(log, cfg.ImageMaxEdge)
	controller := controllers.NewGalleryController(navigator, broker, log)
	guiManager := gui.NewManager(window, log)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		guiManager: guiManager,
		controller: controller,
		broker:     broker,
		resolver:   resolver,
		logger:     log,
		lifecycle:  NewLifecycle(broker, guiManager, log),
	}

	if err := application.setupHandlers(); err != nil {
		return nil, err
	}

	log.Info("Application", "initialization complete", nil)
	return application, nil
}

func (a *Application) setupHandlers() error {
	handlers := NewHandlers(a.controller, a.resolver, a.guiManager, a.logger)

	a.guiManager.SetPreviousHandler(handlers.HandlePrevious)
	a.guiManager.SetNextHandler(handlers.HandleNext)
	a.guiManager.BindKeys(a.window.Canvas())

	if err := a.broker.ConnectToGui(handlers.HandleArtworkChanged); err != nil {
		return fmt.Errorf("connect gui to broker: %w", err)
	}
	return nil
}

// Run blocks in the Fyne event loop until the window closes or ctx is cancelled.
func (a *Application) Run(ctx context.Context) error {
	stop := a.watchContext(ctx)
	defer stop()

	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.lifecycle.Shutdown()
		a.window.Close()
	})

	a.window.SetContent(a.guiManager.GetMainContainer())
	a.controller.Refresh()
	a.window.Show()

	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	a.lifecycle.Shutdown()
	return nil
}

// watchContext quits the event loop when ctx is cancelled, e.g. on SIGINT from the terminal.
// The returned func stops watching.
func (a *Application) watchContext(ctx context.Context) func() {
	done := make(chan struct{})

	go func() {
		select {
		case <-ctx.Done():
			a.logger.Info("Application", "context cancelled, initiating shutdown", map[string]interface{}{
				"cause": context.Cause(ctx).Error(),
			})
			fyne.Do(func() {
				a.lifecycle.Shutdown()
				a.fyneApp.Quit()
			})
		case <-done:
		}
	}()

	return func() { close(done) }
}
