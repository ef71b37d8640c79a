package events

import (
	"fmt"

	"artspace/internal/gallery"
	"artspace/internal/logger"

	"fyne.io/fyne/v2"
	messagebus "github.com/vardius/message-bus"
)

type Topic string

const (
	ArtworkChangedTopic Topic = "artwork-changed"
)

// ArtworkChanged is published after the displayed artwork changes, and once for the initial render.
type ArtworkChanged struct {
	Artwork  gallery.Artwork
	Position int
	Total    int
}

// Label renders the one-based position, e.g. "2 / 3".
func (e ArtworkChanged) Label() string {
	return fmt.Sprintf("%d / %d", e.Position+1, e.Total)
}

type Broker struct {
	bus    messagebus.MessageBus
	logger logger.Logger
	topics map[Topic]struct{}
}

func NewBroker(queueSize int, log logger.Logger) *Broker {
	return &Broker{
		bus:    messagebus.New(queueSize),
		logger: log,
		topics: make(map[Topic]struct{}),
	}
}

// Subscribe registers fn for topic. fn is called on a bus goroutine with the published arguments.
func (b *Broker) Subscribe(topic Topic, fn interface{}) error {
	if err := b.bus.Subscribe(string(topic), fn); err != nil {
		return fmt.Errorf("subscribe to %s: %w", topic, err)
	}
	b.topics[topic] = struct{}{}
	return nil
}

// ConnectToGui delivers artwork changes on the Fyne UI thread.
func (b *Broker) ConnectToGui(fn func(ArtworkChanged)) error {
	return b.Subscribe(ArtworkChangedTopic, func(event ArtworkChanged) {
		fyne.Do(func() {
			fn(event)
		})
	})
}

func (b *Broker) PublishArtworkChanged(event ArtworkChanged) {
	b.logger.Debug("Broker", "publishing", map[string]interface{}{
		"topic":    ArtworkChangedTopic,
		"position": event.Position,
		"title":    event.Artwork.Title,
	})
	b.bus.Publish(string(ArtworkChangedTopic), event)
}

// Close drops every subscription. Publishing afterwards is a no-op.
func (b *Broker) Close() {
	for topic := range b.topics {
		b.bus.Close(string(topic))
	}
	b.topics = make(map[Topic]struct{})
}
