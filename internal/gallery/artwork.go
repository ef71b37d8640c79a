package gallery

import (
	"errors"
	"fmt"
)

// ErrInvalidCatalog is returned when a catalog or navigator is built without artworks.
var ErrInvalidCatalog = errors.New("invalid catalog")

// Artwork is a single displayable record. ImageKey is an asset key resolved by the host.
type Artwork struct {
	ImageKey string `yaml:"image"`
	Title    string `yaml:"title"`
	Artist   string `yaml:"artist"`
	Year     string `yaml:"year"`
}

// Caption is the secondary line shown under the title.
func (a Artwork) Caption() string {
	return fmt.Sprintf("%s %s", a.Artist, a.Year)
}

// Catalog is an ordered, fixed collection of artworks. It is never mutated after construction.
type Catalog struct {
	artworks []Artwork
}

func NewCatalog(artworks ...Artwork) (*Catalog, error) {
	if len(artworks) == 0 {
		return nil, fmt.Errorf("catalog has no artworks: %w", ErrInvalidCatalog)
	}

	for i, a := range artworks {
		if a.Title == "" || a.Artist == "" {
			return nil, fmt.Errorf("artwork %d is missing title or artist: %w", i, ErrInvalidCatalog)
		}
	}

	owned := make([]Artwork, len(artworks))
	copy(owned, artworks)

	return &Catalog{artworks: owned}, nil
}

func (c *Catalog) Len() int {
	return len(c.artworks)
}

// At panics on an out of range index, like a slice.
func (c *Catalog) At(i int) Artwork {
	return c.artworks[i]
}

func (c *Catalog) All() []Artwork {
	out := make([]Artwork, len(c.artworks))
	copy(out, c.artworks)
	return out
}

// DefaultCatalog returns the bundled collection in display order.
func DefaultCatalog() *Catalog {
	return &Catalog{artworks: []Artwork{
		{ImageKey: "paris_street", Title: "Paris Street; Rainy Day", Artist: "Gustave Caillebotte", Year: "1877"},
		{ImageKey: "basket_of_apples", Title: "The Basket of Apples", Artist: "Paul Cezanne", Year: "1893"},
		{ImageKey: "portrait_picasso", Title: "Portrait of Pablo Picasso", Artist: "Juan Gris", Year: "January–February 1912"},
	}}
}
