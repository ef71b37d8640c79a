package gallery

import "fmt"

// Navigator holds the cursor into a Catalog. Next and Previous wrap around at both ends,
// so the cursor always stays in [0, Len()).
type Navigator struct {
	catalog *Catalog
	cursor  int
}

func NewNavigator(catalog *Catalog) (*Navigator, error) {
	if catalog == nil || catalog.Len() == 0 {
		return nil, fmt.Errorf("navigator needs a non-empty catalog: %w", ErrInvalidCatalog)
	}

	return &Navigator{catalog: catalog}, nil
}

func (n *Navigator) Current() Artwork {
	return n.catalog.At(n.cursor)
}

func (n *Navigator) Next() {
	n.cursor = (n.cursor + 1) % n.catalog.Len()
}

func (n *Navigator) Previous() {
	size := n.catalog.Len()
	n.cursor = (n.cursor - 1 + size) % size
}

// Position is the zero-based cursor.
func (n *Navigator) Position() int {
	return n.cursor
}

func (n *Navigator) Len() int {
	return n.catalog.Len()
}
