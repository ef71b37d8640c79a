package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog(t *testing.T) {
	a := assert.New(t)

	t.Run("Empty", func(t *testing.T) {
		c, err := NewCatalog()
		a.ErrorIs(err, ErrInvalidCatalog)
		a.Nil(c)
	})
	t.Run("Missing title", func(t *testing.T) {
		_, err := NewCatalog(Artwork{ImageKey: "a", Artist: "Someone"})
		a.ErrorIs(err, ErrInvalidCatalog)
	})
	t.Run("Missing artist", func(t *testing.T) {
		_, err := NewCatalog(Artwork{ImageKey: "a", Title: "Something"})
		a.ErrorIs(err, ErrInvalidCatalog)
	})
	t.Run("Input is copied", func(t *testing.T) {
		in := []Artwork{{ImageKey: "a", Title: "A", Artist: "X", Year: "1"}}
		c, err := NewCatalog(in...)
		require.NoError(t, err)
		in[0].Title = "changed"
		a.Equal("A", c.At(0).Title)

		all := c.All()
		all[0].Title = "changed again"
		a.Equal("A", c.At(0).Title)
	})
}

func TestDefaultCatalog(t *testing.T) {
	a := assert.New(t)
	c := DefaultCatalog()

	a.Equal(3, c.Len())
	a.Equal(Artwork{ImageKey: "paris_street", Title: "Paris Street; Rainy Day", Artist: "Gustave Caillebotte", Year: "1877"}, c.At(0))
	a.Equal("The Basket of Apples", c.At(1).Title)
	a.Equal("January–February 1912", c.At(2).Year)
	a.Equal("Juan Gris January–February 1912", c.At(2).Caption())
}
