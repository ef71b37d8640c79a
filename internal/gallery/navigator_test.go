package gallery

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogOfSize(t *testing.T, n int) *Catalog {
	t.Helper()
	artworks := make([]Artwork, 0, n)
	for i := 0; i < n; i++ {
		artworks = append(artworks, Artwork{
			ImageKey: fmt.Sprintf("img%d", i),
			Title:    fmt.Sprintf("Title %d", i),
			Artist:   "Artist",
			Year:     "1900",
		})
	}
	c, err := NewCatalog(artworks...)
	require.NoError(t, err)
	return c
}

func TestNewNavigator(t *testing.T) {
	a := assert.New(t)

	t.Run("Nil catalog", func(t *testing.T) {
		nav, err := NewNavigator(nil)
		a.ErrorIs(err, ErrInvalidCatalog)
		a.Nil(nav)
	})
	t.Run("Empty catalog", func(t *testing.T) {
		nav, err := NewNavigator(&Catalog{})
		a.ErrorIs(err, ErrInvalidCatalog)
		a.Nil(nav)
	})
	t.Run("Starts at first artwork", func(t *testing.T) {
		c := catalogOfSize(t, 4)
		nav, err := NewNavigator(c)
		require.NoError(t, err)
		a.Equal(0, nav.Position())
		a.Equal(c.At(0), nav.Current())
		a.Equal(4, nav.Len())
	})
}

func TestNavigator_DefaultScenario(t *testing.T) {
	a := assert.New(t)
	nav, err := NewNavigator(DefaultCatalog())
	require.NoError(t, err)

	a.Equal("Paris Street; Rainy Day", nav.Current().Title)
	nav.Next()
	a.Equal("The Basket of Apples", nav.Current().Title)
	nav.Next()
	a.Equal("Portrait of Pablo Picasso", nav.Current().Title)
	nav.Next()
	a.Equal("Paris Street; Rainy Day", nav.Current().Title)
	nav.Previous()
	a.Equal("Portrait of Pablo Picasso", nav.Current().Title)
}

func TestNavigator_CycleClosure(t *testing.T) {
	for _, n := range []int{1, 2, 3, 7} {
		t.Run(fmt.Sprintf("N=%d", n), func(t *testing.T) {
			nav, err := NewNavigator(catalogOfSize(t, n))
			require.NoError(t, err)
			nav.Next()
			start := nav.Position()

			for i := 0; i < n; i++ {
				nav.Next()
			}
			assert.Equal(t, start, nav.Position())

			for i := 0; i < n; i++ {
				nav.Previous()
			}
			assert.Equal(t, start, nav.Position())
		})
	}
}

func TestNavigator_Inverse(t *testing.T) {
	nav, err := NewNavigator(catalogOfSize(t, 5))
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		before := nav.Position()
		nav.Next()
		nav.Previous()
		assert.Equal(t, before, nav.Position())
		nav.Previous()
		nav.Next()
		assert.Equal(t, before, nav.Position())
		nav.Next()
	}
}

func TestNavigator_CursorStaysInRange(t *testing.T) {
	// Deterministic mixed walk over several sizes.
	moves := "nnpnppppnnnnnnpnpnpppnnp"
	for _, n := range []int{1, 2, 3, 5} {
		nav, err := NewNavigator(catalogOfSize(t, n))
		require.NoError(t, err)
		for _, m := range moves {
			if m == 'n' {
				nav.Next()
			} else {
				nav.Previous()
			}
			assert.GreaterOrEqual(t, nav.Position(), 0)
			assert.Less(t, nav.Position(), n)
			assert.Equal(t, fmt.Sprintf("Title %d", nav.Position()), nav.Current().Title)
		}
	}
}
