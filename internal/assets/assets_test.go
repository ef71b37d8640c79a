package assets

import (
	"testing"
	"testing/fstest"

	"artspace/internal/gallery"
	"artspace/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitWithin(t *testing.T) {
	a := assert.New(t)

	w, h := fitWithin(96, 72, 0)
	a.Equal([]int{96, 72}, []int{w, h})

	w, h = fitWithin(96, 72, 200)
	a.Equal([]int{96, 72}, []int{w, h})

	w, h = fitWithin(96, 72, 48)
	a.Equal([]int{48, 36}, []int{w, h})

	w, h = fitWithin(72, 96, 48)
	a.Equal([]int{36, 48}, []int{w, h})

	w, h = fitWithin(1000, 1, 10)
	a.Equal([]int{10, 1}, []int{w, h})
}

func TestResolver_BundlesEveryCatalogImage(t *testing.T) {
	r := NewResolver(logger.Nop{}, 0)
	keys, err := r.Keys()
	require.NoError(t, err)

	for _, artwork := range gallery.DefaultCatalog().All() {
		assert.Contains(t, keys, artwork.ImageKey)
	}
}

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver(logger.Nop{}, 48)

	img, err := r.Resolve("paris_street")
	require.NoError(t, err)
	assert.Equal(t, 48, img.Bounds().Dx())
	assert.Equal(t, 36, img.Bounds().Dy())

	again, err := r.Resolve("paris_street")
	require.NoError(t, err)
	assert.Same(t, img, again)
}

func TestResolver_Errors(t *testing.T) {
	files := fstest.MapFS{
		"images/broken.png": &fstest.MapFile{Data: []byte("not a png")},
	}
	r := newResolver(files, logger.Nop{}, 0)

	_, err := r.Resolve("missing")
	assert.ErrorIs(t, err, ErrAssetNotFound)

	_, err = r.Resolve("broken")
	assert.ErrorIs(t, err, ErrAssetDecode)
}
