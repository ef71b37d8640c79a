// Package assets bundles the gallery images and resolves asset keys into decoded images.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"artspace/internal/logger"

	"gocv.io/x/gocv"
)

//go:embed images/*.png
var bundled embed.FS

const imageDir = "images"

var (
	ErrAssetNotFound = errors.New("asset not found")
	ErrAssetDecode   = errors.New("asset could not be decoded")
)

// Resolver turns asset keys into images scaled to fit maxEdge. Results are cached per key.
type Resolver struct {
	files   fs.FS
	maxEdge int
	logger  logger.Logger

	mu    sync.Mutex
	cache map[string]image.Image
}

func NewResolver(log logger.Logger, maxEdge int) *Resolver {
	return newResolver(bundled, log, maxEdge)
}

func newResolver(files fs.FS, log logger.Logger, maxEdge int) *Resolver {
	return &Resolver{
		files:   files,
		maxEdge: maxEdge,
		logger:  log,
		cache:   make(map[string]image.Image),
	}
}

func (r *Resolver) Resolve(key string) (image.Image, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if img, ok := r.cache[key]; ok {
		return img, nil
	}

	data, err := fs.ReadFile(r.files, path.Join(imageDir, key+".png"))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, ErrAssetNotFound)
	}

	img, err := r.decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", key, ErrAssetDecode, err)
	}

	bounds := img.Bounds()
	r.logger.Debug("AssetResolver", "asset decoded", map[string]interface{}{
		"key":    key,
		"width":  bounds.Dx(),
		"height": bounds.Dy(),
		"bytes":  len(data),
	})

	r.cache[key] = img
	return img, nil
}

func (r *Resolver) decode(data []byte) (image.Image, error) {
	mat, err := gocv.IMDecode(data, gocv.IMReadColor)
	if err != nil {
		return nil, err
	}
	defer mat.Close()

	if mat.Empty() {
		return nil, errors.New("empty image")
	}

	width, height := fitWithin(mat.Cols(), mat.Rows(), r.maxEdge)
	if width == mat.Cols() && height == mat.Rows() {
		return mat.ToImage()
	}

	resized := gocv.NewMat()
	defer resized.Close()
	if err := gocv.Resize(mat, &resized, image.Point{X: width, Y: height}, 0, 0, gocv.InterpolationArea); err != nil {
		return nil, fmt.Errorf("resize to %dx%d: %w", width, height, err)
	}

	return resized.ToImage()
}

// Keys lists the bundled asset keys in lexical order.
func (r *Resolver) Keys() ([]string, error) {
	entries, err := fs.ReadDir(r.files, imageDir)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".png" {
			continue
		}
		keys = append(keys, strings.TrimSuffix(entry.Name(), ".png"))
	}
	sort.Strings(keys)
	return keys, nil
}

// fitWithin scales width and height down so the longer edge is at most maxEdge.
// Images that already fit, and a non-positive maxEdge, leave the size unchanged.
func fitWithin(width, height, maxEdge int) (int, int) {
	longest := width
	if height > longest {
		longest = height
	}
	if maxEdge <= 0 || longest <= maxEdge {
		return width, height
	}

	scaled := func(v int) int {
		s := v * maxEdge / longest
		if s < 1 {
			return 1
		}
		return s
	}
	return scaled(width), scaled(height)
}
