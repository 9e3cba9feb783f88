// Package imaging shrinks uploaded photos into JPEG data URLs small enough to
// live inside the stored document.
package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"io"

	_ "image/gif"
	_ "image/png"

	errorvalues "github.com/limbo/rexfit/internal/error_values"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const dataURLPrefix = "data:image/jpeg;base64,"

// Options bound the output size. MaxWidth limits the width only, MaxSide
// limits the longer side. Zero means no limit.
type Options struct {
	MaxWidth int
	MaxSide  int
	// JPEG quality, 1..100
	Quality int
}

var (
	JournalOptions = Options{MaxWidth: 800, Quality: 70}
	ProfileOptions = Options{MaxSide: 400, Quality: 80}
)

//go:generate mockgen -source=compress.go -destination=mocks/compressor_mock.go -package=mocks
type Compressor interface {
	// Decodes an image and returns it re-encoded as a JPEG data URL.
	Compress(r io.Reader, opts Options) (string, error)
}

const (
	defaultMaxInputBytes  = 20 << 20
	defaultMaxInputPixels = 40_000_000
)

type JPEGCompressor struct {
	// MaxInputBytes caps how much of the upload is read. Zero means 20 MiB.
	MaxInputBytes int64
	// MaxInputPixels rejects images whose decoded size would exceed it,
	// checked from the header before decoding. Zero means 40 megapixels.
	MaxInputPixels int
}

func NewJPEGCompressor() *JPEGCompressor {
	return &JPEGCompressor{MaxInputBytes: defaultMaxInputBytes, MaxInputPixels: defaultMaxInputPixels}
}

func (c *JPEGCompressor) Compress(r io.Reader, opts Options) (string, error) {
	limit := c.MaxInputBytes
	if limit <= 0 {
		limit = defaultMaxInputBytes
	}
	maxPixels := c.MaxInputPixels
	if maxPixels <= 0 {
		maxPixels = defaultMaxInputPixels
	}
	raw, err := io.ReadAll(io.LimitReader(r, limit))
	if err != nil {
		return "", fmt.Errorf("%w: reading image: %w", errorvalues.ErrInvalidInput, err)
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("%w: decoding image: %w", errorvalues.ErrInvalidInput, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Width > maxPixels/cfg.Height {
		return "", fmt.Errorf("%w: image is %dx%d, over %d pixels", errorvalues.ErrInvalidInput, cfg.Width, cfg.Height, maxPixels)
	}
	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("%w: decoding image: %w", errorvalues.ErrInvalidInput, err)
	}

	bounds := src.Bounds()
	w, h := TargetSize(bounds.Dx(), bounds.Dy(), opts)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	// JPEG has no alpha, transparent areas become white
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)

	quality := opts.Quality
	if quality <= 0 || quality > 100 {
		quality = jpeg.DefaultQuality
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: quality}); err != nil {
		return "", fmt.Errorf("encoding jpeg: %w", err)
	}
	return dataURLPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// TargetSize scales w×h down to fit opts, keeping the aspect ratio. Images
// already within bounds keep their size.
func TargetSize(w, h int, opts Options) (int, int) {
	scale := 1.0
	if opts.MaxWidth > 0 && w > opts.MaxWidth {
		scale = float64(opts.MaxWidth) / float64(w)
	}
	if opts.MaxSide > 0 {
		longer := max(w, h)
		if longer > opts.MaxSide {
			scale = min(scale, float64(opts.MaxSide)/float64(longer))
		}
	}
	if scale == 1 {
		return w, h
	}
	return max(1, int(float64(w)*scale)), max(1, int(float64(h)*scale))
}

// Decode returns the JPEG bytes behind a data URL produced by Compress.
func Decode(dataURL string) ([]byte, error) {
	if len(dataURL) < len(dataURLPrefix) || dataURL[:len(dataURLPrefix)] != dataURLPrefix {
		return nil, fmt.Errorf("%w: not a jpeg data url", errorvalues.ErrInvalidInput)
	}
	data, err := base64.StdEncoding.DecodeString(dataURL[len(dataURLPrefix):])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errorvalues.ErrInvalidInput, err)
	}
	return data, nil
}
