package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"io"

	"golang.org/x/image/draw"
)

type Upload struct {
	Reader      io.Reader
	Size        int64
	ContentType string
}

type Result struct {
	Bytes       []byte
	ContentType string
}

// Processor normalizes uploaded images before they reach object storage.
type Processor interface {
	Process(ctx context.Context, upload Upload, maxDimension int) (*Result, error)
}

var ErrUnsupportedImage = errors.New("unsupported image format")

// ImageProcessor decodes JPEG/PNG uploads, downscales anything larger than
// the requested bound, and re-encodes as JPEG.
type ImageProcessor struct {
	Quality int
}

func NewImageProcessor() *ImageProcessor {
	return &ImageProcessor{Quality: 85}
}

func (p *ImageProcessor) Process(ctx context.Context, upload Upload, maxDimension int) (*Result, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	src, format, err := image.Decode(upload.Reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}
	switch format {
	case "jpeg", "png":
	default:
		return nil, ErrUnsupportedImage
	}

	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if maxDimension > 0 && (width > maxDimension || height > maxDimension) {
		scale := float64(maxDimension) / float64(width)
		if height > width {
			scale = float64(maxDimension) / float64(height)
		}
		dst := image.NewRGBA(image.Rect(0, 0, int(float64(width)*scale), int(float64(height)*scale)))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		src = dst
	}

	var buf bytes.Buffer
	quality := p.Quality
	if quality <= 0 || quality > 100 {
		quality = 85
	}
	if err := jpeg.Encode(&buf, src, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return &Result{Bytes: buf.Bytes(), ContentType: "image/jpeg"}, nil
}
