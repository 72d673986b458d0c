package rasterizer

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/tiff"
)

// Writer encodes an image to w.
type Writer func(w io.Writer, img image.Image) error

// PNGWriter writes the image as a PNG file.
func PNGWriter() Writer {
	return png.Encode
}

// JPGWriter writes the image as a JPG file.
func JPGWriter(opts *jpeg.Options) Writer {
	return func(w io.Writer, img image.Image) error {
		return jpeg.Encode(w, img, opts)
	}
}

// GIFWriter writes the image as a GIF file.
func GIFWriter(opts *gif.Options) Writer {
	return func(w io.Writer, img image.Image) error {
		return gif.Encode(w, img, opts)
	}
}

// TIFFWriter writes the image as a TIFF file.
func TIFFWriter(opts *tiff.Options) Writer {
	return func(w io.Writer, img image.Image) error {
		return tiff.Encode(w, img, opts)
	}
}

// WriterFor returns the writer for the extension of filename.
func WriterFor(filename string) (Writer, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".png":
		return PNGWriter(), nil
	case ".jpg", ".jpeg":
		return JPGWriter(nil), nil
	case ".gif":
		return GIFWriter(nil), nil
	case ".tif", ".tiff":
		return TIFFWriter(nil), nil
	default:
		return nil, fmt.Errorf("unknown image format: %s", ext)
	}
}
