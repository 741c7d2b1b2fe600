// Package textures decodes images into RGBA bitmaps ready for upload to GPU
// textures.
package textures

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/fs"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"glsb/gpu"
)

// ErrEmptyImage is returned for images without pixels.
var ErrEmptyImage = errors.New("textures: empty image")

// Bitmap is a tightly packed image with four unsigned bytes per pixel in
// R, G, B, A order and straight alpha. Rows run top to bottom.
type Bitmap struct {
	Width  int
	Height int
	Pix    []byte
}

// FromImage converts img to a Bitmap.
func FromImage(img image.Image) (*Bitmap, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, ErrEmptyImage
	}

	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return &Bitmap{Width: b.Dx(), Height: b.Dy(), Pix: dst.Pix}, nil
}

// Decode reads a PNG, JPEG, BMP, TIFF or WebP image.
func Decode(r io.Reader) (*Bitmap, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	bm, err := FromImage(img)
	if err != nil {
		return nil, fmt.Errorf("converting %s image: %w", format, err)
	}
	return bm, nil
}

// Load decodes the image file name from fsys.
func Load(fsys fs.FS, name string) (*Bitmap, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("opening texture: %w", err)
	}
	defer f.Close()

	bm, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", name, err)
	}
	return bm, nil
}

// Size returns the byte length of the pixel data.
func (b *Bitmap) Size() int {
	return b.Width * b.Height * 4
}

// Image returns the bitmap as an image sharing its pixels.
func (b *Bitmap) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    b.Pix,
		Stride: b.Width * 4,
		Rect:   image.Rect(0, 0, b.Width, b.Height),
	}
}

// Fit returns the bitmap scaled down to at most maxSize pixels on its
// longest side, keeping the aspect ratio. Bitmaps that already fit are
// returned as is.
func (b *Bitmap) Fit(maxSize int) *Bitmap {
	if maxSize <= 0 || (b.Width <= maxSize && b.Height <= maxSize) {
		return b
	}

	w, h := maxSize, maxSize
	if b.Width > b.Height {
		h = max(1, b.Height*maxSize/b.Width)
	} else {
		w = max(1, b.Width*maxSize/b.Height)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), b.Image(), b.Image().Bounds(), draw.Src, nil)
	return &Bitmap{Width: w, Height: h, Pix: dst.Pix}
}

// Upload allocates tex with the bitmap's pixels.
func (b *Bitmap) Upload(tex *gpu.Texture) error {
	return tex.Allocate(b.Width, b.Height, b.Pix)
}
