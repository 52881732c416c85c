package main

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/gogpu/collage"
	"github.com/gogpu/collage/interact"
	"github.com/gogpu/collage/internal/content"
)

// Placeholder tile size.
const (
	tileWidth  = 400
	tileHeight = 300
)

// images is shared by every goroutine of a run.
var images = content.NewCache(0)

var palette = []color.NRGBA{
	{R: 0xE5, G: 0x73, B: 0x73, A: 0xFF},
	{R: 0x64, G: 0xB5, B: 0xF6, A: 0xFF},
	{R: 0x81, G: 0xC7, B: 0x84, A: 0xFF},
	{R: 0xFF, G: 0xB7, B: 0x4D, A: 0xFF},
	{R: 0xBA, G: 0x68, B: 0xC8, A: 0xFF},
	{R: 0x4D, G: 0xD0, B: 0xE1, A: 0xFF},
	{R: 0xF0, G: 0x62, B: 0x92, A: 0xFF},
	{R: 0xA1, G: 0x88, B: 0x7F, A: 0xFF},
	{R: 0xDC, G: 0xE7, B: 0x75, A: 0xFF},
}

func loadImage(path string) (image.Image, error) {
	return images.GetOrLoad("file:"+path, func() (image.Image, error) {
		return decodeFile(path)
	})
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}

// placeholder returns a checkered tile in the i-th palette colour, so crops
// and flips stay visible in rendered output.
func placeholder(i, w, h int) image.Image {
	i %= len(palette)
	img, _ := images.GetOrLoad(fmt.Sprintf("placeholder:%d:%dx%d", i, w, h), func() (image.Image, error) {
		return checkered(palette[i], w, h), nil
	})
	return img
}

func checkered(c color.NRGBA, w, h int) image.Image {
	dark := color.NRGBA{R: c.R / 2, G: c.G / 2, B: c.B / 2, A: 0xFF}
	cw, ch := w/4+1, h/4+1

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x/cw+y/ch)%2 == 0 {
				img.SetNRGBA(x, y, c)
			} else {
				img.SetNRGBA(x, y, dark)
			}
		}
	}
	return img
}

// fill attaches one piece per area: the given images first, then
// placeholders.
func fill(s *interact.Session, paths []string) error {
	n := s.Layout().AreaCount()
	if len(paths) > n {
		collage.Logger().Warn("collage: extra images ignored", "areas", n, "images", len(paths))
		paths = paths[:n]
	}
	for i := 0; i < n; i++ {
		if i < len(paths) {
			img, err := loadImage(paths[i])
			if err != nil {
				return err
			}
			if _, err := s.AddPiece(img, paths[i]); err != nil {
				return err
			}
			continue
		}
		if _, err := s.AddPiece(placeholder(i, tileWidth, tileHeight), ""); err != nil {
			return err
		}
	}
	return nil
}
