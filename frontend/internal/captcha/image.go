package captcha

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math/rand/v2"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	imageWidth  = 160
	imageHeight = 48
)

// RenderPNG rasterizes the question into a small PNG with light line noise.
// The answer still rides alongside the form in plaintext, so the image is
// cosmetic rather than protective.
func RenderPNG(question string) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, imageWidth, imageHeight))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.RGBA{R: 243, G: 244, B: 246, A: 255}}, image.Point{}, draw.Src)

	ink := color.RGBA{R: 31, G: 41, B: 55, A: 255}
	for i := 0; i < 4; i++ {
		drawLine(img, rand.IntN(imageWidth), rand.IntN(imageHeight), rand.IntN(imageWidth), rand.IntN(imageHeight),
			color.RGBA{R: 156, G: 163, B: 175, A: 255})
	}

	face := basicfont.Face7x13
	textWidth := font.MeasureString(face, question).Ceil()
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(ink),
		Face: face,
		Dot: fixed.P(
			(imageWidth-textWidth)/2,
			(imageHeight+face.Metrics().Ascent.Ceil())/2,
		),
	}
	drawer.DrawString(question)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// drawLine draws a simple Bresenham line; enough for decorative noise.
func drawLine(img *image.RGBA, x0, y0, x1, y1 int, c color.Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		img.Set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
