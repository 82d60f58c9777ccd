// Package imaging creates and organises the images served from the static
// images directory.
package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"math"
	"os"
	"path/filepath"
	"strconv"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const jpegQuality = 95

var (
	BackgroundColor = color.RGBA{R: 0, G: 40, B: 50, A: 255}
	TextColor       = color.RGBA{R: 0, G: 217, B: 255, A: 255}
	SizeTextColor   = color.RGBA{R: 100, G: 200, B: 220, A: 255}
)

// Placeholder describes one generated gallery image
type Placeholder struct {
	File   string
	Text   string
	Width  int
	Height int
}

var DefaultPlaceholders = []Placeholder{
	{File: "profile.jpg", Text: "Ibrahim Fakhry", Width: 1000, Height: 1000},
	{File: "project1.jpg", Text: "Web Dev", Width: 800, Height: 800},
	{File: "project2.jpg", Text: "AI Project", Width: 800, Height: 800},
	{File: "project3.jpg", Text: "Teaching", Width: 800, Height: 800},
	{File: "project4.jpg", Text: "Innovation", Width: 800, Height: 800},
}

// RenderPlaceholder draws the caption, the image size below it and a ring above it
func RenderPlaceholder(p Placeholder) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.Width, p.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(BackgroundColor), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	cx, cy := p.Width/2, p.Height/2

	// roughly 60px and 30px tall text
	mainScale := fitScale(p.Text, 5, p.Width)
	mainHeight := face.Height * mainScale
	drawText(img, p.Text, TextColor, cx, (p.Height-mainHeight)/2-50, mainScale)

	sizeText := strconv.Itoa(p.Width) + "x" + strconv.Itoa(p.Height)
	drawText(img, sizeText, SizeTextColor, cx, cy+50, fitScale(sizeText, 2, p.Width))

	drawRing(img, cx, cy-200, 100, 3, TextColor)
	return img
}

// WritePlaceholder renders p as a JPEG into dir and returns the file path
func WritePlaceholder(dir string, p Placeholder) (string, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", fmt.Errorf("cannot create images directory: %w", err)
	}

	path := filepath.Join(dir, p.File)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("cannot create %s: %w", path, err)
	}
	defer f.Close()

	if err := jpeg.Encode(f, RenderPlaceholder(p), &jpeg.Options{Quality: jpegQuality}); err != nil {
		return "", fmt.Errorf("cannot encode %s: %w", path, err)
	}
	return path, f.Close()
}

func textWidth(text string) int {
	d := &font.Drawer{Face: basicfont.Face7x13}
	return d.MeasureString(text).Ceil()
}

// fitScale shrinks scale until the text fits with a small margin
func fitScale(text string, scale, width int) int {
	w := textWidth(text)
	for scale > 1 && w*scale > width-40 {
		scale--
	}
	return scale
}

// drawText renders text with the bitmap face and scales it up, centred on cx
func drawText(dst draw.Image, text string, c color.Color, cx, top, scale int) {
	face := basicfont.Face7x13
	w, h := textWidth(text), face.Height
	if w == 0 {
		return
	}

	small := image.NewRGBA(image.Rect(0, 0, w, h))
	d := &font.Drawer{
		Dst:  small,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	d.DrawString(text)

	left := cx - w*scale/2
	target := image.Rect(left, top, left+w*scale, top+h*scale)
	xdraw.NearestNeighbor.Scale(dst, target, small, small.Bounds(), xdraw.Over, nil)
}

// drawRing strokes a circle outline of the given width
func drawRing(dst draw.Image, cx, cy, radius, width int, c color.Color) {
	half := float64(width) / 2
	inner, outer := float64(radius)-half, float64(radius)+half
	bounds := dst.Bounds()
	for y := cy - radius - width; y <= cy+radius+width; y++ {
		for x := cx - radius - width; x <= cx+radius+width; x++ {
			if !(image.Point{X: x, Y: y}).In(bounds) {
				continue
			}
			d := math.Hypot(float64(x-cx), float64(y-cy))
			if d >= inner && d <= outer {
				dst.Set(x, y, c)
			}
		}
	}
}
