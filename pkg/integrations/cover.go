package integrations

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// CoverOptions controls the generated cover image.
type CoverOptions struct {
	Width      int
	Height     int
	Background color.Color
	Foreground color.Color
	Muted      color.Color
}

func DefaultCoverOptions() CoverOptions {
	return CoverOptions{
		Width:      600,
		Height:     800,
		Background: color.RGBA{0x00, 0x00, 0x00, 0xff},
		Foreground: color.RGBA{0x19, 0x99, 0xb3, 0xff},
		Muted:      color.RGBA{0x71, 0x71, 0x7a, 0xff},
	}
}

// coverScale is how much the cover is drawn smaller than its final size. The
// bitmap font is tiny, so text is laid out on a small canvas and scaled up.
const coverScale = 4

const lineHeight = 15

// RenderCover draws a PNG cover with the title in the upper third and the
// subtitle lines below it. Text is Latin only.
func RenderCover(title string, subtitle []string, opts CoverOptions) ([]byte, error) {
	if opts.Width < coverScale*20 || opts.Height < coverScale*20 {
		return nil, fmt.Errorf("cover too small: %dx%d", opts.Width, opts.Height)
	}

	canvas := image.NewRGBA(image.Rect(0, 0, opts.Width/coverScale, opts.Height/coverScale))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	drawFrame(canvas, opts.Foreground)

	face := basicfont.Face7x13
	maxChars := (canvas.Bounds().Dx() - 16) / face.Advance

	y := canvas.Bounds().Dy() / 3
	for _, line := range wrapText(title, maxChars) {
		drawCentered(canvas, face, line, y, opts.Foreground)
		y += lineHeight
	}
	y += lineHeight / 2
	for _, sub := range subtitle {
		for _, line := range wrapText(sub, maxChars) {
			drawCentered(canvas, face, line, y, opts.Muted)
			y += lineHeight
		}
	}

	cover := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.NearestNeighbor.Scale(cover, cover.Bounds(), canvas, canvas.Bounds(), draw.Src, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, cover); err != nil {
		return nil, fmt.Errorf("failed to encode cover: %w", err)
	}
	return buf.Bytes(), nil
}

func drawFrame(img *image.RGBA, c color.Color) {
	b := img.Bounds().Inset(4)
	for x := b.Min.X; x < b.Max.X; x++ {
		img.Set(x, b.Min.Y, c)
		img.Set(x, b.Max.Y-1, c)
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		img.Set(b.Min.X, y, c)
		img.Set(b.Max.X-1, y, c)
	}
}

func drawCentered(img *image.RGBA, face font.Face, text string, baseline int, c color.Color) {
	width := font.MeasureString(face, text).Ceil()
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P((img.Bounds().Dx()-width)/2, baseline),
	}
	d.DrawString(text)
}

// wrapText breaks s into lines of at most max characters on word
// boundaries. Longer words are cut.
func wrapText(s string, max int) []string {
	if max < 1 {
		max = 1
	}
	var lines []string
	var cur string
	for _, word := range strings.Fields(s) {
		for len(word) > max {
			if cur != "" {
				lines = append(lines, cur)
				cur = ""
			}
			lines = append(lines, word[:max])
			word = word[max:]
		}
		switch {
		case cur == "":
			cur = word
		case len(cur)+1+len(word) <= max:
			cur += " " + word
		default:
			lines = append(lines, cur)
			cur = word
		}
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}
