// Package ogimage draws the link-preview image served for every page.
package ogimage

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	Width  = 1200
	Height = 630

	// Text is laid out on a canvas this many times smaller than the
	// output and scaled up, since basicfont only ships a 7x13 face.
	scale = 3

	padding          = 20
	maxTitleLines    = 3
	maxDescLines     = 4
	titleScale       = 2
	maxTitleRunes    = 120
	maxDescRunes     = 300
	descriptionColor = 0xc8
)

var (
	background = color.RGBA{R: 0x11, G: 0x18, B: 0x27, A: 0xff}
	accent     = color.RGBA{R: 0x63, G: 0x66, B: 0xf1, A: 0xff}
)

// Card is the text drawn onto a preview image.
type Card struct {
	Title       string
	Description string
	Footer      string
}

// Render encodes the preview image for card as PNG.
func Render(w io.Writer, card Card) error {
	return png.Encode(w, Draw(card))
}

// Draw lays out card on a Width x Height image.
func Draw(card Card) *image.RGBA {
	face := basicfont.Face7x13
	canvasW, canvasH := Width/scale, Height/scale

	canvas := image.NewRGBA(image.Rect(0, 0, canvasW, canvasH))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	draw.Draw(canvas, image.Rect(0, 0, 4, canvasH), image.NewUniform(accent), image.Point{}, draw.Src)

	lineH := face.Metrics().Height.Ceil()
	charW := face.Advance

	// The title is drawn on its own canvas at half size and doubled, so
	// it reads larger than the description.
	titleCols := (canvasW - 2*padding) / (charW * titleScale)
	titleLines := Wrap(truncate(card.Title, maxTitleRunes), titleCols, maxTitleLines)
	titleH := len(titleLines) * lineH
	if titleH > 0 {
		small := image.NewRGBA(image.Rect(0, 0, titleCols*charW, titleH))
		draw.Draw(small, small.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
		drawLines(small, face, titleLines, 0, 0, lineH, color.White)
		dst := image.Rect(padding, padding, padding+small.Bounds().Dx()*titleScale, padding+titleH*titleScale)
		draw.NearestNeighbor.Scale(canvas, dst, small, small.Bounds(), draw.Src, nil)
	}

	descY := padding + titleH*titleScale + lineH
	descCols := (canvasW - 2*padding) / charW
	descLines := Wrap(truncate(card.Description, maxDescRunes), descCols, maxDescLines)
	grey := color.Gray{Y: descriptionColor}
	drawLines(canvas, face, descLines, padding, descY, lineH, grey)

	if card.Footer != "" {
		drawLines(canvas, face, []string{card.Footer}, padding, canvasH-padding-lineH, lineH, accent)
	}

	out := image.NewRGBA(image.Rect(0, 0, Width, Height))
	draw.CatmullRom.Scale(out, out.Bounds(), canvas, canvas.Bounds(), draw.Over, nil)
	return out
}

func drawLines(dst draw.Image, face font.Face, lines []string, x, y, lineH int, c color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
	}
	ascent := face.Metrics().Ascent.Ceil()
	for i, line := range lines {
		d.Dot = fixed.P(x, y+ascent+i*lineH)
		d.DrawString(line)
	}
}

// Wrap splits s into at most maxLines lines of at most width runes,
// breaking on spaces. Words longer than width are cut. When text remains
// after the last line, that line ends with "...".
func Wrap(s string, width, maxLines int) []string {
	if width <= 0 || maxLines <= 0 {
		return nil
	}
	var lines []string
	var cur []rune
	words := strings.Fields(s)
	for i := 0; i < len(words); i++ {
		w := []rune(words[i])
		for len(w) > width {
			if len(cur) > 0 {
				lines = append(lines, string(cur))
				cur = nil
			}
			lines = append(lines, string(w[:width]))
			w = w[width:]
		}
		switch {
		case len(cur) == 0:
			cur = w
		case len(cur)+1+len(w) <= width:
			cur = append(append(cur, ' '), w...)
		default:
			lines = append(lines, string(cur))
			cur = w
		}
		if len(lines) >= maxLines {
			return ellipsize(lines[:maxLines], width)
		}
	}
	if len(cur) > 0 {
		lines = append(lines, string(cur))
	}
	if len(lines) > maxLines {
		return ellipsize(lines[:maxLines], width)
	}
	return lines
}

func ellipsize(lines []string, width int) []string {
	last := []rune(lines[len(lines)-1])
	if len(last)+3 > width {
		cut := width - 3
		if cut < 0 {
			cut = 0
		}
		last = last[:cut]
	}
	lines[len(lines)-1] = string(last) + "..."
	return lines
}

func truncate(s string, n int) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) <= n {
		return string(r)
	}
	return string(r[:n])
}
