// Package preview renders images as terminal half-block art. Each cell
// shows two vertically stacked pixels: the upper one as the foreground of
// '▀' and the lower one as the background.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"
)

const upperHalfBlock = "▀"

// Fit returns the cell size of img scaled to fit within maxCols x maxRows
// while keeping its aspect ratio. Both results are at least 1 for a non-empty
// image and box.
func Fit(bounds image.Rectangle, maxCols, maxRows int) (cols, rows int) {
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 || maxCols <= 0 || maxRows <= 0 {
		return 0, 0
	}
	// Pixel box is maxCols wide and 2*maxRows tall.
	scale := min(float64(maxCols)/float64(w), float64(2*maxRows)/float64(h))
	cols = max(int(float64(w)*scale), 1)
	pixelRows := max(int(float64(h)*scale), 1)
	rows = max((pixelRows+1)/2, 1)
	return min(cols, maxCols), min(rows, maxRows)
}

// Render scales img into at most maxCols x maxRows cells.
func Render(img image.Image, maxCols, maxRows int) string {
	if img == nil {
		return ""
	}
	cols, rows := Fit(img.Bounds(), maxCols, maxRows)
	if cols == 0 || rows == 0 {
		return ""
	}

	dst := image.NewRGBA(image.Rect(0, 0, cols, rows*2))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)

	lines := make([]string, rows)
	var b strings.Builder
	for y := 0; y < rows; y++ {
		b.Reset()
		for x := 0; x < cols; x++ {
			top := hex(dst.RGBAAt(x, 2*y))
			bottom := hex(dst.RGBAAt(x, 2*y+1))
			b.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(top)).
				Background(lipgloss.Color(bottom)).
				Render(upperHalfBlock))
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
