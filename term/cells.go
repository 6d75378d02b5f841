package term

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"floatmenu/menu"
)

const (
	upperHalf = "▀"
	lowerHalf = "▄"
	fullBlock = "█"
)

// PixelSize is the canvas size for a terminal grid. Each cell holds two
// pixels stacked vertically.
func PixelSize(cols, rows int) (int, int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	return cols, rows * 2
}

// CellToPixel maps a terminal cell to the center of the pixels it shows.
func CellToPixel(col, row int) menu.Point {
	return menu.Pt(float64(col)+0.5, float64(row*2)+1)
}

// cell is one terminal character cell. An empty color means the terminal
// background shows through.
type cell struct {
	glyph  string
	fg, bg string
}

// pixelColor returns the hex color of a pixel, or "" when it is mostly
// transparent.
func pixelColor(c color.RGBA) string {
	if c.A < 0x80 {
		return ""
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

func halfBlock(top, bottom color.RGBA) cell {
	t, b := pixelColor(top), pixelColor(bottom)
	switch {
	case t == "" && b == "":
		return cell{glyph: " "}
	case t == b:
		return cell{glyph: fullBlock, fg: t}
	case t == "":
		return cell{glyph: lowerHalf, fg: b}
	case b == "":
		return cell{glyph: upperHalf, fg: t}
	}
	return cell{glyph: lowerHalf, fg: b, bg: t}
}

// cells converts an image into rows of half-block cells.
func cells(img *image.RGBA) [][]cell {
	bounds := img.Bounds()
	var rows [][]cell
	for y := bounds.Min.Y; y < bounds.Max.Y; y += 2 {
		row := make([]cell, 0, bounds.Dx())
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			var bottom color.RGBA
			if y+1 < bounds.Max.Y {
				bottom = img.RGBAAt(x, y+1)
			}
			row = append(row, halfBlock(img.RGBAAt(x, y), bottom))
		}
		rows = append(rows, row)
	}
	return rows
}

// renderCells styles runs of same-colored cells together.
func renderCells(r *lipgloss.Renderer, rows [][]cell) []string {
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		var b strings.Builder
		for start := 0; start < len(row); {
			end := start + 1
			for end < len(row) && row[end].fg == row[start].fg && row[end].bg == row[start].bg {
				end++
			}
			var run strings.Builder
			for _, c := range row[start:end] {
				run.WriteString(c.glyph)
			}
			b.WriteString(styleFor(r, row[start]).Render(run.String()))
			start = end
		}
		lines = append(lines, b.String())
	}
	return lines
}

func styleFor(r *lipgloss.Renderer, c cell) lipgloss.Style {
	s := r.NewStyle()
	if c.fg != "" {
		s = s.Foreground(lipgloss.Color(c.fg))
	}
	if c.bg != "" {
		s = s.Background(lipgloss.Color(c.bg))
	}
	return s
}
