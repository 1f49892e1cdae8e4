package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// brailleBuf is a cell grid of braille dot masks. Each cell also carries
// the color of the last dot drawn into it and an optional glyph that
// replaces the braille character.
type brailleBuf struct {
	w, h  int       // in cells
	m     [][]uint8 // per-cell 8-bit mask
	col   [][]string
	glyph [][]rune
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	col := make([][]string, h)
	glyph := make([][]rune, h)
	for i := range m {
		m[i] = make([]uint8, w)
		col[i] = make([]string, w)
		glyph[i] = make([]rune, w)
	}
	return &brailleBuf{w: w, h: h, m: m, col: col, glyph: glyph}
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my int, color string) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= b.h || cx >= b.w {
		return
	}
	var bit uint8
	if rx == 0 {
		switch ry {
		case 0:
			bit = 0x01
		case 1:
			bit = 0x02
		case 2:
			bit = 0x04
		case 3:
			bit = 0x40
		}
	} else {
		switch ry {
		case 0:
			bit = 0x08
		case 1:
			bit = 0x10
		case 2:
			bit = 0x20
		case 3:
			bit = 0x80
		}
	}
	b.m[cy][cx] |= bit
	b.col[cy][cx] = color
}

// setGlyph places r in cell (cx, cy) over any braille dots.
func (b *brailleBuf) setGlyph(cx, cy int, r rune, color string) {
	if cx < 0 || cy < 0 || cy >= b.h || cx >= b.w {
		return
	}
	b.glyph[cy][cx] = r
	b.col[cy][cx] = color
}

// drawLineMicro draws a line on the microgrid using Bresenham
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1 int, color string) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0, color)
		if x0 == x1 && y0 == y1 {
			break
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

func (b *brailleBuf) cell(x, y int) rune {
	if g := b.glyph[y][x]; g != 0 {
		return g
	}
	if mask := b.m[y][x]; mask != 0 {
		return rune(0x2800 + int(mask))
	}
	return ' '
}

// toLines renders each row, styling runs of equally colored cells once.
func (b *brailleBuf) toLines() []string {
	styles := map[string]lipgloss.Style{}
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		var sb strings.Builder
		var run []rune
		runCol := ""
		flush := func() {
			if len(run) == 0 {
				return
			}
			if runCol == "" {
				sb.WriteString(string(run))
			} else {
				st, ok := styles[runCol]
				if !ok {
					st = lipgloss.NewStyle().Foreground(lipgloss.Color(runCol))
					styles[runCol] = st
				}
				sb.WriteString(st.Render(string(run)))
			}
			run = run[:0]
		}
		for x := 0; x < b.w; x++ {
			r := b.cell(x, y)
			c := b.col[y][x]
			if r == ' ' {
				c = ""
			}
			if c != runCol {
				flush()
				runCol = c
			}
			run = append(run, r)
		}
		flush()
		out[y] = sb.String()
	}
	return out
}
