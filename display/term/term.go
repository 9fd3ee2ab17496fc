// Package term renders a level in a terminal with tcell, one cell per level unit.
package term

import (
	"fmt"
	"math"

	"github.com/automoto/platformer/display"
	"github.com/automoto/platformer/leveldata"
	"github.com/gdamore/tcell/v2"
)

// Glyphs used on screen.
const (
	GlyphWall    = '#'
	GlyphLava    = '~'
	GlyphFloater = '='
	GlyphEmpty   = ' '
	GlyphPlayer  = '@'
)

var (
	styleDefault = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	tileStyles   = map[leveldata.TileKind]tcell.Style{
		leveldata.Wall:    styleDefault.Foreground(tcell.ColorGray),
		leveldata.Lava:    styleDefault.Foreground(tcell.ColorRed),
		leveldata.Floater: styleDefault.Foreground(tcell.ColorTeal),
	}
	tileGlyphs = map[leveldata.TileKind]rune{
		leveldata.Wall:    GlyphWall,
		leveldata.Lava:    GlyphLava,
		leveldata.Floater: GlyphFloater,
	}
	playerStyle = styleDefault.Foreground(tcell.ColorYellow)
	statusStyle = styleDefault.Foreground(tcell.ColorDarkGray)
)

// Options configures the terminal display.
type Options struct {
	// Margin in cells, resolved per frame with display.MarginFor.
	Margin float64
	// StatusLine reserves the bottom row for the level name and position.
	StatusLine bool
}

// Display draws into a tcell screen.
type Display struct {
	screen     tcell.Screen
	level      *leveldata.Level
	opts       Options
	background [][]rune
	actors     []display.ActorBox
	view       display.Viewport
}

// NewFactory returns a display.Factory drawing into screen. The screen must
// already be initialized.
func NewFactory(screen tcell.Screen, opts Options) display.Factory {
	return func(level *leveldata.Level) (display.Display, error) {
		d := &Display{
			screen: screen,
			level:  level,
			opts:   opts,
		}
		d.background = drawBackground(level)
		d.DrawFrame()
		return d, nil
	}
}

func drawBackground(level *leveldata.Level) [][]rune {
	rows := make([][]rune, len(level.Grid))
	for y, row := range level.Grid {
		rows[y] = make([]rune, len(row))
		for x, kind := range row {
			if g, ok := tileGlyphs[kind]; ok {
				rows[y][x] = g
			} else {
				rows[y][x] = GlyphEmpty
			}
		}
	}
	return rows
}

// Viewport returns the current scroll window, in cells.
func (d *Display) Viewport() display.Viewport {
	return d.view
}

func (d *Display) DrawFrame() {
	w, h := d.screen.Size()
	if d.opts.StatusLine && h > 1 {
		h--
	}
	d.view.Width, d.view.Height = float64(w), float64(h)
	d.view.ContentW, d.view.ContentH = float64(d.level.Width), float64(d.level.Height)

	d.actors = d.actors[:0]
	for _, actor := range d.level.Actors() {
		d.actors = append(d.actors, display.BoxFor(actor, 1))
	}
	if d.level.Player != nil {
		margin := display.MarginFor(d.view, d.opts.Margin)
		d.view = display.ScrollIntoView(d.view, display.ActorCenter(d.level.Player, 1), margin)
	}

	d.screen.Clear()
	left, top := int(math.Floor(d.view.Left)), int(math.Floor(d.view.Top))
	for sy := 0; sy < h; sy++ {
		for sx := 0; sx < w; sx++ {
			x, y := left+sx, top+sy
			kind := d.level.TileAt(x, y)
			if kind == leveldata.Empty {
				continue
			}
			d.screen.SetContent(sx, sy, d.background[y][x], nil, tileStyles[kind])
		}
	}
	for _, box := range d.actors {
		d.drawBox(box.Rect, left, top, w, h)
	}
	if d.opts.StatusLine {
		d.drawStatus(w, h)
	}
	d.screen.Show()
}

// drawBox fills every cell the box overlaps.
func (d *Display) drawBox(r display.Rect, left, top, w, h int) {
	x0, x1 := int(math.Floor(r.X)), int(math.Ceil(r.X+r.W))
	y0, y1 := int(math.Floor(r.Y)), int(math.Ceil(r.Y+r.H))
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			sx, sy := x-left, y-top
			if sx < 0 || sy < 0 || sx >= w || sy >= h {
				continue
			}
			d.screen.SetContent(sx, sy, GlyphPlayer, nil, playerStyle)
		}
	}
}

func (d *Display) drawStatus(w, row int) {
	status := d.level.Name
	if p := d.level.Player; p != nil {
		status = fmt.Sprintf("%s  x=%.1f y=%.1f", d.level.Name, p.Pos.X, p.Pos.Y)
	}
	for i, r := range []rune(status) {
		if i >= w {
			break
		}
		d.screen.SetContent(i, row, r, nil, statusStyle)
	}
}
