package leveldata

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/automoto/platformer/gamemath"
)

// ErrInvalidLevelPlan is returned (wrapped) for plans that cannot describe a level.
var ErrInvalidLevelPlan = errors.New("invalid level plan")

type parseOptions struct {
	permissive bool
	motion     Motion
}

// ParseOption configures Parse.
type ParseOption func(*parseOptions)

// Permissive accepts what the strict parser rejects: unknown glyphs become
// empty tiles, a missing '@' leaves Player nil, the last '@' wins, and ragged
// rows are padded or truncated to the width of the first row.
func Permissive() ParseOption {
	return func(o *parseOptions) {
		o.permissive = true
	}
}

// WithMotion overrides the default motion settings of the parsed level.
func WithMotion(m Motion) ParseOption {
	return func(o *parseOptions) {
		o.motion = m
	}
}

// Parse builds a Level from plan rows. Rows are measured in runes, one cell
// per rune.
func Parse(name string, rows []string, opts ...ParseOption) (*Level, error) {
	o := parseOptions{motion: DefaultMotion}
	for _, opt := range opts {
		opt(&o)
	}

	if len(rows) == 0 || rows[0] == "" {
		return nil, fmt.Errorf("%w %q: no rows", ErrInvalidLevelPlan, name)
	}

	level := &Level{
		Name:   name,
		Width:  utf8.RuneCountInString(rows[0]),
		Height: len(rows),
		Grid:   make([][]TileKind, 0, len(rows)),
		Motion: o.motion,
	}

	players := 0
	for y, row := range rows {
		line := []rune(row)
		if len(line) != level.Width && !o.permissive {
			return nil, fmt.Errorf("%w %q: row %d has %d cells, want %d",
				ErrInvalidLevelPlan, name, y, len(line), level.Width)
		}

		gridLine := make([]TileKind, level.Width)
		for x := 0; x < level.Width && x < len(line); x++ {
			ch := line[x]
			switch ch {
			case GlyphPlayer:
				level.Player = NewPlayer(gamemath.Vector{X: float64(x), Y: float64(y)})
				players++
			case GlyphWall:
				gridLine[x] = Wall
			case GlyphLava:
				gridLine[x] = Lava
			case GlyphFloater:
				gridLine[x] = Floater
			case GlyphEmpty:
			default:
				if !o.permissive {
					return nil, fmt.Errorf("%w %q: unknown glyph %q at (%d,%d)",
						ErrInvalidLevelPlan, name, ch, x, y)
				}
			}
		}
		level.Grid = append(level.Grid, gridLine)
	}

	if o.permissive {
		return level, nil
	}
	switch {
	case players == 0:
		return nil, fmt.Errorf("%w %q: no player start", ErrInvalidLevelPlan, name)
	case players > 1:
		return nil, fmt.Errorf("%w %q: %d player starts", ErrInvalidLevelPlan, name, players)
	}
	return level, nil
}

// MustParse is Parse that panics on error, for built-in plans.
func MustParse(name string, rows []string, opts ...ParseOption) *Level {
	level, err := Parse(name, rows, opts...)
	if err != nil {
		panic(err)
	}
	return level
}
