package leveldata

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"math"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// TMX conventions.
const (
	TMXPlanLayer   = "plan"
	TMXSpawnGroup  = "PlayerSpawn"
	TMXKindProp    = "kind"
	PlanTextSuffix = ".txt"
	PlanTMXSuffix  = ".tmx"
)

var kindGlyphs = map[string]byte{
	Wall.String():    GlyphWall,
	Lava.String():    GlyphLava,
	Floater.String(): GlyphFloater,
}

// ReadPlan reads one row per line. Trailing spaces are significant; carriage
// returns are dropped, as is a final empty line.
func ReadPlan(name string, r io.Reader) (Plan, error) {
	plan := Plan{Name: name}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		plan.Rows = append(plan.Rows, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return Plan{}, fmt.Errorf("read plan %s: %w", name, err)
	}
	return plan, nil
}

// LoadTMX converts a Tiled map into a plan. Tiles of the "plan" layer (or the
// first tile layer) map to glyphs through their tileset "kind" property and
// the first object of the "PlayerSpawn" group marks the player's cell.
func LoadTMX(fsys fs.FS, tmxPath string) (Plan, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return Plan{}, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if len(levelMap.Layers) == 0 {
		return Plan{}, fmt.Errorf("%w %s: no tile layers", ErrInvalidLevelPlan, tmxPath)
	}

	layer := levelMap.Layers[0]
	for _, l := range levelMap.Layers {
		if l.Name == TMXPlanLayer {
			layer = l
			break
		}
	}

	rows, err := layerRows(tmxPath, levelMap, layer)
	if err != nil {
		return Plan{}, err
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != TMXSpawnGroup || len(og.Objects) == 0 {
			continue
		}
		o := og.Objects[0]
		x := int(math.Floor(o.X / float64(levelMap.TileWidth)))
		y := int(math.Floor(o.Y / float64(levelMap.TileHeight)))
		if y >= 0 && y < len(rows) && x >= 0 && x < levelMap.Width {
			rows[y][x] = GlyphPlayer
		}
		break
	}

	plan := Plan{
		Name: strings.TrimSuffix(path.Base(tmxPath), PlanTMXSuffix),
		Rows: make([]string, len(rows)),
	}
	for i, row := range rows {
		plan.Rows[i] = string(row)
	}
	return plan, nil
}

// layerRows maps the tiles of layer to glyph rows. The layer must cover the
// whole map; infinite maps store chunks instead and are rejected.
func layerRows(name string, levelMap *tiled.Map, layer *tiled.Layer) ([][]byte, error) {
	if want := levelMap.Width * levelMap.Height; len(layer.Tiles) != want {
		return nil, fmt.Errorf("%w %s: layer %q has %d tiles, want %d",
			ErrInvalidLevelPlan, name, layer.Name, len(layer.Tiles), want)
	}

	rows := make([][]byte, levelMap.Height)
	for y := 0; y < levelMap.Height; y++ {
		row := make([]byte, levelMap.Width)
		for x := 0; x < levelMap.Width; x++ {
			row[x] = GlyphEmpty
			tile := layer.Tiles[y*levelMap.Width+x]
			if tile == nil || tile.IsNil() || tile.Tileset == nil {
				continue
			}
			tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID)
			if err != nil {
				continue
			}
			if glyph, ok := kindGlyphs[tilesetTile.Properties.GetString(TMXKindProp)]; ok {
				row[x] = glyph
			}
		}
		rows[y] = row
	}
	return rows, nil
}

// LoadPlans discovers every .txt and .tmx plan in dir, sorted by file name.
func LoadPlans(fsys fs.FS, dir string) ([]Plan, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read plans %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch path.Ext(entry.Name()) {
		case PlanTextSuffix, PlanTMXSuffix:
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	plans := make([]Plan, 0, len(names))
	for _, name := range names {
		p := path.Join(dir, name)
		var plan Plan
		if path.Ext(name) == PlanTMXSuffix {
			plan, err = LoadTMX(fsys, p)
		} else {
			plan, err = readPlanFile(fsys, p)
		}
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	return plans, nil
}

func readPlanFile(fsys fs.FS, p string) (Plan, error) {
	f, err := fsys.Open(p)
	if err != nil {
		return Plan{}, fmt.Errorf("open plan %s: %w", p, err)
	}
	defer f.Close()
	return ReadPlan(strings.TrimSuffix(path.Base(p), PlanTextSuffix), f)
}
