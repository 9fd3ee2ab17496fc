package leveldata

import (
	"errors"
	"io/fs"
	"reflect"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/lafriks/go-tiled"
)

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="20" tileheight="20" infinite="0" nextlayerid="3" nextobjectid="2">
 <tileset firstgid="1" name="tiles" tilewidth="20" tileheight="20" tilecount="3" columns="3">
  <image source="tiles.png" width="60" height="20"/>
  <tile id="0">
   <properties>
    <property name="kind" value="wall"/>
   </properties>
  </tile>
  <tile id="1">
   <properties>
    <property name="kind" value="lava"/>
   </properties>
  </tile>
  <tile id="2">
   <properties>
    <property name="kind" value="floater"/>
   </properties>
  </tile>
 </tileset>
 <layer id="1" name="plan" width="4" height="3">
  <data encoding="csv">
0,0,0,3,
0,0,0,0,
1,2,1,1
</data>
 </layer>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="1" x="25" y="22" width="20" height="20"/>
 </objectgroup>
</map>
`

func TestLayerRowsRejectsShortLayer(t *testing.T) {
	levelMap := &tiled.Map{Width: 4, Height: 3}
	layer := &tiled.Layer{Name: "plan", Tiles: make([]*tiled.LayerTile, 5)}

	rows, err := layerRows("short.tmx", levelMap, layer)
	if !errors.Is(err, ErrInvalidLevelPlan) {
		t.Fatalf("err = %v, want ErrInvalidLevelPlan", err)
	}
	if rows != nil {
		t.Errorf("rows = %q, want nil", rows)
	}
}

func TestLayerRowsSkipsMissingTiles(t *testing.T) {
	levelMap := &tiled.Map{Width: 2, Height: 1}
	layer := &tiled.Layer{Tiles: []*tiled.LayerTile{nil, {Nil: true}}}

	rows, err := layerRows("holes.tmx", levelMap, layer)
	if err != nil {
		t.Fatalf("layerRows: %v", err)
	}
	if string(rows[0]) != "  " {
		t.Errorf("row = %q, want two empty cells", rows[0])
	}
}

func TestReadPlan(t *testing.T) {
	plan, err := ReadPlan("one", strings.NewReader("x@  \r\nxxxx\n"))
	if err != nil {
		t.Fatalf("ReadPlan: %v", err)
	}
	want := []string{"x@  ", "xxxx"}
	if !reflect.DeepEqual(plan.Rows, want) {
		t.Errorf("rows = %q, want %q", plan.Rows, want)
	}
	if plan.Name != "one" {
		t.Errorf("name = %q", plan.Name)
	}
}

func TestLoadTMX(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/tower.tmx": {Data: []byte(testTMX)},
	}

	plan, err := LoadTMX(fsys, "levels/tower.tmx")
	if err != nil {
		t.Fatalf("LoadTMX: %v", err)
	}

	want := []string{
		"   y",
		" @  ",
		"x!xx",
	}
	if !reflect.DeepEqual(plan.Rows, want) {
		t.Errorf("rows = %q, want %q", plan.Rows, want)
	}
	if plan.Name != "tower" {
		t.Errorf("name = %q, want tower", plan.Name)
	}

	fromTMX := MustParse(plan.Name, plan.Rows)
	fromText := MustParse("tower", want)
	if !reflect.DeepEqual(fromTMX.Grid, fromText.Grid) {
		t.Error("TMX grid differs from the equivalent text grid")
	}
	if fromTMX.Player.Pos != fromText.Player.Pos {
		t.Errorf("player %v, want %v", fromTMX.Player.Pos, fromText.Player.Pos)
	}
}

func TestLoadTMXMissingFile(t *testing.T) {
	if _, err := LoadTMX(fstest.MapFS{}, "levels/none.tmx"); err == nil {
		t.Error("expected an error for a missing map")
	}
}

func TestLoadPlans(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/02-second.txt": {Data: []byte("@ \nxx\n")},
		"levels/01-first.txt":  {Data: []byte("x@\n")},
		"levels/03-tower.tmx":  {Data: []byte(testTMX)},
		"levels/README.md":     {Data: []byte("not a plan")},
	}

	plans, err := LoadPlans(fsys, "levels")
	if err != nil {
		t.Fatalf("LoadPlans: %v", err)
	}

	var names []string
	for _, p := range plans {
		names = append(names, p.Name)
	}
	want := []string{"01-first", "02-second", "03-tower"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("names = %v, want %v", names, want)
	}
	if !reflect.DeepEqual(plans[1].Rows, []string{"@ ", "xx"}) {
		t.Errorf("second plan rows = %q", plans[1].Rows)
	}
}

func TestLoadPlansMissingDir(t *testing.T) {
	_, err := LoadPlans(fstest.MapFS{}, "levels")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("err = %v, want fs.ErrNotExist", err)
	}
}
