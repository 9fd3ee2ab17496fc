package assets

import (
	"strings"
	"testing"

	"github.com/automoto/platformer/leveldata"
)

func TestEmbeddedPlansParseStrictly(t *testing.T) {
	plans, err := LoadPlans()
	if err != nil {
		t.Fatalf("LoadPlans: %v", err)
	}

	wantNames := []string{"01-first-steps", "02-lava-field", "03-islands"}
	if len(plans) != len(wantNames) {
		t.Fatalf("got %d plans, want %d", len(plans), len(wantNames))
	}
	for i, plan := range plans {
		if plan.Name != wantNames[i] {
			t.Errorf("plan %d = %q, want %q", i, plan.Name, wantNames[i])
		}
		level, err := leveldata.Parse(plan.Name, plan.Rows)
		if err != nil {
			t.Errorf("%s: %v", plan.Name, err)
			continue
		}
		if level.Player == nil {
			t.Errorf("%s: no player", plan.Name)
		}
	}
}

func TestTMXPlanMatchesGlyphs(t *testing.T) {
	plans := MustLoadPlans()
	islands := plans[2]

	if len(islands.Rows) != 8 || len(islands.Rows[0]) != 30 {
		t.Fatalf("islands is %dx%d, want 30x8", len(islands.Rows[0]), len(islands.Rows))
	}
	if got := islands.Rows[4][3]; got != '@' {
		t.Errorf("spawn cell = %q, want @", got)
	}
	if !strings.Contains(islands.Rows[5], "x!!!!!!!x") {
		t.Errorf("row 5 = %q, want a lava pit", islands.Rows[5])
	}
	if !strings.Contains(islands.Rows[1], "yyy") {
		t.Errorf("row 1 = %q, want floaters", islands.Rows[1])
	}
}
