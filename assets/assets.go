package assets

import (
	"embed"
	"fmt"

	"github.com/automoto/platformer/leveldata"
)

// LevelsDir is the embedded directory holding the plan files.
const LevelsDir = "levels"

var (
	//go:embed all:levels
	assetFS embed.FS
)

// LoadPlans reads every embedded plan, ordered by file name.
func LoadPlans() ([]leveldata.Plan, error) {
	plans, err := leveldata.LoadPlans(assetFS, LevelsDir)
	if err != nil {
		return nil, err
	}
	if len(plans) == 0 {
		return nil, fmt.Errorf("no levels found in %s", LevelsDir)
	}
	return plans, nil
}

func MustLoadPlans() []leveldata.Plan {
	plans, err := LoadPlans()
	if err != nil {
		panic(err)
	}
	return plans
}
