package scenes

import (
	"context"
	"image/color"
	"sync"

	"github.com/automoto/platformer/leveldata"
	"github.com/automoto/platformer/systems"
	"github.com/automoto/platformer/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MenuScene lists the levels and starts the chosen one
type MenuScene struct {
	ctx          context.Context
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	plans        []leveldata.Plan
	menuUI       *ui.MenuUI
	once         sync.Once
	quit         bool
	err          error
}

// NewMenuScene creates a new menu scene
func NewMenuScene(ctx context.Context, sc SceneChanger, plans []leveldata.Plan) *MenuScene {
	return &MenuScene{ctx: ctx, sceneChanger: sc, plans: plans}
}

func (ms *MenuScene) Update() error {
	ms.once.Do(ms.configure)
	if ms.err != nil {
		return ms.err
	}

	ms.ecs.Update()
	ms.menuUI.Update()

	if ms.quit || systems.BackPressed(ms.ecs) {
		return ebiten.Termination
	}
	return nil
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.menuUI == nil {
		return
	}
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	// Minimal systems for menu
	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.UpdateSettings)

	settings := systems.GetOrCreateSettings(ms.ecs)
	last := settings.LastLevel
	if last >= len(ms.plans) {
		last = -1
	}

	names := make([]string, len(ms.plans))
	for i, plan := range ms.plans {
		names[i] = plan.Name
	}

	ms.menuUI, ms.err = ui.NewMenuUI(names, last,
		func(index int) {
			ms.sceneChanger.ChangeScene(NewLevelScene(ms.ctx, ms.sceneChanger, ms.plans, index))
		},
		func() { ms.quit = true },
	)
	if ms.err == nil && last >= 0 {
		ms.menuUI.SetStatus("Last played: " + names[last])
	}
}
