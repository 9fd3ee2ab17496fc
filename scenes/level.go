package scenes

import (
	"context"
	"errors"
	"image/color"
	"log"
	"sync"

	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/frameloop"
	"github.com/automoto/platformer/leveldata"
	"github.com/automoto/platformer/runner"
	"github.com/automoto/platformer/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LevelScene plays one plan. The ebiten tick supplies the frame timestamps.
type LevelScene struct {
	ctx          context.Context
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	plans        []leveldata.Plan
	index        int
	runner       *runner.Runner
	clock        *frameloop.SystemClock
	once         sync.Once
	err          error
}

// NewLevelScene creates a scene for plans[index]
func NewLevelScene(ctx context.Context, sc SceneChanger, plans []leveldata.Plan, index int) *LevelScene {
	return &LevelScene{ctx: ctx, sceneChanger: sc, plans: plans, index: index}
}

func (ls *LevelScene) Update() error {
	ls.once.Do(ls.configure)
	if ls.err != nil {
		return ls.err
	}

	// Input, settings and floaters run before the level frame
	ls.ecs.Update()

	if systems.BackPressed(ls.ecs) {
		ls.close()
		ls.sceneChanger.ChangeScene(NewMenuScene(ls.ctx, ls.sceneChanger, ls.plans))
		return nil
	}

	if err := ls.runner.Frame(ls.clock.Now()); err != nil {
		ls.close()
		if errors.Is(err, frameloop.ErrStopped) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

func (ls *LevelScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ls.ecs == nil {
		return
	}
	ls.ecs.Draw(screen)
}

func (ls *LevelScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateSettings)
	e.AddSystem(systems.UpdateFloaters)

	// Add renderers
	e.AddRenderer(cfg.Default, systems.DrawLevel)
	e.AddRenderer(cfg.Default, systems.DrawActors)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawDebug)

	ls.ecs = e

	newDisplay := systems.NewDisplay(e, ls.index,
		float64(cfg.C.Width), float64(cfg.C.Height),
		cfg.Level.Scale, cfg.Camera.Margin,
	)
	r, err := runner.StartLevel(ls.ctx, ls.plans, ls.index, newDisplay, systems.Tracker(e), ParseOptions()...)
	if err != nil {
		ls.err = err
		return
	}
	r.Driver().SetMaxStep(cfg.Frame.MaxStep)
	r.SetFrameLimit(cfg.Debug.Frames)
	ls.runner = r
	ls.clock = frameloop.NewSystemClock()

	systems.RememberLevel(e, ls.index)
}

func (ls *LevelScene) close() {
	if err := ls.runner.Close(); err != nil {
		log.Printf("Warning: Could not close level: %v", err)
	}
}
