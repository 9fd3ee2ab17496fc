package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"os/signal"

	"github.com/automoto/platformer/assets"
	"github.com/automoto/platformer/config"
	"github.com/automoto/platformer/controls"
	"github.com/automoto/platformer/display"
	"github.com/automoto/platformer/display/term"
	"github.com/automoto/platformer/fonts"
	"github.com/automoto/platformer/frameloop"
	"github.com/automoto/platformer/leveldata"
	"github.com/automoto/platformer/runner"
	"github.com/automoto/platformer/scenes"
	"github.com/automoto/platformer/systems"
	"github.com/automoto/platformer/telemetry"
	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(ctx context.Context, plans []leveldata.Plan, level int) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewLevelScene(ctx, g, plans, level)
	} else {
		g.scene = scenes.NewMenuScene(ctx, g, plans)
	}

	return g
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	envDisplay, err := config.LoadEnv()
	if err != nil {
		log.Fatalf("Invalid environment: %v", err)
	}
	if envDisplay == "" {
		envDisplay = "ebiten"
	}

	displayName := flag.String("display", envDisplay, "renderer: ebiten, term or headless")
	level := flag.Int("level", -1, "start this level directly (0-based) instead of the menu")
	frames := flag.Int("frames", 0, "stop after this many frames (0 = until quit)")
	debug := flag.Bool("debug", false, "show the collision overlay")
	permissive := flag.Bool("permissive", false, "accept malformed level plans")
	flag.Parse()

	config.Debug.Overlay = *debug
	config.Debug.Frames = *frames
	config.Level.Permissive = *permissive
	if *level >= 0 {
		config.Debug.SkipMenu = true
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if telemetry.Enabled() {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Printf("Warning: Could not initialize telemetry: %v", err)
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					log.Printf("Warning: Could not flush telemetry: %v", err)
				}
			}()
		}
	}

	plans := assets.MustLoadPlans()

	switch *displayName {
	case "ebiten":
		err = runEbiten(ctx, plans, max(*level, 0))
	case "term":
		err = runTerm(ctx, plans, max(*level, 0))
	case "headless":
		err = runHeadless(ctx, plans, max(*level, 0))
	default:
		err = fmt.Errorf("unknown display %q", *displayName)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func runEbiten(ctx context.Context, plans []leveldata.Plan, level int) error {
	if err := fonts.LoadDefaults(); err != nil {
		return err
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	if err := ebiten.RunGame(NewGame(ctx, plans, level)); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func runTerm(ctx context.Context, plans []leveldata.Plan, level int) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	// The screen owns the terminal while it is active.
	if logFile, err := os.CreateTemp("", "platformer-*.log"); err == nil {
		log.SetOutput(logFile)
		defer func() {
			log.SetOutput(os.Stderr)
			logFile.Close()
		}()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	tracker := controls.NewTracker(controls.ArrowCodes)
	input := term.NewInput(tracker, config.Terminal.KeyHold)
	go input.Poll(ctx, screen, cancel)
	go input.ExpireEvery(ctx, config.Terminal.ExpireEvery)

	newDisplay := term.NewFactory(screen, term.Options{
		Margin:     config.Camera.Margin / config.Level.Scale,
		StatusLine: config.Terminal.StatusLine,
	})
	return play(ctx, plans, level, newDisplay, tracker)
}

func runHeadless(ctx context.Context, plans []leveldata.Plan, level int) error {
	if config.Debug.Frames == 0 {
		return errors.New("-display=headless needs -frames")
	}
	newDisplay := display.NewRecorder(config.Headless.Width, config.Headless.Height, config.Level.Scale, config.Camera.Margin)
	return play(ctx, plans, level, newDisplay, controls.NewTracker(controls.ArrowCodes))
}

// play runs one level from a ticker until the frame limit, ctx or the loop ends it.
func play(ctx context.Context, plans []leveldata.Plan, level int, newDisplay display.Factory, keys controls.Keys) error {
	r, err := runner.StartLevel(ctx, plans, level, newDisplay, keys, scenes.ParseOptions()...)
	if err != nil {
		return err
	}
	defer r.Close()
	r.Driver().SetMaxStep(config.Frame.MaxStep)
	r.SetFrameLimit(config.Debug.Frames)

	err = r.Run(ctx, config.Frame.TickInterval, frameloop.NewSystemClock())
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	if r.Driver().Stopped() {
		log.Printf("Level %q finished after %d frames", r.Level.Name, r.Frames())
	} else {
		log.Printf("Level %q interrupted after %d frames", r.Level.Name, r.Frames())
	}
	return err
}
