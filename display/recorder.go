package display

import "github.com/automoto/platformer/leveldata"

// Recorder is a headless Display. It keeps the same retained state a real
// backend would (background cells, the current actor boxes and the viewport)
// so runs can be inspected without a window.
type Recorder struct {
	Level      *leveldata.Level
	Scale      float64
	Margin     Margin
	Background []Cell
	Actors     []ActorBox
	View       Viewport
	Frames     int

	// OnFrame, when set, is called after every DrawFrame.
	OnFrame func(r *Recorder)
}

// NewRecorder returns a Factory producing Recorders with a width x height
// pixel viewport. margin is resolved with MarginFor.
func NewRecorder(width, height, scale, margin float64) Factory {
	return func(level *leveldata.Level) (Display, error) {
		r := &Recorder{
			Level: level,
			Scale: scale,
			View: Viewport{
				Width:    width,
				Height:   height,
				ContentW: float64(level.Width) * scale,
				ContentH: float64(level.Height) * scale,
			},
		}
		r.Margin = MarginFor(r.View, margin)
		r.Background = Background(level, scale)
		r.DrawFrame()
		return r, nil
	}
}

func (r *Recorder) DrawFrame() {
	r.Actors = nil
	for _, actor := range r.Level.Actors() {
		r.Actors = append(r.Actors, BoxFor(actor, r.Scale))
	}
	if r.Level.Player != nil {
		r.View = ScrollIntoView(r.View, ActorCenter(r.Level.Player, r.Scale), r.Margin)
	}
	r.Frames++
	if r.OnFrame != nil {
		r.OnFrame(r)
	}
}
