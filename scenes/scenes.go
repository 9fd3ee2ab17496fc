package scenes

import (
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/leveldata"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// ParseOptions returns the plan parsing options selected by configuration.
func ParseOptions() []leveldata.ParseOption {
	opts := []leveldata.ParseOption{
		leveldata.WithMotion(leveldata.Motion{
			Speed:   cfg.Level.PlayerSpeed,
			MaxStep: cfg.Level.MaxStep,
		}),
	}
	if cfg.Level.Permissive {
		opts = append(opts, leveldata.Permissive())
	}
	return opts
}
