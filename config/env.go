package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by LoadEnv.
const (
	EnvScale       = "PLATFORMER_SCALE"
	EnvPlayerSpeed = "PLATFORMER_PLAYER_SPEED"
	EnvDisplay     = "PLATFORMER_DISPLAY"
)

// LoadEnv loads .env files (a missing file is not an error) and applies the
// PLATFORMER_* overrides. It returns the requested display backend, or "".
func LoadEnv(files ...string) (string, error) {
	if err := godotenv.Load(files...); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: .env file not loaded: %v", err)
	}

	if v, ok := os.LookupEnv(EnvScale); ok {
		scale, err := positiveFloat(EnvScale, v)
		if err != nil {
			return "", err
		}
		Level.Scale = scale
	}
	if v, ok := os.LookupEnv(EnvPlayerSpeed); ok {
		speed, err := positiveFloat(EnvPlayerSpeed, v)
		if err != nil {
			return "", err
		}
		Level.PlayerSpeed = speed
	}
	return os.Getenv(EnvDisplay), nil
}

func positiveFloat(name, v string) (float64, error) {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	if f <= 0 {
		return 0, fmt.Errorf("%s: must be positive, got %v", name, f)
	}
	return f, nil
}
