package components

import "github.com/yohamta/donburi"

// SettingsData stores the toggles saved between runs
type SettingsData struct {
	Debug      bool
	Fullscreen bool
	LastLevel  int
}

var Settings = donburi.NewComponentType[SettingsData]()
