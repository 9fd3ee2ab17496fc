package config

// SettingsConfig names where saved settings live
type SettingsConfig struct {
	AppName string
	ItemKey string
}

// Settings is the global persistence configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		AppName: "platformer",
		ItemKey: "settings",
	}
}
