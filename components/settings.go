package components

import "github.com/yohamta/donburi"

type SettingsData struct {
	Debug bool // debug overlay visible
}

var Settings = donburi.NewComponentType[SettingsData]()
