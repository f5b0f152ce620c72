package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/icefall/level"
)

type LevelData struct {
	CurrentLevel *level.Level
	LevelIndex   int
	Names        []string // play order, from the levels package
}

var Level = donburi.NewComponentType[LevelData]()
