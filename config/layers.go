package config

import "github.com/yohamta/donburi/ecs"

// Default is the single render layer; everything draws on it in the order
// renderers are registered.
const Default ecs.LayerID = 0
