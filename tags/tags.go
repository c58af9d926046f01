package tags

import "github.com/yohamta/donburi"

var (
	Level  = donburi.NewTag().SetName("Level")
	Camera = donburi.NewTag().SetName("Camera")
	Menu   = donburi.NewTag().SetName("Menu")
)
