package components

import "github.com/yohamta/donburi"

type GameOverData struct {
	ShadesSlain int
	NewRecord   bool
}

var GameOver = donburi.NewComponentType[GameOverData]()
