package components

import "github.com/yohamta/donburi"

// ShadeState is the shade's behavior mode.
type ShadeState int

const (
	ShadeWander ShadeState = iota
	ShadeChase
)

type EnemyData struct {
	State ShadeState

	// Current wander heading, re-rolled every WanderTurnTicks.
	HeadingX, HeadingY float64
	HeadingTicks       int
}

var Enemy = donburi.NewComponentType[EnemyData]()
