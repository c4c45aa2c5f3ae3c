package config

type AnimationDef struct {
	First int
	Last  int
	Step  int
	Speed float32
}

// CharacterAnimations maps a character key (e.g., "player")
// to its specific set of animation definitions.
var CharacterAnimations = map[string]map[StateID]AnimationDef{
	"player": {
		IdleDown:  {First: 0, Last: 3, Step: 1, Speed: 10},
		IdleUp:    {First: 0, Last: 3, Step: 1, Speed: 10},
		IdleSide:  {First: 0, Last: 3, Step: 1, Speed: 10},
		WalkDown:  {First: 0, Last: 3, Step: 1, Speed: 6},
		WalkUp:    {First: 0, Last: 3, Step: 1, Speed: 6},
		WalkSide:  {First: 0, Last: 3, Step: 1, Speed: 6},
		PunchDown: {First: 0, Last: 3, Step: 1, Speed: 3},
		PunchUp:   {First: 0, Last: 3, Step: 1, Speed: 3},
		PunchSide: {First: 0, Last: 3, Step: 1, Speed: 3},
		ShootDown: {First: 0, Last: 3, Step: 1, Speed: 4},
		ShootUp:   {First: 0, Last: 3, Step: 1, Speed: 4},
		ShootSide: {First: 0, Last: 3, Step: 1, Speed: 4},
	},
	"shade": {
		ShadeDrift: {First: 0, Last: 3, Step: 1, Speed: 8},
		ShadeFade:  {First: 0, Last: 3, Step: 1, Speed: 5},
	},
}
