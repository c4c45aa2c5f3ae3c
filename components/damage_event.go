package components

import "github.com/yohamta/donburi"

// DamageEventData queues a hit against an entity with Health. The combat
// system drains these once per frame; the player's invulnerability window
// is enforced there, not by whoever raised the event.
type DamageEventData struct {
	Amount int
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()
