package tags

import "github.com/yohamta/donburi"

var (
	Player      = donburi.NewTag().SetName("Player")
	Enemy       = donburi.NewTag().SetName("Enemy")
	Arrow       = donburi.NewTag().SetName("Arrow")
	Wall        = donburi.NewTag().SetName("Wall")
	Heart       = donburi.NewTag().SetName("Heart")
	GraveMarker = donburi.NewTag().SetName("GraveMarker")
)

// Resolv tags for physics collision
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "Player"
	ResolvEnemy  = "Enemy"
	ResolvArrow  = "Arrow"
)
