package systems

import (
	"github.com/mossbit/grove/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances hit flashes and sprite fades.
func UpdateEffects(ecs *ecs.ECS) {
	updateFlashEffects(ecs)
	updateFadeEffects(ecs)
}

// updateFlashEffects decrements flash timers
func updateFlashEffects(ecs *ecs.ECS) {
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Duration > 0 {
			flash.Duration--
		}
	})
}

// updateFadeEffects drives sprite alpha tweens. Tweens run on the fixed
// 60 TPS tick.
func updateFadeEffects(ecs *ecs.ECS) {
	const dt = 1.0 / 60.0

	var finished []*donburi.Entry
	components.Fade.Each(ecs.World, func(e *donburi.Entry) {
		fade := components.Fade.Get(e)
		if fade.Tween == nil {
			return
		}

		alpha, done := fade.Tween.Update(dt)
		if e.HasComponent(components.Sprite) {
			components.Sprite.Get(e).Alpha = float64(alpha)
		}
		if done {
			if fade.DestroyOnDone {
				finished = append(finished, e)
			} else {
				fade.Tween = nil
			}
		}
	})

	for _, e := range finished {
		removeFromSpace(ecs, e)
		ecs.World.Remove(e.Entity())
	}
}
