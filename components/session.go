package components

import "github.com/yohamta/donburi"

// Session keys.
const (
	SessionHitPoints   = "hp"
	SessionShadesSlain = "slain"
)

// SessionData is a scene-lifetime key/value store. Hit points live here
// rather than on the player entity so that damage persists across player
// re-creation within the same scene session.
type SessionData struct {
	values map[string]int
}

// Seed sets key to def only if it is absent. Calling it again is a no-op,
// so re-creating the player never resets health.
func (s *SessionData) Seed(key string, def int) {
	if s.values == nil {
		s.values = make(map[string]int)
	}
	if _, ok := s.values[key]; !ok {
		s.values[key] = def
	}
}

func (s *SessionData) Get(key string) int {
	return s.values[key]
}

func (s *SessionData) Set(key string, value int) {
	if s.values == nil {
		s.values = make(map[string]int)
	}
	s.values[key] = value
}

func (s *SessionData) Add(key string, delta int) int {
	if s.values == nil {
		s.values = make(map[string]int)
	}
	s.values[key] += delta
	return s.values[key]
}

var Session = donburi.NewComponentType[SessionData]()
