package components

import "testing"

func TestSessionSeedOnlySetsWhenAbsent(t *testing.T) {
	var s SessionData

	s.Seed(SessionHitPoints, 3)
	if got := s.Get(SessionHitPoints); got != 3 {
		t.Fatalf("seeded value = %d, want 3", got)
	}

	s.Add(SessionHitPoints, -2)
	s.Seed(SessionHitPoints, 3)
	if got := s.Get(SessionHitPoints); got != 1 {
		t.Fatalf("re-seeding must not reset the value: got %d, want 1", got)
	}
}

func TestSessionAddReturnsNewValue(t *testing.T) {
	var s SessionData

	if got := s.Add(SessionShadesSlain, 1); got != 1 {
		t.Fatalf("Add on missing key = %d, want 1", got)
	}
	if got := s.Add(SessionShadesSlain, 2); got != 3 {
		t.Fatalf("second Add = %d, want 3", got)
	}
}

func TestSessionGetMissingKeyIsZero(t *testing.T) {
	var s SessionData
	if got := s.Get("nope"); got != 0 {
		t.Fatalf("missing key = %d, want 0", got)
	}
}
