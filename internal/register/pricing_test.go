package register

import "testing"

func TestPrice(t *testing.T) {
	if got := Price(2, 3, false); got != 120 {
		t.Fatalf("expected 120, got %v", got)
	}
	if got := Price(2, 3, true); got != 150 {
		t.Fatalf("expected 150, got %v", got)
	}
	if Price(1, 3, true) != BreakfastMultiplier*Price(1, 3, false) {
		t.Fatal("breakfast surcharge not applied to the whole stay")
	}
}
