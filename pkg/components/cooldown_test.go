package components

import "testing"

func TestCooldownMonotonic(t *testing.T) {
	const max = 10
	c := NewCooldown(max)
	if c.IsActive() {
		t.Fatal("New cooldown should not be active")
	}
	for k := 1; k < max; k++ {
		c.Update()
		if c.Current != max-k {
			t.Fatalf("After %d ticks expected current %d, got %d", k, max-k, c.Current)
		}
		if c.IsActive() {
			t.Fatalf("Cooldown should not be active after %d ticks", k)
		}
	}
	for k := 0; k < 5; k++ {
		c.Update()
		if !c.IsActive() || c.Current != 0 {
			t.Fatalf("Expected active cooldown at 0, got current %d", c.Current)
		}
	}
}

func TestCooldownReset(t *testing.T) {
	c := NewCooldown(3)
	for i := 0; i < 3; i++ {
		c.Update()
	}
	c.Reset()
	if c.Current != 3 || c.IsActive() {
		t.Errorf("Expected reset to current 3, got %d", c.Current)
	}
}

func TestCooldownZeroMaxIsAlwaysActive(t *testing.T) {
	c := NewCooldown(0)
	if !c.IsActive() {
		t.Error("Zero cooldown should be active immediately")
	}
	c.Reset()
	if !c.IsActive() {
		t.Error("Zero cooldown should stay active after reset")
	}
}
