package game

import "testing"

func TestEconomyIncreaseDecrease(t *testing.T) {
	e := NewEconomy(50)

	e.Increase(20)
	if e.Money() != 70 {
		t.Errorf("Expected 70, got %d", e.Money())
	}

	if !e.Decrease(40) {
		t.Error("Expected Decrease(40) to succeed")
	}
	if e.Money() != 30 {
		t.Errorf("Expected 30, got %d", e.Money())
	}
}

func TestEconomyRejectsOverdraft(t *testing.T) {
	e := NewEconomy(30)
	if e.Decrease(40) {
		t.Error("Expected Decrease(40) to fail with 30 money")
	}
	if e.Money() != 30 {
		t.Errorf("Money must be unchanged after a rejected decrease, got %d", e.Money())
	}
	if e.CanAfford(31) || !e.CanAfford(30) {
		t.Error("CanAfford boundary is wrong")
	}
}

func TestEconomyIgnoresInvalidAmounts(t *testing.T) {
	e := NewEconomy(-5)
	if e.Money() != 0 {
		t.Errorf("Expected negative initial money to clamp to 0, got %d", e.Money())
	}
	e.Increase(-10)
	if e.Money() != 0 {
		t.Errorf("Negative increase must be ignored, got %d", e.Money())
	}
	if e.Decrease(-10) {
		t.Error("Negative decrease must be rejected")
	}
}
