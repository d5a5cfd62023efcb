package calc_test

import (
	"math"
	"testing"

	"github.com/zephyrtronium/calc"
)

func TestHistoryAdd(t *testing.T) {
	var h calc.History
	if _, ok := h.Last(); ok {
		t.Error("empty history has a last entry")
	}
	eq := typed(n("1"), add, n("2"))
	if !h.Add(eq, 3) {
		t.Error("first add rejected")
	}
	if h.Add(eq, 3) {
		t.Error("duplicate added")
	}
	if !h.Add(eq, 4) {
		t.Error("same equation with a different result rejected")
	}
	withAns := typed(ans, add, n("1"))
	h.Add(withAns, 2)
	if !h.Add(withAns, 2) {
		t.Error("repeated equation using Ans rejected")
	}
	nan := typed(n("0"), div, n("0"))
	h.Add(nan, math.NaN())
	if h.Add(nan, math.NaN()) {
		t.Error("duplicate NaN result added")
	}
	if h.Len() != 5 {
		t.Errorf("want 5 entries, got %d", h.Len())
	}
}

func TestHistorySnapshot(t *testing.T) {
	var h calc.History
	eq := typed(n("1"), add, n("2"))
	h.Add(eq, 3)
	eq.TryPush(n("5"))
	e := h.At(0)
	if !e.Equation.Equal(typed(n("1"), add, n("2"))) {
		t.Errorf("history entry changed with its source: %v", e.Equation.Items())
	}
	e.Equation.Clear()
	if h.At(0).Equation.IsEmpty() {
		t.Error("history entry changed through At")
	}
	entries := h.Entries()
	if len(entries) != 1 || entries[0].Result != 3 {
		t.Errorf("wrong entries: %+v", entries)
	}
}
