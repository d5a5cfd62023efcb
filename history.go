package calc

// Entry is a solved equation and its result.
type Entry struct {
	Equation *Equation
	Result   float64
}

// History is a list of solved equations, oldest first. The zero History is
// empty and ready to use.
type History struct {
	entries []Entry
}

// Add appends a snapshot of eq and its result. If the most recent entry holds
// the same equation with the same result, nothing is added and the result is
// false. Equations using Ans are always added, because Ans may have changed
// between them even when the results agree.
func (h *History) Add(eq *Equation, result float64) bool {
	if n := len(h.entries); n > 0 && !eq.ContainsAns() {
		l := h.entries[n-1]
		if l.Equation.Equal(eq) && sameFloat(l.Result, result) {
			return false
		}
	}
	h.entries = append(h.entries, Entry{Equation: eq.Clone(), Result: result})
	return true
}

// sameFloat compares results, treating NaN as equal to itself.
func sameFloat(x, y float64) bool {
	return x == y || x != x && y != y
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}

// At returns the i'th entry, oldest first. The entry's equation is a copy.
func (h *History) At(i int) Entry {
	e := h.entries[i]
	e.Equation = e.Equation.Clone()
	return e
}

// Last returns the most recent entry. ok is false if the history is empty.
func (h *History) Last() (e Entry, ok bool) {
	if len(h.entries) == 0 {
		return Entry{}, false
	}
	return h.At(len(h.entries) - 1), true
}

// Entries returns copies of all entries, oldest first.
func (h *History) Entries() []Entry {
	r := make([]Entry, len(h.entries))
	for i := range h.entries {
		r[i] = h.At(i)
	}
	return r
}
