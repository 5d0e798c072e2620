package diag

// Bag collects diagnostics up to a fixed limit.
type Bag struct {
	items []Diagnostic
	max   int
}

func NewBag(max int) *Bag {
	if max <= 0 {
		max = 128
	}
	return &Bag{items: make([]Diagnostic, 0, max), max: max}
}

// Add appends a diagnostic, honoring the limit. Returns false when dropped.
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= b.max {
		return false
	}
	b.items = append(b.items, d)
	return true
}

func (b *Bag) Error(pos Pos, msg string) bool {
	return b.Add(Diagnostic{Severity: SevError, Pos: pos, Message: msg})
}

func (b *Bag) Len() int { return len(b.items) }

func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			return true
		}
	}
	return false
}

// Items returns a read-only view of the collected diagnostics.
// Callers must not modify the returned slice.
func (b *Bag) Items() []Diagnostic {
	return b.items
}
