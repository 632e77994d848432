package ibm1

// entry is a (source, target) key in alphabet IDs.
type entry struct {
	s, t int
}

// Table holds P(s|t) for (source word, target word) pairs.
//
// Entries keep their first insertion order, which is the order Each visits
// them and the order they are persisted in. A Table is not safe for
// concurrent use; Lookup writes to it.
type Table struct {
	Source *Alphabet
	Target *Alphabet

	probs  map[entry]float64
	order  []entry
	filled int
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{
		Source: NewAlphabet(),
		Target: NewAlphabet(),
		probs:  make(map[entry]float64),
	}
}

// Set stores p for (s, t), replacing any previous value.
func (tb *Table) Set(s, t string, p float64) {
	tb.set(entry{tb.Source.Add(s), tb.Target.Add(t)}, p)
}

func (tb *Table) set(e entry, p float64) {
	if _, ok := tb.probs[e]; !ok {
		tb.order = append(tb.order, e)
	}
	tb.probs[e] = p
}

// Get returns P(s|t) and whether the pair is present. It never modifies the table.
func (tb *Table) Get(s, t string) (float64, bool) {
	si, ti := tb.Source.Get(s), tb.Target.Get(t)
	if si < 0 || ti < 0 {
		return 0, false
	}
	p, ok := tb.probs[entry{si, ti}]
	return p, ok
}

// Lookup returns P(s|t). A missing pair counts as 0 and that 0 is stored,
// so later lookups of the same pair hit the table.
func (tb *Table) Lookup(s, t string) float64 {
	if p, ok := tb.Get(s, t); ok {
		return p
	}
	tb.Set(s, t, 0)
	tb.filled++
	return 0
}

// Filled returns how many entries Lookup has added.
func (tb *Table) Filled() int {
	return tb.filled
}

// Len returns the number of entries.
func (tb *Table) Len() int {
	return len(tb.order)
}

// Each calls fn for every entry in insertion order.
func (tb *Table) Each(fn func(s, t string, p float64)) {
	for _, e := range tb.order {
		fn(tb.Source.Word(e.s), tb.Target.Word(e.t), tb.probs[e])
	}
}

// TargetMass returns, for every target word, the sum of P(s|t) over all
// source words present in the table.
func (tb *Table) TargetMass() map[string]float64 {
	mass := make(map[string]float64, tb.Target.Size())
	for _, e := range tb.order {
		mass[tb.Target.Word(e.t)] += tb.probs[e]
	}
	return mass
}
