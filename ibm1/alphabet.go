// Package ibm1 implements the IBM Model-1 lexical translation model: the
// translation probability table, its EM trainer and the best-alignment decoder.
package ibm1

// Alphabet maps between words and dense integer IDs.
type Alphabet struct {
	toID  map[string]int
	toStr []string
}

// NewAlphabet creates an alphabet holding words in the given order.
func NewAlphabet(words ...string) *Alphabet {
	a := &Alphabet{toID: make(map[string]int, len(words))}
	for _, w := range words {
		a.Add(w)
	}
	return a
}

// Add adds a word if not already present and returns its ID.
func (a *Alphabet) Add(s string) int {
	if id, ok := a.toID[s]; ok {
		return id
	}
	id := len(a.toStr)
	a.toID[s] = id
	a.toStr = append(a.toStr, s)
	return id
}

// Get returns the ID for a word, or -1 if not found.
func (a *Alphabet) Get(s string) int {
	if id, ok := a.toID[s]; ok {
		return id
	}
	return -1
}

// Word returns the word for an ID.
func (a *Alphabet) Word(id int) string {
	return a.toStr[id]
}

// Size returns the number of entries.
func (a *Alphabet) Size() int {
	return len(a.toStr)
}
