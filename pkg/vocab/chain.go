package vocab

// Sense is one noun meaning in the lexical database. Key is the database's
// stable identifier for the sense (used to detect cycles), Offset its numeric
// database offset, and Lemmas the surface forms that share the meaning, with
// the first form canonical.
type Sense struct {
	Key    string
	Offset int
	Lemmas []string
}

// Canonical returns the first-listed lemma, or "" for a sense with none.
func (s Sense) Canonical() string {
	if len(s.Lemmas) == 0 {
		return ""
	}
	return s.Lemmas[0]
}

// Inventory is a read-only view of the noun part of a lexical database.
type Inventory interface {
	// NounSenses returns every noun sense. The order decides which sense
	// wins when two senses share a canonical term.
	NounSenses() []Sense

	// Hypernyms returns the directly more general senses of s, in the
	// order the database lists them.
	Hypernyms(s Sense) []Sense
}

// HypernymChain walks upward from s, taking the first listed hypernym at
// each step, and returns the canonical terms of the ancestors visited, most
// specific first. The sense itself is not included. A sense with no
// hypernyms yields an empty chain; an ancestry that loops back on itself is
// truncated at the first repeated ancestor.
func HypernymChain(inv Inventory, s Sense) []string {
	var chain []string
	seen := make(map[string]bool)
	current := s
	for {
		parents := inv.Hypernyms(current)
		if len(parents) == 0 {
			break
		}
		parent := parents[0]
		if seen[parent.Key] {
			break
		}
		seen[parent.Key] = true
		chain = append(chain, parent.Canonical())
		current = parent
	}
	return chain
}
