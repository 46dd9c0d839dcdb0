package vocab

import (
	"fmt"
	"sort"
)

// DedupPolicy decides what happens when two senses share a canonical term.
type DedupPolicy int

const (
	// FirstWins keeps the first sense in enumeration order and silently
	// drops the rest. Later senses of a homographic term never reach the
	// output, so distinct meanings can be lost.
	FirstWins DedupPolicy = iota

	// QualifyHomographs keeps every sense, renaming later homographs to
	// term.2, term.3 and so on in enumeration order.
	QualifyHomographs
)

// Build produces the complete vocabulary for the inventory's noun senses:
// one entry per term, each with its zero-padded synset id and hypernym
// chain, sorted by rendered line. Senses without any lemma are skipped.
func Build(inv Inventory, policy DedupPolicy) []Entry {
	senses := inv.NounSenses()

	entries := make([]Entry, 0, len(senses))
	seen := make(map[string]int)

	for _, s := range senses {
		term := s.Canonical()
		if term == "" {
			continue
		}
		seen[term]++
		if n := seen[term]; n > 1 {
			if policy == FirstWins {
				continue
			}
			term = fmt.Sprintf("%s.%d", term, n)
		}
		entries = append(entries, Entry{
			Term:     term,
			SynsetID: FormatSynsetID(s.Offset),
			Chain:    HypernymChain(inv, s),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Line() < entries[j].Line()
	})
	return entries
}
