package wnsource

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/fluhus/gostuff/nlp/wordnet"

	"github.com/hejijunhao/photon-vocab/pkg/vocab"
)

// Source adapts a parsed WordNet database to the vocab.Inventory interface.
type Source struct {
	wn    *wordnet.WordNet
	nouns []vocab.Sense
}

// Load parses the WordNet dict directory at path.
func Load(path string) (*Source, error) {
	wn, err := wordnet.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("could not parse WordNet at %s: %v", path, err)
	}
	return New(wn), nil
}

// New wraps an already-parsed WordNet database. Synsets without lemmas or
// with a non-numeric offset are dropped as malformed.
func New(wn *wordnet.WordNet) *Source {
	s := &Source{wn: wn}
	for key, synset := range wn.Synset {
		if synset.Pos != "n" || len(synset.Word) == 0 {
			continue
		}
		offset, err := strconv.Atoi(synset.Offset)
		if err != nil {
			continue
		}
		s.nouns = append(s.nouns, vocab.Sense{
			Key:    key,
			Offset: offset,
			Lemmas: synset.Word,
		})
	}
	// The synset map iterates in a different order on every run. Noun
	// senses are ordered by ascending offset so repeated exports are
	// byte-identical and homograph resolution stays stable.
	sort.Slice(s.nouns, func(i, j int) bool {
		return s.nouns[i].Offset < s.nouns[j].Offset
	})
	return s
}

// NounSenses returns every noun sense, ordered by ascending offset.
func (s *Source) NounSenses() []vocab.Sense {
	return s.nouns
}

// Hypernyms returns the direct hypernyms of sense in the order WordNet
// lists its pointers.
func (s *Source) Hypernyms(sense vocab.Sense) []vocab.Sense {
	synset, ok := s.wn.Synset[sense.Key]
	if !ok {
		return nil
	}
	var parents []vocab.Sense
	for _, pointer := range synset.Pointer {
		if pointer.Symbol != wordnet.Hypernym {
			continue
		}
		parent, ok := s.wn.Synset[pointer.Synset]
		if !ok || len(parent.Word) == 0 {
			continue
		}
		offset, _ := strconv.Atoi(parent.Offset)
		parents = append(parents, vocab.Sense{
			Key:    pointer.Synset,
			Offset: offset,
			Lemmas: parent.Word,
		})
	}
	return parents
}
