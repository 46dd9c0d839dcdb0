package wnsource

import (
	"reflect"
	"testing"

	"github.com/fluhus/gostuff/nlp/wordnet"

	"github.com/hejijunhao/photon-vocab/pkg/vocab"
)

func testWordNet() *wordnet.WordNet {
	return &wordnet.WordNet{
		Synset: map[string]*wordnet.Synset{
			"n00000003": {
				Offset: "00000003",
				Pos:    "n",
				Word:   []string{"mammal"},
			},
			"n00000002": {
				Offset: "00000002",
				Pos:    "n",
				Word:   []string{"canine"},
				Pointer: []*wordnet.Pointer{
					{Symbol: wordnet.Hypernym, Synset: "n00000003"},
				},
			},
			"n00000001": {
				Offset: "00000001",
				Pos:    "n",
				Word:   []string{"dog", "domestic_dog"},
				Pointer: []*wordnet.Pointer{
					{Symbol: wordnet.Hypernym, Synset: "n00000002"},
					{Symbol: wordnet.Hyponym, Synset: "n00000002"},
				},
			},
			"v00000009": {
				Offset: "00000009",
				Pos:    "v",
				Word:   []string{"bark"},
			},
			"n00000007": {
				Offset: "00000007",
				Pos:    "n",
				Word:   nil, // malformed, no lemmas
			},
		},
	}
}

func TestNounSenses(t *testing.T) {
	source := New(testWordNet())

	got := source.NounSenses()
	want := []vocab.Sense{
		{Key: "n00000001", Offset: 1, Lemmas: []string{"dog", "domestic_dog"}},
		{Key: "n00000002", Offset: 2, Lemmas: []string{"canine"}},
		{Key: "n00000003", Offset: 3, Lemmas: []string{"mammal"}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NounSenses() = %v, want %v", got, want)
	}
}

func TestHypernyms(t *testing.T) {
	source := New(testWordNet())

	testCases := []struct {
		name  string
		sense vocab.Sense
		want  []vocab.Sense
	}{
		{
			"Follows hypernym pointers only",
			vocab.Sense{Key: "n00000001"},
			[]vocab.Sense{{Key: "n00000002", Offset: 2, Lemmas: []string{"canine"}}},
		},
		{
			"Root has no hypernyms",
			vocab.Sense{Key: "n00000003"},
			nil,
		},
		{
			"Unknown sense",
			vocab.Sense{Key: "n99999999"},
			nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := source.Hypernyms(tc.sense)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Hypernyms(%s) = %v, want %v", tc.sense.Key, got, tc.want)
			}
		})
	}
}

func TestBuildFromSource(t *testing.T) {
	entries := vocab.Build(New(testWordNet()), vocab.FirstWins)

	want := []vocab.Entry{
		{Term: "canine", SynsetID: "00000002", Chain: []string{"mammal"}},
		{Term: "dog", SynsetID: "00000001", Chain: []string{"canine", "mammal"}},
		{Term: "mammal", SynsetID: "00000003", Chain: nil},
	}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("Build() = %v, want %v", entries, want)
	}
}
