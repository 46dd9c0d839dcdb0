package vocab

import (
	"reflect"
	"sort"
	"testing"
)

func TestBuildAnimalExample(t *testing.T) {
	entries := Build(animalInventory(), FirstWins)

	want := []Entry{
		{Term: "canine", SynsetID: "00000002", Chain: []string{"mammal"}},
		{Term: "dog", SynsetID: "00000001", Chain: []string{"canine", "mammal"}},
		{Term: "mammal", SynsetID: "00000003", Chain: nil},
	}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("Build() = %v, want %v", entries, want)
	}

	if !sort.SliceIsSorted(entries, func(i, j int) bool {
		return entries[i].Line() < entries[j].Line()
	}) {
		t.Error("entries are not sorted by rendered line")
	}
}

func homographInventory() *fakeInventory {
	return &fakeInventory{
		senses: []Sense{
			{Key: "bass-fish", Offset: 10, Lemmas: []string{"bass", "freshwater_bass"}},
			{Key: "trout", Offset: 11, Lemmas: []string{"trout"}},
			{Key: "bass-voice", Offset: 12, Lemmas: []string{"bass", "basso"}},
		},
		parents: map[string][]string{},
	}
}

func TestBuildFirstWins(t *testing.T) {
	entries := Build(homographInventory(), FirstWins)

	want := []Entry{
		{Term: "bass", SynsetID: "00000010", Chain: nil},
		{Term: "trout", SynsetID: "00000011", Chain: nil},
	}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("Build(FirstWins) = %v, want %v", entries, want)
	}
}

func TestBuildQualifyHomographs(t *testing.T) {
	entries := Build(homographInventory(), QualifyHomographs)

	want := []Entry{
		{Term: "bass", SynsetID: "00000010", Chain: nil},
		{Term: "bass.2", SynsetID: "00000012", Chain: nil},
		{Term: "trout", SynsetID: "00000011", Chain: nil},
	}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("Build(QualifyHomographs) = %v, want %v", entries, want)
	}
}

func TestBuildSkipsLemmalessSenses(t *testing.T) {
	inv := &fakeInventory{
		senses: []Sense{
			{Key: "empty", Offset: 1},
			{Key: "dog", Offset: 2, Lemmas: []string{"dog"}},
		},
		parents: map[string][]string{},
	}

	entries := Build(inv, FirstWins)
	if len(entries) != 1 || entries[0].Term != "dog" {
		t.Errorf("Build() = %v, want a single dog entry", entries)
	}
}

func TestBuildTermUniqueness(t *testing.T) {
	for _, policy := range []DedupPolicy{FirstWins, QualifyHomographs} {
		entries := Build(homographInventory(), policy)
		seen := make(map[string]bool)
		for _, e := range entries {
			if seen[e.Term] {
				t.Errorf("policy %d: duplicate term %q in output", policy, e.Term)
			}
			seen[e.Term] = true
		}
	}
}
