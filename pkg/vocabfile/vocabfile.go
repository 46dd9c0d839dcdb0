// Package vocabfile reads generated vocabulary files back in for downstream
// tagging: the WordNet nouns file written by vocabgen plus an optional
// supplemental terms file.
package vocabfile

import (
	"bufio"
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hejijunhao/photon-vocab/pkg/vocab"
)

// NounsFile is the WordNet-derived vocabulary file name inside a
// vocabulary directory.
const NounsFile = "wordnet_nouns.txt"

// SupplementalFile holds extra terms as term<TAB>category lines.
const SupplementalFile = "supplemental.txt"

// Term is one vocabulary entry ready for tagging. Name keeps the raw
// underscore form, DisplayName the space-separated form shown to users.
// Hypernyms are stored display-form, most specific ancestor first.
type Term struct {
	Name        string
	DisplayName string
	SynsetID    string // empty for supplemental terms
	Hypernyms   []string
	Category    string // set for supplemental terms only
}

// Vocabulary is a loaded set of terms with a by-name index.
type Vocabulary struct {
	terms  []Term
	byName map[string]int
}

// Load reads a vocabulary directory. Both files are optional; a missing
// file is skipped, an unreadable one is an error.
func Load(dir string) (*Vocabulary, error) {
	v := &Vocabulary{byName: make(map[string]int)}

	nounsPath := filepath.Join(dir, NounsFile)
	if _, err := os.Stat(nounsPath); err == nil {
		if err := v.loadNouns(nounsPath); err != nil {
			return nil, err
		}
	}

	suppPath := filepath.Join(dir, SupplementalFile)
	if _, err := os.Stat(suppPath); err == nil {
		if err := v.loadSupplemental(suppPath); err != nil {
			return nil, err
		}
	}

	return v, nil
}

// LoadNouns reads a single WordNet nouns file, without supplemental terms.
func LoadNouns(path string) (*Vocabulary, error) {
	v := &Vocabulary{byName: make(map[string]int)}
	if err := v.loadNouns(path); err != nil {
		return nil, err
	}
	return v, nil
}

func (v *Vocabulary) loadNouns(path string) error {
	return forEachDataLine(path, func(line string) {
		entry, err := vocab.ParseLine(line)
		if err != nil {
			// Short or malformed lines are skipped, not fatal.
			return
		}
		var hypernyms []string
		for _, h := range entry.Chain {
			hypernyms = append(hypernyms, strings.ReplaceAll(h, "_", " "))
		}
		v.add(Term{
			Name:        entry.Term,
			DisplayName: strings.ReplaceAll(entry.Term, "_", " "),
			SynsetID:    entry.SynsetID,
			Hypernyms:   hypernyms,
		})
	})
}

func (v *Vocabulary) loadSupplemental(path string) error {
	return forEachDataLine(path, func(line string) {
		fields := strings.Split(line, "\t")
		if len(fields) < 2 || fields[0] == "" {
			return
		}
		v.add(Term{
			Name:        fields[0],
			DisplayName: fields[0],
			Category:    fields[1],
		})
	})
}

func (v *Vocabulary) add(t Term) {
	v.byName[t.Name] = len(v.terms)
	v.terms = append(v.terms, t)
}

func forEachDataLine(path string, fn func(line string)) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("could not read %s: %v", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}
		fn(line)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("could not read %s: %v", path, err)
	}
	return nil
}

// Terms returns every term in load order.
func (v *Vocabulary) Terms() []Term {
	return v.terms
}

// Len returns the number of loaded terms.
func (v *Vocabulary) Len() int {
	return len(v.terms)
}

// Get looks a term up by its raw (underscore) name.
func (v *Vocabulary) Get(name string) (Term, bool) {
	i, ok := v.byName[name]
	if !ok {
		return Term{}, false
	}
	return v.terms[i], true
}

// ContentHash returns a hex SHA-256 over all term names in order. Downstream
// caches key on it: if the vocabulary changes, the hash changes.
func (v *Vocabulary) ContentHash() string {
	h := sha256.New()
	for _, t := range v.terms {
		h.Write([]byte(t.Name))
		h.Write([]byte("\n"))
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
