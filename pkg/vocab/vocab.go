package vocab

import (
	"fmt"
	"strings"
)

// FieldSep separates the term, synset id and hypernym chain in a rendered line.
const FieldSep = "\t"

// ChainSep separates the components of a hypernym chain.
const ChainSep = "|"

// Entry is one line of the vocabulary file: a surface term, the zero-padded
// offset of the synset it came from, and the hypernym chain from the term's
// immediate parent up towards the root.
type Entry struct {
	Term     string
	SynsetID string
	Chain    []string
}

// Line renders the entry exactly as it appears in the vocabulary file,
// without the trailing newline.
func (e Entry) Line() string {
	return e.Term + FieldSep + e.SynsetID + FieldSep + strings.Join(e.Chain, ChainSep)
}

// ParseLine inverts Line. The chain field may be empty for root-level terms.
func ParseLine(line string) (Entry, error) {
	fields := strings.Split(line, FieldSep)
	if len(fields) != 3 {
		return Entry{}, fmt.Errorf("expected 3 tab-separated fields, got %d: %q", len(fields), line)
	}
	if fields[0] == "" {
		return Entry{}, fmt.Errorf("empty term field: %q", line)
	}
	e := Entry{Term: fields[0], SynsetID: fields[1]}
	if fields[2] != "" {
		e.Chain = strings.Split(fields[2], ChainSep)
	}
	return e, nil
}

// FormatSynsetID renders a WordNet database offset as the 8-digit
// zero-padded string used in the vocabulary file.
func FormatSynsetID(offset int) string {
	return fmt.Sprintf("%08d", offset)
}
