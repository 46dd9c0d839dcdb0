package vocabfile

import "strings"

// Terms too generic to be worth showing in an abbreviated hierarchy path.
var genericTerms = map[string]bool{
	"entity":          true,
	"physical entity": true,
	"object":          true,
	"whole":           true,
	"thing":           true,
	"organism":        true,
	"living thing":    true,
	"abstraction":     true,
	"matter":          true,
	"substance":       true,
	"body":            true,
	"unit":            true,
}

// IsAncestor reports whether ancestorName appears in termName's hypernym
// chain. Both arguments are display names; the lookup normalizes termName
// back to its raw underscore form.
func (v *Vocabulary) IsAncestor(termName, ancestorName string) bool {
	term, ok := v.Get(strings.ReplaceAll(termName, " ", "_"))
	if !ok {
		return false
	}
	for _, h := range term.Hypernyms {
		if h == ancestorName {
			return true
		}
	}
	return false
}

// Path returns an abbreviated hierarchy path for a term, reading from the
// most general shown ancestor down to the term itself, like
// "dog > sporting dog > retriever". At most maxAncestors ancestors are
// shown and overly generic ones are skipped. Returns "" when the term is
// unknown or has no meaningful ancestors.
func (v *Vocabulary) Path(termName string, maxAncestors int) string {
	term, ok := v.Get(strings.ReplaceAll(termName, " ", "_"))
	if !ok || len(term.Hypernyms) == 0 {
		return ""
	}

	var meaningful []string
	for _, h := range term.Hypernyms {
		if !genericTerms[h] {
			meaningful = append(meaningful, h)
		}
	}
	if len(meaningful) == 0 {
		return ""
	}

	// Hypernyms are stored most specific first. Keep the most general N
	// and reverse so the path reads general to specific.
	if len(meaningful) > maxAncestors {
		meaningful = meaningful[len(meaningful)-maxAncestors:]
	}
	parts := make([]string, 0, len(meaningful)+1)
	for i := len(meaningful) - 1; i >= 0; i-- {
		parts = append(parts, meaningful[i])
	}
	parts = append(parts, term.DisplayName)
	return strings.Join(parts, " > ")
}
