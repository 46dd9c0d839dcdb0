package vocab

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
)

// Write serializes entries to path, replacing any existing file. The file
// starts with three comment lines (format description, field description,
// source label with entry count) followed by one line per entry, every line
// newline-terminated. The content is staged in a temporary file next to the
// destination and renamed into place, so a failed run never leaves a
// truncated file behind.
func Write(path string, entries []Entry, sourceLabel string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".vocab-*")
	if err != nil {
		return fmt.Errorf("could not create temporary file in %s: %v", dir, err)
	}
	defer os.Remove(tmp.Name())

	w := bufio.NewWriter(tmp)
	fmt.Fprintln(w, "# WordNet nouns vocabulary for Photon")
	fmt.Fprintln(w, "# Format: term<TAB>synset_id<TAB>hypernym_chain (pipe-separated)")
	fmt.Fprintf(w, "# Generated from %s — %d terms\n", sourceLabel, len(entries))
	for _, e := range entries {
		fmt.Fprintln(w, e.Line())
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("could not write %s: %v", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not write %s: %v", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("could not replace %s: %v", path, err)
	}
	return nil
}
