// vocabcheck verifies the structural guarantees of a generated vocabulary
// file: header count, term uniqueness, sort order, field format and
// hypernym chain termination.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"regexp"
	"strconv"
	"strings"
)

var (
	headerCountPattern = regexp.MustCompile(`— (\d+) terms$`)
	synsetIDPattern    = regexp.MustCompile(`^\d{8}$`)
)

func main() {
	inputPath := flag.String("input", "data/vocabulary/wordnet_nouns.txt", "Path to the vocabulary file to check")
	flag.Parse()

	header, data, err := readVocabularyLines(*inputPath)
	if err != nil {
		log.Fatalf("Error reading %s: %v", *inputPath, err)
	}

	problems := 0
	report := func(check string, err error) {
		if err != nil {
			problems++
			fmt.Printf("FAIL %s: %v\n", check, err)
			return
		}
		fmt.Printf("ok   %s\n", check)
	}

	report("header count", checkHeaderCount(header, len(data)))
	report("term uniqueness", checkUniqueTerms(data))
	report("sort order", checkSorted(data))
	report("line format", checkFormat(data))
	report("chain termination", checkChains(data))

	if problems > 0 {
		os.Exit(1)
	}
	fmt.Printf("%s: %d terms, all checks passed\n", *inputPath, len(data))
}

func readVocabularyLines(path string) (header, data []string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") {
			header = append(header, line)
		} else {
			data = append(data, line)
		}
	}
	return header, data, scanner.Err()
}

func checkHeaderCount(header []string, dataLines int) error {
	for _, line := range header {
		m := headerCountPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		count, err := strconv.Atoi(m[1])
		if err != nil {
			return fmt.Errorf("unparseable count in header line %q", line)
		}
		if count != dataLines {
			return fmt.Errorf("header says %d terms, file has %d data lines", count, dataLines)
		}
		return nil
	}
	return fmt.Errorf("no header line states the term count")
}

func checkUniqueTerms(data []string) error {
	seen := make(map[string]int)
	for i, line := range data {
		term := strings.SplitN(line, "\t", 2)[0]
		if prev, ok := seen[term]; ok {
			return fmt.Errorf("term %q on line %d already seen on line %d", term, i+1, prev)
		}
		seen[term] = i + 1
	}
	return nil
}

func checkSorted(data []string) error {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return fmt.Errorf("line %d sorts before its predecessor: %q", i+1, data[i])
		}
	}
	return nil
}

func checkFormat(data []string) error {
	for i, line := range data {
		fields := strings.Split(line, "\t")
		if len(fields) != 3 {
			return fmt.Errorf("line %d has %d tab-separated fields, want 3: %q", i+1, len(fields), line)
		}
		if !synsetIDPattern.MatchString(fields[1]) {
			return fmt.Errorf("line %d has a malformed synset id %q", i+1, fields[1])
		}
	}
	return nil
}

func checkChains(data []string) error {
	for i, line := range data {
		fields := strings.Split(line, "\t")
		if len(fields) != 3 || fields[2] == "" {
			continue
		}
		seen := make(map[string]bool)
		for _, term := range strings.Split(fields[2], "|") {
			if term == "" {
				return fmt.Errorf("line %d has an empty chain component: %q", i+1, line)
			}
			if seen[term] {
				return fmt.Errorf("line %d repeats %q in its hypernym chain", i+1, term)
			}
			seen[term] = true
		}
	}
	return nil
}
