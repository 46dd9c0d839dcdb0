package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hejijunhao/photon-vocab/internal/wnsource"
	"github.com/hejijunhao/photon-vocab/pkg/vocab"
)

const defaultOutputPath = "data/vocabulary/wordnet_nouns.txt"

func main() {
	wordnetPath := flag.String("wordnet", "", "Path to WordNet database directory")
	sourceLabel := flag.String("source-label", "WordNet 3.0", "Source version label written into the file header")
	homographs := flag.String("homographs", "first", "Homograph policy: 'first' keeps only the first sense of a term, 'qualify' keeps later senses as term.2, term.3, ...")
	flag.Parse()

	if *wordnetPath == "" {
		fmt.Println("Please provide the path to the WordNet database directory using the -wordnet flag")
		flag.PrintDefaults()
		os.Exit(1)
	}

	var policy vocab.DedupPolicy
	switch *homographs {
	case "first":
		policy = vocab.FirstWins
	case "qualify":
		policy = vocab.QualifyHomographs
	default:
		log.Fatalf("Unknown -homographs policy: %s", *homographs)
	}

	outputPath := defaultOutputPath
	if flag.NArg() > 0 {
		outputPath = flag.Arg(0)
	}

	source, err := wnsource.Load(*wordnetPath)
	if err != nil {
		log.Fatalf("Error loading WordNet: %v", err)
	}
	fmt.Fprintf(os.Stderr, "Found %d noun synsets in WordNet\n", len(source.NounSenses()))

	entries := vocab.Build(source, policy)
	if err := vocab.Write(outputPath, entries, *sourceLabel); err != nil {
		log.Fatalf("Error writing vocabulary: %v", err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %d terms to %s\n", len(entries), outputPath)
}
