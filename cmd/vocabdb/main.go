package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/gosuri/uiprogress"
	_ "github.com/mattn/go-sqlite3"

	"github.com/hejijunhao/photon-vocab/pkg/vocabfile"
)

func main() {
	inputPath := flag.String("input", "data/vocabulary/wordnet_nouns.txt", "Path to the vocabulary file")
	sqlitePath := flag.String("sqlite", "vocabulary.db", "Path to the output SQLite database")
	tableName := flag.String("table", "vocabulary", "Name of the output table")
	flag.Parse()

	vocabulary, err := vocabfile.LoadNouns(*inputPath)
	if err != nil {
		log.Fatalf("Error loading vocabulary: %v", err)
	}

	db, err := sql.Open("sqlite3", *sqlitePath)
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}
	defer db.Close()

	if err := createVocabularyTable(db, *tableName); err != nil {
		log.Fatalf("Error creating table: %v", err)
	}

	count, err := insertTerms(db, *tableName, vocabulary.Terms())
	if err != nil {
		log.Fatalf("Error inserting terms: %v", err)
	}

	fmt.Printf("Loaded %d terms into %s (table %s)\n", count, *sqlitePath, *tableName)
}

func createVocabularyTable(db *sql.DB, tableName string) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			term TEXT PRIMARY KEY,
			synset_id TEXT,
			hypernym_chain TEXT,
			depth INTEGER
		)`, tableName)
	if _, err := db.Exec(query); err != nil {
		return err
	}

	_, err := db.Exec(fmt.Sprintf(
		"CREATE INDEX IF NOT EXISTS idx_%s_synset_id ON %s (synset_id)", tableName, tableName))
	return err
}

func insertTerms(db *sql.DB, tableName string, terms []vocabfile.Term) (int, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("could not start transaction: %v", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(fmt.Sprintf(
		"INSERT OR REPLACE INTO %s (term, synset_id, hypernym_chain, depth) VALUES (?, ?, ?, ?)", tableName))
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	uiprogress.Start()
	bar := uiprogress.AddBar(len(terms))
	bar.AppendCompleted()
	bar.PrependElapsed()

	count := 0
	for _, t := range terms {
		_, err := stmt.Exec(t.Name, t.SynsetID, strings.Join(t.Hypernyms, "|"), len(t.Hypernyms))
		if err != nil {
			uiprogress.Stop()
			return count, fmt.Errorf("could not insert term %s: %v", t.Name, err)
		}
		count++
		bar.Incr()
	}
	uiprogress.Stop()

	if err := tx.Commit(); err != nil {
		return count, fmt.Errorf("could not commit transaction: %v", err)
	}
	return count, nil
}
