// Offline full-text filtering for fetched search results.
// Based on: https://artem.krylysov.com/blog/2020/07/28/lets-build-a-full-text-search-engine/
package tui

import (
	"strings"
	"unicode"

	snowballeng "github.com/kljensen/snowball/english"
)

// index is an inverted index mapping analyzed tokens to result positions.
type index map[string][]int

// buildIndex analyzes the searchable text of each fetched record. Positions
// follow the input order, so posting lists stay sorted.
func buildIndex(docs []string) index {
	idx := make(index)
	for id, doc := range docs {
		for _, token := range analyze(doc) {
			if contains(idx[token], id) {
				continue
			}
			idx[token] = append(idx[token], id)
		}
	}
	return idx
}

// search returns the positions of records containing ALL query terms. The
// result is the caller's own copy, never a posting list from the index.
func (idx index) search(text string) []int {
	var r []int
	for _, token := range analyze(text) {
		ids, ok := idx[token]
		if !ok {
			return nil
		}
		if r == nil {
			r = append([]int(nil), ids...)
		} else {
			r = intersection(r, ids)
		}
	}
	return r
}

// analyze runs text through the analysis pipeline. Queries and documents use
// the same pipeline, so "running" matches "run".
func analyze(text string) []string {
	tokens := tokenize(text)
	tokens = toLower(tokens)
	tokens = removeStopWords(tokens)
	return stem(tokens)
}

// tokenize splits on anything that is not a letter or a number.
func tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

func toLower(tokens []string) []string {
	r := make([]string, len(tokens))
	for i, token := range tokens {
		r[i] = strings.ToLower(token)
	}
	return r
}

// stopWords are too common to discriminate between records.
var stopWords = map[string]struct{}{
	"a":    {},
	"and":  {},
	"be":   {},
	"have": {},
	"i":    {},
	"in":   {},
	"of":   {},
	"that": {},
	"the":  {},
	"to":   {},
}

func removeStopWords(tokens []string) []string {
	r := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if _, ok := stopWords[token]; !ok {
			r = append(r, token)
		}
	}
	return r
}

// stem reduces tokens to their root form with the Snowball English stemmer.
func stem(tokens []string) []string {
	r := make([]string, len(tokens))
	for i, token := range tokens {
		r[i] = snowballeng.Stem(token, false)
	}
	return r
}

func contains(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// intersection walks two sorted posting lists, keeping common positions.
func intersection(a, b []int) []int {
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}

	r := make([]int, 0, maxLen)
	var i, j int
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			r = append(r, a[i])
			i++
			j++
		}
	}
	return r
}
