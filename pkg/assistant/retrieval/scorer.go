// Package retrieval ranks a project's documents against a query using plain
// keyword overlap. It is deliberately deterministic: no embeddings, no model
// calls, so the same query over the same documents always ranks the same way.
package retrieval

import (
	"regexp"
	"sort"
	"strings"
)

// Document is the minimal view of a project document the scorer needs.
type Document struct {
	Title   string
	Content string
}

var wordRe = regexp.MustCompile(`\w+`)

// Tokenize splits a query into its set of distinct lower-cased word tokens.
func Tokenize(query string) map[string]bool {
	tokens := map[string]bool{}
	for _, w := range wordRe.FindAllString(strings.ToLower(query), -1) {
		tokens[w] = true
	}
	return tokens
}

// Score counts how many distinct query tokens occur as substrings of the
// document's title+content, case-insensitive.
func Score(doc Document, tokens map[string]bool) int {
	if len(tokens) == 0 {
		return 0
	}
	text := strings.ToLower(doc.Title + "\n" + doc.Content)
	score := 0
	for token := range tokens {
		if strings.Contains(text, token) {
			score++
		}
	}
	return score
}

// TopK returns up to k documents with score > 0, ordered by descending score.
// The sort is stable, so ties keep the order the documents were fetched in
// (the store's newest-first ordering).
func TopK(docs []Document, query string, k int) []Document {
	tokens := Tokenize(query)
	if len(tokens) == 0 {
		return nil
	}

	type scored struct {
		doc   Document
		score int
	}
	var hits []scored
	for _, d := range docs {
		if s := Score(d, tokens); s > 0 {
			hits = append(hits, scored{doc: d, score: s})
		}
	}
	if len(hits) == 0 {
		return nil
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].score > hits[j].score
	})

	if len(hits) > k {
		hits = hits[:k]
	}
	out := make([]Document, len(hits))
	for i, h := range hits {
		out[i] = h.doc
	}
	return out
}
