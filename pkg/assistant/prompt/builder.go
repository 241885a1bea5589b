// Package prompt builds the completion prompts the assistant sends for its
// two retrieval-backed paths: strict document search and the general RAG
// fallback.
package prompt

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charley4805/project-pretzel/pkg/assistant/retrieval"
)

// snippetLen caps how much of each document the doc-search prompt embeds.
const snippetLen = 600

// Truncate cuts s to at most max bytes, backing up so a multi-byte rune is
// never split mid-sequence.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// DocSearch builds a prompt that instructs the model to answer only from the
// supplied documents. Each document contributes its title plus the first 600
// characters of content.
func DocSearch(question string, docs []retrieval.Document) string {
	var chunks []string
	for i, d := range docs {
		snippet := Truncate(d.Content, snippetLen)
		chunks = append(chunks, fmt.Sprintf("Document %d - %s:\n%s\n", i+1, d.Title, snippet))
	}

	var b strings.Builder
	b.WriteString("You are an AI assistant helping with a construction project. ")
	b.WriteString("Use ONLY the following project documents to answer the user's question. ")
	b.WriteString("If the documents do not contain the answer, say you couldn't find ")
	b.WriteString("anything definitive in the project documents.\n\n")
	b.WriteString("User's question:\n")
	b.WriteString(question)
	b.WriteString("\n\nProject documents:\n")
	b.WriteString(strings.Join(chunks, "\n\n"))
	b.WriteString("\n\nNow provide a concise, helpful answer referencing the documents when appropriate.")
	return b.String()
}

// Grounded builds the general-assistant prompt with retrieved documents as
// soft context: the model should prefer them when relevant but must not invent
// project-specific facts when they are not.
func Grounded(question string, docs []retrieval.Document) string {
	var blocks []string
	for _, d := range docs {
		blocks = append(blocks, fmt.Sprintf("[Document: %s]\n%s", d.Title, d.Content))
	}

	var b strings.Builder
	b.WriteString("You are a construction/project assistant. Use the project documents below ")
	b.WriteString("if they are relevant to the user's question. If they are not relevant, ")
	b.WriteString("answer from your own knowledge but do NOT invent project-specific facts.\n\n")
	b.WriteString(strings.Join(blocks, "\n\n"))
	b.WriteString("\n\nUser question: ")
	b.WriteString(question)
	return b.String()
}
