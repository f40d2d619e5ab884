// Package prompt composes grounding-constrained instructions for the
// language model. Every prompt pins the model to the supplied document
// text; caller instructions can only replace the task description,
// never the grounding constraint.
package prompt

import (
	"fmt"
	"strings"
)

const (
	titlesConstraint  = "Use ONLY the text between the markers below to create blog titles. Do not use outside knowledge."
	contentConstraint = "Use ONLY the text between the markers below to write the article. Do not use outside knowledge."

	// DefaultTitlesInstruction is used when the caller supplies no instruction.
	DefaultTitlesInstruction = "Generate 5 unique, SEO-friendly blog titles specific to this document. Return only the titles, one per line."

	// DefaultContentInstruction is used when the caller supplies no instruction.
	DefaultContentInstruction = "Write a long, SEO-friendly blog article for the given title. " +
		"Use only the PDF text. Respond in valid HTML using <h1>, <h2>, <p>, <ul>/<li> etc. " +
		"Do not include any Markdown. Return only the HTML."

	contentStartMarker = "--- PDF CONTENT START ---"
	contentEndMarker   = "--- PDF CONTENT END ---"
)

// ForTitles builds the title-generation prompt for the given document text.
// A blank instruction falls back to DefaultTitlesInstruction.
func ForTitles(text, instruction string) string {
	instr := strings.TrimSpace(instruction)
	if instr == "" {
		instr = DefaultTitlesInstruction
	}
	return fmt.Sprintf("%s\n\n%s\n\n%s\n%s\n%s",
		titlesConstraint, instr, contentStartMarker, text, contentEndMarker)
}

// ForContent builds the article-generation prompt for the given document
// text and title. A blank instruction falls back to DefaultContentInstruction.
func ForContent(text, title, instruction string) string {
	instr := strings.TrimSpace(instruction)
	if instr == "" {
		instr = DefaultContentInstruction
	}
	return fmt.Sprintf("%s\n\n%s\n\nTitle: %s\n\n%s\n%s\n%s",
		contentConstraint, instr, title, contentStartMarker, text, contentEndMarker)
}

// ForKeyword builds the keyword-only title prompt (no document grounding).
func ForKeyword(keyword string) string {
	return fmt.Sprintf("Give me 5 unique blog titles on the topic: %s. Return only titles in list format, no intro or explanation.", keyword)
}
