package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForTitles(t *testing.T) {
	t.Run("default instruction", func(t *testing.T) {
		p := ForTitles("doc text", "")
		assert.Contains(t, p, "Use ONLY the text between the markers below to create blog titles.")
		assert.Contains(t, p, DefaultTitlesInstruction)
		assert.Contains(t, p, "--- PDF CONTENT START ---\ndoc text\n--- PDF CONTENT END ---")
	})

	t.Run("custom instruction replaces only the task", func(t *testing.T) {
		p := ForTitles("doc text", "Give me 3 German titles.")
		assert.Contains(t, p, "Do not use outside knowledge.")
		assert.Contains(t, p, "Give me 3 German titles.")
		assert.NotContains(t, p, DefaultTitlesInstruction)
	})

	t.Run("blank instruction falls back to default", func(t *testing.T) {
		p := ForTitles("doc text", "   ")
		assert.Contains(t, p, DefaultTitlesInstruction)
	})
}

func TestForContent(t *testing.T) {
	p := ForContent("doc text", "My Title", "")
	assert.Contains(t, p, "Use ONLY the text between the markers below to write the article.")
	assert.Contains(t, p, DefaultContentInstruction)
	assert.Contains(t, p, "Title: My Title")
	assert.Contains(t, p, "--- PDF CONTENT START ---\ndoc text\n--- PDF CONTENT END ---")

	// Grounding constraint always comes first.
	assert.True(t, strings.HasPrefix(p, "Use ONLY the text"))
}

func TestForKeyword(t *testing.T) {
	p := ForKeyword("urban gardening")
	assert.Contains(t, p, "5 unique blog titles")
	assert.Contains(t, p, "urban gardening")
}
