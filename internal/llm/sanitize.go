package llm

import "strings"

// StripFences removes markdown code-fence markers the model tends to
// wrap HTML output in (```html ... ```), wherever they occur, and trims
// the result. It does not validate that what remains is well-formed HTML.
func StripFences(raw string) string {
	s := strings.ReplaceAll(raw, "```html", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
