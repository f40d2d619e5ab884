// Package titles turns arbitrary model output or re-submitted title
// fields into a deduplicated, ordered list of clean title strings, and
// attributes titles back to the source pages they likely came from.
package titles

import (
	"encoding/json"
	"html"
	"strings"
)

// MaxTitles caps every normalized title list.
const MaxTitles = 5

// listMarkers are the characters stripped from line ends when parsing
// model output formatted as a bulleted or numbered list.
const listMarkers = " \t•-0123456789."

// FromModelOutput parses a newline-oriented model response into clean
// titles: one candidate per non-blank line, list markers stripped.
func FromModelOutput(raw string) []string {
	var candidates []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.Trim(line, listMarkers)
		if line == "" {
			continue
		}
		candidates = append(candidates, line)
	}
	return finalize(candidates)
}

// FromField parses an externally re-submitted title field. The field may
// be a JSON array of strings, a JSON-encoded string, a newline-joined
// block, a pseudo-CSV of quoted segments, or a single plain title; the
// decoders are tried in that order and the first that recognizes the
// shape wins.
func FromField(raw string) []string {
	return finalize(decodeField(raw))
}

// FromList cleans an already-split list of title candidates, applying
// the same dedupe and cap rules as the other entry points.
func FromList(candidates []string) []string {
	return finalize(candidates)
}

// fieldDecoder attempts to split a raw field into candidates. The bool
// reports whether the shape was recognized; false means try the next one.
type fieldDecoder func(string) ([]string, bool)

var fieldDecoders = []fieldDecoder{
	decodeJSONArray,
	decodeJSONString,
	decodeNewlines,
	decodeQuotedCSV,
}

func decodeField(raw string) []string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	for _, decode := range fieldDecoders {
		if parts, ok := decode(s); ok {
			return parts
		}
	}
	return []string{s}
}

func decodeJSONArray(s string) ([]string, bool) {
	var arr []string
	if err := json.Unmarshal([]byte(s), &arr); err != nil {
		return nil, false
	}
	return arr, true
}

func decodeJSONString(s string) ([]string, bool) {
	var one string
	if err := json.Unmarshal([]byte(s), &one); err != nil {
		return nil, false
	}
	return []string{one}, true
}

func decodeNewlines(s string) ([]string, bool) {
	if !strings.Contains(s, "\n") {
		return nil, false
	}
	return strings.Split(s, "\n"), true
}

// decodeQuotedCSV handles titles re-submitted as a single comma-joined
// string of quoted segments, e.g. `"a","b","c"`.
func decodeQuotedCSV(s string) ([]string, bool) {
	if !strings.Contains(s, `","`) {
		return nil, false
	}
	parts := strings.Split(s, `","`)
	for i, p := range parts {
		parts[i] = strings.Trim(strings.TrimSpace(p), `"`)
	}
	return parts, true
}

// Clean normalizes a single title candidate: JSON layers unwrapped,
// whitespace collapsed, wrapping quotes and trailing punctuation
// stripped, HTML entities unescaped, control characters removed.
// An unusable candidate cleans to the empty string.
func Clean(title string) string {
	t := strings.TrimSpace(title)

	// Unwrap JSON-encoded strings, at most three layers deep.
	for i := 0; i < 3; i++ {
		var inner string
		if err := json.Unmarshal([]byte(t), &inner); err != nil {
			break
		}
		t = strings.TrimSpace(inner)
	}

	t = collapseSpace(t)

	// Strip symmetric wrapping quotes until no outer pair remains.
	for len(t) >= 2 {
		first, last := t[0], t[len(t)-1]
		if first != last || (first != '"' && first != '\'') {
			break
		}
		t = t[1 : len(t)-1]
	}

	t = strings.TrimRight(t, ` "'.`)
	t = html.UnescapeString(t)
	t = stripControl(t)
	return strings.TrimSpace(t)
}

// finalize cleans candidates, drops empties, dedupes case-insensitively
// preserving first-seen order, and caps the result at MaxTitles.
func finalize(candidates []string) []string {
	seen := make(map[string]struct{}, len(candidates))
	out := []string{}
	for _, c := range candidates {
		t := Clean(c)
		if t == "" {
			continue
		}
		key := strings.ToLower(t)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, t)
		if len(out) == MaxTitles {
			break
		}
	}
	return out
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func stripControl(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}
