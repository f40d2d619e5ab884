package titles

import (
	"sort"
	"strings"
)

// attributionPrefixLen is how many leading characters of a title are
// matched against page text. Short prefixes that recur on an earlier
// page can misattribute; this is an accepted limitation of the heuristic.
const attributionPrefixLen = 20

// AttributePages maps each title to the first page (ascending page
// number) whose text contains the title's leading characters,
// case-insensitively. Titles with no matching page are absent from the
// returned map.
func AttributePages(list []string, pages map[int]string) map[string]int {
	nums := make([]int, 0, len(pages))
	for n := range pages {
		nums = append(nums, n)
	}
	sort.Ints(nums)

	hits := make(map[string]int)
	for _, title := range list {
		prefix := strings.ToLower(leading(title, attributionPrefixLen))
		if prefix == "" {
			continue
		}
		for _, n := range nums {
			if strings.Contains(strings.ToLower(pages[n]), prefix) {
				hits[title] = n
				break
			}
		}
	}
	return hits
}

// leading returns the first n runes of s.
func leading(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
