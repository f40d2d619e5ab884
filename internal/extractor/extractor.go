package extractor

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/pratik30111991/chatgpt-automation-vps/internal/display"
)

// Result holds the text extracted from a single PDF document.
type Result struct {
	// FullText is the space-joined concatenation of Pages values in
	// ascending page order. Empty means the document yielded no text.
	FullText string
	// Pages maps 1-based page numbers to their extracted text. Pages
	// that failed to decode or contained no text are absent.
	Pages map[int]string
}

// Extractor downloads PDF documents and decodes them into per-page text.
type Extractor struct {
	client *http.Client
}

// New creates an Extractor whose downloads are bounded by timeout.
func New(timeout time.Duration) *Extractor {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Extractor{
		client: &http.Client{Timeout: timeout},
	}
}

// Extract fetches the PDF at url and decodes it into per-page text.
// It never fails: a transport error, non-success status, or undecodable
// document yields an empty Result, and a page that cannot be decoded is
// skipped while the remaining pages are still extracted.
func (e *Extractor) Extract(ctx context.Context, url string) Result {
	empty := Result{Pages: map[int]string{}}

	data, err := e.fetch(ctx, url)
	if err != nil {
		display.Warn(fmt.Sprintf("pdf fetch failed: %v", err))
		return empty
	}

	pages, err := extractPages(data)
	if err != nil {
		display.Warn(fmt.Sprintf("pdf decode failed: %v", err))
		return empty
	}
	if len(pages) == 0 {
		return empty
	}

	nums := make([]int, 0, len(pages))
	for n := range pages {
		nums = append(nums, n)
	}
	sort.Ints(nums)

	parts := make([]string, 0, len(nums))
	for _, n := range nums {
		parts = append(parts, pages[n])
	}

	return Result{
		FullText: strings.Join(parts, " "),
		Pages:    pages,
	}
}

func (e *Extractor) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %q: %w", url, err)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %q: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch %q: unexpected status %d", url, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body of %q: %w", url, err)
	}
	return data, nil
}
