// Package pipeline sequences the document-grounded generation flow:
// fetch and extract the PDF, build a grounded prompt, call the model,
// and normalize its output into titles or sanitized HTML content.
package pipeline

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/pratik30111991/chatgpt-automation-vps/internal/config"
	"github.com/pratik30111991/chatgpt-automation-vps/internal/display"
	"github.com/pratik30111991/chatgpt-automation-vps/internal/extractor"
	"github.com/pratik30111991/chatgpt-automation-vps/internal/llm"
	"github.com/pratik30111991/chatgpt-automation-vps/internal/prompt"
	"github.com/pratik30111991/chatgpt-automation-vps/internal/titles"
)

// Extractor fetches a PDF by URL and decodes it into per-page text.
type Extractor interface {
	Extract(ctx context.Context, url string) extractor.Result
}

// Completer is the language-model capability.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Pipeline runs the per-request generation flow. It holds no mutable
// state, so a single instance serves concurrent requests.
type Pipeline struct {
	extractor Extractor
	model     Completer
}

// New creates a Pipeline around the given capabilities.
func New(ext Extractor, model Completer) *Pipeline {
	return &Pipeline{extractor: ext, model: model}
}

// TitlesRequest asks for blog titles grounded in a PDF document.
type TitlesRequest struct {
	PDFURL      string
	Instruction string
	MaxChars    int
}

// TitlesResult carries the generated titles plus extraction metadata.
type TitlesResult struct {
	Titles []string
	// Pages maps each title to the page it was attributed to; titles
	// with no plausible source page are absent.
	Pages        map[string]int
	FileSize     int
	PagesChecked int
}

// ContentRequest asks for an HTML article grounded in a PDF document.
type ContentRequest struct {
	PDFURL      string
	Title       string
	Instruction string
	MaxChars    int
}

// ContentResult carries the generated article plus extraction metadata.
type ContentResult struct {
	Title        string
	HTML         string
	FileSize     int
	PagesChecked int
}

// Titles generates up to five grounded blog titles for the document.
// On ErrExtractionFailed the result still carries the extraction metadata.
func (p *Pipeline) Titles(ctx context.Context, req TitlesRequest) (TitlesResult, error) {
	if req.PDFURL == "" {
		return TitlesResult{}, fmt.Errorf("%w: pdf_url", ErrMissingInput)
	}

	maxChars := req.MaxChars
	if maxChars <= 0 {
		maxChars = config.DefaultTitleChars
	}

	res := p.extractor.Extract(ctx, req.PDFURL)
	if res.FullText == "" {
		return TitlesResult{PagesChecked: len(res.Pages)}, ErrExtractionFailed
	}

	raw, err := p.model.Complete(ctx, prompt.ForTitles(truncateRunes(res.FullText, maxChars), req.Instruction))
	if err != nil {
		return TitlesResult{}, fmt.Errorf("generate titles: %w", err)
	}

	list := titles.FromModelOutput(raw)
	meta := TitlesResult{
		FileSize:     utf8.RuneCountInString(res.FullText),
		PagesChecked: len(res.Pages),
	}
	if len(list) == 0 {
		return meta, ErrNoTitles
	}

	meta.Titles = list
	meta.Pages = titles.AttributePages(list, res.Pages)
	logAttribution(meta)
	return meta, nil
}

// Content generates a grounded HTML article for the given title. An
// empty sanitized result is returned as-is rather than treated as a
// failure.
func (p *Pipeline) Content(ctx context.Context, req ContentRequest) (ContentResult, error) {
	if req.PDFURL == "" || req.Title == "" {
		return ContentResult{}, fmt.Errorf("%w: pdf_url or title", ErrMissingInput)
	}

	maxChars := req.MaxChars
	if maxChars <= 0 {
		maxChars = config.DefaultContentChars
	}

	res := p.extractor.Extract(ctx, req.PDFURL)
	if res.FullText == "" {
		return ContentResult{PagesChecked: len(res.Pages)}, ErrExtractionFailed
	}

	raw, err := p.model.Complete(ctx, prompt.ForContent(truncateRunes(res.FullText, maxChars), req.Title, req.Instruction))
	if err != nil {
		return ContentResult{}, fmt.Errorf("generate content: %w", err)
	}

	html := llm.StripFences(raw)
	display.Info(fmt.Sprintf("content generated: %d chars", utf8.RuneCountInString(html)))

	return ContentResult{
		Title:        req.Title,
		HTML:         html,
		FileSize:     utf8.RuneCountInString(res.FullText),
		PagesChecked: len(res.Pages),
	}, nil
}

// Keyword generates blog titles for a bare topic keyword, without any
// document grounding.
func (p *Pipeline) Keyword(ctx context.Context, keyword string) ([]string, error) {
	if keyword == "" {
		return nil, fmt.Errorf("%w: keyword", ErrMissingInput)
	}
	raw, err := p.model.Complete(ctx, prompt.ForKeyword(keyword))
	if err != nil {
		return nil, fmt.Errorf("generate keyword titles: %w", err)
	}
	return titles.FromModelOutput(raw), nil
}

func logAttribution(res TitlesResult) {
	for _, t := range res.Titles {
		if page, ok := res.Pages[t]; ok {
			display.Info(fmt.Sprintf("Title found: %s (Page %d)", t, page))
		} else {
			display.Info(fmt.Sprintf("Title found: %s (Page ?)", t))
		}
	}
	display.Detail(fmt.Sprintf("pages extracted: %d, text length: %d", res.PagesChecked, res.FileSize))
}

// truncateRunes hard-cuts s to at most max characters, with no word
// boundary awareness.
func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
