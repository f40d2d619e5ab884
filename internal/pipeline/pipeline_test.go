package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pratik30111991/chatgpt-automation-vps/internal/extractor"
)

type stubExtractor struct {
	res extractor.Result
}

func (s stubExtractor) Extract(_ context.Context, _ string) extractor.Result {
	return s.res
}

type stubModel struct {
	out     string
	err     error
	prompts []string
}

func (s *stubModel) Complete(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	return s.out, nil
}

func twoPageDoc() extractor.Result {
	pages := map[int]string{
		1: "alpha guide content about gardening on the first page",
		2: "beta guide content about composting on the second page",
	}
	return extractor.Result{
		FullText: pages[1] + " " + pages[2],
		Pages:    pages,
	}
}

func TestTitles(t *testing.T) {
	t.Run("happy path with dedupe and attribution", func(t *testing.T) {
		model := &stubModel{out: "1. Alpha Guide\n2. Beta Guide\n1. alpha guide\n"}
		p := New(stubExtractor{res: twoPageDoc()}, model)

		res, err := p.Titles(context.Background(), TitlesRequest{PDFURL: "http://x/doc.pdf"})
		require.NoError(t, err)

		assert.Equal(t, []string{"Alpha Guide", "Beta Guide"}, res.Titles)
		assert.Equal(t, 2, res.PagesChecked)
		assert.Equal(t, len(twoPageDoc().FullText), res.FileSize)
		assert.Equal(t, map[string]int{"Alpha Guide": 1, "Beta Guide": 2}, res.Pages)
	})

	t.Run("missing pdf url", func(t *testing.T) {
		p := New(stubExtractor{}, &stubModel{})
		_, err := p.Titles(context.Background(), TitlesRequest{})
		assert.ErrorIs(t, err, ErrMissingInput)
	})

	t.Run("extraction failure carries metadata", func(t *testing.T) {
		p := New(stubExtractor{res: extractor.Result{Pages: map[int]string{}}}, &stubModel{})
		res, err := p.Titles(context.Background(), TitlesRequest{PDFURL: "http://x/doc.pdf"})
		assert.ErrorIs(t, err, ErrExtractionFailed)
		assert.Equal(t, 0, res.PagesChecked)
	})

	t.Run("model output with no usable titles", func(t *testing.T) {
		model := &stubModel{out: "1.\n- \n"}
		p := New(stubExtractor{res: twoPageDoc()}, model)
		_, err := p.Titles(context.Background(), TitlesRequest{PDFURL: "http://x/doc.pdf"})
		assert.ErrorIs(t, err, ErrNoTitles)
	})

	t.Run("model failure propagates", func(t *testing.T) {
		boom := errors.New("upstream down")
		p := New(stubExtractor{res: twoPageDoc()}, &stubModel{err: boom})
		_, err := p.Titles(context.Background(), TitlesRequest{PDFURL: "http://x/doc.pdf"})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("text is hard-cut to max chars", func(t *testing.T) {
		doc := extractor.Result{
			FullText: "abcdefghij",
			Pages:    map[int]string{1: "abcdefghij"},
		}
		model := &stubModel{out: "1. Something"}
		p := New(stubExtractor{res: doc}, model)

		_, err := p.Titles(context.Background(), TitlesRequest{PDFURL: "http://x/doc.pdf", MaxChars: 5})
		require.NoError(t, err)
		require.Len(t, model.prompts, 1)
		assert.Contains(t, model.prompts[0], "---\nabcde\n---")
		assert.NotContains(t, model.prompts[0], "abcdef")
	})

	t.Run("instruction is passed through", func(t *testing.T) {
		model := &stubModel{out: "1. Something"}
		p := New(stubExtractor{res: twoPageDoc()}, model)

		_, err := p.Titles(context.Background(), TitlesRequest{
			PDFURL:      "http://x/doc.pdf",
			Instruction: "Only questions as titles.",
		})
		require.NoError(t, err)
		require.Len(t, model.prompts, 1)
		assert.Contains(t, model.prompts[0], "Only questions as titles.")
	})
}

func TestContent(t *testing.T) {
	t.Run("happy path strips fences", func(t *testing.T) {
		model := &stubModel{out: "```html\n<h1>X</h1>\n```"}
		p := New(stubExtractor{res: twoPageDoc()}, model)

		res, err := p.Content(context.Background(), ContentRequest{
			PDFURL: "http://x/doc.pdf",
			Title:  "Alpha Guide",
		})
		require.NoError(t, err)
		assert.Equal(t, "<h1>X</h1>", res.HTML)
		assert.Equal(t, "Alpha Guide", res.Title)
		assert.Equal(t, 2, res.PagesChecked)
		assert.NotContains(t, res.HTML, "```")
	})

	t.Run("missing title", func(t *testing.T) {
		p := New(stubExtractor{res: twoPageDoc()}, &stubModel{})
		_, err := p.Content(context.Background(), ContentRequest{PDFURL: "http://x/doc.pdf"})
		assert.ErrorIs(t, err, ErrMissingInput)
	})

	t.Run("extraction failure", func(t *testing.T) {
		p := New(stubExtractor{res: extractor.Result{Pages: map[int]string{}}}, &stubModel{})
		_, err := p.Content(context.Background(), ContentRequest{PDFURL: "http://x/doc.pdf", Title: "T"})
		assert.ErrorIs(t, err, ErrExtractionFailed)
	})

	t.Run("empty sanitized output is not an error", func(t *testing.T) {
		model := &stubModel{out: "```html\n```"}
		p := New(stubExtractor{res: twoPageDoc()}, model)
		res, err := p.Content(context.Background(), ContentRequest{PDFURL: "http://x/doc.pdf", Title: "T"})
		require.NoError(t, err)
		assert.Empty(t, res.HTML)
	})

	t.Run("title appears in the prompt", func(t *testing.T) {
		model := &stubModel{out: "<p>ok</p>"}
		p := New(stubExtractor{res: twoPageDoc()}, model)
		_, err := p.Content(context.Background(), ContentRequest{PDFURL: "http://x/doc.pdf", Title: "Alpha Guide"})
		require.NoError(t, err)
		require.Len(t, model.prompts, 1)
		assert.Contains(t, model.prompts[0], "Title: Alpha Guide")
	})
}

func TestKeyword(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		model := &stubModel{out: "1. Gardening For Beginners\n2. Composting Basics"}
		p := New(stubExtractor{}, model)

		list, err := p.Keyword(context.Background(), "gardening")
		require.NoError(t, err)
		assert.Equal(t, []string{"Gardening For Beginners", "Composting Basics"}, list)
		require.Len(t, model.prompts, 1)
		assert.True(t, strings.Contains(model.prompts[0], "gardening"))
	})

	t.Run("missing keyword", func(t *testing.T) {
		p := New(stubExtractor{}, &stubModel{})
		_, err := p.Keyword(context.Background(), "")
		assert.ErrorIs(t, err, ErrMissingInput)
	})

	t.Run("model failure propagates", func(t *testing.T) {
		boom := errors.New("upstream down")
		p := New(stubExtractor{}, &stubModel{err: boom})
		_, err := p.Keyword(context.Background(), "gardening")
		assert.ErrorIs(t, err, boom)
	})
}
