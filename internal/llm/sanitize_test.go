package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "tagged fence",
			raw:  "```html\n<h1>X</h1>\n```",
			want: "<h1>X</h1>",
		},
		{
			name: "untagged fence",
			raw:  "```\n<p>body</p>\n```",
			want: "<p>body</p>",
		},
		{
			name: "fence in the middle",
			raw:  "<h1>A</h1>\n```html\n<p>B</p>",
			want: "<h1>A</h1>\n\n<p>B</p>",
		},
		{
			name: "no fences",
			raw:  "  <h1>X</h1>  ",
			want: "<h1>X</h1>",
		},
		{
			name: "only fences leaves nothing",
			raw:  "```html\n```",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripFences(tt.raw))
		})
	}
}
