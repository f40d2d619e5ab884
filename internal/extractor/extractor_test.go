package extractor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_TransportFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "not a pdf",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("<html><body>hello</body></html>"))
			},
		},
		{
			name: "empty body",
			handler: func(w http.ResponseWriter, r *http.Request) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			res := New(5 * time.Second).Extract(context.Background(), srv.URL)
			assert.Empty(t, res.FullText)
			assert.Empty(t, res.Pages)
			require.NotNil(t, res.Pages)
		})
	}
}

func TestExtract_UnreachableHost(t *testing.T) {
	res := New(time.Second).Extract(context.Background(), "http://127.0.0.1:1/doc.pdf")
	assert.Empty(t, res.FullText)
	assert.Empty(t, res.Pages)
}

func TestExtract_InvalidURL(t *testing.T) {
	res := New(time.Second).Extract(context.Background(), "::not a url::")
	assert.Empty(t, res.FullText)
	assert.Empty(t, res.Pages)
}
