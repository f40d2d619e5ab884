package display

import (
	"fmt"
	"os"
	"strings"
)

// ServerInfo holds the information shown in the startup banner.
type ServerInfo struct {
	ServiceName        string
	ServiceDescription string
	Version            string

	// LLM
	LLMModel   string
	LLMBaseURL string

	// Limits
	FetchTimeoutSeconds int
	RateLimitRPS        float64

	// Server
	Port int
}

// PrintBanner prints a colorful startup banner with all server information.
func PrintBanner(info ServerInfo) {
	w := os.Stdout

	addr := fmt.Sprintf(":%d", info.Port)
	host := fmt.Sprintf("http://localhost%s", addr)

	// Header
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s%s⚡ %s%s\n", bold, brightCyan, info.ServiceName, reset)
	fmt.Fprintf(w, "  %s%s━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━%s\n", dim, cyan, reset)
	fmt.Fprintln(w)

	// Service section
	printSectionHeader(w, "📄 Service")
	if info.ServiceDescription != "" {
		desc := info.ServiceDescription
		if len(desc) > 60 {
			desc = desc[:57] + "..."
		}
		printKV(w, "Description", desc, white)
	}
	if info.Version != "" {
		printKV(w, "Version", info.Version, white)
	}
	fmt.Fprintln(w)

	// Runtime Config section
	printSectionHeader(w, "⚙️  Runtime Configuration")
	printKV(w, "LLM Model", info.LLMModel, brightMagenta)
	printKV(w, "LLM Endpoint", maskURL(info.LLMBaseURL), dim+white)
	printKV(w, "Fetch Timeout", fmt.Sprintf("%ds", info.FetchTimeoutSeconds), brightYellow)
	if info.RateLimitRPS > 0 {
		printKVColored(w, "Rate Limit", fmt.Sprintf("%.0f req/s", info.RateLimitRPS), brightGreen)
	} else {
		printKVColored(w, "Rate Limit", "✗ disabled", dim+white)
	}
	fmt.Fprintln(w)

	// Endpoints section
	printSectionHeader(w, "🌐 Endpoints")
	printEndpoint(w, "Titles ", "POST", host+"/pdf/titles", brightBlue)
	printEndpoint(w, "Content", "POST", host+"/pdf/content", brightMagenta)
	printEndpoint(w, "Clean  ", "POST", host+"/", brightCyan)
	printEndpoint(w, "Health ", "GET ", host+"/health", green)
	fmt.Fprintln(w)

	// Footer
	fmt.Fprintf(w, "  %s%s━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━%s\n", dim, cyan, reset)
	fmt.Fprintf(w, "  %s%s🚀 Server listening on %s%s%s%s\n", dim, white, reset, bold+brightGreen, host, reset)
	fmt.Fprintf(w, "  %s%s━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━%s\n", dim, cyan, reset)
	fmt.Fprintln(w)
}

func printSectionHeader(w *os.File, title string) {
	fmt.Fprintf(w, "  %s%s%s%s\n", bold, brightYellow, title, reset)
}

func printKV(w *os.File, key, value, valueColor string) {
	paddedKey := padRight(key, 18)
	fmt.Fprintf(w, "    %s%s%s  %s%s%s\n", dim, paddedKey, reset, valueColor, value, reset)
}

func printKVColored(w *os.File, key, value, valueColor string) {
	paddedKey := padRight(key, 18)
	fmt.Fprintf(w, "    %s%s%s  %s%s%s%s\n", dim, paddedKey, reset, bold, valueColor, value, reset)
}

func printEndpoint(w *os.File, label, method, url, color string) {
	paddedLabel := padRight(label, 8)
	fmt.Fprintf(w, "    %s%s%s %s%s%-5s%s %s%s%s\n",
		dim, paddedLabel, reset,
		bold, brightWhite, method, reset,
		color, url, reset,
	)
}

func padRight(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat(" ", n-len(s))
}

// maskURL trims a trailing slash for compact display.
func maskURL(rawURL string) string {
	if rawURL == "" {
		return "(provider default)"
	}
	return strings.TrimRight(rawURL, "/")
}
