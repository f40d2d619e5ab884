package cmd

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/pratik30111991/chatgpt-automation-vps/internal/config"
	"github.com/pratik30111991/chatgpt-automation-vps/internal/display"
	"github.com/pratik30111991/chatgpt-automation-vps/internal/extractor"
	"github.com/pratik30111991/chatgpt-automation-vps/internal/llm"
	"github.com/pratik30111991/chatgpt-automation-vps/internal/pipeline"
	"github.com/pratik30111991/chatgpt-automation-vps/internal/server"
)

var (
	servePort        int
	serveServiceYAML string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the blogforge HTTP server",
	Long: `Starts the HTTP server on port 12000 (or $PORT).

Exposes the generation endpoints:
  POST /pdf/titles   - grounded blog titles for a PDF URL
  POST /pdf/content  - grounded HTML article for a PDF URL and title
  POST /             - title cleaning / keyword title generation
  GET  /health       - health check

Runtime settings come from environment variables:
  LLM_API_KEY, LLM_MODEL (required)
  LLM_BASE_URL, PORT, FETCH_TIMEOUT_SECONDS (optional)`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 12000, "Port to listen on")
	serveCmd.Flags().StringVar(&serveServiceYAML, "service", "service.yaml", "Path to service.yaml")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	runtimeCfg := config.LoadRuntime()
	if err := config.ValidateRuntime(runtimeCfg); err != nil {
		return fmt.Errorf("runtime config error: %w", err)
	}

	if runtimeCfg.Port != 0 {
		servePort = runtimeCfg.Port
	}

	llmClient, err := llm.NewClient(&runtimeCfg.LLM)
	if err != nil {
		return fmt.Errorf("create LLM client: %w", err)
	}
	display.Success(fmt.Sprintf("LLM client ready (%s)", llmClient.Model()))

	fetchTimeout := time.Duration(runtimeCfg.FetchTimeoutSeconds) * time.Second
	pipe := pipeline.New(extractor.New(fetchTimeout), llmClient)

	srv, err := server.New(server.Config{
		Generator:       pipe,
		ServiceYAMLPath: serveServiceYAML,
	})
	if err != nil {
		return fmt.Errorf("initialize server: %w", err)
	}

	svcCfg := srv.ServiceConfigured()
	display.PrintBanner(display.ServerInfo{
		ServiceName:         svcCfg.Service.Name,
		ServiceDescription:  svcCfg.Service.Description,
		Version:             version,
		LLMModel:            runtimeCfg.LLM.Model,
		LLMBaseURL:          runtimeCfg.LLM.BaseURL,
		FetchTimeoutSeconds: runtimeCfg.FetchTimeoutSeconds,
		RateLimitRPS:        svcCfg.Server.RateLimit.RPS,
		Port:                servePort,
	})

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", servePort),
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return httpServer.ListenAndServe()
}
