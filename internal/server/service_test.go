package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadServiceConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadServiceConfig(filepath.Join(t.TempDir(), "service.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "PDF + Dynamic Titles API", cfg.Service.Name)
	assert.Greater(t, cfg.Server.RateLimit.RPS, 0.0)
}

func TestLoadServiceConfig_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "service.yaml")
	data := `service:
  name: Custom Blog API
server:
  cors_origins:
    - https://example.com
  rate_limit:
    rps: 3
    burst: 6
prompts:
  titles_instruction: Return exactly 3 titles.
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadServiceConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "Custom Blog API", cfg.Service.Name)
	assert.Equal(t, []string{"https://example.com"}, cfg.Server.CORSOrigins)
	assert.Equal(t, 3.0, cfg.Server.RateLimit.RPS)
	assert.Equal(t, 6, cfg.Server.RateLimit.Burst)
	assert.Equal(t, "Return exactly 3 titles.", cfg.Prompts.TitlesInstruction)
}

func TestLoadServiceConfig_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "service.yaml")
	require.NoError(t, os.WriteFile(path, []byte("service: ["), 0o644))
	_, err := LoadServiceConfig(path)
	assert.Error(t, err)
}
