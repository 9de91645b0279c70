package configs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadExternalBanks_EnvTriples(t *testing.T) {
	t.Setenv("VBANK_API_BASE", "http://vbank.example.com")
	t.Setenv("VBANK_API_TOKEN", "vbank-token")
	t.Setenv("VBANK_PRODUCT_AGREEMENT_CONSENT_ID", "consent-1")
	// abank has a base URL but no consent id, so it is unusable
	t.Setenv("ABANK_API_BASE", "http://abank.example.com")

	LoadEnvValues()

	require.Len(t, EXTERNAL_BANKS, 1)
	assert.Equal(t, "vbank", EXTERNAL_BANKS[0].Code)
	assert.Equal(t, "Virtual Bank", EXTERNAL_BANKS[0].DisplayName)
	assert.Equal(t, "vbank-token", EXTERNAL_BANKS[0].Token)
}

func TestLoadExternalBanks_YAMLFileAppendsWithoutOverriding(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "banks.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(`
banks:
  - code: vbank
    base_url: http://yaml-vbank.example.com
    consent_id: consent-yaml
  - code: pbank
    base_url: http://pbank.example.com
    consent_id: consent-2
  - code: broken
    base_url: http://broken.example.com
`), 0o644))

	t.Setenv("VBANK_API_BASE", "http://vbank.example.com")
	t.Setenv("VBANK_PRODUCT_AGREEMENT_CONSENT_ID", "consent-1")
	t.Setenv("EXTERNAL_BANKS_CONFIG_FILE", configPath)

	LoadEnvValues()

	require.Len(t, EXTERNAL_BANKS, 2)
	assert.Equal(t, "vbank", EXTERNAL_BANKS[0].Code)
	assert.Equal(t, "http://vbank.example.com", EXTERNAL_BANKS[0].BaseURL, "env-declared banks outrank YAML duplicates")
	assert.Equal(t, "pbank", EXTERNAL_BANKS[1].Code)
	assert.Equal(t, "pbank", EXTERNAL_BANKS[1].DisplayName, "display name defaults to the code")
}

func TestLoadExternalBanks_MissingFileIsTolerated(t *testing.T) {
	t.Setenv("EXTERNAL_BANKS_CONFIG_FILE", filepath.Join(t.TempDir(), "nope.yaml"))

	LoadEnvValues()

	assert.Empty(t, EXTERNAL_BANKS)
}
