package identify

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Contains(t, cfg.SkipSheets, "TFs")
	assert.Contains(t, cfg.InvalidIDs, "multiple charge")
	assert.Equal(t, "ECOLI", cfg.EcoCyc.Organism)
	assert.Equal(t, 30*time.Second, cfg.EcoCyc.Timeout())
	assert.Equal(t, "hmdb_metabolites.zip", cfg.HMDB.File)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
skip_sheets: [Notes]
ecocyc:
  organism: HUMAN
  timeout_seconds: 5
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Notes"}, cfg.SkipSheets)
	assert.Equal(t, "HUMAN", cfg.EcoCyc.Organism)
	assert.Equal(t, 5*time.Second, cfg.EcoCyc.Timeout())
	// Omitted keys keep their defaults.
	assert.Equal(t, "https://websvc.biocyc.org/getxml", cfg.EcoCyc.Endpoint)
	assert.Contains(t, cfg.InvalidIDs, "nan")
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
