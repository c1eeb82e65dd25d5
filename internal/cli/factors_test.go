package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactorsListsDefaults(t *testing.T) {
	out, err := execute(t, "factors")
	require.NoError(t, err)

	assert.Contains(t, out, "diesel")
	assert.Contains(t, out, "electricity")
	assert.Contains(t, out, "R410A")
	assert.Contains(t, out, "S1")
}

func TestFactorsWithConfigOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "carbontally.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
factors:
  - category: fuel
    item: petrol
    unit: L
    value: 2.31
    scope: S1
`), 0600))

	out, err := execute(t, "factors", "--config", path)
	require.NoError(t, err)

	// The factors list is replaced wholesale by the config section.
	assert.Contains(t, out, "petrol")
	assert.NotContains(t, out, "diesel")
}
