package techniques

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedCatalog(t *testing.T) {
	lib, err := Load("")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, lib.Len(), 10)

	def := lib.Lookup("cognitive_restructuring")
	require.NotNil(t, def)
	assert.Equal(t, "Cognitive Restructuring", def.Name)
	assert.NotEmpty(t, def.Definition)
}

func TestLookupUnknownReturnsNil(t *testing.T) {
	lib, err := Load("")
	require.NoError(t, err)

	assert.Nil(t, lib.Lookup("narrative_therapy"))
	assert.Nil(t, lib.Lookup(""))
}

func TestFileOverlayAddsAndOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
techniques:
  narrative_therapy:
    name: Narrative Therapy
    definition: Re-authoring the stories patients tell about their lives.
  psychoeducation:
    name: Psychoeducation (Clinic Variant)
    definition: Clinic-specific teaching protocol.
`), 0o644))

	lib, err := Load(path)
	require.NoError(t, err)

	added := lib.Lookup("narrative_therapy")
	require.NotNil(t, added)
	assert.Equal(t, "Narrative Therapy", added.Name)

	overridden := lib.Lookup("psychoeducation")
	require.NotNil(t, overridden)
	assert.Equal(t, "Psychoeducation (Clinic Variant)", overridden.Name)
}

func TestLoadRejectsIncompleteEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
techniques:
  broken:
    name: Missing Definition
`), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}
