package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0666))
	return path
}

func TestLoad(t *testing.T) {
	//** Arrange
	path := writeConfig(t, `{"mode": "board", "format": "dimacs", "indent": true}`)

	//** Act
	config, err := Load(path)

	//** Assert
	require.NoError(t, err)
	assert.Equal(t, Config{Mode: ModeBoard, Format: FormatDIMACS, Indent: true}, config)
}

func TestLoadKeepsDefaults(t *testing.T) {
	config, err := Load(writeConfig(t, `{"indent": true}`))

	require.NoError(t, err)
	assert.Equal(t, Config{Mode: ModeFlat, Format: FormatJSON, Indent: true}, config)
}

func TestLoadNormalizesCase(t *testing.T) {
	config, err := Load(writeConfig(t, `{"mode": "Board", "format": " DIMACS "}`))

	require.NoError(t, err)
	assert.Equal(t, Config{Mode: ModeBoard, Format: FormatDIMACS}, config)
}

func TestLoadErrors(t *testing.T) {
	for _, content := range []string{
		`not json`,
		`{"mode": "cube"}`,
		`{"format": "xml"}`,
		`{"mode": 3}`,
		`{"solver": "kissat"}`,
	} {
		_, err := Load(writeConfig(t, content))
		assert.Error(t, err, content)
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Default().Validate())
	assert.Error(t, Config{Mode: ModeBoard}.Validate())
	assert.Error(t, Config{Format: FormatJSON}.Validate())
	assert.NoError(t, Config{Mode: "FLAT", Format: "Json"}.Normalize().Validate())
}
