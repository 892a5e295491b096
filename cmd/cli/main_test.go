package main

import (
	"encoding/json"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/limaJavier/sudokucnf/internal/config"
	"github.com/limaJavier/sudokucnf/pkg/cnf"
	"github.com/limaJavier/sudokucnf/pkg/sat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunFlatJSON(t *testing.T) {
	//** Arrange
	outFile := filepath.Join(t.TempDir(), "out.json")

	//** Act
	variables, clauses, err := run(config.Default(), 3, outFile)

	//** Assert
	require.NoError(t, err)
	assert.Equal(t, uint64(9), variables)
	assert.Equal(t, 21, clauses)

	content, err := os.ReadFile(outFile)
	require.NoError(t, err)
	var formula cnf.CNF[int]
	require.NoError(t, json.Unmarshal(content, &formula))
	expected, err := cnf.EncodeExactOne([]int{0, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, expected, formula)
	assert.True(t, strings.HasPrefix(string(content), "[[[1,0],[2,0],[3,0]],"))
}

func TestRunBoardDIMACS(t *testing.T) {
	//** Arrange
	outFile := filepath.Join(t.TempDir(), "board.cnf")
	cfg := config.Config{Mode: config.ModeBoard, Format: config.FormatDIMACS}

	//** Act
	variables, clauses, err := run(cfg, 9, outFile)

	//** Assert
	require.NoError(t, err)
	assert.Equal(t, uint64(729), variables)
	assert.Equal(t, 17739, clauses)

	file, err := os.Open(outFile)
	require.NoError(t, err)
	defer file.Close()
	instance, err := sat.ParseDIMACS(file)
	require.NoError(t, err)
	assert.Equal(t, uint64(729), instance.Variables)
	assert.Len(t, instance.Clauses, 17739)
}

func TestRunIndentedJSON(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "out.json")
	cfg := config.Config{Mode: config.ModeFlat, Format: config.FormatJSON, Indent: true}

	_, _, err := run(cfg, 2, outFile)

	require.NoError(t, err)
	content, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "\n  ")
	var formula cnf.CNF[int]
	require.NoError(t, json.Unmarshal(content, &formula))
	assert.Len(t, formula, cnf.Count(2))
}

func TestRunErrors(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "out.json")

	_, _, err := run(config.Default(), 0, outFile)
	assert.ErrorIs(t, err, cnf.ErrEmptyGroup)

	_, _, err = run(config.Config{Mode: config.ModeBoard, Format: config.FormatJSON}, 6, outFile)
	assert.ErrorIs(t, err, cnf.ErrNonSquareBoard)

	_, _, err = run(config.Config{Mode: "cube", Format: config.FormatJSON}, 3, outFile)
	assert.Error(t, err)

	_, _, err = run(config.Config{Mode: config.ModeFlat, Format: "xml"}, 3, outFile)
	assert.Error(t, err)

	// Nothing is written when encoding fails
	_, statErr := os.Stat(outFile)
	assert.True(t, os.IsNotExist(statErr))

	_, _, err = run(config.Default(), 2, filepath.Join(t.TempDir(), "missing", "out.json"))
	assert.Error(t, err)
}

func TestRunTooLarge(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "out.json")

	_, _, err := run(config.Default(), 60000, outFile)
	assert.ErrorIs(t, err, cnf.ErrGroupTooLarge)

	_, _, err = run(config.Config{Mode: config.ModeBoard, Format: config.FormatDIMACS}, 60000, outFile)
	assert.ErrorIs(t, err, cnf.ErrGroupTooLarge)

	_, statErr := os.Stat(outFile)
	assert.True(t, os.IsNotExist(statErr))
}

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("cnfgen", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0666))
	return path
}

func TestParseArgs(t *testing.T) {
	configPath := writeConfig(t, `{"mode": "board", "format": "dimacs", "indent": true}`)

	t.Run("Defaults", func(t *testing.T) {
		cfg, count, outFile, err := parseArgs(newFlagSet(), []string{"9", "out.json"})

		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
		assert.Equal(t, 9, count)
		assert.Equal(t, "out.json", outFile)
	})

	t.Run("Config file without flags", func(t *testing.T) {
		cfg, _, _, err := parseArgs(newFlagSet(), []string{"-config", configPath, "4", "out.cnf"})

		require.NoError(t, err)
		assert.Equal(t, config.Config{Mode: config.ModeBoard, Format: config.FormatDIMACS, Indent: true}, cfg)
	})

	t.Run("Explicit flags override the config file", func(t *testing.T) {
		cfg, _, _, err := parseArgs(newFlagSet(), []string{"-config", configPath, "-mode", "flat", "-indent=false", "4", "out.cnf"})

		require.NoError(t, err)
		assert.Equal(t, config.Config{Mode: config.ModeFlat, Format: config.FormatDIMACS, Indent: false}, cfg)
	})

	t.Run("Flag values are case insensitive", func(t *testing.T) {
		cfg, _, _, err := parseArgs(newFlagSet(), []string{"-mode", "Board", "-format", "DIMACS", "9", "out.cnf"})

		require.NoError(t, err)
		assert.Equal(t, config.ModeBoard, cfg.Mode)
		assert.Equal(t, config.FormatDIMACS, cfg.Format)
	})

	t.Run("Wrong positional argument count", func(t *testing.T) {
		for _, args := range [][]string{{}, {"9"}, {"9", "out.json", "extra"}, {"-mode", "board", "9"}} {
			_, _, _, err := parseArgs(newFlagSet(), args)
			require.Error(t, err, args)
			assert.Contains(t, err.Error(), usage, args)
		}
	})

	t.Run("Invalid values", func(t *testing.T) {
		for _, args := range [][]string{
			{"-1", "out.json"},
			{"nine", "out.json"},
			{"-mode", "cube", "9", "out.json"},
			{"-format", "xml", "9", "out.json"},
			{"-solver", "kissat", "9", "out.json"},
			{"-config", filepath.Join(t.TempDir(), "missing.json"), "9", "out.json"},
		} {
			_, _, _, err := parseArgs(newFlagSet(), args)
			assert.Error(t, err, args)
		}
	})
}
