package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tesso57/numpick/internal/domain/selection"
)

func TestRun_Compress(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"compress", "9", "5", "6", "1", "2", "3", "3"}, &out))
	assert.Equal(t, "1-3, 5-6, 9\n", out.String())
}

func TestRun_CompressNothing(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"compress"}, &out))
	assert.Equal(t, "\n", out.String())
}

func TestRun_Expand(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"expand", "1-3, 5"}, &out))
	assert.Equal(t, "1\n2\n3\n5\n", out.String())
}

func TestRun_ExpandReversedRange(t *testing.T) {
	err := run([]string{"expand", "5-3"}, &bytes.Buffer{})
	require.Error(t, err)
	assert.ErrorIs(t, err, selection.ErrReversedRange)
}

func TestRun_Card(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	out := filepath.Join(dir, "card.pdf")

	var stdout bytes.Buffer
	require.NoError(t, run([]string{"--config", cfgPath, "card", "--out", out, "1-3, 5"}, &stdout))

	assert.True(t, strings.HasPrefix(stdout.String(), out+" ("))
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))

	_, err = os.Stat(cfgPath)
	assert.NoError(t, err, "default config should be written")
}

func TestRun_Fit(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")

	var short bytes.Buffer
	require.NoError(t, run([]string{"--config", cfgPath, "fit", "1-3"}, &short))
	shortSize, err := strconv.Atoi(strings.TrimSpace(short.String()))
	require.NoError(t, err)
	assert.Equal(t, 48, shortSize)

	var long bytes.Buffer
	text := strings.Repeat("1, 3, 5, 7, 9, ", 8)
	require.NoError(t, run([]string{"--config", cfgPath, "fit", "--min", "6", "--max", "40", text}, &long))
	longSize, err := strconv.Atoi(strings.TrimSpace(long.String()))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, longSize, 6)
	assert.Less(t, longSize, 40)
}

func TestRun_UnknownCommand(t *testing.T) {
	assert.Error(t, run([]string{"frobnicate"}, &bytes.Buffer{}))
}
