// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package cmd

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/microsoft/seqgen/internal/sequence"
)

func init() {
	log.Logger = log.Logger.Level(zerolog.ErrorLevel)
}

func runCommand(t *testing.T, args ...string) error {
	t.Helper()
	cmd := NewRootCommand("test")
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	return cmd.Execute()
}

func generateToFile(t *testing.T, size string) []byte {
	t.Helper()
	path := filepath.Join(t.TempDir(), "out.bin")
	require.NoError(t, runCommand(t, size, "-o", path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return data
}

func TestGenerate(t *testing.T) {
	assert.Equal(t, []byte{1, 0, 0, 0, 2, 0, 0, 0, 3, 0}, generateToFile(t, "10"))
	assert.Empty(t, generateToFile(t, "0"))
}

func TestSizeParsing(t *testing.T) {
	o1 := generateToFile(t, "1K")
	o2 := generateToFile(t, "1KB")
	o3 := generateToFile(t, "1KiB")
	o4 := generateToFile(t, "1024")

	assert.Equal(t, o1, o2)
	assert.Equal(t, o2, o3)
	assert.Equal(t, o3, o4)
	assert.Len(t, o1, 1024)
}

func TestMissingSizeArgument(t *testing.T) {
	err := runCommand(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "one size positional argument is required")
}

func TestUnexpectedExtraArguments(t *testing.T) {
	err := runCommand(t, "10", "20")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected positional arguments")
}

func TestMalformedSize(t *testing.T) {
	assert.Error(t, runCommand(t, "tenbytes"))
}

func TestNegativeSize(t *testing.T) {
	assert.Error(t, runCommand(t, "--", "-10"))
}

func TestSizeBeyondCounterRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.bin")
	err := runCommand(t, "17179869181", "-o", path)
	assert.ErrorIs(t, err, sequence.ErrCountTooLarge)
}
