package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talenta-labs/kampuskb/internal/core/domain"
)

func TestChunksCmd_Executes(t *testing.T) {
	setupTestService(t)
	defer func() { chunksFaculty = "" }()

	out, err := executeCommand(t, "chunks", "siapa pensyarah perisian", "--faculty", "fsktm")

	require.NoError(t, err)
	assert.Contains(t, out, "staff_")
}

func TestChunksCmd_NoMatches(t *testing.T) {
	setupTestService(t)
	defer func() { chunksFaculty = "" }()

	out, err := executeCommand(t, "chunks", "zzzqqq", "--faculty", "fsktm")

	require.NoError(t, err)
	assert.Contains(t, out, "No matching chunks.")
}

func TestChunksCmd_JSONRespectsLimit(t *testing.T) {
	setupTestService(t)
	defer func() {
		chunksJSON = false
		chunksFaculty = ""
		chunksLimit = domain.DefaultMaxChunks
	}()

	out, err := executeCommand(t, "chunks", "pensyarah", "--faculty", "fsktm", "--limit", "2", "--json")

	require.NoError(t, err)
	var result []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.LessOrEqual(t, len(result), 2)
	assert.NotEmpty(t, result)
	for _, chunk := range result {
		assert.NotEmpty(t, chunk["id"])
		assert.NotEmpty(t, chunk["category"])
	}
}

func TestChunksCmd_UnknownFaculty(t *testing.T) {
	setupTestService(t)
	defer func() { chunksFaculty = "" }()

	_, err := executeCommand(t, "chunks", "pensyarah", "--faculty", "xyz")

	assert.Error(t, err)
}

func TestExpandCmd_Executes(t *testing.T) {
	setupTestService(t)

	out, err := executeCommand(t, "expand", "siapa pensyarah")

	require.NoError(t, err)
	assert.Contains(t, out, "siapa pensyarah")
	assert.Contains(t, out, "lecturer")
}

func TestVersionCmd_Executes(t *testing.T) {
	setupTestService(t)

	originalVersion := version
	version = "test-version-1.0.0"
	defer func() { version = originalVersion }()

	out, err := executeCommand(t, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "kampuskb version test-version-1.0.0")
}
