package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talenta-labs/kampuskb/internal/core/domain"
)

func TestExtractFacultyTag(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected domain.FacultyTag
	}{
		{
			name:     "valid chunks URI",
			uri:      "kampuskb://faculties/fsktm/chunks",
			expected: domain.FacultyFSKTM,
		},
		{
			name:     "uppercase tag is normalised",
			uri:      "kampuskb://faculties/FKEE/chunks",
			expected: domain.FacultyFKEE,
		},
		{
			name:     "invalid prefix",
			uri:      "file://faculties/fsktm/chunks",
			expected: domain.FacultyTag(""),
		},
		{
			name:     "missing chunks suffix",
			uri:      "kampuskb://faculties/fsktm",
			expected: domain.FacultyTag(""),
		},
		{
			name:     "empty URI",
			uri:      "",
			expected: domain.FacultyTag(""),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := extractFacultyTag(tt.uri)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestExtractChunkRef(t *testing.T) {
	tests := []struct {
		name        string
		uri         string
		expectedTag domain.FacultyTag
		expectedID  string
	}{
		{
			name:        "valid chunk URI",
			uri:         "kampuskb://chunks/fsktm/staff_0",
			expectedTag: domain.FacultyFSKTM,
			expectedID:  "staff_0",
		},
		{
			name:        "invalid prefix",
			uri:         "file://chunks/fsktm/staff_0",
			expectedTag: domain.FacultyTag(""),
			expectedID:  "",
		},
		{
			name:        "missing chunk id",
			uri:         "kampuskb://chunks/fsktm",
			expectedTag: domain.FacultyTag(""),
			expectedID:  "",
		},
		{
			name:        "empty URI",
			uri:         "",
			expectedTag: domain.FacultyTag(""),
			expectedID:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag, id := extractChunkRef(tt.uri)
			assert.Equal(t, tt.expectedTag, tag)
			assert.Equal(t, tt.expectedID, id)
		})
	}
}

func TestServer_HandleFacultiesResource(t *testing.T) {
	server := newTestServer(t)
	req := &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: "kampuskb://faculties"},
	}

	result, err := server.handleFacultiesResource(context.Background(), req)

	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	assert.Equal(t, "application/json", result.Contents[0].MIMEType)

	var infos []struct {
		Tag         string `json:"tag"`
		Description string `json:"description"`
	}
	require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &infos))

	tags := make([]string, len(infos))
	for i, info := range infos {
		tags[i] = info.Tag
	}
	assert.Contains(t, tags, "fsktm")
	assert.Contains(t, tags, "fkaab")
	assert.Contains(t, tags, "fkee")
}

func TestServer_HandleChunksResource(t *testing.T) {
	server := newTestServer(t)
	req := &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: "kampuskb://faculties/fsktm/chunks"},
	}

	result, err := server.handleChunksResource(context.Background(), req)

	require.NoError(t, err)
	require.Len(t, result.Contents, 1)

	var infos []struct {
		ID       string `json:"id"`
		Category string `json:"category"`
	}
	require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &infos))
	assert.NotEmpty(t, infos)
	for _, info := range infos {
		assert.NotEmpty(t, info.ID)
		assert.NotEmpty(t, info.Category)
	}
}

func TestServer_HandleChunksResource_UnknownFaculty(t *testing.T) {
	server := newTestServer(t)
	req := &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: "kampuskb://faculties/fizik/chunks"},
	}

	_, err := server.handleChunksResource(context.Background(), req)

	assert.Error(t, err)
}

func TestServer_HandleChunkContentResource(t *testing.T) {
	server := newTestServer(t)
	ctx := context.Background()

	// Resolve a real chunk id through the listing first.
	chunks := server.ports.Retrieval.FacultyChunks(ctx, domain.FacultyFSKTM)
	require.NotEmpty(t, chunks)

	uri := "kampuskb://chunks/fsktm/" + chunks[0].ID
	req := &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: uri},
	}

	result, err := server.handleChunkContentResource(ctx, req)

	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	assert.Equal(t, "text/plain", result.Contents[0].MIMEType)
	assert.Equal(t, chunks[0].Content, result.Contents[0].Text)
}

func TestServer_HandleChunkContentResource_UnknownChunk(t *testing.T) {
	server := newTestServer(t)
	req := &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: "kampuskb://chunks/fsktm/no_such_chunk"},
	}

	_, err := server.handleChunkContentResource(context.Background(), req)

	assert.Error(t, err)
}
