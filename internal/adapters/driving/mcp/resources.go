package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/talenta-labs/kampuskb/internal/core/domain"
)

// uriScheme is the custom URI scheme for KampusKB resources.
const uriScheme = "kampuskb://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource listing the faculties with a loadable corpus.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "faculties",
		Name:        "faculties",
		Description: "Faculties with a retrievable knowledge corpus",
		MIMEType:    "application/json",
	}, s.handleFacultiesResource)

	// Template for a faculty's chunk set.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "faculties/{facultyTag}/chunks",
		Name:        "faculty-chunks",
		Description: "Document chunks derived from a faculty's corpus",
		MIMEType:    "application/json",
	}, s.handleChunksResource)

	// Template for a single chunk's content.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "chunks/{facultyTag}/{chunkId}",
		Name:        "chunk-content",
		Description: "Formatted text content of a single document chunk",
		MIMEType:    "text/plain",
	}, s.handleChunkContentResource)
}

// handleFacultiesResource returns the list of concrete faculties.
func (s *Server) handleFacultiesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	type facultyInfo struct {
		Tag         string `json:"tag"`
		Description string `json:"description"`
	}

	tags := domain.ConcreteFaculties()
	infos := make([]facultyInfo, len(tags))
	for i, tag := range tags {
		infos[i] = facultyInfo{
			Tag:         string(tag),
			Description: tag.Description(),
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling faculties: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleChunksResource returns the chunk set for a faculty.
func (s *Server) handleChunksResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	tag := extractFacultyTag(req.Params.URI)
	if !tag.IsConcrete() {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	chunks := s.ports.Retrieval.FacultyChunks(ctx, tag)

	type chunkInfo struct {
		ID       string   `json:"id"`
		Category string   `json:"category"`
		Keywords []string `json:"keywords,omitempty"`
	}

	infos := make([]chunkInfo, len(chunks))
	for i := range chunks {
		infos[i] = chunkInfo{
			ID:       chunks[i].ID,
			Category: chunks[i].Category.String(),
			Keywords: chunks[i].Keywords,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling chunks: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleChunkContentResource returns the content of a single chunk.
func (s *Server) handleChunkContentResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	tag, chunkID := extractChunkRef(req.Params.URI)
	if !tag.IsConcrete() || chunkID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	for _, chunk := range s.ports.Retrieval.FacultyChunks(ctx, tag) {
		if chunk.ID == chunkID {
			return &mcp.ReadResourceResult{
				Contents: []*mcp.ResourceContents{{
					URI:      req.Params.URI,
					MIMEType: "text/plain",
					Text:     chunk.Content,
				}},
			}, nil
		}
	}

	return nil, mcp.ResourceNotFoundError(req.Params.URI)
}

// extractFacultyTag extracts the faculty tag from a URI like
// kampuskb://faculties/{facultyTag}/chunks.
func extractFacultyTag(uri string) domain.FacultyTag {
	const prefix = uriScheme + "faculties/"
	const suffix = "/chunks"

	if !strings.HasPrefix(uri, prefix) || !strings.HasSuffix(uri, suffix) {
		return domain.FacultyTag("")
	}

	tag := strings.TrimSuffix(strings.TrimPrefix(uri, prefix), suffix)
	return domain.FacultyTag(strings.ToLower(tag))
}

// extractChunkRef extracts the faculty tag and chunk id from a URI like
// kampuskb://chunks/{facultyTag}/{chunkId}.
func extractChunkRef(uri string) (domain.FacultyTag, string) {
	const prefix = uriScheme + "chunks/"

	if !strings.HasPrefix(uri, prefix) {
		return domain.FacultyTag(""), ""
	}

	parts := strings.SplitN(strings.TrimPrefix(uri, prefix), "/", 2)
	if len(parts) != 2 {
		return domain.FacultyTag(""), ""
	}

	return domain.FacultyTag(strings.ToLower(parts[0])), parts[1]
}
