package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/talenta-labs/kampuskb/internal/core/domain"
)

// DetectFacultyInput is the input for the detect_faculty tool.
type DetectFacultyInput struct {
	Query string `json:"query" jsonschema:"the user question to classify"`
}

// DetectFacultyOutput is the output for the detect_faculty tool.
type DetectFacultyOutput struct {
	Faculty     string `json:"faculty" jsonschema:"detected faculty tag (fsktm, fkaab, fkee, unclear or general)"`
	Description string `json:"description" jsonschema:"human readable name of the detected faculty"`
	CampusQuery bool   `json:"campus_query" jsonschema:"whether the question is about the university at all"`
}

// GetContextInput is the input for the get_context tool.
type GetContextInput struct {
	Query   string `json:"query" jsonschema:"the user question"`
	Faculty string `json:"faculty,omitempty" jsonschema:"faculty tag to scope the answer to; omit to auto-detect"`
}

// GetContextOutput is the output for the get_context tool.
type GetContextOutput struct {
	Faculty string `json:"faculty" jsonschema:"faculty the context was assembled for"`
	Context string `json:"context" jsonschema:"assembled knowledge context for the AI assistant"`
}

// SearchChunksInput is the input for the search_chunks tool.
type SearchChunksInput struct {
	Query     string `json:"query" jsonschema:"the search query"`
	Faculty   string `json:"faculty,omitempty" jsonschema:"faculty tag to search in; omit to auto-detect"`
	MaxChunks int    `json:"max_chunks,omitempty" jsonschema:"maximum number of chunks to return"`
}

// ChunkResult is a single chunk in the search_chunks output.
type ChunkResult struct {
	ID       string   `json:"id" jsonschema:"chunk identifier"`
	Category string   `json:"category" jsonschema:"chunk category"`
	Keywords []string `json:"keywords" jsonschema:"keywords attached to the chunk"`
	Content  string   `json:"content" jsonschema:"chunk content"`
}

// SearchChunksOutput is the output for the search_chunks tool.
type SearchChunksOutput struct {
	Faculty string        `json:"faculty" jsonschema:"faculty the chunks were retrieved from"`
	Chunks  []ChunkResult `json:"chunks" jsonschema:"chunks ranked by relevance"`
}

func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "detect_faculty",
		Description: "Classify a question as belonging to one of the UTHM faculties (FSKTM, FKAAB, FKEE), or mark it as unclear or general.",
	}, s.handleDetectFaculty)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_context",
		Description: "Assemble a knowledge context for a question, ready to be injected into an AI assistant prompt. Detects the faculty automatically when none is given.",
	}, s.handleGetContext)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_chunks",
		Description: "Search the faculty knowledge base and return the most relevant chunks for a query.",
	}, s.handleSearchChunks)
}

func (s *Server) handleDetectFaculty(_ context.Context, _ *mcp.CallToolRequest, input DetectFacultyInput) (*mcp.CallToolResult, DetectFacultyOutput, error) {
	faculty := s.ports.Retrieval.DetectFaculty(input.Query)

	return nil, DetectFacultyOutput{
		Faculty:     faculty.String(),
		Description: faculty.Description(),
		CampusQuery: s.ports.Retrieval.IsFacultyQuery(input.Query),
	}, nil
}

func (s *Server) handleGetContext(ctx context.Context, _ *mcp.CallToolRequest, input GetContextInput) (*mcp.CallToolResult, GetContextOutput, error) {
	faculty := domain.FacultyTag(input.Faculty)
	if input.Faculty == "" {
		faculty = s.ports.Retrieval.DetectFaculty(input.Query)
	}

	return nil, GetContextOutput{
		Faculty: faculty.String(),
		Context: s.ports.Retrieval.ContextForAI(ctx, faculty, input.Query),
	}, nil
}

func (s *Server) handleSearchChunks(ctx context.Context, _ *mcp.CallToolRequest, input SearchChunksInput) (*mcp.CallToolResult, SearchChunksOutput, error) {
	faculty := domain.FacultyTag(input.Faculty)
	if input.Faculty == "" {
		faculty = s.ports.Retrieval.DetectFaculty(input.Query)
	}

	chunks := s.ports.Retrieval.RelevantChunks(ctx, faculty, input.Query, input.MaxChunks)

	results := make([]ChunkResult, 0, len(chunks))
	for _, c := range chunks {
		results = append(results, ChunkResult{
			ID:       c.ID,
			Category: c.Category.String(),
			Keywords: c.Keywords,
			Content:  c.Content,
		})
	}

	return nil, SearchChunksOutput{
		Faculty: faculty.String(),
		Chunks:  results,
	}, nil
}
