package mcp

import "errors"

// ErrMissingRetrievalService indicates the MCP server was constructed
// without a retrieval service.
var ErrMissingRetrievalService = errors.New("mcp: retrieval service is required")
