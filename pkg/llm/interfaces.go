// Package llm provides clients for the external reasoning service that
// judges dropout risk.
package llm

import (
	"context"
)

// OracleClient is the capability interface for the external reasoning
// service: one prompt in, free-form text out. Use this interface for
// dependency injection to enable deterministic stubs in tests.
type OracleClient interface {
	// Analyze sends a single prompt with a system framing message and
	// returns the service's raw text response. Each call is an isolated
	// request/response pair; no conversational state is shared between
	// analyses.
	Analyze(ctx context.Context, prompt string, systemMessage string) (string, error)

	// GetModel returns the configured model name.
	GetModel() string

	// GetEndpoint returns the configured endpoint.
	GetEndpoint() string
}

// Ensure both clients implement OracleClient at compile time.
var (
	_ OracleClient = (*Client)(nil)
	_ OracleClient = (*AnthropicClient)(nil)
)
