package llm

import (
	"context"
)

// MockOracleClient is a configurable mock for testing oracle functionality.
// Set the function field to control behavior in tests.
type MockOracleClient struct {
	// AnalyzeFunc is called when Analyze is invoked.
	// If nil, returns empty string and nil error.
	AnalyzeFunc func(ctx context.Context, prompt string, systemMessage string) (string, error)

	// Model is returned by GetModel. Defaults to "mock-model".
	Model string

	// Endpoint is returned by GetEndpoint. Defaults to "http://mock-endpoint".
	Endpoint string

	// Call tracking for verification
	AnalyzeCalls int
	Prompts      []string
}

// NewMockOracleClient creates a new mock with sensible defaults.
func NewMockOracleClient() *MockOracleClient {
	return &MockOracleClient{
		Model:    "mock-model",
		Endpoint: "http://mock-endpoint",
	}
}

// Analyze implements OracleClient.
func (m *MockOracleClient) Analyze(ctx context.Context, prompt string, systemMessage string) (string, error) {
	m.AnalyzeCalls++
	m.Prompts = append(m.Prompts, prompt)
	if m.AnalyzeFunc != nil {
		return m.AnalyzeFunc(ctx, prompt, systemMessage)
	}
	return "", nil
}

// GetModel implements OracleClient.
func (m *MockOracleClient) GetModel() string {
	if m.Model == "" {
		return "mock-model"
	}
	return m.Model
}

// GetEndpoint implements OracleClient.
func (m *MockOracleClient) GetEndpoint() string {
	if m.Endpoint == "" {
		return "http://mock-endpoint"
	}
	return m.Endpoint
}

// Reset clears call tracking.
func (m *MockOracleClient) Reset() {
	m.AnalyzeCalls = 0
	m.Prompts = nil
}

// Ensure MockOracleClient implements OracleClient at compile time.
var _ OracleClient = (*MockOracleClient)(nil)
