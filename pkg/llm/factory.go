package llm

import (
	"fmt"

	"go.uber.org/zap"
)

// NewOracleClient creates the oracle client selected by cfg.Provider.
// Returns the OracleClient interface to enable dependency injection of mocks.
func NewOracleClient(cfg *Config, logger *zap.Logger) (OracleClient, error) {
	switch cfg.Provider {
	case "openai", "":
		client, err := NewClient(cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("create openai client: %w", err)
		}
		return client, nil
	case "anthropic":
		client, err := NewAnthropicClient(cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("create anthropic client: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown oracle provider: %s", cfg.Provider)
	}
}
