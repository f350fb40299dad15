package ai

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/educonnect/educonnect-api/pkg/config"
)

// FromConfig selects the client implementation at startup. The session
// layer only ever sees the Client interface.
func FromConfig(cfg config.AIConfig, logger *zap.Logger) (Client, error) {
	switch cfg.Provider {
	case config.AIProviderGemini:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("ai provider %q requires AI_API_KEY", cfg.Provider)
		}
		return NewGeminiClient(cfg, logger), nil
	case config.AIProviderStub, "":
		return NewStubClient(cfg.StubDelay), nil
	}
	return nil, fmt.Errorf("unknown ai provider %q", cfg.Provider)
}
