// Package ai provides the bio generation providers. Exactly one provider is
// active per process, selected by configuration at startup; there is no
// runtime switching.
package ai

import (
	"context"

	"github.com/adrianlim83/person-finder/pkg/config"
	"github.com/adrianlim83/person-finder/pkg/logger"
)

// Supported provider names for the AI_PROVIDER setting.
const (
	ProviderMock   = "mock"
	ProviderOpenAI = "openai"
)

// BioProvider generates a short descriptive bio from a job title and a hobby
// list. Callers must not pass personally identifying fields; only the job
// title and hobbies cross this boundary.
type BioProvider interface {
	GenerateBio(ctx context.Context, jobTitle string, hobbies []string) (string, error)
}

// NewBioProvider creates the bio provider selected by config. Unknown
// provider names fall back to the mock.
func NewBioProvider(cfg config.AIConfig) BioProvider {
	switch cfg.Provider {
	case ProviderOpenAI:
		return NewOpenAIBioProvider(cfg)
	case "", ProviderMock:
		return NewMockBioProvider()
	default:
		logger.Warnf("Unknown AI provider %q, using mock", cfg.Provider)
		return NewMockBioProvider()
	}
}
