package aivideo

import (
	"github.com/clipcraft/shortvid-backend/internal/config"
	"github.com/clipcraft/shortvid-backend/pkg/logger"
)

const falProviderName = "fal"

// NewProvider selects a provider implementation from configuration. The
// composition root calls this once and hands the instance to whoever needs
// it. Generation never hard-fails on missing external configuration: any
// selection other than a fully configured fal backend falls back to the
// mock provider.
func NewProvider(cfg *config.AIConfig, log logger.Logger) Provider {
	if cfg.Provider == falProviderName {
		if cfg.FalKey != "" {
			return NewFalProvider(cfg.FalKey, cfg.FalBaseURL, log)
		}
		log.Warnf("fal provider requested but no api key configured, falling back to mock provider")
	}
	return NewMockProvider()
}
