package config

import (
	"strings"
	"sync"

	"github.com/fadilmartias/useresume-gateway/internal/errors"
)

const (
	DefaultUseResumeBaseURL = "https://useresume.ai/api/v3"
	UseResumeKeyPrefix      = "ur_"
	useResumeKeyHint        = "Get your API key at https://useresume.ai/account/api-platform"
)

type UseResumeConfig struct {
	APIKey  string
	BaseURL string
}

var (
	useResumeConfig *UseResumeConfig
	useResumeOnce   sync.Once
)

func LoadUseResumeConfig() *UseResumeConfig {
	useResumeOnce.Do(func() {
		useResumeConfig = UseResumeConfigFromEnv()
	})
	return useResumeConfig
}

// UseResumeConfigFromEnv reads RESUME_API_KEY and RESUME_API_BASE_URL
// without caching.
func UseResumeConfigFromEnv() *UseResumeConfig {
	return &UseResumeConfig{
		APIKey:  strings.TrimSpace(getEnv("RESUME_API_KEY", "")),
		BaseURL: strings.TrimRight(getEnv("RESUME_API_BASE_URL", DefaultUseResumeBaseURL), "/"),
	}
}

// Validate checks the credential convention: present and prefixed "ur_".
func (c *UseResumeConfig) Validate() error {
	switch {
	case c.APIKey == "":
		return errors.NewConfigurationError(
			"RESUME_API_KEY environment variable is required. "+useResumeKeyHint, useResumeKeyHint)
	case !strings.HasPrefix(c.APIKey, UseResumeKeyPrefix):
		return errors.NewConfigurationError(
			`Invalid API key format. Key must start with "ur_". `+useResumeKeyHint, useResumeKeyHint)
	}
	return nil
}
