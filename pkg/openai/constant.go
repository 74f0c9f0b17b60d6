package openai

import "time"

const (
	ProviderOpenAI   = "openai"
	ProviderDeepSeek = "deepseek"
	ProviderQwen     = "qwen"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	roleSystem = "system"
	toolType   = "function"
)

// defaults holds the base URL and model used when the config leaves them empty.
var defaults = map[string]struct {
	baseURL string
	model   string
}{
	ProviderOpenAI:   {baseURL: "https://api.openai.com/v1", model: "gpt-4o-mini"},
	ProviderDeepSeek: {baseURL: "https://api.deepseek.com/v1", model: "deepseek-chat"},
	ProviderQwen:     {baseURL: "https://dashscope-intl.aliyuncs.com/compatible-mode/v1", model: "qwen-plus"},
}
