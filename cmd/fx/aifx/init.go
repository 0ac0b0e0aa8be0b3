package aifx

import (
	"os"
	"strings"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"paisalocal/pkg/utils"
)

var Module = fx.Provide(ProvideDestinationGenerator)

// ProvideDestinationGenerator picks the generative provider from AI_PROVIDER
// (gemini by default). A missing key degrades search to local-only results
// instead of refusing to start.
func ProvideDestinationGenerator(logger *zap.Logger) utils.DestinationGeneratorInterface {
	provider := os.Getenv("AI_PROVIDER")
	if provider == "" {
		provider = "gemini"
	}

	switch strings.ToLower(provider) {
	case "openai":
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			logger.Warn("OPENAI_API_KEY not set, generative search disabled")
			return utils.UnavailableGenerator{}
		}
		return utils.NewOpenAIDestinationClient(apiKey, os.Getenv("OPENAI_MODEL"))
	default:
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			logger.Warn("GEMINI_API_KEY not set, generative search disabled")
			return utils.UnavailableGenerator{}
		}
		client, err := utils.NewGeminiDestinationClient(apiKey, os.Getenv("GEMINI_MODEL"))
		if err != nil {
			logger.Warn("Gemini client init failed, generative search disabled", zap.Error(err))
			return utils.UnavailableGenerator{}
		}
		return client
	}
}
