package generation

import (
	"context"

	"github.com/alexanderramin/lifeos/internal/domain"
	"github.com/alexanderramin/lifeos/internal/llm"
)

// ModelHintFallback explicitly selects the deterministic generator.
const ModelHintFallback = "fallback"

// TaskGenerator produces one raw task per pillar requested by the strategy.
// The returned sequence need not match the requested pillar order; the
// caller reconciles by pillar key.
type TaskGenerator interface {
	Generate(ctx context.Context, age int, parentPriority string, strategy domain.GenerationStrategy) ([]domain.RawTask, error)

	// Name identifies the variant for logging.
	Name() string
}

// Select resolves the generator variant. An explicit fallback hint always
// wins. Otherwise the live generator is used when the LLM backend is
// enabled, and the deterministic fallback when it is not. A live failure is
// never silently downgraded to the fallback.
func Select(modelHint string, llmCfg llm.LLMConfig, observer llm.Observer) TaskGenerator {
	if modelHint == ModelHintFallback {
		return NewStaticFallbackGenerator()
	}
	if llmCfg.Enabled {
		if modelHint != "" {
			llmCfg.Model = modelHint
		}
		return NewOllamaGenerator(llm.NewOllamaClient(llmCfg, observer))
	}
	return NewStaticFallbackGenerator()
}
