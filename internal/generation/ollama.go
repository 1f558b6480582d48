package generation

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/lifeos/internal/domain"
	"github.com/alexanderramin/lifeos/internal/llm"
)

const planSystemPrompt = "You generate developmental daily tasks for children aged 0-21. " +
	"You always answer with a STRICT JSON array and nothing else."

// OllamaGenerator delegates task generation to a local language model. The
// model's output is untrusted and validated structurally before use.
type OllamaGenerator struct {
	client llm.LLMClient
}

// NewOllamaGenerator creates the live generator variant on top of an LLM client.
func NewOllamaGenerator(client llm.LLMClient) *OllamaGenerator {
	return &OllamaGenerator{client: client}
}

func (g *OllamaGenerator) Name() string { return "ollama" }

func (g *OllamaGenerator) Generate(ctx context.Context, age int, parentPriority string, strategy domain.GenerationStrategy) ([]domain.RawTask, error) {
	taskCount := len(strategy.TargetPillars)

	resp, err := g.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskPlanGenerate,
		SystemPrompt: planSystemPrompt,
		UserPrompt:   buildPlanPrompt(age, parentPriority, strategy),
	})
	if err != nil {
		return nil, fmt.Errorf("llm plan generation failed: %w", err)
	}

	tasks, err := llm.ExtractJSONArray[domain.RawTask](resp.Text, planResponseValidator(taskCount))
	if err != nil {
		return nil, fmt.Errorf("failed to extract task array: %w", err)
	}
	return tasks, nil
}

func buildPlanPrompt(age int, parentPriority string, strategy domain.GenerationStrategy) string {
	var b strings.Builder

	pillars := make([]string, len(strategy.TargetPillars))
	for i, p := range strategy.TargetPillars {
		pillars[i] = string(p)
	}

	fmt.Fprintf(&b, "Child age: %d. Parent priority: %s.\n", age, parentPriority)
	fmt.Fprintf(&b, "Generate %d tasks for pillars in this exact order: %s.\n",
		len(pillars), strings.Join(pillars, ", "))
	fmt.Fprintf(&b, "Difficulty bias: %d (1=harder, -1=easier). Duration scale: %g.\n",
		strategy.DifficultyBias, strategy.DurationScale)
	if strategy.LowPillar != nil {
		fmt.Fprintf(&b, "Low pillar to emphasize: %s.\n", *strategy.LowPillar)
	}
	b.WriteString("Return a STRICT JSON array with objects that include keys: ")
	b.WriteString("pillar, title, description, duration_minutes, difficulty_level. ")
	b.WriteString("difficulty_level must be one of easy|medium|hard.")

	return b.String()
}

func planResponseValidator(taskCount int) llm.SchemaValidator[[]domain.RawTask] {
	return func(tasks []domain.RawTask) error {
		if len(tasks) != taskCount {
			return fmt.Errorf("expected %d tasks, got %d", taskCount, len(tasks))
		}
		for i, task := range tasks {
			if err := task.Validate(); err != nil {
				return fmt.Errorf("task %d: %w", i, err)
			}
		}
		return nil
	}
}
