// Package extractor turns a built prompt context into a bounded list of task
// drafts via the language model. It is the fail-soft stage of the pipeline:
// provider errors and malformed output are logged and degrade to "no tasks
// found", never to an error the orchestrator has to handle.
package extractor

import (
	"context"
	"encoding/json"
	"strings"

	"smart-life-agent/internal/logger"
	"smart-life-agent/internal/model"
	"smart-life-agent/internal/prompt"
)

// MaxTasks is the hard cap on drafts returned per extraction, enforced both
// by prompt instruction and by truncation here.
const MaxTasks = 5

const systemInstruction = "You are a smart task extraction assistant. " +
	"You create tasks ONLY from emails that match specific keywords. " +
	"Be selective: quality over quantity. Always respond with valid JSON only."

// Low temperature biases the model toward literal schema compliance; the
// parse step still tolerates anything it sends back.
const (
	extractionTemperature = 0.2
	extractionMaxTokens   = 1500
)

// CompletionClient is the single-call language-model collaborator.
type CompletionClient interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, temperature float64, maxTokens int) (string, error)
}

type Extractor struct {
	client CompletionClient
	logger *logger.Logger
}

func New(client CompletionClient, logger *logger.Logger) *Extractor {
	return &Extractor{
		client: client,
		logger: logger,
	}
}

// Extract sends one model request for the given context and returns at most
// MaxTasks drafts. Any failure (transport, non-JSON output, JSON that is not
// an array) yields an empty result.
func (e *Extractor) Extract(ctx context.Context, promptContext *prompt.Context) []model.TaskDraft {
	raw, err := e.client.Complete(ctx, systemInstruction, promptContext.Render(), extractionTemperature, extractionMaxTokens)
	if err != nil {
		e.logger.Error("AI task extraction failed:", err)
		return nil
	}

	content := stripCodeFence(raw)

	var drafts []model.TaskDraft
	if err := json.Unmarshal([]byte(content), &drafts); err != nil {
		e.logger.Error("Failed to parse AI response as JSON task array:", err)
		return nil
	}

	if len(drafts) > MaxTasks {
		drafts = drafts[:MaxTasks]
	}
	return drafts
}

// stripCodeFence removes a leading/trailing markdown code fence, which some
// models wrap around JSON despite being told not to.
func stripCodeFence(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}

	if idx := strings.Index(content, "\n"); idx >= 0 {
		content = content[idx+1:]
	}
	if idx := strings.LastIndex(content, "```"); idx >= 0 {
		content = content[:idx]
	}
	return strings.TrimSpace(content)
}
