// Package gateway is the only component that talks to the external
// language model. It wraps an OpenAI-compatible client with the fixed
// financial-document system prompt and coerces structured replies into
// typed values. Calls are synchronous and retain no state between them;
// retry policy, if any, belongs to the caller's transport.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// systemPrompt frames every model call. Keeping it on the gateway means
// prompt builders only ever produce user messages.
const systemPrompt = `You are a professional financial document specialist with expertise in
generating credit memos and other financial documents. You always:
- Use precise financial language
- Ensure accurate calculations
- Follow standard business document formats
- Include all required legal and regulatory information
- Maintain professional tone`

// LLMGateway sends prompts to a language model. The model identifier is
// fixed at construction and reused for every call.
type LLMGateway struct {
	client Client
	model  string
}

// NewLLMGateway returns a gateway that sends every prompt to the given
// client using the given model identifier.
func NewLLMGateway(client Client, model string) *LLMGateway {
	return &LLMGateway{client: client, model: model}
}

// Generate sends the prompt and returns the raw reply text.
func (g *LLMGateway) Generate(ctx context.Context, prompt string) (string, error) {
	reply, err := g.client.Complete(ctx, g.model, systemPrompt, prompt)
	if err != nil {
		return "", fmt.Errorf("model call failed: %w", err)
	}
	return reply, nil
}

// GenerateStructured sends the prompt and unmarshals the reply's JSON
// object into out. Markdown fences and surrounding prose are tolerated;
// an uncoercible reply is an error.
func (g *LLMGateway) GenerateStructured(ctx context.Context, prompt string, out any) error {
	reply, err := g.Generate(ctx, prompt)
	if err != nil {
		return err
	}
	payload, err := extractJSON(reply)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(payload), out); err != nil {
		return fmt.Errorf("model returned malformed JSON: %w", err)
	}
	return nil
}

// extractJSON returns the first JSON object embedded in the reply,
// stripping markdown code fences and any text around the object.
func extractJSON(reply string) (string, error) {
	s := strings.TrimSpace(reply)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if i := strings.LastIndex(s, "```"); i >= 0 {
			s = s[:i]
		}
		s = strings.TrimSpace(s)
	}
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end < start {
		return "", fmt.Errorf("model reply contains no JSON object")
	}
	return s[start : end+1], nil
}
