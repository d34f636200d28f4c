package advisory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"aperture_studio/internal/domain/entities"
	"aperture_studio/internal/usecase/interfaces"

	openai "github.com/sashabaranov/go-openai"
)

var ErrMissingOpenAIAPIKey = errors.New("missing OPENAI_API_KEY")

const systemPrompt = `You are a pricing analyst for a photography studio. ` +
	`Given a change order and a rule-based cost estimate, suggest refinements. ` +
	`Respond with a JSON object: {"adjusted_total": number|null, "adjustment_reason": string, ` +
	`"hidden_costs": [{"category": "time"|"travel"|"equipment"|"vendor"|"overhead", ` +
	`"description": string, "amount": number, "justification": string}], ` +
	`"confidence_score": number|null}. Omit or null any field you have no basis to change.`

// OpenAIAdvisor implements IAdvisoryService with a JSON-mode chat completion.
//
// Callers treat every error from EnhanceEstimate as "no enhancement available";
// this client never needs to distinguish failure classes.

type OpenAIAdvisor struct {
	client *openai.Client
	model  string
}

var _ interfaces.IAdvisoryService = (*OpenAIAdvisor)(nil)

// NewOpenAIAdvisorFromEnv reads OPENAI_API_KEY and, optionally,
// ADVISORY_MODEL (default gpt-4o-mini).
func NewOpenAIAdvisorFromEnv() (*OpenAIAdvisor, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, ErrMissingOpenAIAPIKey
	}

	model := os.Getenv("ADVISORY_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}
	log.Printf("[advisory][client] OpenAI advisor initialized model=%s", model)
	return &OpenAIAdvisor{client: openai.NewClient(apiKey), model: model}, nil
}

type advisoryContext struct {
	ChangeType  string                   `json:"change_type"`
	Description string                   `json:"description"`
	Details     entities.ChangeDetails   `json:"details"`
	Impact      entities.CostImpact      `json:"computed_impact"`
}

func (a *OpenAIAdvisor) EnhanceEstimate(ctx context.Context, order entities.ChangeOrder, impact entities.CostImpact) (interfaces.AdvisoryAdjustment, error) {
	payload, err := json.Marshal(advisoryContext{
		ChangeType:  string(order.Type),
		Description: order.Description,
		Details:     order.Details,
		Impact:      impact,
	})
	if err != nil {
		return interfaces.AdvisoryAdjustment{}, err
	}

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: string(payload)},
		},
	})
	if err != nil {
		return interfaces.AdvisoryAdjustment{}, err
	}
	if len(resp.Choices) == 0 {
		return interfaces.AdvisoryAdjustment{}, errors.New("empty advisory response")
	}

	var adj interfaces.AdvisoryAdjustment
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &adj); err != nil {
		return interfaces.AdvisoryAdjustment{}, fmt.Errorf("malformed advisory response: %w", err)
	}
	return adj, nil
}
