package moderation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const (
	// relevanceSystemPrompt instructs the model to act as a yes/no relevance check
	// for community incident reports.
	relevanceSystemPrompt = `You are a content moderator for a community safety reporting app.
Users submit short free-text comments describing an incident, together with an incident category.

Your task: decide whether the comments plausibly describe an incident of the given category.

Rules:
- Answer with a single word: "yes" or "no".
- "yes" when the comments could reasonably describe an incident of the category, even if vague or poorly written.
- "no" when the comments are clearly unrelated to the category, spam, gibberish, advertising, or a test message.
- Do not judge severity, writing quality, or whether the incident actually happened.`

	relevancePrompt = `Category: %s
Comments: %q

Do these comments plausibly describe %s? Answer "yes" or "no".`

	// otherCategoryPhrase replaces the bare "other" label so the model has a
	// meaningful comparison target.
	otherCategoryPhrase = "an incident or safety concern not fitting standard categories"

	maxVerdictTokens = 8
)

// Gemini validates report content with a single bounded-timeout generation call.
type Gemini struct {
	model   *genai.GenerativeModel
	timeout time.Duration
}

// NewGemini builds the validator. The model is configured once for short,
// deterministic plain-text verdicts.
func NewGemini(ctx context.Context, apiKey, modelName string, timeout time.Duration) (*Gemini, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SystemInstruction = genai.NewUserContent(genai.Text(relevanceSystemPrompt))

	maxTokens := int32(maxVerdictTokens)
	temperature := float32(0)
	model.GenerationConfig.ResponseMIMEType = "text/plain"
	model.GenerationConfig.MaxOutputTokens = &maxTokens
	model.GenerationConfig.Temperature = &temperature

	return &Gemini{model: model, timeout: timeout}, nil
}

func (g *Gemini) Validate(ctx context.Context, category, comments string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	target := CategoryPhrase(category)
	resp, err := g.model.GenerateContent(ctx, genai.Text(fmt.Sprintf(relevancePrompt, category, comments, target)))
	if err != nil {
		return false, fmt.Errorf("moderation call: %w", err)
	}

	verdict := strings.ToLower(strings.TrimSpace(responseText(resp)))
	return strings.HasPrefix(verdict, "yes"), nil
}

// CategoryPhrase maps a category label to the phrase submitted to the model.
// The catch-all "other" needs a descriptive expansion to be a useful target.
func CategoryPhrase(category string) string {
	if category == "other" {
		return otherCategoryPhrase
	}
	return fmt.Sprintf("a %s incident", category)
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String()
}
