// Package gemini implements article generation using Google Gemini.
package gemini

import (
	"context"
	"strings"

	"github.com/gold9-app/autopress"
	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

// systemPrompt fixes the article structure the generator must follow. The
// output constraint keeps the result directly publishable as a raw HTML
// block without post-processing beyond fence stripping.
const systemPrompt = `You are a professional blog writer. Write a complete article on the given topic with exactly this seven-section structure:
1. A hook that grabs the reader's attention.
2. The reader's pain point, stated with empathy.
3. The main content, in depth.
4. Actionable tips the reader can apply today.
5. A short personal anecdote that builds trust.
6. A call to action.
7. References.
Use <h2> headings for sections and <p> paragraphs for body text. Output valid HTML only: no markdown, no code fences, no commentary outside the article.`

// Ensure Generator implements autopress.Generator at compile time.
var _ autopress.Generator = (*Generator)(nil)

// Generator implements autopress.Generator using Google Gemini.
type Generator struct {
	client *genai.Client
	model  string
}

// NewGenerator creates a new Generator. An empty model selects the default.
func NewGenerator(client *genai.Client, model string) *Generator {
	if model == "" {
		model = defaultModel
	}
	return &Generator{client: client, model: model}
}

// Generate returns article HTML for the topic.
func (g *Generator) Generate(ctx context.Context, topic string) (string, error) {
	if topic == "" {
		return "", autopress.Errorf(autopress.EINVALID, "topic required")
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: BuildUserPrompt(topic)}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", autopress.Errorf(autopress.EINTERNAL, "gemini returned nil result")
	}

	return StripCodeFence(result.Text()), nil
}

// BuildConfig returns the GenerateContentConfig for generation calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.7)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt for a topic.
func BuildUserPrompt(topic string) string {
	return "Topic: " + topic
}

// StripCodeFence removes an enclosing markdown code fence from model
// output. Models occasionally wrap HTML in ```html fences despite the
// output constraint.
func StripCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	trimmed = strings.TrimPrefix(trimmed, "```")
	if idx := strings.Index(trimmed, "\n"); idx != -1 {
		// Drop the language tag on the opening fence line.
		trimmed = trimmed[idx+1:]
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
