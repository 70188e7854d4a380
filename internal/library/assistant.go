package library

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/packages/param"
	"github.com/legal-suite/backend/internal/models"
)

// Assistant answers legal research questions grounded on library documents.
type Assistant interface {
	Answer(ctx context.Context, question string, docs []models.LegalDocument) (string, error)
}

// NewAssistant selects the API-backed assistant unless MOCK_ASSISTANT is
// set, which keeps local development offline.
func NewAssistant() Assistant {
	if os.Getenv("MOCK_ASSISTANT") == "true" {
		log.Println("Library assistant using mock responses")
		return NewMockAssistant()
	}

	model := os.Getenv("ANTHROPIC_MODEL")
	if model == "" {
		model = "claude-opus-4-5-20251101"
	}
	log.Println("Library assistant using Anthropic API:", model)
	return NewAPIAssistant(model)
}

const assistantSystemPrompt = `You are a legal research assistant for a Saudi law firm.
Answer the user's question using only the reference documents provided.
Cite the document titles you relied on. If the documents do not cover the
question, say so plainly instead of guessing.`

// ── APIAssistant ──────────────────────────────────────────

type APIAssistant struct {
	client *anthropic.Client
	model  string
}

func NewAPIAssistant(model string) *APIAssistant {
	client := anthropic.NewClient(
		option.WithAPIKey(os.Getenv("ANTHROPIC_API_KEY")),
	)
	return &APIAssistant{client: &client, model: model}
}

func (a *APIAssistant) Answer(ctx context.Context, question string, docs []models.LegalDocument) (string, error) {
	var sb strings.Builder
	sb.WriteString("Reference documents:\n\n")
	for _, d := range docs {
		fmt.Fprintf(&sb, "--- %s (%s) ---\n%s\n\n", d.Title, d.Category, d.Content)
	}
	sb.WriteString("Question: ")
	sb.WriteString(question)

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(a.model),
		MaxTokens:   2048,
		Temperature: param.NewOpt(0.2),
		System: []anthropic.TextBlockParam{
			{Text: assistantSystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(sb.String())),
		},
	}

	message, err := a.callWithRetry(ctx, params)
	if err != nil {
		return "", err
	}

	for _, block := range message.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}
	return "", fmt.Errorf("no text content in API response")
}

func (a *APIAssistant) callWithRetry(ctx context.Context, params anthropic.MessageNewParams) (*anthropic.Message, error) {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		if attempt > 0 {
			sleepDuration := time.Duration(1<<uint(attempt)) * time.Second
			log.Printf("Retrying Anthropic API call in %v (attempt %d)", sleepDuration, attempt+1)
			time.Sleep(sleepDuration)
		}

		message, err := a.client.Messages.New(ctx, params)
		if err == nil {
			return message, nil
		}
		lastErr = err
		log.Printf("Anthropic API attempt %d failed: %v", attempt+1, err)
	}
	return nil, fmt.Errorf("anthropic API failed after retries: %w", lastErr)
}

// ── MockAssistant ─────────────────────────────────────────

type MockAssistant struct{}

func NewMockAssistant() *MockAssistant {
	return &MockAssistant{}
}

func (m *MockAssistant) Answer(ctx context.Context, question string, docs []models.LegalDocument) (string, error) {
	if len(docs) == 0 {
		return "[Mock] No library documents match your question. Try a different search term.", nil
	}
	titles := make([]string, 0, len(docs))
	for _, d := range docs {
		titles = append(titles, d.Title)
	}
	return fmt.Sprintf("[Mock] Based on %s: the question %q would be answered here.", strings.Join(titles, ", "), question), nil
}
