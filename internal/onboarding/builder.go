package onboarding

import (
	"context"
	"fmt"
	"strings"

	"github.com/turiniq/agent-platform/internal/agent"
	"github.com/turiniq/agent-platform/internal/business"
	"github.com/turiniq/agent-platform/internal/llm"
	"github.com/turiniq/agent-platform/pkg/logging"
)

const fileProcessorPrompt = `You are a file processing agent for TurinIQ. Extract key information from the provided text files to create a concise knowledge base summarizing the business details, products, services, or other relevant information. Return the knowledge base as a plain text string.`

const webSummaryPrompt = `You are a web scraping agent for TurinIQ. Summarize the website content to include the sitemap, products, services, and other relevant business details. Return the summary as a plain text string.`

const contextPromptTemplate = `You are a context builder agent for TurinIQ. Create a context prompt for a customer service agent based on the following:

Business Type: %s
Domain: %s
Agent Goal: %s
Tonality: %s
Communication Style: %s
Context & Clarity: %s
Handover & Escalation: %s
Data to Capture: %s
Custom Opening Message: %s
Custom Instructions: %s
Knowledge Base: %s... (truncated for brevity)

The prompt should enable the agent to serve customers effectively, following the specified tonality, style, and instructions. Return a plain text string.`

// Store is the persistence surface onboarding needs.
type Store interface {
	UpsertBusinessData(ctx context.Context, businessID string, data agent.BusinessData) error
}

// Result is returned to the configuring user.
type Result struct {
	BusinessID    string `json:"business_id"`
	ContextPrompt string `json:"context_prompt"`
}

// ContextBuilder synthesizes a business's knowledge base and context prompt
// from uploaded documents and the business website. Every gateway call here
// is single-shot: onboarding failures surface synchronously to the
// configuring user instead of degrading mid-conversation.
type ContextBuilder struct {
	client  llm.Client
	store   Store
	scraper *Scraper
	logger  *logging.Logger
	kbLimit int
}

// NewContextBuilder wires the builder.
func NewContextBuilder(client llm.Client, store Store, scraper *Scraper, kbLimit int, logger *logging.Logger) *ContextBuilder {
	if logger == nil {
		logger = logging.Default()
	}
	if scraper == nil {
		scraper = NewScraper()
	}
	if kbLimit <= 0 {
		kbLimit = 1000
	}
	return &ContextBuilder{client: client, store: store, scraper: scraper, logger: logger, kbLimit: kbLimit}
}

// Build runs the onboarding pipeline: summarize files, summarize the
// website, synthesize the context prompt, persist everything.
func (b *ContextBuilder) Build(ctx context.Context, in business.Input, files []UploadedFile) (Result, error) {
	fileKnowledge, err := b.summarizeFiles(ctx, files)
	if err != nil {
		return Result{}, err
	}

	webKnowledge := b.summarizeWebsite(ctx, in.Domain)

	knowledgeBase := fileKnowledge + "\n\nWeb Data:\n" + webKnowledge

	contextPrompt, err := b.client.Generate(ctx, b.contextPrompt(in, knowledgeBase))
	if err != nil {
		return Result{}, fmt.Errorf("onboarding: synthesizing context prompt: %w", err)
	}

	businessID := in.BusinessID()
	data := agent.BusinessData{KnowledgeBase: knowledgeBase, ContextPrompt: contextPrompt}
	if err := b.store.UpsertBusinessData(ctx, businessID, data); err != nil {
		return Result{}, err
	}

	b.logger.Info("business onboarded", "business_id", businessID, "files", len(files))
	return Result{BusinessID: businessID, ContextPrompt: contextPrompt}, nil
}

func (b *ContextBuilder) summarizeFiles(ctx context.Context, files []UploadedFile) (string, error) {
	var sb strings.Builder
	for _, file := range files {
		text := ExtractText(file)
		summary, err := b.client.Generate(ctx, fileProcessorPrompt+"\n\nFile Content:\n"+text)
		if err != nil {
			return "", fmt.Errorf("onboarding: summarizing %s: %w", file.Name, err)
		}
		sb.WriteString(summary)
		sb.WriteString("\n")
	}
	return strings.TrimSpace(sb.String()), nil
}

// summarizeWebsite never fails onboarding: an unreachable or unparseable
// site yields an error blob in the knowledge base instead.
func (b *ContextBuilder) summarizeWebsite(ctx context.Context, domain string) string {
	raw, err := b.scraper.Collect(ctx, domain)
	if err != nil {
		b.logger.Warn("website scrape failed", "domain", domain, "error", err)
		return fmt.Sprintf("Error scraping %s: %v", domain, err)
	}

	summary, err := b.client.Generate(ctx, webSummaryPrompt+"\n\nRaw Content:\n"+raw)
	if err != nil {
		b.logger.Warn("website summary failed", "domain", domain, "error", err)
		return fmt.Sprintf("Error scraping %s: %v", domain, err)
	}
	return summary
}

func (b *ContextBuilder) contextPrompt(in business.Input, knowledgeBase string) string {
	if len(knowledgeBase) > b.kbLimit {
		knowledgeBase = knowledgeBase[:b.kbLimit]
	}
	return fmt.Sprintf(contextPromptTemplate,
		in.BusinessType,
		in.Domain,
		withCustom(string(in.AgentGoal), in.AgentGoalOther),
		in.Tonality,
		withCustom(joinValues(in.CommunicationStyle), in.CommunicationStyleCustom),
		withCustom(joinValues(in.ContextClarity), in.ContextClarityCustom),
		withCustom(joinValues(in.HandoverEscalation), in.HandoverEscalationCustom),
		withCustom(joinValues(in.DataToCapture), in.DataToCaptureOther),
		in.CustomOpeningMessage,
		orNone(in.CustomInstructions),
		knowledgeBase,
	)
}

func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}

func withCustom(base, custom string) string {
	if strings.TrimSpace(custom) == "" {
		return base
	}
	return base + " - " + custom
}

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return "None"
	}
	return s
}
