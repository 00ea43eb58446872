package onboarding

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turiniq/agent-platform/internal/agent"
	"github.com/turiniq/agent-platform/internal/business"
	"github.com/turiniq/agent-platform/pkg/logging"
)

type scriptedGateway struct {
	prompts []string
	fail    string
}

func (g *scriptedGateway) Generate(ctx context.Context, prompt string) (string, error) {
	g.prompts = append(g.prompts, prompt)
	if g.fail != "" && strings.Contains(prompt, g.fail) {
		return "", errors.New("gateway unavailable")
	}
	switch {
	case strings.Contains(prompt, "file processing agent"):
		return "file summary", nil
	case strings.Contains(prompt, "web scraping agent"):
		return "web summary", nil
	case strings.Contains(prompt, "context builder agent"):
		return "You are the support agent for Acme.", nil
	}
	return "", errors.New("unexpected prompt")
}

type recordingStore struct {
	businessID string
	data       agent.BusinessData
	err        error
}

func (s *recordingStore) UpsertBusinessData(ctx context.Context, businessID string, data agent.BusinessData) error {
	s.businessID = businessID
	s.data = data
	return s.err
}

func testInput(domain string) business.Input {
	return business.Input{
		BusinessType:         business.TypeTech,
		Domain:               domain,
		AgentGoal:            business.GoalCustomerSupport,
		Tonality:             business.TonalityFriendly,
		CommunicationStyle:   []business.CommunicationStyle{business.StyleConcise},
		ContextClarity:       []business.ContextClarity{business.ClarifyBrief},
		HandoverEscalation:   []business.HandoverEscalation{business.EscalateRefunds},
		DataToCapture:        []business.DataToCapture{business.CaptureName, business.CaptureEmail},
		CustomOpeningMessage: "Hello! How can I help?",
	}
}

func newSite(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><a href="/pricing">Pricing</a></body></html>`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestBuildOnboardsBusiness(t *testing.T) {
	site := newSite(t)
	gateway := &scriptedGateway{}
	store := &recordingStore{}
	builder := NewContextBuilder(gateway, store, NewScraper(), 1000, logging.Default())

	files := []UploadedFile{{Name: "faq.txt", Content: []byte("Q: hours? A: 9-5")}}
	result, err := builder.Build(context.Background(), testInput(site.URL), files)
	require.NoError(t, err)

	assert.Equal(t, "tech_"+site.URL, result.BusinessID)
	assert.Equal(t, "You are the support agent for Acme.", result.ContextPrompt)

	assert.Equal(t, result.BusinessID, store.businessID)
	assert.Equal(t, result.ContextPrompt, store.data.ContextPrompt)
	assert.Equal(t, "file summary\n\nWeb Data:\nweb summary", store.data.KnowledgeBase)

	require.Len(t, gateway.prompts, 3)
	assert.Contains(t, gateway.prompts[0], "Q: hours? A: 9-5")
	assert.Contains(t, gateway.prompts[1], "Page: Pricing - URL: /pricing")
	final := gateway.prompts[2]
	assert.Contains(t, final, "Business Type: tech")
	assert.Contains(t, final, "Tonality: friendly")
	assert.Contains(t, final, "Data to Capture: name, email")
	assert.Contains(t, final, "Custom Opening Message: Hello! How can I help?")
	assert.Contains(t, final, "Custom Instructions: None")
	assert.Contains(t, final, "Knowledge Base: file summary")
}

func TestBuildScrapeFailureBecomesKnowledge(t *testing.T) {
	gateway := &scriptedGateway{}
	store := &recordingStore{}
	builder := NewContextBuilder(gateway, store, NewScraper(), 1000, logging.Default())

	result, err := builder.Build(context.Background(), testInput("example.invalid"), nil)
	require.NoError(t, err)
	assert.NotEmpty(t, result.BusinessID)
	assert.Contains(t, store.data.KnowledgeBase, "Error scraping example.invalid:")
}

func TestBuildTruncatesKnowledgeBaseInPrompt(t *testing.T) {
	site := newSite(t)
	gateway := &scriptedGateway{}
	builder := NewContextBuilder(gateway, &recordingStore{}, NewScraper(), 20, logging.Default())

	files := []UploadedFile{{Name: "faq.txt", Content: []byte("long document")}}
	_, err := builder.Build(context.Background(), testInput(site.URL), files)
	require.NoError(t, err)

	final := gateway.prompts[len(gateway.prompts)-1]
	assert.Contains(t, final, "Knowledge Base: file summary\n\nWeb Da... (truncated for brevity)")
}

func TestBuildFilesSummaryFailure(t *testing.T) {
	site := newSite(t)
	gateway := &scriptedGateway{fail: "file processing agent"}
	store := &recordingStore{}
	builder := NewContextBuilder(gateway, store, NewScraper(), 1000, logging.Default())

	files := []UploadedFile{{Name: "faq.txt", Content: []byte("doc")}}
	_, err := builder.Build(context.Background(), testInput(site.URL), files)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "faq.txt")
	assert.Empty(t, store.businessID)
}

func TestBuildPersistFailure(t *testing.T) {
	site := newSite(t)
	store := &recordingStore{err: errors.New("mongo down")}
	builder := NewContextBuilder(&scriptedGateway{}, store, NewScraper(), 1000, logging.Default())

	_, err := builder.Build(context.Background(), testInput(site.URL), nil)
	require.Error(t, err)
}
