package content

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/internal/marketerrors"
	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/utils"
	"github.com/go-playground/validator/v10"
)

const maxResponseBytes = 1 << 20

// FAQ is one question/answer pair of the help page
type FAQ struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}

// Generator produces help-page content from a natural-language prompt
type Generator interface {
	GenerateFAQ(ctx context.Context, prompt string) ([]FAQ, error)
}

// faqSchema is sent with every prompt so the service answers in a shape we can decode strictly
var faqSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"faqs": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"question": map[string]any{"type": "string"},
					"answer":   map[string]any{"type": "string"},
				},
				"required": []string{"question", "answer"},
			},
		},
	},
	"required": []string{"faqs"},
}

type generateRequest struct {
	Model  string         `json:"model"`
	Prompt string         `json:"prompt"`
	Schema map[string]any `json:"schema"`
}

type generateResponse struct {
	FAQs []FAQ `json:"faqs" validate:"required,min=1,dive"`
}

// HTTPGenerator calls a JSON text-generation endpoint
type HTTPGenerator struct {
	url      string
	apiKey   string
	model    string
	client   *http.Client
	validate *validator.Validate
}

// NewHTTPGenerator creates a generator for url. Calls fail with ErrContentUnavailable while
// url or apiKey is empty.
func NewHTTPGenerator(url, apiKey, model string, timeout time.Duration) *HTTPGenerator {
	return &HTTPGenerator{
		url:      url,
		apiKey:   apiKey,
		model:    model,
		client:   &http.Client{Timeout: timeout},
		validate: validator.New(),
	}
}

// GenerateFAQ sends prompt and the FAQ schema and returns the validated pairs
func (g *HTTPGenerator) GenerateFAQ(ctx context.Context, prompt string) ([]FAQ, error) {
	if g.url == "" || g.apiKey == "" {
		return nil, marketerrors.ErrContentUnavailable
	}

	body, err := json.Marshal(generateRequest{Model: g.model, Prompt: prompt, Schema: faqSchema})
	if err != nil {
		return nil, fmt.Errorf("content: encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("content: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("content: %w: %v", marketerrors.ErrContentUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("content: %w: status %d", marketerrors.ErrContentUnavailable, resp.StatusCode)
	}

	dec := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes))
	dec.DisallowUnknownFields()
	var out generateResponse
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("content: %w: %v", marketerrors.ErrMalformedContent, err)
	}
	if err := g.validate.Struct(out); err != nil {
		return nil, fmt.Errorf("content: %w: %v", marketerrors.ErrMalformedContent, err)
	}
	return out.FAQs, nil
}

// FAQResult is what the help page renders. Failed asks for the generic error state.
type FAQResult struct {
	Items  []FAQ `json:"items"`
	Failed bool  `json:"failed"`
}

// FAQService shields the help page from generator failures
type FAQService struct {
	gen Generator
}

// NewFAQService wraps gen. A nil generator makes every load fail softly.
func NewFAQService(gen Generator) *FAQService {
	return &FAQService{gen: gen}
}

// Load asks for marketplace FAQs in lang. It never returns an error.
func (s *FAQService) Load(ctx context.Context, lang string) FAQResult {
	if s.gen == nil {
		return FAQResult{Items: []FAQ{}, Failed: true}
	}
	items, err := s.gen.GenerateFAQ(ctx, Prompt(lang))
	if err != nil {
		utils.Warn("faq generation failed", map[string]any{"error": err.Error(), "lang": lang})
		return FAQResult{Items: []FAQ{}, Failed: true}
	}
	return FAQResult{Items: items, Failed: false}
}

// Prompt builds the FAQ request for lang
func Prompt(lang string) string {
	return fmt.Sprintf("Write 6 to 10 frequently asked questions with short answers for Mazora, "+
		"an online auction marketplace for West Africa where buyers bid in FCFA, sellers list items "+
		"with a reserve price, and late bids extend an auction by two minutes. "+
		"Answer in the language with code %q.", lang)
}
