package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"Assistant/internal/dto"
	"Assistant/internal/httperr"
)

const defaultModel = "gemini-2.5-flash"

// Client wraps the generative-language generateContent endpoint.
type Client struct {
	key        string
	model      string
	baseURL    string
	httpClient *http.Client
}

func NewClient(key string, timeout time.Duration) *Client {
	return &Client{
		key:        key,
		model:      defaultModel,
		baseURL:    "https://generativelanguage.googleapis.com/v1beta",
		httpClient: &http.Client{Timeout: timeout},
	}
}

// NewClientWithBaseURL is for tests against a fake upstream.
func NewClientWithBaseURL(key, baseURL string, timeout time.Duration) *Client {
	c := NewClient(key, timeout)
	c.baseURL = baseURL
	return c
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool { return c.key != "" }

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

// Generate sends a single user message with no history.
func (c *Client) Generate(ctx context.Context, message string) (string, error) {
	return c.generate(ctx, generateRequest{
		Contents: []content{{Parts: []part{{Text: message}}}},
	})
}

// Converse assembles the role-tagged history, appends message as the final
// user turn and returns the first candidate's text.
func (c *Client) Converse(ctx context.Context, history []dto.ConversationMessage, message string) (string, error) {
	contents := make([]content, 0, len(history)+1)
	for _, msg := range history {
		role := "model"
		if msg.Role == "user" {
			role = "user"
		}
		contents = append(contents, content{Role: role, Parts: []part{{Text: msg.Content}}})
	}
	contents = append(contents, content{Role: "user", Parts: []part{{Text: message}}})

	return c.generate(ctx, generateRequest{
		Contents: contents,
		GenerationConfig: &generationConfig{
			Temperature:     0.7,
			MaxOutputTokens: 1000,
		},
	})
}

func (c *Client) generate(ctx context.Context, reqBody generateRequest) (string, error) {
	if c.key == "" {
		return "", httperr.Config("GEMINI_API_KEY is not configured")
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request (gemini): %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.key)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build request (gemini): %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", httperr.Upstream(0, "Chat processing failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", httperr.Upstream(0, "Chat processing failed", err)
	}
	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		cause := fmt.Errorf("gemini status %d", resp.StatusCode)
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
			cause = fmt.Errorf("gemini: %s", apiErr.Error.Message)
		}
		return "", httperr.Upstream(0, "Chat processing failed", cause)
	}

	var out struct {
		Candidates []struct {
			Content struct {
				Parts []part `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return "", httperr.Upstream(0, "Chat processing failed", fmt.Errorf("parse response (gemini): %w", err))
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", httperr.Upstream(0, "Chat processing failed", fmt.Errorf("gemini: response has no candidates"))
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}
