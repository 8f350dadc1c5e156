package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"Assistant/internal/httperr"
)

// Client wraps the OpenAI audio endpoints used by the speech routes:
// transcriptions (speech-to-text) and speech (text-to-speech).
type Client struct {
	key        string
	baseURL    string
	httpClient *http.Client
}

func NewClient(key string, timeout time.Duration) *Client {
	return &Client{
		key:        key,
		baseURL:    "https://api.openai.com/v1",
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

// Transcribe sends audio bytes to the transcription endpoint and returns the text.
func (c *Client) Transcribe(ctx context.Context, filename string, audio []byte) (string, error) {
	if c.key == "" {
		return "", httperr.Config("OPENAI_API_KEY is not configured")
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("build form (openai): %w", err)
	}
	if _, err := fw.Write(audio); err != nil {
		return "", fmt.Errorf("build form (openai): %w", err)
	}
	if err := w.WriteField("model", "whisper-1"); err != nil {
		return "", fmt.Errorf("build form (openai): %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("build form (openai): %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/audio/transcriptions", &buf)
	if err != nil {
		return "", fmt.Errorf("build request (openai): %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Content-Type", w.FormDataContentType())

	body, err := c.do(req, "Failed to transcribe audio")
	if err != nil {
		return "", err
	}
	var out struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return "", httperr.Upstream(0, "Failed to transcribe audio", fmt.Errorf("parse response (openai): %w", err))
	}
	return out.Text, nil
}

// Speak synthesizes text and returns mp3 bytes.
func (c *Client) Speak(ctx context.Context, text, voice string) ([]byte, error) {
	if c.key == "" {
		return nil, httperr.Config("OPENAI_API_KEY is not configured")
	}
	if voice == "" {
		voice = "alloy"
	}
	payload, err := json.Marshal(map[string]string{
		"model": "tts-1",
		"input": text,
		"voice": voice,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request (openai): %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/audio/speech", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request (openai): %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, "Failed to synthesize speech")
}

func (c *Client) do(req *http.Request, failMsg string) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, httperr.Upstream(0, failMsg, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, httperr.Upstream(0, failMsg, err)
	}
	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		cause := fmt.Errorf("openai status %d", resp.StatusCode)
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
			cause = fmt.Errorf("openai: %s", apiErr.Error.Message)
		}
		return nil, httperr.Upstream(0, failMsg, cause)
	}
	return body, nil
}
