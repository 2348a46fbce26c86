package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/saulo-duarte/tutor-lambda/internal/config"
)

type hfParameters struct {
	Temperature  float64 `json:"temperature"`
	MaxNewTokens int     `json:"max_new_tokens"`
}

type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
}

type hfGeneration struct {
	GeneratedText string `json:"generated_text"`
}

type hfError struct {
	Error         string  `json:"error"`
	EstimatedTime float64 `json:"estimated_time"`
}

type huggingFaceProvider struct {
	httpClient *http.Client
	endpoint   string
	token      string
	model      string
}

func NewHuggingFaceProvider(s config.HuggingFaceSettings, httpClient *http.Client) (Provider, error) {
	if s.Token == "" {
		return nil, ErrMissingCredentials
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}
	return &huggingFaceProvider{
		httpClient: httpClient,
		endpoint:   strings.TrimRight(s.BaseURL, "/") + "/models/" + s.Model,
		token:      s.Token,
		model:      s.Model,
	}, nil
}

func (p *huggingFaceProvider) Name() string {
	return "huggingface"
}

func (p *huggingFaceProvider) SendPrompt(ctx context.Context, system, user string) (string, error) {
	log := config.WithContext(ctx)

	body, err := json.Marshal(hfRequest{
		Inputs:     joinPrompt(system, user),
		Parameters: hfParameters{Temperature: 0.7, MaxNewTokens: 500},
	})
	if err != nil {
		return "", fmt.Errorf("marshal huggingface request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build huggingface request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.token)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		log.WithError(err).Error("Hugging Face request failed")
		return "", fmt.Errorf("huggingface request: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read huggingface response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusServiceUnavailable:
		var apiErr hfError
		if json.Unmarshal(payload, &apiErr) == nil && apiErr.EstimatedTime > 0 {
			return "", fmt.Errorf("%w: estimated time %.0fs", ErrModelLoading, apiErr.EstimatedTime)
		}
		return "", ErrModelLoading
	case resp.StatusCode == http.StatusNotFound:
		return "", fmt.Errorf("%w: %s", ErrModelNotFound, p.model)
	case resp.StatusCode == http.StatusTooManyRequests:
		return "", fmt.Errorf("%w: huggingface status %d", ErrRateLimited, resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		log.Errorf("Hugging Face returned status %d: %s", resp.StatusCode, payload)
		return "", fmt.Errorf("huggingface api error: %d - %s", resp.StatusCode, strings.TrimSpace(string(payload)))
	}

	var generations []hfGeneration
	if err := json.Unmarshal(payload, &generations); err != nil {
		return "", fmt.Errorf("decode huggingface response: %w", err)
	}
	if len(generations) == 0 {
		return "", ErrEmptyResponse
	}

	text := strings.TrimSpace(generations[0].GeneratedText)
	log.Debugf("[LLM] Raw Hugging Face response:\n%s", text)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
