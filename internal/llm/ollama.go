package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ollama/ollama/api"

	"github.com/saulo-duarte/tutor-lambda/internal/config"
)

const ollamaHeartbeatTimeout = 3 * time.Second

// Sampling options tuned for small local models.
var ollamaOptions = map[string]interface{}{
	"temperature":    0.7,
	"top_k":          30,
	"top_p":          0.85,
	"repeat_penalty": 1.2,
	"num_ctx":        2048,
}

type ollamaProvider struct {
	client *api.Client
	model  string
}

// NewOllamaProvider connects to a local Ollama server and fails fast when it
// does not answer a heartbeat.
func NewOllamaProvider(ctx context.Context, s config.OllamaSettings, httpClient *http.Client) (Provider, error) {
	base, err := url.Parse(s.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid ollama url %q: %w", s.URL, err)
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 120 * time.Second}
	}

	client := api.NewClient(base, httpClient)

	hbCtx, cancel := context.WithTimeout(ctx, ollamaHeartbeatTimeout)
	defer cancel()
	if err := client.Heartbeat(hbCtx); err != nil {
		return nil, fmt.Errorf("ollama heartbeat: %w", err)
	}

	return &ollamaProvider{client: client, model: s.Model}, nil
}

func (p *ollamaProvider) Name() string {
	return "ollama"
}

func (p *ollamaProvider) SendPrompt(ctx context.Context, system, user string) (string, error) {
	log := config.WithContext(ctx)

	stream := false
	var messages []api.Message
	if system != "" {
		messages = append(messages, api.Message{Role: "system", Content: system})
	}
	messages = append(messages, api.Message{Role: "user", Content: user})

	req := &api.ChatRequest{
		Model:    p.model,
		Stream:   &stream,
		Messages: messages,
		Options:  ollamaOptions,
	}

	var b strings.Builder
	err := p.client.Chat(ctx, req, func(cr api.ChatResponse) error {
		b.WriteString(cr.Message.Content)
		return nil
	})
	if err != nil {
		log.WithError(err).Error("Ollama chat failed")
		var statusErr api.StatusError
		if errors.As(err, &statusErr) {
			switch statusErr.StatusCode {
			case http.StatusTooManyRequests:
				return "", fmt.Errorf("%w: %w", ErrRateLimited, err)
			case http.StatusNotFound:
				return "", fmt.Errorf("%w: %s: %w", ErrModelNotFound, p.model, err)
			}
		}
		return "", fmt.Errorf("ollama chat: %w", err)
	}

	text := strings.TrimSpace(b.String())
	log.Debugf("[LLM] Raw Ollama response:\n%s", text)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
