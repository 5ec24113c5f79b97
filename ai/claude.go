package ai

import (
	"Healthscan/core"
	"Healthscan/lib/sl"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

const (
	defaultBaseURL = "https://api.anthropic.com"
	messagesPath   = "/v1/messages"
	apiVersion     = "2023-06-01"
)

// Claude answers questions over the Anthropic messages API, with or
// without the user's stored report image. Errors are returned to the
// caller; the chat surface decides what to show instead.
type Claude struct {
	conf    *core.Config
	log     *slog.Logger
	client  *http.Client
	baseURL string
}

func NewClaude(conf *core.Config, log *slog.Logger) *Claude {
	return &Claude{
		conf:    conf,
		log:     log.With(sl.Module("claude")),
		client:  &http.Client{},
		baseURL: defaultBaseURL,
	}
}

func (c *Claude) Ask(ctx context.Context, question string, imageBase64 string) (string, error) {
	var request *MessagesRequest
	if imageBase64 != "" {
		request = NewVisionRequest(question, imageBase64)
	} else {
		request = NewTextRequest(question)
	}

	jsonBytes, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("marshalling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+messagesPath, bytes.NewReader(jsonBytes))
	if err != nil {
		return "", fmt.Errorf("making request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.conf.ClaudeApiKey)
	req.Header.Set("anthropic-version", apiVersion)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("getting response: %w", err)
	}
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			c.log.Error("closing response body", sl.Err(err))
		}
	}(resp.Body)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response body: %w", err)
	}
	c.log.With(
		slog.Int("status", resp.StatusCode),
		slog.String("body", string(body)),
	).Debug("response body")

	var completion MessagesResponse
	if err = json.Unmarshal(body, &completion); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		if completion.Error != nil {
			return "", fmt.Errorf("claude api: %s: %s", completion.Error.Type, completion.Error.Message)
		}
		return "", fmt.Errorf("claude api: status %d", resp.StatusCode)
	}
	if len(completion.Content) == 0 {
		return "", fmt.Errorf("claude api: empty content")
	}
	answer := completion.Content[0].Text

	logText := answer
	if len(logText) > 50 {
		logText = logText[:50] + "..."
	}
	c.log.With(
		slog.String("model", completion.Model),
		slog.String("text", logText),
	).Info("answer received")

	return answer, nil
}
