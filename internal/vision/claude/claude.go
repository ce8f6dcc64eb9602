package claude

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/liushuangls/go-anthropic/v2"

	"github.com/mbaird/lensgate/internal/upstream"
	"github.com/mbaird/lensgate/internal/vision"
)

// maxTokens matches the other provider bindings; answers over a prompt with
// injected search context can run long.
const maxTokens = 4096

// Client calls the Anthropic Messages API through the go-anthropic SDK.
type Client struct {
	apiKey  string
	client  *http.Client
	baseURL string
}

func NewClient(apiKey string, timeout time.Duration) *Client {
	return &Client{
		apiKey: apiKey,
		client: &http.Client{Timeout: timeout},
	}
}

func (c *Client) Generate(ctx context.Context, image, prompt, model string) (string, error) {
	opts := []anthropic.ClientOption{anthropic.WithHTTPClient(c.client)}
	if c.baseURL != "" {
		opts = append(opts, anthropic.WithBaseURL(c.baseURL))
	}
	sdk := anthropic.NewClient(c.apiKey, opts...)

	resp, err := sdk.CreateMessages(ctx, anthropic.MessagesRequest{
		Model:     anthropic.Model(model),
		MaxTokens: maxTokens,
		Messages: []anthropic.Message{
			{
				Role: anthropic.RoleUser,
				Content: []anthropic.MessageContent{
					anthropic.NewImageMessageContent(anthropic.NewMessageContentSource(
						anthropic.MessagesContentSourceTypeBase64,
						vision.DetectMediaType(image),
						image,
					)),
					anthropic.NewTextMessageContent(prompt),
				},
			},
		},
	})
	if err != nil {
		var apiErr *anthropic.APIError
		if errors.As(err, &apiErr) {
			return "", &upstream.Error{Name: "Claude", Message: apiErr.Message}
		}
		var reqErr *anthropic.RequestError
		if errors.As(err, &reqErr) {
			return "", &upstream.Error{Name: "Claude", StatusCode: reqErr.StatusCode}
		}
		return "", fmt.Errorf("call claude: %w", err)
	}

	if len(resp.Content) == 0 {
		return "", &upstream.Error{Name: "Claude", StatusCode: http.StatusOK, Message: "Claude response contained no content"}
	}
	return resp.Content[0].GetText(), nil
}
