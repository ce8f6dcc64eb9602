package transcribe

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"time"

	"github.com/mbaird/lensgate/internal/metrics"
	"github.com/mbaird/lensgate/internal/upstream"
)

const defaultAPIURL = "https://api.openai.com/v1/audio/transcriptions"

// whisperModel is pinned; the transcription surface takes no model selection.
const whisperModel = "whisper-1"

// mimeTypes maps declared audio formats to MIME types. Unknown formats fall
// back to webm, the browser recorder default.
var mimeTypes = map[string]string{
	"webm": "audio/webm",
	"mp4":  "audio/mp4",
	"m4a":  "audio/m4a",
	"wav":  "audio/wav",
}

// Client forwards recorded audio to the Whisper speech-to-text API.
type Client struct {
	apiKey  string
	client  *http.Client
	baseURL string
}

func NewClient(apiKey string, timeout time.Duration) *Client {
	return &Client{
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
		baseURL: defaultAPIURL,
	}
}

// Transcribe decodes base64 audio and sends it as multipart form data.
// Single shot: no retry, no chunking.
func (c *Client) Transcribe(ctx context.Context, audioB64, format string) (string, error) {
	audio, err := base64.StdEncoding.DecodeString(audioB64)
	if err != nil {
		return "", fmt.Errorf("failed to decode audio: %w", err)
	}

	mimeType, ok := mimeTypes[format]
	if !ok {
		format = "webm"
		mimeType = mimeTypes[format]
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="audio.%s"`, format))
	header.Set("Content-Type", mimeType)
	filePart, err := w.CreatePart(header)
	if err != nil {
		return "", fmt.Errorf("failed to build form: %w", err)
	}
	if _, err := filePart.Write(audio); err != nil {
		return "", fmt.Errorf("failed to build form: %w", err)
	}
	if err := w.WriteField("model", whisperModel); err != nil {
		return "", fmt.Errorf("failed to build form: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to build form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, &buf)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	start := time.Now()
	resp, err := c.client.Do(req)
	metrics.ObserveUpstream("whisper", time.Since(start), err)
	if err != nil {
		return "", fmt.Errorf("failed to call whisper: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			slog.Error("failed to close whisper response body", "error", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return "", upstream.ParseError("Whisper", resp)
	}

	var respBody struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&respBody); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	return respBody.Text, nil
}
