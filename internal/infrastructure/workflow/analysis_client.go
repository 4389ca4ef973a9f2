package workflow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"shuddhify/internal/domain/service"
	"shuddhify/pkg/logger"
)

// Client relays food images to the n8n analysis workflow over its webhook.
// The workflow's classification output is opaque to this service.
type Client struct {
	webhookURL string
	httpClient *http.Client
}

func NewClient(webhookURL string) service.ImageAnalysisService {
	return &Client{
		webhookURL: webhookURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) AnalyzeImage(ctx context.Context, image io.Reader, filename, userEmail, foodItem string) (json.RawMessage, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		return nil, fmt.Errorf("build multipart form: %w", err)
	}
	if _, err := io.Copy(part, image); err != nil {
		return nil, fmt.Errorf("copy image into form: %w", err)
	}

	if err := writer.WriteField("userEmail", userEmail); err != nil {
		return nil, fmt.Errorf("write form field: %w", err)
	}
	if foodItem == "" {
		foodItem = "Unknown"
	}
	if err := writer.WriteField("foodItem", foodItem); err != nil {
		return nil, fmt.Errorf("write form field: %w", err)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close multipart form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, &body)
	if err != nil {
		return nil, fmt.Errorf("build workflow request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call analysis workflow: %w", err)
	}
	defer resp.Body.Close()

	logger.Debug("analysis workflow responded %d in %s", resp.StatusCode, time.Since(start).Round(time.Millisecond))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("analysis workflow returned status %d", resp.StatusCode)
	}

	result, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read workflow response: %w", err)
	}

	return json.RawMessage(result), nil
}
