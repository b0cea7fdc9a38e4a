package api

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	http "github.com/bogdanfinn/fhttp"
	"github.com/tidwall/gjson"

	apierrors "github.com/diogo/tripchat/internal/errors"
	"github.com/diogo/tripchat/internal/models"
)

// maxBodySize caps how much of a response body is read, success or error.
const maxBodySize = 1 << 20

// turnRequest is the JSON request body for one turn.
type turnRequest struct {
	Message string `json:"message"`
}

// Send submits one user message and blocks until the server replies or the
// request fails. No retry or backoff is performed; a failed attempt leaves
// the caller free to resubmit.
func (c *Client) Send(message string) (*models.TurnReply, error) {
	if strings.TrimSpace(message) == "" {
		return nil, apierrors.ErrEmptyMessage
	}

	payload, err := json.Marshal(turnRequest{Message: message})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.endpoint, strings.NewReader(string(payload)))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for key, value := range defaultHeaders() {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apierrors.NewNetworkError("send message", c.endpoint, err)
	}
	defer func() {
		if resp != nil && resp.Body != nil {
			_ = resp.Body.Close()
		}
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, apierrors.NewNetworkError("read response", c.endpoint, err)
	}

	if resp.StatusCode != 200 {
		// Error bodies may still carry a human-readable "response" field;
		// surface it so the user sees what the server said.
		serverText := gjson.GetBytes(body, "response").String()
		return nil, apierrors.NewAPIErrorWithBody(resp.StatusCode, c.endpoint, "chat request failed", serverText)
	}

	return parseReply(body)
}

// parseReply parses the JSON response body for one turn.
func parseReply(body []byte) (*models.TurnReply, error) {
	if !gjson.ValidBytes(body) {
		return nil, apierrors.NewParseError("response is not valid JSON", "")
	}

	parsed := gjson.ParseBytes(body)
	if !parsed.IsObject() {
		return nil, apierrors.NewParseError("response is not a JSON object", "")
	}

	text := parsed.Get("response")
	if !text.Exists() {
		return nil, apierrors.NewParseError("no response field found", "response")
	}

	return &models.TurnReply{
		Text: text.String(),
		Quit: parsed.Get("quit").Bool(),
	}, nil
}

// userAgent identifies the client to the server.
const userAgent = "tripchat/0.1"

// defaultHeaders returns the headers sent with every request.
func defaultHeaders() map[string]string {
	return map[string]string{
		"Content-Type": "application/json",
		"Accept":       "application/json",
		"User-Agent":   userAgent,
	}
}
