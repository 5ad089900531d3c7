// Package browserless renders HTML to PDF through a browserless-compatible
// HTTP endpoint. Fail-fast: one request, no retry, errors carry the upstream
// status and body for diagnosis.
package browserless

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// ErrNoToken means the rendering service token is not configured. This is a
// configuration error and is raised before any HTTP call is attempted.
var ErrNoToken = errors.New("rendering service token not configured")

type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
}

func New(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpc:   &http.Client{Timeout: 60 * time.Second},
	}
}

// The rendering contract: the HTML carries its own margins, so the service
// prints edge to edge with backgrounds on.
type renderRequest struct {
	HTML    string        `json:"html"`
	Options renderOptions `json:"options"`
}

type renderOptions struct {
	Format          string  `json:"format"`
	PrintBackground bool    `json:"printBackground"`
	Margin          margins `json:"margin"`
}

type margins struct {
	Top    string `json:"top"`
	Right  string `json:"right"`
	Bottom string `json:"bottom"`
	Left   string `json:"left"`
}

// Render sends one HTML document and returns the PDF bytes.
func (c *Client) Render(ctx context.Context, html string) ([]byte, error) {
	if c.token == "" {
		return nil, ErrNoToken
	}

	payload, err := json.Marshal(renderRequest{
		HTML: html,
		Options: renderOptions{
			Format:          "A4",
			PrintBackground: true,
			Margin:          margins{Top: "0", Right: "0", Bottom: "0", Left: "0"},
		},
	})
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/pdf?token=%s", c.baseURL, url.QueryEscape(c.token))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rendering service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("rendering service returned %d: %s", resp.StatusCode, string(body))
	}
	return io.ReadAll(resp.Body)
}
